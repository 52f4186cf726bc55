// ABOUTME: Serve subcommand
// ABOUTME: Starts the HTTP server exposing the extraction endpoint
package cli

import (
	"flag"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/store"
	"github.com/harperreed/snapcard/web"
)

// ServeCommand starts the HTTP server.
func ServeCommand(st *store.Store, extractor extract.Client, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", 8080, "Port to listen on")
	_ = fs.Parse(args)

	server := web.NewServer(st, extractor)
	return server.Start(*port)
}
