// ABOUTME: MCP server subcommand
// ABOUTME: Exposes capture, lookup, deletion, and export tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/handlers"
	"github.com/harperreed/snapcard/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(st *store.Store, extractor extract.Client) error {
	log.Println("Starting snapcard MCP server...")

	contactHandlers := handlers.NewContactHandlers(st, extractor)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "snapcard",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "capture_contact",
		Description: "Create a contact from free-text notes about a person met at an event",
	}, contactHandlers.CaptureContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Search captured contacts by name, company, or email",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_contact",
		Description: "Fetch one captured contact by id, including summary and action items",
	}, contactHandlers.GetContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a captured contact by id",
	}, contactHandlers.DeleteContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_vcard",
		Description: "Render a captured contact as a vCard 3.0 document",
	}, contactHandlers.ExportVCard)

	// Run server on stdio transport
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
