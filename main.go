// ABOUTME: Entry point for the snapcard contact capture tool
// ABOUTME: Routes to TUI, capture, contacts, serve, or MCP commands based on arguments
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/harperreed/snapcard/cli"
	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/store"
)

const version = "0.1.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataPath := flag.String("data-path", "", "Data directory (default: ~/.local/share/snapcard)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("snapcard version %s\n", version)
		os.Exit(0)
	}

	// Credentials and knobs come from the environment; a local .env is
	// honored but never required.
	_ = godotenv.Load()

	args := flag.Args()
	command := "tui"
	var commandArgs []string
	if len(args) > 0 {
		command = args[0]
		commandArgs = args[1:]
	}

	st, err := store.Open(getDataPath(*dataPath))
	if err != nil {
		log.Fatalf("Failed to open contact store: %v", err)
	}
	defer st.Close()

	extractor := newExtractor()

	switch command {
	case "tui":
		if err := cli.TUICommand(st, extractor); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "capture":
		if err := cli.CaptureCommand(st, extractor, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "contacts":
		if len(commandArgs) == 0 {
			fmt.Println("Error: contacts requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		sub := commandArgs[0]
		subArgs := commandArgs[1:]

		switch sub {
		case "list":
			if err := cli.ListContactsCommand(st, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "show":
			if err := cli.ShowContactCommand(st, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete":
			if err := cli.DeleteContactCommand(st, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "export":
			if err := cli.ExportContactCommand(st, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown contacts command: %s\n\n", sub)
			printUsage()
			os.Exit(1)
		}

	case "serve":
		if err := cli.ServeCommand(st, extractor, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "mcp":
		if err := cli.MCPCommand(st, extractor); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDataPath(dataPath string) string {
	if dataPath != "" {
		return dataPath
	}
	return filepath.Join(xdg.DataHome, "snapcard")
}

// newExtractor picks the extraction client from the environment. With no
// endpoint and no API key configured every capture takes the fallback path;
// the tool still works, just without AI summaries.
func newExtractor() extract.Client {
	if endpoint := os.Getenv("SNAPCARD_EXTRACT_URL"); endpoint != "" {
		return extract.NewHTTPClient(endpoint)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("warning: GEMINI_API_KEY not set, captures will use fallback content")
		return nil
	}

	client, err := extract.NewGemini(context.Background(), apiKey)
	if err != nil {
		log.Printf("warning: extraction client unavailable: %v", err)
		return nil
	}
	return client
}

func printUsage() {
	fmt.Printf(`snapcard v%s - AI contact capture for events

USAGE:
  snapcard [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-path <path>     Data directory (default: ~/.local/share/snapcard)

COMMANDS:
  tui                    Full-screen interface (default)
  capture                Capture one contact from notes
  contacts               Manage captured contacts
  serve                  Start the HTTP extraction server
  mcp                    Start MCP server for assistant integration

CAPTURE:
  snapcard capture [flags]
    --notes <text>          Free-text notes (reads stdin if omitted)
    --notes-file <path>     Read notes from a file
    --name <name>           Known contact name
    --company <company>     Known company
    --role <role>           Known role or title
    --email <email>         Known email address
    --phone <phone>         Known phone number
    --location <location>   Known location
    --context <text>        Where or how you met
    --photo <path>          Photo to attach

CONTACTS:
  snapcard contacts list     List contacts
    --query <text>             Filter by name, company, or email
    --limit <n>                Max results (default: 50)

  snapcard contacts show <id>     Show one contact in full
  snapcard contacts delete <id>   Delete a contact
  snapcard contacts export [--output <dir>] <id>   Write a .vcf file

SERVE:
  snapcard serve [--port <n>]     POST /api/extract plus read-only contact endpoints

ENVIRONMENT:
  GEMINI_API_KEY          Extraction provider credential
  SNAPCARD_EXTRACT_URL    Use a remote /api/extract endpoint instead
  SNAPCARD_SPEECH_CMD     Streaming speech-to-text command for dictation

EXAMPLES:
  # Interactive capture
  snapcard

  # One-shot capture from the shell
  snapcard capture --context "Conf Hall B" --notes "Met Sarah from Acme Corp, VP of Engineering."

  # Export a vCard
  snapcard contacts export 01J9Z1V4N8QK3T8B2W5E6R7Y8U

`, version)
}
