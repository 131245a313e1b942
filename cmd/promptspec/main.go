// Command promptspec scans prompt spec files (.promptspec.md) and exposes
// their metadata to scripts, editors and the local catalog.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/promptspec/promptspec/internal/config"
	"github.com/promptspec/promptspec/pkg/scanner"
)

func main() {
	// Load .env before anything reads the environment.
	godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "scan":
		err = handleScan()
	case "root":
		err = handleRoot()
	case "catalog":
		err = handleCatalog()
	case "hub":
		err = handleHub()
	case "env":
		err = handleEnv()
	case "init":
		err = handleInit()
	case "serve":
		err = handleServe()
	case "rpc":
		err = handleRPC()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: promptspec <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan <path|->         Extract metadata from a spec (--json for raw output)")
	fmt.Println("  root <path|->         Show the spec's root prefix and suffix text")
	fmt.Println("  catalog [--dir=path]  Index spec directories (--json, --verbose)")
	fmt.Println("  hub list|sync         List or download specs from the configured hub repo")
	fmt.Println("  env                   Print the resolved configuration")
	fmt.Println("  init [dir]            Scaffold an example spec and project config")
	fmt.Println("  serve [--port=n]      Run the HTTP inspector")
	fmt.Println("  rpc                   Serve JSON-RPC requests over stdin/stdout")
	fmt.Println("  help                  Show this help")
}

// loadConfig resolves configuration for the current working directory.
// Config problems are warnings, not fatal: every command still works with
// defaults.
func loadConfig() config.Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, err := config.Load(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading config: %v\n", err)
	}
	return cfg
}

func scanOptions(cfg config.Config) scanner.Options {
	return scanner.Options{InternalVariables: cfg.InternalVariables}
}

// readSpec reads spec text from a file path, or from stdin when path is "-".
func readSpec(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// hasFlag reports whether a flag appears among args.
func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}
