package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/promptspec/promptspec/pkg/scanner"
)

// handleScan implements `promptspec scan <path|-> [--json]`.
func handleScan() error {
	args := os.Args[2:]
	path := ""
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			path = arg
			break
		}
	}
	if path == "" {
		return fmt.Errorf("usage: promptspec scan <path|-> [--json]")
	}

	text, err := readSpec(path)
	if err != nil {
		return err
	}

	meta := scanner.ScanWithOptions(text, scanOptions(loadConfig()))

	if hasFlag(args, "--json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	printMetadata(meta)
	return nil
}

// printMetadata renders a human-readable summary of scan results.
func printMetadata(meta scanner.Metadata) {
	if meta.Title != "" {
		fmt.Printf("Title:       %s\n", meta.Title)
	}
	if meta.Description != "" {
		fmt.Printf("Description: %s\n", firstLine(meta.Description))
	}

	if meta.Execution != nil {
		if strategy, ok := meta.Execution["type"].(string); ok {
			fmt.Printf("Execution:   %s", strategy)
			var params []string
			for k, v := range meta.Execution {
				if k == "type" {
					continue
				}
				params = append(params, fmt.Sprintf("%s=%v", k, v))
			}
			if len(params) > 0 {
				sort.Strings(params)
				fmt.Printf(" (%s)", strings.Join(params, ", "))
			}
			fmt.Println()
		}
	}

	if len(meta.Inputs) > 0 {
		fmt.Println("Inputs:")
		for _, in := range meta.Inputs {
			line := fmt.Sprintf("  %-20s %s", in.Name, in.Type)
			if len(in.Options) > 0 {
				line += " [" + strings.Join(in.Options, ", ") + "]"
			}
			if in.Description != "" {
				line += "  " + firstLine(in.Description)
			}
			fmt.Println(line)
		}
	}

	if len(meta.PromptNames) > 0 {
		fmt.Printf("Prompts:     %s\n", strings.Join(meta.PromptNames, ", "))
	}
	if len(meta.ToolNames) > 0 {
		fmt.Printf("Tools:       %s\n", strings.Join(meta.ToolNames, ", "))
	}
	if len(meta.RefineFiles) > 0 {
		fmt.Printf("Refines:     %s\n", strings.Join(meta.RefineFiles, ", "))
	}
	if len(meta.EmbedFiles) > 0 {
		fmt.Printf("Embeds:      %s\n", strings.Join(meta.EmbedFiles, ", "))
	}
	if len(meta.Assertions) > 0 {
		fmt.Printf("Assertions:  %d\n", len(meta.Assertions))
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
