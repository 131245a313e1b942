package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/promptspec/promptspec/pkg/roottext"
)

// handleRoot implements `promptspec root <path|-> [--json]`.
func handleRoot() error {
	args := os.Args[2:]
	path := ""
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			path = arg
			break
		}
	}
	if path == "" {
		return fmt.Errorf("usage: promptspec root <path|-> [--json]")
	}

	text, err := readSpec(path)
	if err != nil {
		return err
	}

	prefix, suffix := roottext.Extract(text)

	if hasFlag(args, "--json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{"prefix": prefix, "suffix": suffix})
	}

	if prefix == "" && suffix == "" {
		fmt.Println("(no root text)")
		return nil
	}
	if prefix != "" {
		fmt.Println("--- prefix ---")
		fmt.Println(prefix)
	}
	if suffix != "" {
		fmt.Println("--- suffix ---")
		fmt.Println(suffix)
	}
	return nil
}
