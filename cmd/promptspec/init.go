package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptspec/promptspec/internal/config"
)

const exampleSpec = `# Code Review Helper

Reviews a piece of code and lists concrete issues.

@execute tree-of-thought
  max_depth: 3
  branching_factor: 2

You are a careful reviewer.

@note
  Paste the code to review below. Larger snippets work better
  with full surrounding context.

Code: {{code}}

@match language
  "python" ==> Focus on type hints and error handling.
  "go" ==> Focus on error wrapping and goroutine leaks.
  _ ==> Use general best practices.

@prompt generate
  List every issue you find, most severe first.

@prompt evaluate
  Re-check the list and drop anything speculative.
`

const exampleProjectConfig = `# promptspec project configuration
specs_dirs:
  - ./specs
# hub:
#   owner: your-org
#   repo: prompt-library
#   path: specs
`

// handleInit implements `promptspec init [dir]`: scaffold a specs directory
// with an example spec and a project config.
func handleInit() error {
	dir := "."
	if len(os.Args) >= 3 {
		dir = os.Args[2]
	}

	specsDir := filepath.Join(dir, "specs")
	if err := os.MkdirAll(specsDir, 0755); err != nil {
		return fmt.Errorf("create specs dir: %w", err)
	}

	specPath := filepath.Join(specsDir, "example.promptspec.md")
	if _, err := os.Stat(specPath); err == nil {
		return fmt.Errorf("file %q already exists", specPath)
	}
	if err := os.WriteFile(specPath, []byte(exampleSpec), 0644); err != nil {
		return fmt.Errorf("write example spec: %w", err)
	}
	fmt.Printf("Created %s\n", specPath)

	configPath := filepath.Join(dir, config.ProjectConfigName)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Keeping existing %s\n", configPath)
	} else {
		if err := os.WriteFile(configPath, []byte(exampleProjectConfig), 0644); err != nil {
			return fmt.Errorf("write project config: %w", err)
		}
		fmt.Printf("Created %s\n", configPath)
	}

	fmt.Println("Try:")
	fmt.Printf("  promptspec scan %s\n", specPath)
	fmt.Println("  promptspec catalog")
	return nil
}
