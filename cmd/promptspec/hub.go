package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptspec/promptspec/internal/config"
	"github.com/promptspec/promptspec/pkg/hub"
)

// handleHub implements `promptspec hub list|sync [--dest=path]`.
func handleHub() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: promptspec hub list|sync [--dest=path]")
	}

	cfg := loadConfig()
	if cfg.Hub.Owner == "" || cfg.Hub.Repo == "" {
		return fmt.Errorf("hub not configured: set hub.owner and hub.repo in %s", config.ProjectConfigName)
	}

	token := cfg.Hub.Token
	if token == "" {
		token = os.Getenv("PROMPTSPEC_HUB_TOKEN")
	}
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	client, err := hub.NewClient(token)
	if err != nil {
		return fmt.Errorf("hub token missing: set hub.token or GITHUB_TOKEN")
	}

	ctx := context.Background()

	switch os.Args[2] {
	case "list":
		specs, err := client.List(ctx, cfg.Hub.Owner, cfg.Hub.Repo, cfg.Hub.Path)
		if err != nil {
			return err
		}
		if len(specs) == 0 {
			fmt.Println("No specs in hub.")
			return nil
		}
		for _, spec := range specs {
			fmt.Printf("%-24s %s\n", strings.TrimSuffix(spec.Name, ".promptspec.md"), spec.Path)
		}
		return nil

	case "sync":
		dest := defaultSyncDest()
		for _, arg := range os.Args[3:] {
			if strings.HasPrefix(arg, "--dest=") {
				dest = strings.TrimPrefix(arg, "--dest=")
			}
		}

		syncer := &hub.Syncer{Client: client}
		written, err := syncer.Sync(ctx, cfg.Hub.Owner, cfg.Hub.Repo, cfg.Hub.Path, dest)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Printf("Fetched %s\n", path)
		}
		fmt.Printf("Synced %d specs to %s\n", len(written), dest)
		return nil

	default:
		return fmt.Errorf("unknown hub command: %s", os.Args[2])
	}
}

// defaultSyncDest places hub specs under the local specs directory.
func defaultSyncDest() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(wd, "specs", "hub")
}
