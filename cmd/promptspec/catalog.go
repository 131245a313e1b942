package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/promptspec/promptspec/internal/config"
	"github.com/promptspec/promptspec/pkg/catalog"
	"github.com/promptspec/promptspec/pkg/events"
)

// handleCatalog implements `promptspec catalog [--dir=path]... [--json] [--verbose]`.
func handleCatalog() error {
	args := os.Args[2:]
	cfg := loadConfig()

	var dirs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "--dir=") {
			dirs = append(dirs, strings.TrimPrefix(arg, "--dir="))
		}
	}
	if len(dirs) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		dirs = cfg.EffectiveSpecsDirs(wd)
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no spec directories: pass --dir=path or configure specs_dirs")
	}

	bus := events.NewMemoryBus()
	ix := &catalog.Indexer{Bus: bus, ScanOptions: scanOptions(cfg)}

	if cachePath, err := config.CachePath(); err == nil {
		if cache, err := openCache(cachePath); err == nil {
			ix.Cache = cache
			defer cache.Close()
		}
	}

	entries := ix.ScanDirs(dirs)

	if hasFlag(args, "--json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No specs found.")
	}
	for _, entry := range entries {
		line := fmt.Sprintf("%-24s %s", entry.ShortName(), entry.Title)
		if entry.ExecutionStrategy != "" {
			line += fmt.Sprintf(" [%s]", entry.ExecutionStrategy)
		}
		if len(entry.Variables) > 0 {
			line += fmt.Sprintf(" ({{%s}})", strings.Join(entry.Variables, "}}, {{"))
		}
		fmt.Println(line)
	}

	if hasFlag(args, "--verbose") {
		fmt.Println()
		for _, ev := range bus.History(time.Time{}) {
			fmt.Printf("%s %s", ev.Timestamp.Format(time.TimeOnly), ev.Type)
			if data, ok := ev.Data.(events.SpecEventData); ok {
				fmt.Printf(" %s", data.Path)
				if data.Reason != "" {
					fmt.Printf(" (%s)", data.Reason)
				}
			}
			fmt.Println()
		}
	}
	return nil
}

// openCache opens the catalog cache, tolerating a locked or corrupt file.
func openCache(path string) (*catalog.Cache, error) {
	cache, err := catalog.OpenCache(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: catalog cache unavailable: %v\n", err)
		return nil, err
	}
	return cache, nil
}
