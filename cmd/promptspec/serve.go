package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/promptspec/promptspec/internal/config"
	"github.com/promptspec/promptspec/internal/inspector"
	"github.com/promptspec/promptspec/pkg/catalog"
	"github.com/promptspec/promptspec/pkg/events"
)

// handleServe implements `promptspec serve [--port=n]`.
func handleServe() error {
	cfg := loadConfig()

	port := cfg.Inspector.Port
	for _, arg := range os.Args[2:] {
		if strings.HasPrefix(arg, "--port=") {
			p, err := strconv.Atoi(strings.TrimPrefix(arg, "--port="))
			if err != nil || p <= 0 {
				return fmt.Errorf("invalid port: %s", arg)
			}
			port = p
		}
	}

	bus := events.NewMemoryBus()
	ix := &catalog.Indexer{Bus: bus, ScanOptions: scanOptions(cfg)}
	if cachePath, err := config.CachePath(); err == nil {
		if cache, err := openCache(cachePath); err == nil {
			ix.Cache = cache
			defer cache.Close()
		}
	}

	srv := inspector.New(bus, ix, cfg)
	fmt.Fprintf(os.Stderr, "Inspector running at http://localhost:%d\n", port)
	return srv.Start(port)
}
