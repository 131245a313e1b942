package main

import (
	"encoding/json"
	"os"

	"github.com/promptspec/promptspec/internal/config"
	"github.com/promptspec/promptspec/pkg/catalog"
	"github.com/promptspec/promptspec/pkg/protocol"
	"github.com/promptspec/promptspec/pkg/roottext"
	"github.com/promptspec/promptspec/pkg/scanner"
)

// handleRPC implements `promptspec rpc`: serve newline-delimited JSON-RPC
// requests on stdin/stdout until EOF.
func handleRPC() error {
	cfg := loadConfig()
	opts := scanOptions(cfg)

	ix := &catalog.Indexer{ScanOptions: opts}
	if cachePath, err := config.CachePath(); err == nil {
		if cache, err := openCache(cachePath); err == nil {
			ix.Cache = cache
			defer cache.Close()
		}
	}

	h := protocol.NewHandler()

	h.Register(protocol.MethodSpecScan, func(params json.RawMessage) (any, *protocol.Error) {
		text, rpcErr := resolveSpecText(params)
		if rpcErr != nil {
			return nil, rpcErr
		}
		return scanner.ScanWithOptions(text, opts), nil
	})

	h.Register(protocol.MethodSpecRoot, func(params json.RawMessage) (any, *protocol.Error) {
		text, rpcErr := resolveSpecText(params)
		if rpcErr != nil {
			return nil, rpcErr
		}
		prefix, suffix := roottext.Extract(text)
		return protocol.RootResult{Prefix: prefix, Suffix: suffix}, nil
	})

	h.Register(protocol.MethodSpecCascade, func(params json.RawMessage) (any, *protocol.Error) {
		p, rpcErr := protocol.ParseParams[protocol.CascadeParams](params)
		if rpcErr != nil {
			return nil, rpcErr
		}
		return roottext.Cascade(p.Prompts, p.Prefix, p.Suffix), nil
	})

	h.Register(protocol.MethodCatalogList, func(params json.RawMessage) (any, *protocol.Error) {
		p, rpcErr := protocol.ParseParams[protocol.CatalogListParams](params)
		if rpcErr != nil {
			return nil, rpcErr
		}
		dirs := p.Dirs
		if len(dirs) == 0 {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			dirs = cfg.EffectiveSpecsDirs(wd)
		}
		if len(dirs) == 0 {
			return nil, &protocol.Error{
				Code:    protocol.CodeCatalogUnavailable,
				Message: "no spec directories configured",
			}
		}
		entries := ix.ScanDirs(dirs)
		if entries == nil {
			entries = []catalog.Entry{}
		}
		return entries, nil
	})

	return h.Serve(os.Stdin, os.Stdout)
}

// resolveSpecText returns inline text from ScanParams, or reads the named
// file when only a path is given.
func resolveSpecText(params json.RawMessage) (string, *protocol.Error) {
	p, rpcErr := protocol.ParseParams[protocol.ScanParams](params)
	if rpcErr != nil {
		return "", rpcErr
	}
	if p.Text != "" {
		return p.Text, nil
	}
	if p.Path == "" {
		return "", &protocol.Error{
			Code:    protocol.CodeInvalidParams,
			Message: "either text or path is required",
		}
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return "", &protocol.Error{
			Code:    protocol.CodeSpecUnreadable,
			Message: "reading spec: " + err.Error(),
			Data:    map[string]string{"path": p.Path},
		}
	}
	return string(data), nil
}
