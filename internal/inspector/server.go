// Package inspector serves a read-only HTTP view of the local spec catalog
// for editor plugins and browser tooling: catalog listings, per-spec scan
// results, and a live event stream.
package inspector

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/promptspec/promptspec/internal/config"
	"github.com/promptspec/promptspec/pkg/catalog"
	"github.com/promptspec/promptspec/pkg/events"
	"github.com/promptspec/promptspec/pkg/roottext"
	"github.com/promptspec/promptspec/pkg/scanner"
)

// Server is the inspector HTTP server.
type Server struct {
	bus       events.EventBus
	indexer   *catalog.Indexer
	cfg       config.Config
	mux       *http.ServeMux
	startTime time.Time

	sseClients map[*sseClient]bool
	sseMu      sync.Mutex
}

// sseClient represents a connected event-stream client.
type sseClient struct {
	send chan []byte
}

// New creates a new inspector server.
func New(bus events.EventBus, indexer *catalog.Indexer, cfg config.Config) *Server {
	s := &Server{
		bus:        bus,
		indexer:    indexer,
		cfg:        cfg,
		mux:        http.NewServeMux(),
		startTime:  time.Now(),
		sseClients: make(map[*sseClient]bool),
	}

	s.mux.HandleFunc("/api/status", s.handleStatus)
	s.mux.HandleFunc("/api/catalog", s.handleCatalog)
	s.mux.HandleFunc("/api/spec", s.handleSpec)
	s.mux.HandleFunc("/events", s.handleEvents)

	return s
}

// Start begins serving the inspector on the given port.
func (s *Server) Start(port int) error {
	ch := s.bus.Subscribe()
	go s.broadcastEvents(ch)

	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, s.mux)
}

// StartAsync starts the server in a goroutine and returns immediately.
func (s *Server) StartAsync(port int) {
	ch := s.bus.Subscribe()
	go s.broadcastEvents(ch)

	go func() {
		addr := fmt.Sprintf(":%d", port)
		http.ListenAndServe(addr, s.mux)
	}()
}

func (s *Server) broadcastEvents(ch <-chan events.Event) {
	for ev := range ch {
		data, err := json.Marshal(ev)
		if err != nil {
			continue
		}

		s.sseMu.Lock()
		for client := range s.sseClients {
			select {
			case client.send <- data:
			default:
				// Client is slow, drop the event.
			}
		}
		s.sseMu.Unlock()
	}
}

// handleEvents streams bus events as Server-Sent Events. SSE works in all
// browsers and needs no extra dependency.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	client := &sseClient{send: make(chan []byte, 64)}

	s.sseMu.Lock()
	s.sseClients[client] = true
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, client)
		s.sseMu.Unlock()
	}()

	// Send existing history as initial state.
	for _, ev := range s.bus.History(time.Time{}) {
		data, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
	}
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-client.send:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	counts := s.bus.Counts()
	writeJSON(w, map[string]any{
		"uptime":        time.Since(s.startTime).String(),
		"specs_indexed": counts[events.EventSpecIndexed],
		"specs_skipped": counts[events.EventSpecSkipped],
		"hub_fetched":   counts[events.EventHubSpecFetched],
		"specs_dirs":    s.specsDirs(),
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	entries := s.indexer.ScanDirs(s.specsDirs())
	if entries == nil {
		entries = []catalog.Entry{}
	}
	writeJSON(w, entries)
}

// handleSpec scans a single spec file and returns its metadata plus the
// extracted root text.
func (s *Server) handleSpec(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path query parameter required", http.StatusBadRequest)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	text := string(data)
	meta := scanner.ScanWithOptions(text, s.indexer.ScanOptions)
	prefix, suffix := roottext.Extract(text)

	writeJSON(w, map[string]any{
		"path":        path,
		"metadata":    meta,
		"root_prefix": prefix,
		"root_suffix": suffix,
	})
}

func (s *Server) specsDirs() []string {
	wd, err := os.Getwd()
	if err != nil {
		return s.cfg.SpecsDirs
	}
	return s.cfg.EffectiveSpecsDirs(wd)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(data)
}
