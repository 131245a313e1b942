package events

import "time"

// EventType identifies the kind of event emitted while scanning specs,
// indexing the catalog, or syncing from the spec hub.
type EventType string

const (
	EventScanComplete EventType = "scan.complete"

	EventCatalogScanStart EventType = "catalog.scan.start"
	EventSpecIndexed      EventType = "catalog.spec.indexed"
	EventSpecSkipped      EventType = "catalog.spec.skipped"
	EventCatalogScanEnd   EventType = "catalog.scan.end"

	EventHubFetchStart  EventType = "hub.fetch.start"
	EventHubSpecFetched EventType = "hub.spec.fetched"
	EventHubFetchEnd    EventType = "hub.fetch.end"
)

// Event is a single progress or lifecycle notification.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

// NewEvent creates an Event stamped with the current time.
func NewEvent(typ EventType, data any) Event {
	return Event{Type: typ, Timestamp: time.Now(), Data: data}
}

// SpecEventData carries per-spec details for catalog and hub events.
type SpecEventData struct {
	Path   string `json:"path,omitempty"`
	Title  string `json:"title,omitempty"`
	Reason string `json:"reason,omitempty"` // only for skip events
}

// ScanEventData summarizes a directory scan.
type ScanEventData struct {
	Dirs  []string `json:"dirs,omitempty"`
	Count int      `json:"count"`
}
