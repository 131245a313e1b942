package events

import (
	"testing"
	"time"
)

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	ch := bus.Subscribe()
	defer bus.Unsubscribe(ch)

	bus.Publish(NewEvent(EventCatalogScanStart, "test"))

	select {
	case event := <-ch:
		if event.Type != EventCatalogScanStart {
			t.Errorf("expected EventCatalogScanStart, got %s", event.Type)
		}
		if event.Data != "test" {
			t.Errorf("expected data 'test', got %v", event.Data)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timed out waiting for event")
	}
}

func TestMemoryBusFilter(t *testing.T) {
	bus := NewMemoryBus()
	ch := bus.Subscribe(EventCatalogScanEnd)
	defer bus.Unsubscribe(ch)

	bus.Publish(NewEvent(EventSpecIndexed, "should-be-filtered"))
	bus.Publish(NewEvent(EventCatalogScanEnd, "should-arrive"))

	select {
	case event := <-ch:
		if event.Type != EventCatalogScanEnd {
			t.Errorf("expected EventCatalogScanEnd, got %s", event.Type)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timed out waiting for event")
	}

	// Ensure the filtered event didn't arrive.
	select {
	case event := <-ch:
		t.Errorf("unexpected event: %v", event)
	case <-time.After(50 * time.Millisecond):
		// Good — nothing else arrived.
	}
}

func TestMemoryBusMultipleSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	defer bus.Unsubscribe(ch1)
	defer bus.Unsubscribe(ch2)

	bus.Publish(NewEvent(EventHubFetchStart, "hub"))

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			if event.Type != EventHubFetchStart {
				t.Errorf("expected EventHubFetchStart, got %s", event.Type)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestMemoryBusHistory(t *testing.T) {
	bus := NewMemoryBus()

	bus.Publish(NewEvent(EventSpecIndexed, SpecEventData{Path: "a.promptspec.md"}))
	bus.Publish(NewEvent(EventSpecIndexed, SpecEventData{Path: "b.promptspec.md"}))

	history := bus.History(time.Time{})
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].Type != EventSpecIndexed {
		t.Errorf("history[0].Type = %s", history[0].Type)
	}
}

func TestMemoryBusCounts(t *testing.T) {
	bus := NewMemoryBus()

	bus.Publish(NewEvent(EventSpecIndexed, nil))
	bus.Publish(NewEvent(EventSpecIndexed, nil))
	bus.Publish(NewEvent(EventSpecSkipped, nil))

	counts := bus.Counts()
	if counts[EventSpecIndexed] != 2 {
		t.Errorf("indexed count = %d, want 2", counts[EventSpecIndexed])
	}
	if counts[EventSpecSkipped] != 1 {
		t.Errorf("skipped count = %d, want 1", counts[EventSpecSkipped])
	}
}
