package kafka

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewOrderEvent(t *testing.T) {
	before := time.Now()
	event := NewOrderEvent(EventTypeOrderCreated, 42, 7, "active", map[string]interface{}{"lines": 2})

	if event.EventID == "" {
		t.Fatal("expected generated event id")
	}
	if event.EventType != EventTypeOrderCreated {
		t.Fatalf("expected %s, got %s", EventTypeOrderCreated, event.EventType)
	}
	if event.OrderID != 42 || event.UserID != 7 || event.Status != "active" {
		t.Fatalf("unexpected event payload: %+v", event)
	}
	if event.Timestamp.Before(before) {
		t.Fatal("expected timestamp to be set")
	}

	other := NewOrderEvent(EventTypeOrderDeleted, 42, 0, "", nil)
	if other.EventID == event.EventID {
		t.Fatal("expected unique event ids")
	}
}

func TestOrderEventJSONShape(t *testing.T) {
	event := NewOrderEvent(EventTypeOrderUpdated, 1, 2, "complete", nil)

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}

	for _, key := range []string{"event_id", "event_type", "order_id", "timestamp"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("expected %q in event json, got %s", key, data)
		}
	}
	if _, ok := decoded["metadata"]; ok {
		t.Fatal("empty metadata must be omitted")
	}
}
