package emit

import "testing"

func TestEventZeroValue(t *testing.T) {
	var e Event
	if e.RunID != "" || e.Step != 0 || e.NodeID != "" || e.Msg != "" || e.Meta != nil {
		t.Fatalf("expected zero Event, got %+v", e)
	}
}

func TestEventCarriesNodeLevelFields(t *testing.T) {
	e := Event{
		RunID:  "run-1",
		Step:   3,
		NodeID: "7",
		Msg:    "node_enter",
		Meta:   map[string]interface{}{"type": "Math"},
	}
	if e.NodeID != "7" {
		t.Errorf("NodeID = %q, want 7", e.NodeID)
	}
	if e.Meta["type"] != "Math" {
		t.Errorf("Meta[type] = %v, want Math", e.Meta["type"])
	}
}
