package emit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogEmitterTextMode(t *testing.T) {
	var buf bytes.Buffer
	e := NewLogEmitter(&buf, false)

	e.Emit(Event{RunID: "run-1", Step: 1, NodeID: "3", Msg: "node_enter", Meta: map[string]interface{}{"type": "Math"}})

	output := buf.String()
	for _, want := range []string{"run-1", "node_enter", "3", "type"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestLogEmitterJSONMode(t *testing.T) {
	var buf bytes.Buffer
	e := NewLogEmitter(&buf, true)

	e.Emit(Event{RunID: "run-1", Step: 2, NodeID: "5", Msg: "run_complete"})

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, buf.String())
	}
	if parsed["runID"] != "run-1" || parsed["msg"] != "run_complete" {
		t.Errorf("unexpected parsed event: %+v", parsed)
	}
}

func TestLogEmitterMultipleEventsOneLineEach(t *testing.T) {
	var buf bytes.Buffer
	e := NewLogEmitter(&buf, true)

	e.Emit(Event{RunID: "run-1", Msg: "run_start"})
	e.Emit(Event{RunID: "run-1", Msg: "run_complete"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}

func TestLogEmitterSatisfiesEmitter(t *testing.T) {
	var buf bytes.Buffer
	var _ Emitter = NewLogEmitter(&buf, false)
}
