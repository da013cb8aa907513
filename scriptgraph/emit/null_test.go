package emit

import "testing"

func TestNullEmitterDiscardsEvents(t *testing.T) {
	var e NullEmitter
	e.Emit(Event{RunID: "run-1", Msg: "run_start"})
	e.Emit(Event{RunID: "run-1", Msg: "node_enter", Meta: map[string]interface{}{"x": 1}})
	if err := e.EmitBatch(nil, []Event{{Msg: "node_enter"}}); err != nil {
		t.Fatalf("EmitBatch returned error: %v", err)
	}
	if err := e.Flush(nil); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
}

func TestNullEmitterSatisfiesEmitter(t *testing.T) {
	var _ Emitter = NullEmitter{}
}
