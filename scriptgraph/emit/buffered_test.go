package emit

import "testing"

func TestBufferedEmitterStoresEventsByRun(t *testing.T) {
	e := NewBufferedEmitter()
	e.Emit(Event{RunID: "run-1", Msg: "run_start"})
	e.Emit(Event{RunID: "run-2", Msg: "run_start"})
	e.Emit(Event{RunID: "run-1", Msg: "run_complete"})

	h1 := e.GetHistory("run-1")
	h2 := e.GetHistory("run-2")
	if len(h1) != 2 {
		t.Fatalf("expected 2 events for run-1, got %d", len(h1))
	}
	if len(h2) != 1 {
		t.Fatalf("expected 1 event for run-2, got %d", len(h2))
	}
}

func TestBufferedEmitterGetHistoryUnknownRun(t *testing.T) {
	e := NewBufferedEmitter()
	if h := e.GetHistory("nope"); len(h) != 0 {
		t.Fatalf("expected empty history, got %v", h)
	}
}

func TestBufferedEmitterFilterByNodeID(t *testing.T) {
	e := NewBufferedEmitter()
	e.Emit(Event{RunID: "run-1", NodeID: "3", Msg: "node_enter"})
	e.Emit(Event{RunID: "run-1", NodeID: "7", Msg: "node_enter"})

	filtered := e.GetHistoryWithFilter("run-1", HistoryFilter{NodeID: "3"})
	if len(filtered) != 1 || filtered[0].NodeID != "3" {
		t.Fatalf("expected single event for node 3, got %+v", filtered)
	}
}

func TestBufferedEmitterFilterByStepRange(t *testing.T) {
	e := NewBufferedEmitter()
	for step := 1; step <= 5; step++ {
		e.Emit(Event{RunID: "run-1", Step: step, Msg: "node_enter"})
	}
	min, max := 2, 3
	filtered := e.GetHistoryWithFilter("run-1", HistoryFilter{MinStep: &min, MaxStep: &max})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 events in [2,3], got %d", len(filtered))
	}
}

func TestBufferedEmitterClear(t *testing.T) {
	e := NewBufferedEmitter()
	e.Emit(Event{RunID: "run-1", Msg: "run_start"})
	e.Emit(Event{RunID: "run-2", Msg: "run_start"})

	e.Clear("run-1")
	if len(e.GetHistory("run-1")) != 0 {
		t.Fatal("expected run-1 history cleared")
	}
	if len(e.GetHistory("run-2")) != 1 {
		t.Fatal("expected run-2 history untouched")
	}

	e.Clear("")
	if len(e.GetHistory("run-2")) != 0 {
		t.Fatal("expected all history cleared")
	}
}

func TestBufferedEmitterSatisfiesEmitter(t *testing.T) {
	var _ Emitter = NewBufferedEmitter()
}
