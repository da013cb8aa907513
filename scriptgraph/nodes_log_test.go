package scriptgraph

import "testing"

func TestLogForwardsCoercedArgToSink(t *testing.T) {
	g := NewGraph()
	lit := NewNumberLiteral(2, 42)
	_ = g.AddNode(lit)
	logNode := NewLog(1)
	logNode.Args[0] = ArgRef{ID: 2, Type: Number}
	_ = g.AddNode(logNode)
	g.SetEntry("main", 1)

	var got string
	e := New(g, "test", WithLogSink(func(s string) { got = s }))
	inst := e.NewInstance()
	if _, err := e.Run(inst, "main"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := NumberValue(42).AsString(); got != want {
		t.Fatalf("logged %q, want %q", got, want)
	}
}

func TestLogWithNoSinkConfiguredIsNoOp(t *testing.T) {
	g := NewGraph()
	logNode := NewLog(1)
	_ = g.AddNode(logNode)
	g.SetEntry("main", 1)

	e := New(g, "test")
	inst := e.NewInstance()
	if _, err := e.Run(inst, "main"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestLogAlwaysAdvances(t *testing.T) {
	g := NewGraph()
	logNode := NewLog(1)
	_ = g.AddNode(logNode)
	inst := NewInstance(g)

	idx, ok := logNode.Process(inst)
	if !ok || idx != 0 {
		t.Fatalf("Process() = (%d, %v), want (0, true)", idx, ok)
	}
}
