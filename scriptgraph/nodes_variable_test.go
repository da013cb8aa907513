package scriptgraph

import "testing"

func TestSaveLoadBoolRoundTrip(t *testing.T) {
	g := NewGraph()
	name := NewStringLiteral(10, "flag")
	value := NewBooleanLiteral(11, true)
	_ = g.AddNode(name)
	_ = g.AddNode(value)

	save := NewSaveBool(1)
	save.Args[0] = ArgRef{ID: 10, Type: String}
	save.Args[1] = ArgRef{ID: 11, Type: Bool}
	_ = g.AddNode(save)

	load := NewLoadBool(2)
	load.Args[0] = ArgRef{ID: 10, Type: String}
	_ = g.AddNode(load)

	inst := NewInstance(g)
	save.Process(inst)

	if got := load.GetValue(0, inst); got.AsBool() != true {
		t.Fatalf("LoadBool after SaveBool = %v, want true", got.AsBool())
	}
}

func TestLoadBoolUnsetVariableYieldsFalse(t *testing.T) {
	g := NewGraph()
	name := NewStringLiteral(10, "never-set")
	_ = g.AddNode(name)
	load := NewLoadBool(1)
	load.Args[0] = ArgRef{ID: 10, Type: String}
	_ = g.AddNode(load)
	inst := NewInstance(g)

	if got := load.GetValue(0, inst); got.AsBool() != false {
		t.Fatalf("LoadBool(unset) = %v, want false", got.AsBool())
	}
}

func TestSaveLoadNumberRoundTrip(t *testing.T) {
	g := NewGraph()
	name := NewStringLiteral(10, "count")
	value := NewNumberLiteral(11, 7)
	_ = g.AddNode(name)
	_ = g.AddNode(value)

	save := NewSaveNumber(1)
	save.Args[0] = ArgRef{ID: 10, Type: String}
	save.Args[1] = ArgRef{ID: 11, Type: Number}
	_ = g.AddNode(save)

	load := NewLoadNumber(2)
	load.Args[0] = ArgRef{ID: 10, Type: String}
	_ = g.AddNode(load)

	inst := NewInstance(g)
	save.Process(inst)

	if got := load.GetValue(0, inst); got.AsNumber() != 7 {
		t.Fatalf("LoadNumber after SaveNumber = %v, want 7", got.AsNumber())
	}
}

func TestSaveLoadStringRoundTrip(t *testing.T) {
	g := NewGraph()
	name := NewStringLiteral(10, "label")
	value := NewStringLiteral(11, "hello")
	_ = g.AddNode(name)
	_ = g.AddNode(value)

	save := NewSaveString(1)
	save.Args[0] = ArgRef{ID: 10, Type: String}
	save.Args[1] = ArgRef{ID: 11, Type: String}
	_ = g.AddNode(save)

	load := NewLoadString(2)
	load.Args[0] = ArgRef{ID: 10, Type: String}
	_ = g.AddNode(load)

	inst := NewInstance(g)
	save.Process(inst)

	if got := load.GetValue(0, inst); got.AsString() != "hello" {
		t.Fatalf("LoadString after SaveString = %q, want \"hello\"", got.AsString())
	}
}

func TestLoadStringUnsetVariableYieldsEmpty(t *testing.T) {
	g := NewGraph()
	load := NewLoadString(1)
	_ = g.AddNode(load)
	inst := NewInstance(g)

	if got := load.GetValue(0, inst); got.AsString() != "" {
		t.Fatalf("LoadString(unset) = %q, want empty", got.AsString())
	}
}

func TestSaveNodesAlwaysAdvance(t *testing.T) {
	g := NewGraph()
	for _, n := range []Node{NewSaveBool(1), NewSaveNumber(2), NewSaveString(3)} {
		_ = g.AddNode(n)
		inst := NewInstance(g)
		idx, ok := n.Process(inst)
		if !ok || idx != 0 {
			t.Errorf("%s.Process() = (%d, %v), want (0, true)", n.TypeName(), idx, ok)
		}
	}
}
