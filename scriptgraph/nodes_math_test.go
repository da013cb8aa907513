package scriptgraph

import (
	"math"
	"testing"
)

func newMathOperands(t *testing.T, g *Graph, a, b float32) (ArgRef, ArgRef) {
	t.Helper()
	litA := NewNumberLiteral(100, a)
	litB := NewNumberLiteral(101, b)
	_ = g.AddNode(litA)
	_ = g.AddNode(litB)
	return ArgRef{ID: 100, Type: Number}, ArgRef{ID: 101, Type: Number}
}

func TestMathOperators(t *testing.T) {
	g := NewGraph()
	argA, argB := newMathOperands(t, g, 6, 4)
	inst := NewInstance(g)

	cases := []struct {
		op   MathOp
		want float32
	}{
		{MathAdd, 10},
		{MathSubtract, 2},
		{MathMultiply, 24},
		{MathDivide, 1.5},
		{MathModulo, 2},
	}
	for i, c := range cases {
		m := NewMath(uint32(10+i), c.op)
		m.Args[0], m.Args[1] = argA, argB
		_ = g.AddNode(m)

		if got := m.GetValue(0, inst).AsNumber(); got != c.want {
			t.Errorf("op %d: 6 op 4 = %v, want %v", c.op, got, c.want)
		}
	}
}

func TestMathPow(t *testing.T) {
	g := NewGraph()
	argA, argB := newMathOperands(t, g, 2, 10)
	inst := NewInstance(g)

	m := NewMath(1, MathPow)
	m.Args[0], m.Args[1] = argA, argB
	_ = g.AddNode(m)

	if got := m.GetValue(0, inst).AsNumber(); got != 1024 {
		t.Fatalf("2^10 = %v, want 1024", got)
	}
}

func TestMathDivideByZeroYieldsInfinity(t *testing.T) {
	g := NewGraph()
	argA, argB := newMathOperands(t, g, 1, 0)
	inst := NewInstance(g)

	m := NewMath(1, MathDivide)
	m.Args[0], m.Args[1] = argA, argB
	_ = g.AddNode(m)

	got := m.GetValue(0, inst).AsNumber()
	if !math.IsInf(float64(got), 1) {
		t.Fatalf("1/0 = %v, want +Inf", got)
	}
}

func TestMathModuloByZeroReturnsZero(t *testing.T) {
	g := NewGraph()
	argA, argB := newMathOperands(t, g, 7, 0)
	inst := NewInstance(g)

	m := NewMath(1, MathModulo)
	m.Args[0], m.Args[1] = argA, argB
	_ = g.AddNode(m)

	if got := m.GetValue(0, inst).AsNumber(); got != 0 {
		t.Fatalf("7 %% 0 = %v, want 0", got)
	}
}

func TestMathMissingArgTreatedAsZero(t *testing.T) {
	g := NewGraph()
	m := NewMath(1, MathAdd)
	_ = g.AddNode(m)
	inst := NewInstance(g)

	if got := m.GetValue(0, inst).AsNumber(); got != 0 {
		t.Fatalf("Add(missing, missing) = %v, want 0", got)
	}
}

// TestMathOneArgUnresolvedYieldsZero checks the all-or-nothing rule on an
// asymmetric operator, where per-argument zero-substitution and a genuinely
// missing argument would otherwise be distinguishable: Subtract with only
// B linked must not fall back to 0-b.
func TestMathOneArgUnresolvedYieldsZero(t *testing.T) {
	g := NewGraph()
	_, argB := newMathOperands(t, g, 0, 4)
	inst := NewInstance(g)

	m := NewMath(1, MathSubtract)
	m.Args[1] = argB
	_ = g.AddNode(m)

	if got := m.GetValue(0, inst).AsNumber(); got != 0 {
		t.Fatalf("Subtract(missing, 4) = %v, want 0", got)
	}
}

func TestMathDivideMissingArgYieldsZeroNotInfinity(t *testing.T) {
	g := NewGraph()
	argA, _ := newMathOperands(t, g, 1, 0)
	inst := NewInstance(g)

	m := NewMath(1, MathDivide)
	m.Args[0] = argA
	_ = g.AddNode(m)

	if got := m.GetValue(0, inst).AsNumber(); got != 0 {
		t.Fatalf("Divide(1, missing) = %v, want 0", got)
	}
}
