package scriptgraph

import "testing"

func TestValueAsBool(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"bool true", BoolValue(true), true},
		{"bool false", BoolValue(false), false},
		{"number nonzero", NumberValue(3), true},
		{"number zero", NumberValue(0), false},
		{"number negative", NumberValue(-1), true},
		{"string false", StringValue("false"), false},
		{"string true literal", StringValue("true"), true},
		{"string arbitrary", StringValue("hello"), true},
		{"string empty", StringValue(""), true},
	}
	for _, c := range cases {
		if got := c.v.AsBool(); got != c.want {
			t.Errorf("%s: AsBool() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestValueAsNumber(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want float32
	}{
		{"bool true", BoolValue(true), 1},
		{"bool false", BoolValue(false), 0},
		{"number identity", NumberValue(42.5), 42.5},
		{"string parseable", StringValue("3.5"), 3.5},
		{"string unparseable", StringValue("nope"), 0},
		{"string empty", StringValue(""), 0},
	}
	for _, c := range cases {
		if got := c.v.AsNumber(); got != c.want {
			t.Errorf("%s: AsNumber() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestValueAsString(t *testing.T) {
	if got := BoolValue(true).AsString(); got != "true" {
		t.Errorf("BoolValue(true).AsString() = %q, want \"true\"", got)
	}
	if got := BoolValue(false).AsString(); got != "false" {
		t.Errorf("BoolValue(false).AsString() = %q, want \"false\"", got)
	}
	if got := StringValue("x").AsString(); got != "x" {
		t.Errorf("StringValue round trip = %q, want \"x\"", got)
	}
}

// TestValueTrueFalseDistinctLiterals guards against the source bug where
// both polarities rendered as "true" (see DESIGN.md).
func TestValueTrueFalseDistinctLiterals(t *testing.T) {
	if BoolValue(true).AsString() == BoolValue(false).AsString() {
		t.Fatal("true and false must render to distinct string literals")
	}
}

func TestZeroValueFor(t *testing.T) {
	if zeroValueFor(Bool).AsBool() != false {
		t.Error("zeroValueFor(Bool) should be false")
	}
	if zeroValueFor(Number).AsNumber() != 0 {
		t.Error("zeroValueFor(Number) should be 0")
	}
	if zeroValueFor(String).AsString() != "" {
		t.Error("zeroValueFor(String) should be empty")
	}
}
