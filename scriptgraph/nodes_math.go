package scriptgraph

import "math"

// MathOp selects the operator a Math node applies.
type MathOp uint32

const (
	MathAdd MathOp = iota
	MathSubtract
	MathMultiply
	MathDivide
	MathModulo
	MathPow
)

// Math reads two number arguments and emits one number (spec.md §4.3). If
// either argument cannot be fetched the result is 0 regardless of operator;
// the op only runs once both resolve. Divide by zero is not trapped: it
// produces IEEE infinity or NaN like any other float division. Modulo
// truncates both operands to integer before %, and a zero divisor there
// returns 0 rather than propagating a Go panic.
type Math struct {
	*NodeBase
	Op MathOp
}

// NewMath constructs a Math node with two unlinked number arguments and op.
func NewMath(id uint32, op MathOp) *Math {
	return &Math{
		NodeBase: &NodeBase{
			ID: id,
			Args: []ArgRef{
				{ID: UnlinkedID, Type: Number, Label: "A"},
				{ID: UnlinkedID, Type: Number, Label: "B"},
			},
			Values: []ValueDef{{PortID: 0, Type: Number, Label: "Result"}},
		},
		Op: op,
	}
}

func (n *Math) TypeName() string { return "Math" }

func (n *Math) Process(inst *Instance) (int, bool) { return 0, false }

func (n *Math) GetValue(port uint32, inst *Instance) Value {
	av, okA := inst.GetValue(n.Args[0])
	bv, okB := inst.GetValue(n.Args[1])
	if !okA || !okB {
		return NumberValue(0)
	}
	a, b := av.AsNumber(), bv.AsNumber()

	switch n.Op {
	case MathSubtract:
		return NumberValue(a - b)
	case MathMultiply:
		return NumberValue(a * b)
	case MathDivide:
		return NumberValue(a / b)
	case MathModulo:
		bi := int64(b)
		if bi == 0 {
			return NumberValue(0)
		}
		return NumberValue(float32(int64(a) % bi))
	case MathPow:
		return NumberValue(float32(math.Pow(float64(a), float64(b))))
	default:
		return NumberValue(a + b)
	}
}

func (n *Math) PayloadSize() int { return 4 }

func (n *Math) WritePayload(buf []byte, offset *int) {
	writeU32(buf, offset, uint32(n.Op))
}

func (n *Math) ReadPayload(buf []byte, offset *int) error {
	v, err := readU32(buf, offset)
	if err != nil {
		return err
	}
	n.Op = MathOp(v)
	return nil
}
