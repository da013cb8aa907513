package scriptgraph

// BooleanOp selects the operator a BooleanComparison node applies.
type BooleanOp uint32

const (
	BooleanAnd BooleanOp = iota
	BooleanOr
)

// BooleanComparison reads two boolean arguments and emits their AND/OR on a
// single value port. Per spec.md §4.3, a failed argument fetch leaves the
// node's cached result untouched rather than falling back to a default —
// unlike NotComparison and NumberComparison, which both emit false on a
// missing argument.
type BooleanComparison struct {
	*NodeBase
	Op     BooleanOp
	cached Value
}

// NewBooleanComparison constructs a BooleanComparison with two unlinked
// boolean arguments and op, defaulting its cache to false.
func NewBooleanComparison(id uint32, op BooleanOp) *BooleanComparison {
	return &BooleanComparison{
		NodeBase: &NodeBase{
			ID: id,
			Args: []ArgRef{
				{ID: UnlinkedID, Type: Bool, Label: "A"},
				{ID: UnlinkedID, Type: Bool, Label: "B"},
			},
			Values: []ValueDef{{PortID: 0, Type: Bool, Label: "Result"}},
		},
		Op:     op,
		cached: BoolValue(false),
	}
}

func (n *BooleanComparison) TypeName() string { return "BooleanComparison" }

func (n *BooleanComparison) Process(inst *Instance) (int, bool) { return 0, false }

func (n *BooleanComparison) GetValue(port uint32, inst *Instance) Value {
	a, okA := inst.GetValue(n.Args[0])
	b, okB := inst.GetValue(n.Args[1])
	if !okA || !okB {
		return n.cached
	}
	switch n.Op {
	case BooleanOr:
		n.cached = BoolValue(a.AsBool() || b.AsBool())
	default:
		n.cached = BoolValue(a.AsBool() && b.AsBool())
	}
	return n.cached
}

func (n *BooleanComparison) PayloadSize() int { return 4 }

func (n *BooleanComparison) WritePayload(buf []byte, offset *int) {
	writeU32(buf, offset, uint32(n.Op))
}

func (n *BooleanComparison) ReadPayload(buf []byte, offset *int) error {
	v, err := readU32(buf, offset)
	if err != nil {
		return err
	}
	n.Op = BooleanOp(v)
	return nil
}

// NotComparison negates its single boolean argument, emitting false (not a
// cached value) when the argument cannot be fetched.
type NotComparison struct {
	*NodeBase
	emptyPayload
}

// NewNotComparison constructs a NotComparison with one unlinked boolean argument.
func NewNotComparison(id uint32) *NotComparison {
	return &NotComparison{NodeBase: &NodeBase{
		ID:     id,
		Args:   []ArgRef{{ID: UnlinkedID, Type: Bool, Label: "In"}},
		Values: []ValueDef{{PortID: 0, Type: Bool, Label: "Result"}},
	}}
}

func (n *NotComparison) TypeName() string { return "NotComparison" }

func (n *NotComparison) Process(inst *Instance) (int, bool) { return 0, false }

func (n *NotComparison) GetValue(port uint32, inst *Instance) Value {
	v, ok := inst.GetValue(n.Args[0])
	if !ok {
		return BoolValue(false)
	}
	return BoolValue(!v.AsBool())
}

// NumberCompareOp selects the operator a NumberComparison node applies.
type NumberCompareOp uint32

const (
	NumberGT NumberCompareOp = iota
	NumberGTE
	NumberLT
	NumberLTE
	NumberEQ
	NumberNEQ
)

// NumberComparison reads two number arguments and emits a boolean, false if
// either argument cannot be fetched.
type NumberComparison struct {
	*NodeBase
	Op NumberCompareOp
}

// NewNumberComparison constructs a NumberComparison with two unlinked number
// arguments and op.
func NewNumberComparison(id uint32, op NumberCompareOp) *NumberComparison {
	return &NumberComparison{
		NodeBase: &NodeBase{
			ID: id,
			Args: []ArgRef{
				{ID: UnlinkedID, Type: Number, Label: "A"},
				{ID: UnlinkedID, Type: Number, Label: "B"},
			},
			Values: []ValueDef{{PortID: 0, Type: Bool, Label: "Result"}},
		},
		Op: op,
	}
}

func (n *NumberComparison) TypeName() string { return "NumberComparison" }

func (n *NumberComparison) Process(inst *Instance) (int, bool) { return 0, false }

func (n *NumberComparison) GetValue(port uint32, inst *Instance) Value {
	a, okA := inst.GetValue(n.Args[0])
	b, okB := inst.GetValue(n.Args[1])
	if !okA || !okB {
		return BoolValue(false)
	}
	x, y := a.AsNumber(), b.AsNumber()
	switch n.Op {
	case NumberGT:
		return BoolValue(x > y)
	case NumberGTE:
		return BoolValue(x >= y)
	case NumberLT:
		return BoolValue(x < y)
	case NumberLTE:
		return BoolValue(x <= y)
	case NumberNEQ:
		return BoolValue(x != y)
	default:
		return BoolValue(x == y)
	}
}

func (n *NumberComparison) PayloadSize() int { return 4 }

func (n *NumberComparison) WritePayload(buf []byte, offset *int) {
	writeU32(buf, offset, uint32(n.Op))
}

func (n *NumberComparison) ReadPayload(buf []byte, offset *int) error {
	v, err := readU32(buf, offset)
	if err != nil {
		return err
	}
	n.Op = NumberCompareOp(v)
	return nil
}
