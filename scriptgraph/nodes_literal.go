package scriptgraph

// BooleanLiteral emits a fixed boolean constant from its single value port.
// It has no arguments and no control outputs.
type BooleanLiteral struct {
	*NodeBase
	Const bool
}

func NewBooleanLiteral(id uint32, v bool) *BooleanLiteral {
	return &BooleanLiteral{
		NodeBase: &NodeBase{ID: id, Values: []ValueDef{{PortID: 0, Type: Bool, Label: "Value"}}},
		Const:    v,
	}
}

func (n *BooleanLiteral) TypeName() string { return "BooleanLiteral" }

func (n *BooleanLiteral) Process(inst *Instance) (int, bool) { return 0, false }

func (n *BooleanLiteral) GetValue(port uint32, inst *Instance) Value { return BoolValue(n.Const) }

func (n *BooleanLiteral) PayloadSize() int { return 1 }

func (n *BooleanLiteral) WritePayload(buf []byte, offset *int) {
	writeBool(buf, offset, n.Const)
}

func (n *BooleanLiteral) ReadPayload(buf []byte, offset *int) error {
	v, err := readBool(buf, offset)
	if err != nil {
		return err
	}
	n.Const = v
	return nil
}

// NumberLiteral emits a fixed number constant.
type NumberLiteral struct {
	*NodeBase
	Const float32
}

func NewNumberLiteral(id uint32, v float32) *NumberLiteral {
	return &NumberLiteral{
		NodeBase: &NodeBase{ID: id, Values: []ValueDef{{PortID: 0, Type: Number, Label: "Value"}}},
		Const:    v,
	}
}

func (n *NumberLiteral) TypeName() string { return "NumberLiteral" }

func (n *NumberLiteral) Process(inst *Instance) (int, bool) { return 0, false }

func (n *NumberLiteral) GetValue(port uint32, inst *Instance) Value { return NumberValue(n.Const) }

func (n *NumberLiteral) PayloadSize() int { return 4 }

func (n *NumberLiteral) WritePayload(buf []byte, offset *int) {
	writeF32(buf, offset, n.Const)
}

func (n *NumberLiteral) ReadPayload(buf []byte, offset *int) error {
	v, err := readF32(buf, offset)
	if err != nil {
		return err
	}
	n.Const = v
	return nil
}

// StringLiteral emits a fixed string constant.
type StringLiteral struct {
	*NodeBase
	Const string
}

func NewStringLiteral(id uint32, v string) *StringLiteral {
	return &StringLiteral{
		NodeBase: &NodeBase{ID: id, Values: []ValueDef{{PortID: 0, Type: String, Label: "Value"}}},
		Const:    v,
	}
}

func (n *StringLiteral) TypeName() string { return "StringLiteral" }

func (n *StringLiteral) Process(inst *Instance) (int, bool) { return 0, false }

func (n *StringLiteral) GetValue(port uint32, inst *Instance) Value { return StringValue(n.Const) }

func (n *StringLiteral) PayloadSize() int { return lengthPrefixedStringSize(n.Const) }

func (n *StringLiteral) WritePayload(buf []byte, offset *int) {
	writeLengthPrefixedString(buf, offset, n.Const)
}

func (n *StringLiteral) ReadPayload(buf []byte, offset *int) error {
	v, err := readLengthPrefixedString(buf, offset)
	if err != nil {
		return err
	}
	n.Const = v
	return nil
}
