package scriptgraph

// LoadBool reads the boolean global named by its VariableName argument,
// yielding false if the name cannot be resolved or no such global was ever
// set (spec.md §4.3, §3).
type LoadBool struct {
	*NodeBase
	emptyPayload
}

func NewLoadBool(id uint32) *LoadBool {
	return &LoadBool{NodeBase: &NodeBase{
		ID:     id,
		Args:   []ArgRef{{ID: UnlinkedID, Type: String, Label: "VariableName"}},
		Values: []ValueDef{{PortID: 0, Type: Bool, Label: "Value"}},
	}}
}

func (n *LoadBool) TypeName() string { return "LoadBool" }

func (n *LoadBool) Process(inst *Instance) (int, bool) { return 0, false }

func (n *LoadBool) GetValue(port uint32, inst *Instance) Value {
	name := inst.GetValueOrZero(n.Args[0], String).AsString()
	return BoolValue(inst.Bool(name))
}

// SaveBool writes its Value argument, coerced to boolean, into the global
// named by its VariableName argument, then proceeds. A missing VariableName
// resolves to the empty-string global rather than skipping the write.
type SaveBool struct {
	*NodeBase
	emptyPayload
}

func NewSaveBool(id uint32) *SaveBool {
	return &SaveBool{NodeBase: &NodeBase{
		ID:          id,
		AllowsEntry: true,
		Outputs:     []OutputRef{{ID: UnlinkedID, Label: "Out"}},
		Args: []ArgRef{
			{ID: UnlinkedID, Type: String, Label: "VariableName"},
			{ID: UnlinkedID, Type: Bool, Label: "Value"},
		},
	}}
}

func (n *SaveBool) TypeName() string { return "SaveBool" }

func (n *SaveBool) Process(inst *Instance) (int, bool) {
	name := inst.GetValueOrZero(n.Args[0], String).AsString()
	v := inst.GetValueOrZero(n.Args[1], Bool).AsBool()
	inst.SetBool(name, v)
	return 0, true
}

func (n *SaveBool) GetValue(port uint32, inst *Instance) Value { return Value{} }

// LoadNumber reads the number global named by its VariableName argument,
// yielding 0 if unresolved.
type LoadNumber struct {
	*NodeBase
	emptyPayload
}

func NewLoadNumber(id uint32) *LoadNumber {
	return &LoadNumber{NodeBase: &NodeBase{
		ID:     id,
		Args:   []ArgRef{{ID: UnlinkedID, Type: String, Label: "VariableName"}},
		Values: []ValueDef{{PortID: 0, Type: Number, Label: "Value"}},
	}}
}

func (n *LoadNumber) TypeName() string { return "LoadNumber" }

func (n *LoadNumber) Process(inst *Instance) (int, bool) { return 0, false }

func (n *LoadNumber) GetValue(port uint32, inst *Instance) Value {
	name := inst.GetValueOrZero(n.Args[0], String).AsString()
	return NumberValue(inst.Number(name))
}

// SaveNumber writes its Value argument, coerced to number, into the global
// named by its VariableName argument, then proceeds.
type SaveNumber struct {
	*NodeBase
	emptyPayload
}

func NewSaveNumber(id uint32) *SaveNumber {
	return &SaveNumber{NodeBase: &NodeBase{
		ID:          id,
		AllowsEntry: true,
		Outputs:     []OutputRef{{ID: UnlinkedID, Label: "Out"}},
		Args: []ArgRef{
			{ID: UnlinkedID, Type: String, Label: "VariableName"},
			{ID: UnlinkedID, Type: Number, Label: "Value"},
		},
	}}
}

func (n *SaveNumber) TypeName() string { return "SaveNumber" }

func (n *SaveNumber) Process(inst *Instance) (int, bool) {
	name := inst.GetValueOrZero(n.Args[0], String).AsString()
	v := inst.GetValueOrZero(n.Args[1], Number).AsNumber()
	inst.SetNumber(name, v)
	return 0, true
}

func (n *SaveNumber) GetValue(port uint32, inst *Instance) Value { return Value{} }

// LoadString reads the string global named by its VariableName argument,
// yielding "" if unresolved.
type LoadString struct {
	*NodeBase
	emptyPayload
}

func NewLoadString(id uint32) *LoadString {
	return &LoadString{NodeBase: &NodeBase{
		ID:     id,
		Args:   []ArgRef{{ID: UnlinkedID, Type: String, Label: "VariableName"}},
		Values: []ValueDef{{PortID: 0, Type: String, Label: "Value"}},
	}}
}

func (n *LoadString) TypeName() string { return "LoadString" }

func (n *LoadString) Process(inst *Instance) (int, bool) { return 0, false }

func (n *LoadString) GetValue(port uint32, inst *Instance) Value {
	name := inst.GetValueOrZero(n.Args[0], String).AsString()
	return StringValue(inst.String(name))
}

// SaveString writes its Value argument, coerced to string, into the global
// named by its VariableName argument, then proceeds.
type SaveString struct {
	*NodeBase
	emptyPayload
}

func NewSaveString(id uint32) *SaveString {
	return &SaveString{NodeBase: &NodeBase{
		ID:          id,
		AllowsEntry: true,
		Outputs:     []OutputRef{{ID: UnlinkedID, Label: "Out"}},
		Args: []ArgRef{
			{ID: UnlinkedID, Type: String, Label: "VariableName"},
			{ID: UnlinkedID, Type: String, Label: "Value"},
		},
	}}
}

func (n *SaveString) TypeName() string { return "SaveString" }

func (n *SaveString) Process(inst *Instance) (int, bool) {
	name := inst.GetValueOrZero(n.Args[0], String).AsString()
	v := inst.GetValueOrZero(n.Args[1], String).AsString()
	inst.SetString(name, v)
	return 0, true
}

func (n *SaveString) GetValue(port uint32, inst *Instance) Value { return Value{} }
