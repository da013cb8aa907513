package scriptgraph

// Entry is the simplest control-flow node: a single output, no arguments, no
// payload. It exists as a stable place for a graph's entry-name index to
// point at, since an entry name resolves to a node id rather than directly
// to one of that node's outputs.
type Entry struct {
	*NodeBase
	emptyPayload
}

// NewEntry constructs an Entry node at id with one unlinked output labeled Out.
func NewEntry(id uint32) *Entry {
	return &Entry{NodeBase: &NodeBase{
		ID:      id,
		Outputs: []OutputRef{{ID: UnlinkedID, Label: "Out"}},
	}}
}

func (n *Entry) TypeName() string { return "Entry" }

func (n *Entry) Process(inst *Instance) (int, bool) { return 0, true }

func (n *Entry) GetValue(port uint32, inst *Instance) Value { return Value{} }

// Condition branches on a single boolean argument. A branch with no source
// for that argument terminates rather than guessing a polarity.
type Condition struct {
	*NodeBase
	emptyPayload
}

// NewCondition constructs a Condition node with outputs [True, False] and one
// unlinked boolean argument.
func NewCondition(id uint32) *Condition {
	return &Condition{NodeBase: &NodeBase{
		ID:          id,
		AllowsEntry: true,
		Outputs: []OutputRef{
			{ID: UnlinkedID, Label: "True"},
			{ID: UnlinkedID, Label: "False"},
		},
		Args: []ArgRef{{ID: UnlinkedID, Type: Bool, Label: "Condition"}},
	}}
}

func (n *Condition) TypeName() string { return "Condition" }

func (n *Condition) Process(inst *Instance) (int, bool) {
	v, ok := inst.GetValue(n.Args[0])
	if !ok {
		return 0, false
	}
	if v.AsBool() {
		return 0, true
	}
	return 1, true
}

func (n *Condition) GetValue(port uint32, inst *Instance) Value { return Value{} }

// Loop is the one stateful control-flow node (spec.md §4.3): it tracks its
// own iteration count in the instance's per-node scratch cell rather than any
// field on the node itself, since the same node is shared across instances.
//
// Iterations == 0 means unlimited, condition-controlled; the loop then
// terminates only when its Condition argument is present and false, or
// absent (absent with Iterations == 0 terminates on the very first entry,
// since there is nothing left to control continuation).
type Loop struct {
	*NodeBase
	Iterations uint32
}

// NewLoop constructs a Loop node with outputs [Complete, Cycle], one value
// def (Index), and one unlinked boolean Condition argument.
func NewLoop(id uint32) *Loop {
	return &Loop{NodeBase: &NodeBase{
		ID:          id,
		AllowsEntry: true,
		Outputs: []OutputRef{
			{ID: UnlinkedID, Label: "Complete"},
			{ID: UnlinkedID, Label: "Cycle"},
		},
		Args:   []ArgRef{{ID: UnlinkedID, Type: Bool, Label: "Condition"}},
		Values: []ValueDef{{PortID: 0, Type: Number, Label: "Index"}},
	}}
}

func (n *Loop) TypeName() string { return "Loop" }

func (n *Loop) Process(inst *Instance) (int, bool) {
	prev, hadPrev := inst.Scratch(n.ID)
	counter := int64(0)
	if hadPrev {
		counter = prev + 1
	}
	inst.SetScratch(n.ID, counter)

	condArg, condPresent := inst.GetValue(n.Args[0])

	terminate := false
	switch {
	case n.Iterations > 0 && counter >= int64(n.Iterations):
		terminate = true
	case condPresent && !condArg.AsBool():
		terminate = true
	case !condPresent && n.Iterations == 0:
		terminate = true
	}

	if terminate {
		return 0, true
	}

	inst.pushReturn(n.ID)
	if inst.engine != nil {
		inst.engine.cfg.metrics.loopCycle(uintToStr(n.ID))
	}
	return 1, true
}

func (n *Loop) GetValue(port uint32, inst *Instance) Value {
	counter, _ := inst.Scratch(n.ID)
	return NumberValue(float32(counter))
}

func (n *Loop) PayloadSize() int { return 4 }

func (n *Loop) WritePayload(buf []byte, offset *int) {
	writeU32(buf, offset, n.Iterations)
}

func (n *Loop) ReadPayload(buf []byte, offset *int) error {
	v, err := readU32(buf, offset)
	if err != nil {
		return err
	}
	n.Iterations = v
	return nil
}
