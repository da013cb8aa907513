package scriptgraph

// Log forwards its single argument, coerced to a string, to the engine's
// installed sink (see WithLogSink) and proceeds through its single output.
// A missing argument logs the empty string rather than skipping the sink
// call, since the node still has to advance control flow either way.
type Log struct {
	*NodeBase
	emptyPayload
}

// NewLog constructs a Log node with one unlinked argument and one output.
func NewLog(id uint32) *Log {
	return &Log{NodeBase: &NodeBase{
		ID:          id,
		AllowsEntry: true,
		Outputs:     []OutputRef{{ID: UnlinkedID, Label: "Out"}},
		Args:        []ArgRef{{ID: UnlinkedID, Type: String, Label: "Message"}},
	}}
}

func (n *Log) TypeName() string { return "Log" }

func (n *Log) Process(inst *Instance) (int, bool) {
	msg := inst.GetValueOrZero(n.Args[0], String).AsString()
	inst.logSink()(msg)
	return 0, true
}

func (n *Log) GetValue(port uint32, inst *Instance) Value { return Value{} }
