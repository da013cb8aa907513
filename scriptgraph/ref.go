package scriptgraph

// UnlinkedID is the sentinel node id meaning "no target" — u32::MAX in
// spec.md's wire vocabulary. Node ids and refs are uint32 throughout to
// match the persisted container layout (spec.md §4.6).
const UnlinkedID uint32 = 0xFFFFFFFF

// OutputRef is a control-flow edge from one node to another, named for the
// editor (spec.md's NodeRef). An output ref with ID == UnlinkedID means the
// editor never connected that output.
type OutputRef struct {
	ID    uint32
	Label string
}

// Unlinked reports whether this output has no target.
func (r OutputRef) Unlinked() bool { return r.ID == UnlinkedID }

// ArgRef is a typed value input port: a reference to another node's value
// def, naming which port of that node to read (spec.md's ValueRef).
type ArgRef struct {
	ID      uint32
	ValueID uint32
	Type    ValueType
	Label   string
}

// Unlinked reports whether this argument has no source.
func (r ArgRef) Unlinked() bool { return r.ID == UnlinkedID }

// ValueDef declares one value output a node may produce on demand
// (spec.md's ValueDef): its local port id, its type, and a label for the
// editor.
type ValueDef struct {
	PortID uint32
	Type   ValueType
	Label  string
}
