package scriptgraph

// Node is the uniform per-node contract (spec.md §4.2). Base().AllowsEntry
// marks nodes that another node's output may lead to; Entry nodes are run
// roots and leave it false, and the engine itself never consults the flag.
// Pure nodes (literals, math, comparisons, variable loads) also leave it
// false, have no outputs, and are only ever consulted through GetValue.
//
// Deep inheritance in the original C++ source is flattened here to a narrow
// capability interface (spec.md §9) rather than a closed sum of variants, so
// that a host can register node types of its own alongside the built-in
// catalog (spec.md §4.6).
type Node interface {
	// Process advances control flow. It returns the index into the node's
	// Outputs to follow next, or ok=false to terminate the current branch
	// (spec.md's Option<OutputIndex>). It may mutate the instance: write
	// scratch state, push the return stack, write globals. It may call
	// Instance.GetValue for its own arguments.
	Process(inst *Instance) (next int, ok bool)

	// GetValue produces the value on the given local port, for another node
	// that referenced it as an argument source. It must not change control
	// flow (no Process calls, no return-stack pushes), though it may update
	// a per-node result cache. Always total: a pure node with a missing
	// input still returns a type-appropriate zero value rather than
	// signaling failure — only the engine's ref resolution (Instance.GetValue)
	// can fail, never a node's own GetValue.
	GetValue(port uint32, inst *Instance) Value

	// TypeName is the stable identifier used by the registry and codec.
	TypeName() string

	// Base exposes the common node state (id, name, refs, editor position)
	// that the codec's prologue and the graph container operate on.
	Base() *NodeBase

	// PayloadSize returns the upper bound of this node's type-specific
	// payload tail, for container pre-allocation (spec.md §4.6).
	PayloadSize() int

	// WritePayload appends this node's type-specific state after the common
	// prologue, advancing offset by the number of bytes written.
	WritePayload(buf []byte, offset *int)

	// ReadPayload reads this node's type-specific state, advancing offset.
	// Returns ErrTruncatedPayload if buf is too short.
	ReadPayload(buf []byte, offset *int) error
}

// NodeBase holds the fields every node carries, per spec.md §3: a stable id,
// a human name, whether the node may be entered by control flow, and its
// ordered output/argument/value-def lists. Concrete node types embed
// *NodeBase and get Base() for free; their own fields hold only
// type-specific state (a literal's constant, a loop's configured iteration
// count, a comparison's selected operator).
type NodeBase struct {
	ID          uint32
	Name        string
	AllowsEntry bool

	Outputs []OutputRef
	Args    []ArgRef
	Values  []ValueDef

	// PosX, PosY are editor metadata, ignored by the engine.
	PosX, PosY float32
}

// Base implements the accessor promoted onto every embedding node type.
func (b *NodeBase) Base() *NodeBase { return b }

// emptyPayload is embedded (by value, not pointer) in node types that carry
// no type-specific state beyond the common prologue — Entry and the pure
// flow/compare nodes with no configured constant. It supplies no-op codec
// methods that a type overrides only when it actually has payload to carry.
type emptyPayload struct{}

func (emptyPayload) PayloadSize() int                          { return 0 }
func (emptyPayload) WritePayload(buf []byte, offset *int)      {}
func (emptyPayload) ReadPayload(buf []byte, offset *int) error { return nil }
