package scriptgraph

import "github.com/jeffm2501/scriptgraph-go/scriptgraph/emit"

// Instance is execution state bound to exactly one Graph (spec.md §3's
// ScriptInstance). It is reset on every Start and holds no ownership over
// the graph's nodes — only their ids.
type Instance struct {
	graph  *Graph
	engine *Engine

	current uint32
	running bool

	returnStack []uint32
	scratch     map[uint32]int64

	bools   map[string]bool
	numbers map[string]float32
	strings map[string]string

	runID string
}

// NewInstance binds a fresh, halted instance directly to a graph, with no
// engine attached — the Log node's sink is then always a no-op and no
// events or metrics are emitted. Useful for exercising a single node in
// isolation. Hosts running whole scripts should use Engine.NewInstance.
func NewInstance(graph *Graph) *Instance {
	inst := &Instance{graph: graph}
	inst.reset()
	return inst
}

// reset clears scratch, return stack, and global stores and halts the
// instance — performed at the top of every Start (spec.md §4.5).
func (inst *Instance) reset() {
	if inst.running && inst.engine != nil {
		inst.engine.cfg.metrics.instanceHalted()
	}
	inst.current = UnlinkedID
	inst.running = false
	inst.returnStack = inst.returnStack[:0]
	inst.scratch = make(map[uint32]int64)
	inst.bools = make(map[string]bool)
	inst.numbers = make(map[string]float32)
	inst.strings = make(map[string]string)
}

// Reset is the host-facing equivalent of reset, for discarding an instance
// mid-run without starting a new one (spec.md §5: "implementations should
// expose reset() that clears running, scratch, and return stack").
func (inst *Instance) Reset() { inst.reset() }

// Running reports whether the instance is mid-run.
func (inst *Instance) Running() bool { return inst.running }

// Current returns the currently-executing node id, or UnlinkedID if halted.
func (inst *Instance) Current() uint32 { return inst.current }

// RunID returns the run identifier assigned by the most recent Start, used
// to tag emitted events (SPEC_FULL.md §4.9).
func (inst *Instance) RunID() string { return inst.runID }

// pushReturn pushes a node id onto the return stack; only Loop.Process does
// this, when taking its Cycle branch (spec.md §4.5).
func (inst *Instance) pushReturn(id uint32) {
	inst.returnStack = append(inst.returnStack, id)
}

// popReturn pops the most recently pushed node id, reporting false if the
// stack is empty.
func (inst *Instance) popReturn() (uint32, bool) {
	n := len(inst.returnStack)
	if n == 0 {
		return 0, false
	}
	id := inst.returnStack[n-1]
	inst.returnStack = inst.returnStack[:n-1]
	return id, true
}

// ReturnStackDepth reports the current return-stack depth, exposed for
// invariant checks (spec.md §8 invariant 3).
func (inst *Instance) ReturnStackDepth() int { return len(inst.returnStack) }

// Scratch returns the per-node integer scratch value for id, and whether it
// had been set before (spec.md §3: "the loop uses it as its iteration
// counter; other nodes may reserve it").
func (inst *Instance) Scratch(id uint32) (int64, bool) {
	v, ok := inst.scratch[id]
	return v, ok
}

// SetScratch writes the per-node integer scratch value for id.
func (inst *Instance) SetScratch(id uint32, v int64) {
	inst.scratch[id] = v
}

// Bool reads a boolean global, absent ⇒ false (spec.md §3).
func (inst *Instance) Bool(name string) bool { return inst.bools[name] }

// SetBool writes a boolean global.
func (inst *Instance) SetBool(name string, v bool) { inst.bools[name] = v }

// Number reads a number global, absent ⇒ 0 (spec.md §3).
func (inst *Instance) Number(name string) float32 { return inst.numbers[name] }

// SetNumber writes a number global.
func (inst *Instance) SetNumber(name string, v float32) { inst.numbers[name] = v }

// String reads a string global, absent ⇒ "" (spec.md §3).
func (inst *Instance) String(name string) string { return inst.strings[name] }

// SetString writes a string global.
func (inst *Instance) SetString(name string, v string) { inst.strings[name] = v }

// GetValue is the engine's pure value-fetch primitive (spec.md §4.5): it
// resolves ref to a producing node and asks that node for its ref.ValueID'th
// value. It never calls Process and never mutates control-flow state. It
// reports ok=false when ref is unlinked or does not resolve to an existing
// node — the only way value-fetch can fail; a resolved node's own GetValue
// is always total.
func (inst *Instance) GetValue(ref ArgRef) (Value, bool) {
	inst.emitEvent("node_get_value", uintToStr(inst.current), map[string]interface{}{
		"source_node_id": uintToStr(ref.ID),
		"port":           ref.ValueID,
	})
	if ref.Unlinked() {
		return Value{}, false
	}
	n, ok := inst.graph.Node(ref.ID)
	if !ok {
		return Value{}, false
	}
	return n.GetValue(ref.ValueID, inst), true
}

// emitEvent is a no-op unless this instance has an engine attached with a
// configured emitter (spec.md §6: events are best-effort and never block).
func (inst *Instance) emitEvent(msg string, nodeID string, meta map[string]interface{}) {
	if inst.engine == nil {
		return
	}
	inst.engine.cfg.emitter.Emit(emit.Event{RunID: inst.runID, NodeID: nodeID, Msg: msg, Meta: meta})
}

// logSink returns the Log node's installed sink, or a no-op if this
// instance has no engine attached or the engine never configured one
// (spec.md §6: "If unset, the node is a no-op").
func (inst *Instance) logSink() func(string) {
	if inst.engine == nil || inst.engine.cfg.logSink == nil {
		return func(string) {}
	}
	return inst.engine.cfg.logSink
}

// GetValueOrZero is GetValue with spec.md §7's local runtime-failure
// handling already applied: a missing source yields the zero value of t
// rather than requiring every call site to branch on ok.
func (inst *Instance) GetValueOrZero(ref ArgRef, t ValueType) Value {
	v, ok := inst.GetValue(ref)
	if !ok {
		return zeroValueFor(t)
	}
	return v
}
