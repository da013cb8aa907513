package scriptgraph

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/jeffm2501/scriptgraph-go/scriptgraph/emit"
)

// Engine binds a Graph to its ambient configuration (log sink, event
// emitter, metrics, step guard) and mints Instances against it. The Graph
// and its Engine are process-wide, read-mostly objects; each run gets its
// own Instance (spec.md §5: instances don't share mutable node caches
// safely across goroutines, but a single Engine can mint as many sequential
// Instances as a host needs).
type Engine struct {
	graph *Graph
	name  string
	cfg   engineConfig
}

// New constructs an Engine over graph. name identifies the graph in emitted
// events and the "graph" metrics label — hosts juggling several loaded
// scripts should pass something stable like the script's file name.
func New(graph *Graph, name string, opts ...Option) *Engine {
	cfg := engineConfig{
		emitter:   emit.NullEmitter{},
		runIDFunc: defaultRunID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{graph: graph, name: name, cfg: cfg}
}

// Graph returns the bound graph.
func (e *Engine) Graph() *Graph { return e.graph }

// NewInstance mints a fresh, halted instance bound to this engine's graph
// and configuration.
func (e *Engine) NewInstance() *Instance {
	inst := &Instance{graph: e.graph, engine: e}
	inst.reset()
	return inst
}

// defaultRunID generates a UUIDv4-shaped run id without importing the uuid
// package at this call site (engine.go has no need of its parsing/formatting
// surface) — see store/ for where google/uuid is used to tag each saved
// script revision. Kept dependency-free here deliberately: a run id is a
// throwaway correlation token, not a value a host ever parses back.
func defaultRunID() string {
	var buf [16]byte
	_, _ = rand.Read(buf[:])
	buf[6] = (buf[6] & 0x0f) | 0x40
	buf[8] = (buf[8] & 0x3f) | 0x80
	return hex.EncodeToString(buf[:4]) + "-" + hex.EncodeToString(buf[4:6]) + "-" +
		hex.EncodeToString(buf[6:8]) + "-" + hex.EncodeToString(buf[8:10]) + "-" +
		hex.EncodeToString(buf[10:])
}

// Start resets the instance (scratch, return stack, global stores all
// cleared) and begins a run at the named entry point (spec.md §4.5). It
// performs exactly one Step and returns that step's result. Returns
// ErrEntryNotFound if name isn't registered.
func (e *Engine) Start(inst *Instance, entryName string) (Status, error) {
	inst.reset()

	id, ok := e.graph.Entry(entryName)
	if !ok {
		e.cfg.emitter.Emit(emit.Event{Msg: "run_error", Meta: map[string]interface{}{"error": ErrEntryNotFound.Error()}})
		return Complete, ErrEntryNotFound
	}
	if _, ok := e.graph.Node(id); !ok {
		e.cfg.emitter.Emit(emit.Event{Msg: "run_error", Meta: map[string]interface{}{"error": ErrEntryNotFound.Error()}})
		return Complete, ErrEntryNotFound
	}

	inst.runID = e.cfg.runIDFunc()
	inst.current = id
	inst.running = true

	e.cfg.metrics.instanceStarted()
	e.cfg.emitter.Emit(emit.Event{RunID: inst.runID, NodeID: uintToStr(id), Msg: "run_start"})

	status, _ := e.step(inst)
	return status, nil
}

// Step calls Process on the current node and advances per spec.md §4.5's
// rules, returning Complete if not running. It never resets state and never
// looks up an entry point — only Start does that.
func (e *Engine) Step(inst *Instance) Status {
	status, _ := e.step(inst)
	return status
}

// step is the shared implementation behind Start's first step and every
// subsequent Step call.
func (e *Engine) step(inst *Instance) (Status, error) {
	if !inst.running {
		return Complete, nil
	}

	n, ok := e.graph.Node(inst.current)
	if !ok {
		inst.running = false
		inst.current = UnlinkedID
		e.cfg.metrics.instanceHalted()
		return Complete, nil
	}

	e.cfg.metrics.step(e.name)
	e.cfg.metrics.nodeProcessed(n.TypeName())
	e.cfg.emitter.Emit(emit.Event{RunID: inst.runID, NodeID: uintToStr(n.Base().ID), Msg: "node_enter"})

	outIdx, advanced := n.Process(inst)

	var next OutputRef
	haveNext := false
	if advanced {
		outs := n.Base().Outputs
		if outIdx >= 0 && outIdx < len(outs) {
			next = outs[outIdx]
			haveNext = !next.Unlinked()
		}
	}

	if !haveNext {
		if popped, ok := inst.popReturn(); ok {
			inst.current = popped
			return Incomplete, nil
		}
		inst.current = UnlinkedID
		inst.running = false
		e.cfg.metrics.instanceHalted()
		e.cfg.emitter.Emit(emit.Event{RunID: inst.runID, Msg: "run_complete"})
		return Complete, nil
	}

	inst.current = next.ID
	return Incomplete, nil
}

// Run drives Start then Step to completion. If WithMaxSteps was configured
// and exceeded before the instance halts on its own, it returns
// ErrMaxStepsExceeded with the instance left running — callers may inspect
// or Reset it.
func (e *Engine) Run(inst *Instance, entryName string) (Status, error) {
	status, err := e.Start(inst, entryName)
	if err != nil {
		return status, err
	}
	steps := 1
	for status == Incomplete {
		if e.cfg.maxSteps > 0 && steps >= e.cfg.maxSteps {
			e.cfg.emitter.Emit(emit.Event{RunID: inst.runID, Msg: "run_error", Meta: map[string]interface{}{"error": ErrMaxStepsExceeded.Error()}})
			return status, ErrMaxStepsExceeded
		}
		status = e.Step(inst)
		steps++
	}
	return status, nil
}

// Status is the result of Start/Step/Run (spec.md §4.5's
// Incomplete/Complete/Error).
type Status int

const (
	// Complete means the instance halted: either it ran off the graph with
	// an empty return stack, or it was not running when Step was called.
	Complete Status = iota
	// Incomplete means a next node was determined; more steps remain.
	Incomplete
)

func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "incomplete"
}
