// Package emit provides pluggable observability for scriptgraph's engine
// (SPEC_FULL.md §4.9): a small Event shape and an Emitter interface that
// run/step/node transitions are reported through.
package emit

// Event is one observability record emitted during a run. Msg names the
// occasion — "run_start", "node_enter", "node_get_value", "run_complete",
// "run_error" — rather than splitting into one struct per occasion, so a
// single Emitter method handles all of them.
type Event struct {
	// RunID identifies the Instance run that produced this event, assigned
	// by Engine.Start.
	RunID string

	// Step is a step number within the run, as set by whoever builds the
	// event. The scriptgraph engine does not fill it in: every event it
	// emits, node-level ones included, carries zero here.
	Step int

	// NodeID is the node that produced this event, formatted as a decimal
	// string. Empty for run-level events.
	NodeID string

	// Msg names the occasion.
	Msg string

	// Meta carries occasion-specific detail, e.g. {"error": err.Error()}
	// on run_error.
	Meta map[string]interface{}
}
