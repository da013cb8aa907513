package emit

import "context"

// Emitter receives observability events from an Engine (SPEC_FULL.md §4.9).
// Implementations must not block the engine for long and must not panic;
// a slow or failing backend should log and drop rather than stall a run.
type Emitter interface {
	// Emit sends a single event to the configured backend.
	Emit(event Event)

	// EmitBatch sends multiple events at once, preserving order. Returns
	// an error only on catastrophic, not per-event, failure.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush blocks until any buffered events have been sent. Safe to call
	// more than once.
	Flush(ctx context.Context) error
}
