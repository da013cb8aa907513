package emit

import "context"

// NullEmitter discards every event. It's the Engine default (SPEC_FULL.md
// §4.9) so a host that never calls WithEmitter pays no observability cost.
// Value receivers mean the zero value satisfies Emitter directly.
type NullEmitter struct{}

func (NullEmitter) Emit(Event) {}

func (NullEmitter) EmitBatch(context.Context, []Event) error { return nil }

func (NullEmitter) Flush(context.Context) error { return nil }
