package scriptgraph

import "github.com/jeffm2501/scriptgraph-go/scriptgraph/emit"

// Option is a functional option for configuring an Engine (SPEC_FULL.md
// §4.8). Options are applied in order, so later options win if they target
// the same setting.
//
// Example:
//
//	engine := scriptgraph.New(g, "main.script",
//	    scriptgraph.WithLogSink(func(s string) { fmt.Println(s) }),
//	    scriptgraph.WithEmitter(emit.NewLogEmitter(os.Stdout, false)),
//	    scriptgraph.WithMaxSteps(1000),
//	)
type Option func(*engineConfig)

// engineConfig collects options before they're applied to an Engine.
type engineConfig struct {
	logSink   func(string)
	emitter   emit.Emitter
	metrics   *Metrics
	maxSteps  int
	runIDFunc func() string
}

// WithLogSink installs the function the Log node forwards its coerced
// string argument to (spec.md §6: "a single function from string to void").
// If never set, the Log node is a no-op.
func WithLogSink(sink func(string)) Option {
	return func(cfg *engineConfig) {
		cfg.logSink = sink
	}
}

// WithEmitter installs the observability sink for run/step/node events
// (SPEC_FULL.md §4.9). Default is emit.NullEmitter, which discards events.
func WithEmitter(e emit.Emitter) Option {
	return func(cfg *engineConfig) {
		cfg.emitter = e
	}
}

// WithMetrics installs Prometheus instrumentation (SPEC_FULL.md §4.10).
// Passing nil (the default) disables metrics collection entirely.
func WithMetrics(m *Metrics) Option {
	return func(cfg *engineConfig) {
		cfg.metrics = m
	}
}

// WithMaxSteps bounds the number of internal steps Run will drive an
// instance through before giving up with ErrMaxStepsExceeded. It is an
// ambient safety net against a misauthored unconditional loop; it has no
// effect on Start/Step, each of which always performs exactly one step
// regardless of this setting. Zero (the default) means unlimited, matching
// the Loop node's own "0 iterations means unlimited" convention.
func WithMaxSteps(n int) Option {
	return func(cfg *engineConfig) {
		cfg.maxSteps = n
	}
}

// WithRunIDGenerator overrides how Start derives the run id attached to
// emitted events. The default generates a UUIDv4 per run.
func WithRunIDGenerator(f func() string) Option {
	return func(cfg *engineConfig) {
		cfg.runIDFunc = f
	}
}
