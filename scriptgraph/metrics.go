package scriptgraph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics wraps Prometheus instrumentation for engine activity
// (SPEC_FULL.md §4.10). A nil *Metrics is always safe to call methods on —
// every method is a no-op when the receiver is nil, so Engine never has to
// branch on whether metrics were configured.
type Metrics struct {
	scriptsRunning  prometheus.Gauge
	stepsTotal      *prometheus.CounterVec
	nodeProcess     *prometheus.CounterVec
	loopCyclesTotal *prometheus.CounterVec
}

// NewMetrics creates and registers scriptgraph's engine metrics with the
// given registry. Pass nil to use prometheus.DefaultRegisterer.
//
// Metrics, all namespaced "scriptgraph":
//   - scripts_running (gauge): instances currently Start'd and not yet halted.
//   - steps_total{graph} (counter): cumulative Step calls.
//   - node_process_total{node_type} (counter): Process calls per built-in
//     type, useful for seeing which catalog entries a host's scripts
//     actually exercise.
//   - loop_cycles_total{node_id} (counter): Cycle branches taken by a Loop
//     node — the Prometheus-side probe for spec.md §8 invariant 3.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		scriptsRunning: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "scriptgraph",
			Name:      "scripts_running",
			Help:      "Number of script instances currently running (Start called, not yet halted)",
		}),
		stepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scriptgraph",
			Name:      "steps_total",
			Help:      "Cumulative count of Step calls",
		}, []string{"graph"}),
		nodeProcess: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scriptgraph",
			Name:      "node_process_total",
			Help:      "Cumulative count of Process calls per node type",
		}, []string{"node_type"}),
		loopCyclesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scriptgraph",
			Name:      "loop_cycles_total",
			Help:      "Cumulative count of Cycle branches taken by a Loop node",
		}, []string{"node_id"}),
	}
}

func (m *Metrics) instanceStarted() {
	if m == nil {
		return
	}
	m.scriptsRunning.Inc()
}

func (m *Metrics) instanceHalted() {
	if m == nil {
		return
	}
	m.scriptsRunning.Dec()
}

func (m *Metrics) step(graphName string) {
	if m == nil {
		return
	}
	m.stepsTotal.WithLabelValues(graphName).Inc()
}

func (m *Metrics) nodeProcessed(typeName string) {
	if m == nil {
		return
	}
	m.nodeProcess.WithLabelValues(typeName).Inc()
}

func (m *Metrics) loopCycle(nodeID string) {
	if m == nil {
		return
	}
	m.loopCyclesTotal.WithLabelValues(nodeID).Inc()
}
