package multisig

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zkelabs/quorum/errors"
)

const (
	namespaceQuorum   = "quorum"
	subsystemMultisig = "multisig"
)

// Metrics counts lifecycle transitions. A nil *Metrics is a valid no-op
// collector.
type Metrics struct {
	transitions *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewMetrics creates the multisig collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceQuorum,
			Subsystem: subsystemMultisig,
			Name:      "transitions_total",
			Help:      "number of completed lifecycle transitions",
		}, []string{"kind", "transition"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceQuorum,
			Subsystem: subsystemMultisig,
			Name:      "failures_total",
			Help:      "number of rejected lifecycle calls, by error code",
		}, []string{"kind", "transition", "code"}),
	}
}

// Transition tracks a completed transition.
func (m *Metrics) Transition(kind Kind, transition EventType) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(string(kind), string(transition)).Inc()
}

// Failure tracks a rejected call.
func (m *Metrics) Failure(kind Kind, transition EventType, err error) {
	if m == nil {
		return
	}
	code := strconv.FormatUint(uint64(errors.Code(err)), 10)
	m.failures.WithLabelValues(string(kind), string(transition), code).Inc()
}
