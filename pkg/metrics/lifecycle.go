package metrics

import "github.com/prometheus/client_golang/prometheus"

// LifecycleMetrics counts domain state transitions. Labels carry the entity
// (application, connection, favorite) and the resulting state.
type LifecycleMetrics struct {
	transitions *prometheus.CounterVec
}

// NewLifecycleMetrics registers the lifecycle counters on the provided registerer.
func NewLifecycleMetrics(reg prometheus.Registerer) *LifecycleMetrics {
	if reg == nil {
		return &LifecycleMetrics{}
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lifecycle_transitions_total",
		Help: "Domain state transitions by entity and resulting state.",
	}, []string{"entity", "state"})
	reg.MustRegister(transitions)
	return &LifecycleMetrics{transitions: transitions}
}

// IncTransition increments the counter for the given entity/state pair.
func (m *LifecycleMetrics) IncTransition(entity, state string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(entity), normalizeLabel(state)).Inc()
}
