package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/banterhq/banter/internal/chat"
)

var mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "banter",
	Subsystem: "chat",
	Name:      "mutations_total",
	Help:      "Committed chat mutations, by action.",
}, []string{"action"})

// ObserveMutations counts committed mutations from the guard's
// invalidation events.
func ObserveMutations(evt chat.Event) {
	mutationsTotal.WithLabelValues(evt.Action).Inc()
}
