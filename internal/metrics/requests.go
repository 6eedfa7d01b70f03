package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(requestsTotal)
}

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "zarbot_requests_total",
		Help: "Requests handled per channel and resolved intent.",
	},
	[]string{"channel", "intent"},
)

// IncRequest counts one handled request.
func IncRequest(channel, intent string) {
	requestsTotal.WithLabelValues(norm(channel), norm(intent)).Inc()
}
