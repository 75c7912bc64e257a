package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat pipeline.
type ChatMetrics struct {
	messagesTotal    *prometheus.CounterVec
	upstreamFailures prometheus.Counter
	replyLatency     *prometheus.HistogramVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anthill",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total chat messages answered, by response source",
		}, []string{"source"}),
		upstreamFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "anthill",
			Subsystem: "chat",
			Name:      "upstream_failures_total",
			Help:      "Total language model calls that failed",
		}),
		replyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "anthill",
			Subsystem: "chat",
			Name:      "reply_latency_seconds",
			Help:      "Latency of producing a chat reply",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.upstreamFailures, m.replyLatency)
	return m
}

func (m *ChatMetrics) ObserveMessage(source string, seconds float64) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(source).Inc()
	m.replyLatency.WithLabelValues(source).Observe(seconds)
}

func (m *ChatMetrics) ObserveUpstreamFailure() {
	if m == nil {
		return
	}
	m.upstreamFailures.Inc()
}
