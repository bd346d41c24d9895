package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the preview server.
type Metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	protocolErrors *prometheus.CounterVec
	rendersTotal   prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewMetrics registers the preview collectors with reg.
//
// Metrics collected:
//   - vangoui_events_total: events by type and status (ok, error)
//   - vangoui_event_duration_seconds: handler plus re-render duration
//   - vangoui_protocol_errors_total: rejected frames by error code
//   - vangoui_renders_total: gallery renders
//   - vangoui_active_sessions: open websocket sessions
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	const namespace = "vangoui"

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of widget events processed",
		}, []string{"event", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_duration_seconds",
			Help:      "Event processing duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event"}),

		protocolErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "protocol_errors_total",
			Help:      "Total number of rejected client frames",
		}, []string{"code"}),

		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of gallery renders",
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of active websocket sessions",
		}),
	}
}

func (m *Metrics) recordEvent(event string, seconds float64, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.eventsTotal.WithLabelValues(event, status).Inc()
	m.eventDuration.WithLabelValues(event).Observe(seconds)
}

func (m *Metrics) recordProtocolError(code string) {
	if m == nil {
		return
	}
	m.protocolErrors.WithLabelValues(code).Inc()
}

func (m *Metrics) recordRender() {
	if m == nil {
		return
	}
	m.rendersTotal.Inc()
}

func (m *Metrics) sessionOpened() {
	if m != nil {
		m.activeSessions.Inc()
	}
}

func (m *Metrics) sessionClosed() {
	if m != nil {
		m.activeSessions.Dec()
	}
}
