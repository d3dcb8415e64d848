package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DashboardMetrics holds the domain metrics of the dashboard service.
type DashboardMetrics struct {
	uploadsStarted   prometheus.Counter
	uploadsCompleted *prometheus.CounterVec
	uploadsCancelled prometheus.Counter
	uploadsInFlight  prometheus.Gauge
	sessionsActive   prometheus.Gauge
	tickerToggles    prometheus.Counter
	documentsStored  prometheus.Gauge
}

// NewDashboardMetrics creates the metrics and registers them with reg.
func NewDashboardMetrics(reg prometheus.Registerer) (*DashboardMetrics, error) {
	m := &DashboardMetrics{
		uploadsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docdash",
			Subsystem: "upload",
			Name:      "started_total",
			Help:      "Total simulated uploads started.",
		}),
		uploadsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docdash",
			Subsystem: "upload",
			Name:      "completed_total",
			Help:      "Total simulated uploads completed, by verification flag.",
		}, []string{"verified"}),
		uploadsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docdash",
			Subsystem: "upload",
			Name:      "cancelled_total",
			Help:      "Total simulated uploads aborted before completion.",
		}),
		uploadsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "docdash",
			Subsystem: "upload",
			Name:      "in_flight",
			Help:      "Number of simulated uploads waiting on their delay.",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "docdash",
			Subsystem: "upload",
			Name:      "sessions_active",
			Help:      "Number of open upload sessions.",
		}),
		tickerToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "docdash",
			Subsystem: "dashboard",
			Name:      "status_toggles_total",
			Help:      "Total flips of the processing indicator.",
		}),
		documentsStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "docdash",
			Subsystem: "dashboard",
			Name:      "documents",
			Help:      "Number of documents in the store.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.uploadsStarted,
		m.uploadsCompleted,
		m.uploadsCancelled,
		m.uploadsInFlight,
		m.sessionsActive,
		m.tickerToggles,
		m.documentsStored,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// UploadStarted records a task leaving the FileSelected state.
func (m *DashboardMetrics) UploadStarted() {
	if m == nil {
		return
	}
	m.uploadsStarted.Inc()
	m.uploadsInFlight.Inc()
}

// UploadFinished records the end of a task. err is nil for a completed upload.
func (m *DashboardMetrics) UploadFinished(verified bool, err error) {
	if m == nil {
		return
	}
	m.uploadsInFlight.Dec()
	if err != nil {
		m.uploadsCancelled.Inc()
		return
	}
	label := "false"
	if verified {
		label = "true"
	}
	m.uploadsCompleted.WithLabelValues(label).Inc()
}

// SessionOpened increments the open session gauge.
func (m *DashboardMetrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
}

// SessionClosed decrements the open session gauge.
func (m *DashboardMetrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// StatusToggled counts one flip of the processing indicator.
func (m *DashboardMetrics) StatusToggled(bool) {
	if m == nil {
		return
	}
	m.tickerToggles.Inc()
}

// SetDocuments sets the stored document gauge.
func (m *DashboardMetrics) SetDocuments(n int) {
	if m == nil {
		return
	}
	m.documentsStored.Set(float64(n))
}
