package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusDeliveryMetrics implements the DeliveryMetrics port with Prometheus counters
type PrometheusDeliveryMetrics struct {
	leads      *prometheus.CounterVec
	deliveries *prometheus.CounterVec
	renders    *prometheus.CounterVec
}

// NewPrometheusDeliveryMetrics registers the lead counters with reg.
// A nil reg registers with the default Prometheus registry.
func NewPrometheusDeliveryMetrics(reg prometheus.Registerer) *PrometheusDeliveryMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusDeliveryMetrics{
		leads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leadmail_leads_total",
				Help: "The total number of lead submissions by outcome",
			},
			[]string{"outcome"},
		),
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leadmail_deliveries_total",
				Help: "The total number of delivery attempts by channel and status",
			},
			[]string{"channel", "status"},
		),
		renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leadmail_template_renders_total",
				Help: "The total number of template renders by set and result",
			},
			[]string{"set", "result"},
		),
	}
}

func (m *PrometheusDeliveryMetrics) RecordLead(outcome string) {
	m.leads.WithLabelValues(outcome).Inc()
}

func (m *PrometheusDeliveryMetrics) RecordDelivery(channel, status string) {
	m.deliveries.WithLabelValues(channel, status).Inc()
}

func (m *PrometheusDeliveryMetrics) RecordRender(set string, success bool) {
	result := "success"
	if !success {
		result = "error"
	}
	m.renders.WithLabelValues(set, result).Inc()
}
