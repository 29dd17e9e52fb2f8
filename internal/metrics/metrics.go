// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CampaignsGenerated counts synthesized campaigns by intent.
	CampaignsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_chat_campaigns_generated_total",
			Help: "Total number of campaigns generated, by classified intent",
		},
		[]string{"intent"},
	)

	// ChatRequestsWithoutSources counts chat messages answered with the
	// connect-a-source prompt.
	ChatRequestsWithoutSources = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_chat_requests_without_sources_total",
			Help: "Chat requests short-circuited because no data source was connected",
		},
	)

	// ConfidenceScore observes the confidence of each generated campaign.
	ConfidenceScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaign_chat_confidence_score",
			Help:    "Confidence score of generated campaigns",
			Buckets: []float64{0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95},
		},
	)

	// ProcessingDuration observes end-to-end chat processing time,
	// including simulated latency.
	ProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaign_chat_processing_seconds",
			Help:    "Chat message processing time in seconds",
			Buckets: []float64{0.1, 0.5, 1, 1.5, 2, 2.5, 3, 4, 5},
		},
	)

	// ConnectorTransitions counts connect/disconnect operations by source
	// and resulting status.
	ConnectorTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_chat_connector_transitions_total",
			Help: "Data source connect/disconnect operations",
		},
		[]string{"source", "status"},
	)

	// ConnectedSources reports how many connectors are currently connected.
	ConnectedSources = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campaign_chat_connected_sources",
			Help: "Number of data sources currently connected",
		},
	)

	// HTTPRequestDuration observes handler latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaign_chat_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordCampaign records one generated campaign.
func RecordCampaign(intent string, confidence float64) {
	CampaignsGenerated.WithLabelValues(intent).Inc()
	ConfidenceScore.Observe(confidence)
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
