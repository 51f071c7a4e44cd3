package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scrumish_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scrumish_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	InvitationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scrumish_invitations_sent_total",
		Help: "Invitations delivered to the notifier",
	})

	InvitationsAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scrumish_invitations_accepted_total",
		Help: "Invitation acceptances by outcome",
	}, []string{"outcome"})

	SettingsCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scrumish_settings_cache_total",
		Help: "Site settings lookups by cache result",
	}, []string{"result"})
)
