// Package metrics provides Prometheus instrumentation for the moderation
// pipeline: decision outcomes, keyword cache reloads, and report activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ModerationDecisions counts moderation outcomes, labeled by outcome:
	// "allowed", "flagged", "blocked", "shadow_banned", or "auto_hidden".
	ModerationDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sensiblenews_moderation_decisions_total",
		Help: "Total moderation decisions by outcome",
	}, []string{"outcome"})

	// KeywordCacheReloads counts keyword snapshot reloads, labeled by
	// status: "ok" or "error".
	KeywordCacheReloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sensiblenews_keyword_cache_reloads_total",
		Help: "Total keyword cache reloads by status",
	}, []string{"status"})

	// ReportsCreated counts abuse reports filed against comments.
	ReportsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sensiblenews_reports_created_total",
		Help: "Total abuse reports created",
	})

	// ReportsResolved counts reports resolved by administrators.
	ReportsResolved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sensiblenews_reports_resolved_total",
		Help: "Total abuse reports resolved",
	})

	// SpamScores records the spam score of submissions that looked like spam.
	SpamScores = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sensiblenews_spam_score",
		Help:    "Spam scores of comments flagged by the spam heuristic",
		Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	})
)

func init() {
	prometheus.MustRegister(
		ModerationDecisions,
		KeywordCacheReloads,
		ReportsCreated,
		ReportsResolved,
		SpamScores,
	)
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
