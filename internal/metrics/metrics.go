// Package metrics collects and exposes Prometheus counters for the
// review lifecycle.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reviewsCreated    prometheus.Counter
	reviewsDeleted    prometheus.Counter
	varietyRecomputes prometheus.Counter
	inconsistencies   prometheus.Counter
}

// NewCollector registers the service counters on reg and returns the
// collector.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		reviewsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dishcovery_reviews_created_total",
			Help: "Total reviews created.",
		}),
		reviewsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dishcovery_reviews_deleted_total",
			Help: "Total reviews deleted.",
		}),
		varietyRecomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dishcovery_variety_recompute_total",
			Help: "Total full variety-state recomputations.",
		}),
		inconsistencies: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dishcovery_variety_inconsistency_total",
			Help: "Times a user's variety state was left stale by a partial create/delete.",
		}),
	}

	reg.MustRegister(
		c.reviewsCreated,
		c.reviewsDeleted,
		c.varietyRecomputes,
		c.inconsistencies,
	)

	return c
}

func (c *Collector) RecordReviewCreated() { c.reviewsCreated.Inc() }

func (c *Collector) RecordReviewDeleted() { c.reviewsDeleted.Inc() }

func (c *Collector) RecordVarietyRecompute() { c.varietyRecomputes.Inc() }

func (c *Collector) RecordInconsistency() { c.inconsistencies.Inc() }

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
