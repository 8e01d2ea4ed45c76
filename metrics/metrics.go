// Package metrics exposes prometheus collectors for the keep broker and a
// small HTTP server that serves them.
package metrics

import (
	"github.com/enarx/keepbroker/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds every collector served by MetricsServer.
var Registry = prometheus.NewRegistry()

var (
	keepsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: common.PackageName,
		Name:      "keeps",
		Help:      "Number of live keeps.",
	})

	claimsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: common.PackageName,
		Name:      "claims_total",
		Help:      "Keeps created, by backend.",
	}, []string{"backend"})

	deletesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: common.PackageName,
		Name:      "deletes_total",
		Help:      "Keeps deleted.",
	})

	notFoundTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: common.PackageName,
		Name:      "not_found_total",
		Help:      "Requests answered with 404, by route.",
	}, []string{"route"})
)

func init() {
	Registry.MustRegister(
		keepsGauge,
		claimsTotal,
		deletesTotal,
		notFoundTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordClaim counts a successful claim.
func RecordClaim(backend string) {
	claimsTotal.WithLabelValues(backend).Inc()
	keepsGauge.Inc()
}

// RecordDelete counts a successful delete.
func RecordDelete() {
	deletesTotal.Inc()
	keepsGauge.Dec()
}

// RecordNotFound counts a 404 answer for the given route pattern.
func RecordNotFound(route string) {
	notFoundTotal.WithLabelValues(route).Inc()
}
