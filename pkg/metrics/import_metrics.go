package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sendika",
		Subsystem: "member_import",
		Name:      "rows_total",
		Help:      "Bulk member import rows by outcome.",
	}, []string{"outcome"}) // imported, skipped, duplicate

	ImportRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sendika",
		Subsystem: "member_import",
		Name:      "requests_total",
		Help:      "Bulk member import requests by operation.",
	}, []string{"operation"}) // validate, import
)
