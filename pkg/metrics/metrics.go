package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docmanager", Name: "documents_saved_total", Help: "Number of saved documents by operation (create|update)."},
		[]string{"op"},
	)
	Lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docmanager", Name: "lookups_total", Help: "Number of lookups by id, by result (hit|miss)."},
		[]string{"result"},
	)
	Searches = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "docmanager", Name: "searches_total", Help: "Number of executed searches."},
	)
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "docmanager", Name: "search_results", Help: "Number of documents returned per search.", Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000}},
	)
	InvalidArguments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docmanager", Name: "invalid_arguments_total", Help: "Number of rejected calls by operation."},
		[]string{"operation"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsSaved)
	reg.MustRegister(Lookups)
	reg.MustRegister(Searches)
	reg.MustRegister(SearchResults)
	reg.MustRegister(InvalidArguments)
}
