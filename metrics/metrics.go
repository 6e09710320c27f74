package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SubmissionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "staff_evaluation_submissions_total",
	Help: "Number of bulk evaluation submissions by outcome",
}, []string{"outcome"})

var ScoresUpsertedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "staff_evaluation_scores_upserted_total",
	Help: "Number of per-question scores written",
})

var UpsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "staff_evaluation_upsert_duration_seconds",
	Help: "Duration of the transactional batch upsert",
	Buckets: []float64{
		0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2,
	},
})

var PublishErrorCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "staff_evaluation_publish_errors_total",
	Help: "Number of evaluation events that could not be published",
})
