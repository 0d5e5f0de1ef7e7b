package publish

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "publish",
		Name:      "events_published_total",
		Help:      "Number of workout summary events written to Kafka.",
	})

	failedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "publish",
		Name:      "events_failed_total",
		Help:      "Number of workout summary events that failed to publish.",
	})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter)
}
