// Package metrics exposes the Prometheus collectors for the web process.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

var (
	// Registry holds every collector this process exports.
	Registry = prometheus.NewRegistry()

	Submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkers",
		Name:      "submissions_total",
		Help:      "Buy and retrieve form submissions by outcome.",
	}, []string{"form", "outcome"})

	CardsOrdered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkers",
		Name:      "cards_ordered_total",
		Help:      "Checker cards acknowledged by the order desk, by card type.",
	}, []string{"card_type"})

	MenuTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkers",
		Name:      "menu_transitions_total",
		Help:      "Navigation menu transitions started, by direction.",
	}, []string{"direction"})

	Visitors = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "checkers",
		Name:      "visitors_tracked",
		Help:      "Visitors with live UI state in the hub.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		Submissions,
		CardsOrdered,
		MenuTransitions,
		Visitors,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
