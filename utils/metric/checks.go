// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/splitrand/utils/wrappers"
)

const (
	generatorLabel = "generator"
	checkLabel     = "check"
)

var labels = []string{generatorLabel, checkLabel}

// Outcome is the result of a single statistical check.
type Outcome struct {
	Generator string
	Check     string
	Statistic float64
	Critical  float64
	Passed    bool
	Duration  time.Duration
}

// Checks records the outcomes of statistical checks.
type Checks interface {
	Observe(outcome Outcome)
	Register(registerer prometheus.Registerer) error
}

type checks struct {
	statistic *prometheus.GaugeVec
	critical  *prometheus.GaugeVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func NewChecks(namespace string) Checks {
	return &checks{
		statistic: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "check_statistic",
			Help:      "Test statistic of the most recent check",
		}, labels),
		critical: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "check_critical",
			Help:      "Critical value the statistic was compared against",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_failures",
			Help:      "Number of checks whose statistic exceeded the critical value",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_ms",
			Help:      "Time spent running a check in milliseconds",
			Buckets:   MillisecondsBuckets,
		}, labels),
	}
}

func (c *checks) Register(registerer prometheus.Registerer) error {
	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(c.statistic),
		registerer.Register(c.critical),
		registerer.Register(c.failures),
		registerer.Register(c.duration),
	)
	return errs.Err
}

func (c *checks) Observe(outcome Outcome) {
	values := []string{outcome.Generator, outcome.Check}
	c.statistic.WithLabelValues(values...).Set(outcome.Statistic)
	c.critical.WithLabelValues(values...).Set(outcome.Critical)
	failures := c.failures.WithLabelValues(values...)
	if !outcome.Passed {
		failures.Inc()
	}
	c.duration.WithLabelValues(values...).Observe(float64(outcome.Duration) / float64(time.Millisecond))
}

// Print writes every metric gathered from [gatherer] as JSON to [outputFile],
// or as text to [w] when no file is given.
func Print(gatherer prometheus.Gatherer, outputFile string, w io.Writer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	if outputFile == "" {
		for _, mf := range families {
			for _, m := range mf.GetMetric() {
				if _, err := fmt.Fprintf(w, "Type: %s, Name: %s, Values: %s\n", mf.GetType().String(), mf.GetName(), m.String()); err != nil {
					return err
				}
			}
		}
		return nil
	}

	jsonFile, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer jsonFile.Close()

	return json.NewEncoder(jsonFile).Encode(families)
}
