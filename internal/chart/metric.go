package chart

import "fmt"

// Metric names the value plotted on the y axis.
type Metric string

const (
	// MetricRank plots each team's rank at every window position.
	MetricRank Metric = "rank"
	// MetricCumulative plots the cumulative strength of schedule itself.
	MetricCumulative Metric = "cumulative"
)

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case MetricRank, MetricCumulative:
		return m, nil
	}
	return "", fmt.Errorf("metric '%s' not recognized", s)
}
