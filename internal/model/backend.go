package model

import (
	"errors"
	"fmt"
)

// MetricCount is the number of named metrics in the backend document
const MetricCount = 4

// MetricNames are the JSON keys of the metrics section, in display order
var MetricNames = [MetricCount]string{"metric_1", "metric_2", "metric_3", "metric_4"}

// BackendState is the parsed backend document
type BackendState struct {
	Metrics Metrics `json:"metrics"`
	Tasks   Tasks   `json:"tasks"`
}

// Metrics holds the four named metric values
type Metrics struct {
	Metric1 *float64 `json:"metric_1"`
	Metric2 *float64 `json:"metric_2"`
	Metric3 *float64 `json:"metric_3"`
	Metric4 *float64 `json:"metric_4"`
}

// Tasks holds the completed and outstanding task labels in file order
type Tasks struct {
	Completed   []string `json:"completed_tasks"`
	Outstanding []string `json:"outstanding_tasks"`
}

// Values returns the metrics in display order. Missing values read as zero.
func (m Metrics) Values() [MetricCount]float64 {
	var out [MetricCount]float64
	for i, p := range []*float64{m.Metric1, m.Metric2, m.Metric3, m.Metric4} {
		if p != nil {
			out[i] = *p
		}
	}
	return out
}

// NewMetrics builds a Metrics value with all four fields set
func NewMetrics(m1, m2, m3, m4 float64) Metrics {
	return Metrics{Metric1: &m1, Metric2: &m2, Metric3: &m3, Metric4: &m4}
}

// Validate checks that every field downstream code reads is present
func (s *BackendState) Validate() error {
	var missing []error
	for i, p := range []*float64{s.Metrics.Metric1, s.Metrics.Metric2, s.Metrics.Metric3, s.Metrics.Metric4} {
		if p == nil {
			missing = append(missing, fmt.Errorf("metrics.%s is missing", MetricNames[i]))
		}
	}
	if s.Tasks.Completed == nil {
		missing = append(missing, errors.New("tasks.completed_tasks is missing"))
	}
	if s.Tasks.Outstanding == nil {
		missing = append(missing, errors.New("tasks.outstanding_tasks is missing"))
	}
	return errors.Join(missing...)
}

// OutstandingCount returns the number of tasks left to complete
func (s *BackendState) OutstandingCount() int {
	return len(s.Tasks.Outstanding)
}
