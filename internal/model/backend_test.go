package model

import (
	"strings"
	"testing"
)

func TestBackendState_Validate(t *testing.T) {
	valid := &BackendState{
		Metrics: NewMetrics(1, 2, 3, 4),
		Tasks:   Tasks{Completed: []string{}, Outstanding: []string{"x"}},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid state, got %v", err)
	}

	missing := &BackendState{
		Metrics: Metrics{Metric1: valid.Metrics.Metric1},
		Tasks:   Tasks{Completed: []string{}},
	}
	err := missing.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, name := range []string{"metric_2", "metric_3", "metric_4", "outstanding_tasks"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Expected error to mention %s, got %v", name, err)
		}
	}
}

func TestMetrics_Values(t *testing.T) {
	values := NewMetrics(10, 20, 30, 40).Values()
	expected := [MetricCount]float64{10, 20, 30, 40}
	if values != expected {
		t.Errorf("Values() = %v, expected %v", values, expected)
	}

	if (Metrics{}).Values() != [MetricCount]float64{} {
		t.Error("Missing metrics should read as zero")
	}
}

func TestBackendState_OutstandingCount(t *testing.T) {
	s := &BackendState{Tasks: Tasks{Outstanding: []string{"a", "b"}}}
	if s.OutstandingCount() != 2 {
		t.Errorf("Expected 2 outstanding, got %d", s.OutstandingCount())
	}
}
