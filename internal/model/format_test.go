package model

import "testing"

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{4, "4"},
		{999, "999"},
		{1000, "1.0k"},
		{12345, "1.2k"},
		{9999, "9.9k"},
		{54321, "5.4k"},
		{1234.5, "1.2k"},
		{12.5, "12.5"},
		{-7, "-7"},
	}

	for _, test := range tests {
		result := FormatMetric(test.value)
		if result != test.expected {
			t.Errorf("FormatMetric(%v) = %q, expected %q", test.value, result, test.expected)
		}
	}
}

func TestFormatMetrics(t *testing.T) {
	labels := FormatMetrics(NewMetrics(4, 1000, 12345, 999))
	expected := [MetricCount]string{"4", "1.0k", "1.2k", "999"}

	if labels != expected {
		t.Errorf("FormatMetrics() = %v, expected %v", labels, expected)
	}
}
