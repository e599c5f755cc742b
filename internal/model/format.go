package model

import (
	"strconv"
	"strings"
)

// MetricPlaceholder is shown when a metric cannot be read
const MetricPlaceholder = "—"

// FormatMetric renders a metric for the dashboard counters. Values above 999
// are abbreviated from the first two digits of their decimal form, so 12345
// becomes "1.2k" and 9999 becomes "9.9k".
func FormatMetric(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v <= 999 {
		return s
	}

	var b strings.Builder
	b.WriteString(s[:1])
	b.WriteString(".")
	b.WriteString(s[1:2])
	b.WriteString("k")
	return b.String()
}

// FormatMetrics formats all four metrics in display order
func FormatMetrics(m Metrics) [MetricCount]string {
	var out [MetricCount]string
	for i, v := range m.Values() {
		out[i] = FormatMetric(v)
	}
	return out
}
