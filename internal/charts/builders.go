package charts

import (
	"fmt"

	"github.com/pydash/ares/internal/model"
)

// ChartTitle is the title shared by every chart
const ChartTitle = "Metrics"

// LineSeriesName names the single line series
const LineSeriesName = "Metrics"

// Demo data shown by the bar chart
var (
	barSets = []BarSet{
		{Label: "Metric 1", Values: []float64{1, 2, 3, 4}},
		{Label: "Metric 2", Values: []float64{5, 0, 0, 4}},
		{Label: "Metric 3", Values: []float64{3, 5, 8, 13}},
		{Label: "Metric 4", Values: []float64{5, 6, 7, 3}},
	}
	barCategories = []string{"Jan", "Feb", "Mar", "Apr", "May", "June"}
)

// MetricLabels returns the legend labels of the four metrics
func MetricLabels() []string {
	labels := make([]string, model.MetricCount)
	for i := range labels {
		labels[i] = fmt.Sprintf("Metric %d", i+1)
	}
	return labels
}

// BarChart builds the grouped bar chart of the monthly demo series
func BarChart(o Orientation) *Chart {
	bars := make([]BarSet, len(barSets))
	var all []float64
	for i, set := range barSets {
		bars[i] = BarSet{Label: set.Label, Values: append([]float64(nil), set.Values...)}
		all = append(all, set.Values...)
	}

	labels := make([]string, len(bars))
	for i, set := range bars {
		labels[i] = set.Label
	}

	return &Chart{
		Kind:        KindBar,
		Title:       ChartTitle,
		Theme:       0,
		Animation:   AllAnimations,
		Legend:      Legend{Visible: true, Position: LegendBottom, Labels: labels},
		Orientation: o,
		Bars:        bars,
		Categories:  append([]string(nil), barCategories...),
		ValueAxis:   niceAxis(all...),
	}
}

// LineChart builds a line through (metric_1, metric_3) and (metric_2, metric_4)
func LineChart(m model.Metrics) *Chart {
	v := m.Values()
	points := []Point{
		{X: v[0], Y: v[2]},
		{X: v[1], Y: v[3]},
	}

	return &Chart{
		Kind:      KindLine,
		Title:     ChartTitle,
		Theme:     0,
		Animation: AllAnimations,
		Legend:    Legend{Visible: true, Position: LegendBottom, Labels: []string{LineSeriesName}},
		Series:    []LineSeries{{Name: LineSeriesName, Points: points}},
		XAxis:     niceAxis(v[0], v[1]),
		YAxis:     niceAxis(v[2], v[3]),
	}
}

// PieChart builds a pie of the four metrics labelled with their share
func PieChart(m model.Metrics) *Chart {
	values := m.Values()
	names := MetricLabels()

	var total float64
	for _, v := range values {
		total += v
	}

	slices := make([]Slice, len(values))
	for i, v := range values {
		pct := 0.0
		if total != 0 {
			pct = v / total * 100
		}
		slices[i] = Slice{
			Name:         names[i],
			Value:        v,
			Percentage:   pct,
			Label:        fmt.Sprintf("%.2f%%", pct),
			LabelOutside: true,
		}
	}

	return &Chart{
		Kind:      KindPie,
		Title:     ChartTitle,
		Theme:     0,
		Animation: SeriesAnimations,
		Legend:    Legend{Visible: true, Position: LegendBottom, Labels: names},
		Slices:    slices,
	}
}
