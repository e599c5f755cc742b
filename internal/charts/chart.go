// Package charts builds chart descriptions from backend metrics and renders
// them to images. Builders are pure: they return a *Chart value that says
// what to draw, and Render turns it into pixels.
package charts

import (
	"fmt"
	"strings"
)

// Kind is the chart type
type Kind int

const (
	KindBar Kind = iota
	KindLine
	KindPie
)

// String returns the kind name used in settings and logs
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPie:
		return "pie"
	default:
		return "bar"
	}
}

// ParseKind parses a kind name. Unknown names select the bar chart.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bar", "":
		return KindBar, nil
	case "line":
		return KindLine, nil
	case "pie":
		return KindPie, nil
	default:
		return KindBar, fmt.Errorf("unknown chart kind: %q", name)
	}
}

// Orientation is the bar direction
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation parses an orientation name. Unknown names select horizontal.
func ParseOrientation(name string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown bar orientation: %q", name)
	}
}

// Animation selects which chart elements animate when shown
type Animation int

const (
	NoAnimation Animation = iota
	GridAxisAnimations
	SeriesAnimations
	AllAnimations
)

// LegendPosition places the legend
type LegendPosition int

const (
	LegendBottom LegendPosition = iota
	LegendTop
)

// BarSet is one named series of bar values, one value per category
type BarSet struct {
	Label  string
	Values []float64
}

// ValueAxis is a numeric axis range with its tick count
type ValueAxis struct {
	Min       float64
	Max       float64
	TickCount int
}

// Ticks returns the tick values from Min to Max
func (a ValueAxis) Ticks() []float64 {
	if a.TickCount < 2 {
		return []float64{a.Min, a.Max}
	}
	step := (a.Max - a.Min) / float64(a.TickCount-1)
	ticks := make([]float64, a.TickCount)
	for i := range ticks {
		ticks[i] = a.Min + step*float64(i)
	}
	return ticks
}

// Point is an x/y pair
type Point struct {
	X float64
	Y float64
}

// LineSeries is a named polyline
type LineSeries struct {
	Name   string
	Points []Point
}

// Slice is one pie slice
type Slice struct {
	Name         string
	Value        float64
	Percentage   float64
	Label        string
	LabelOutside bool
}

// Legend describes the chart legend
type Legend struct {
	Visible  bool
	Position LegendPosition
	Labels   []string
}

// Chart is a renderable chart description
type Chart struct {
	Kind      Kind
	Title     string
	Theme     int
	Animation Animation
	Legend    Legend

	// Bar charts
	Orientation Orientation
	Bars        []BarSet
	Categories  []string
	ValueAxis   ValueAxis

	// Line charts
	Series []LineSeries
	XAxis  ValueAxis
	YAxis  ValueAxis

	// Pie charts
	Slices []Slice
}
