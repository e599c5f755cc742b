package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Layout of the hand-drawn charts, in pixels
const (
	canvasPadding   = 16
	titleHeight     = 26
	legendHeight    = 28
	categoryGutter  = 44
	valueGutter     = 22
	swatchSize      = 10
	legendSpacing   = 18
	pieLabelMargin  = 36
	pieLabelOffset  = 14
	barGroupFill    = 0.8
	titleFontSize   = 14
	labelFontSize   = 10
	gridStrokeWidth = 1
)

// ErrNilChart is returned when Render is called without a chart
var ErrNilChart = errors.New("chart is nil")

// Render draws the chart description into an image of the given size
func Render(c *Chart, width, height int) (image.Image, error) {
	if c == nil {
		return nil, ErrNilChart
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d", width, height)
	}

	var buf bytes.Buffer
	var err error
	switch c.Kind {
	case KindLine:
		err = renderLine(c, width, height, &buf)
	case KindPie:
		err = renderCanvas(c, width, height, &buf, drawPie)
	default:
		err = renderCanvas(c, width, height, &buf, drawBars)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart: %w", c.Kind, err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s chart: %w", c.Kind, err)
	}
	return img, nil
}

// Blank returns a plain image used when rendering fails
func Blank(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.Set(x, y, chart.ColorWhite)
		}
	}
	return img
}

// seriesColor returns the colour of series i in the given theme
func seriesColor(theme, i int) drawing.Color {
	if theme == 0 {
		return chart.GetDefaultColor(i)
	}
	return chart.GetAlternateColor(i)
}

type drawFunc func(r chart.Renderer, c *Chart, box chart.Box, text chart.Style)

// renderCanvas prepares a raster renderer with background, title and legend
// and hands the remaining box to draw
func renderCanvas(c *Chart, width, height int, buf *bytes.Buffer, draw drawFunc) error {
	r, err := chart.PNG(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	text := chart.Style{Font: font, FontSize: labelFontSize, FontColor: chart.ColorBlack}

	chart.Draw.Box(r, chart.Box{Right: width, Bottom: height}, chart.Style{
		FillColor:   chart.ColorWhite,
		StrokeColor: chart.ColorWhite,
	})

	box := chart.Box{Top: canvasPadding, Left: canvasPadding, Right: width - canvasPadding, Bottom: height - canvasPadding}

	if c.Title != "" {
		title := text
		title.FontSize = titleFontSize
		tb := chart.Draw.MeasureText(r, c.Title, title)
		chart.Draw.Text(r, c.Title, (width-tb.Width())/2, box.Top+tb.Height(), title)
		box.Top += titleHeight
	}

	if c.Legend.Visible && len(c.Legend.Labels) > 0 {
		var legendBox chart.Box
		if c.Legend.Position == LegendTop {
			legendBox = chart.Box{Top: box.Top, Left: box.Left, Right: box.Right, Bottom: box.Top + legendHeight}
			box.Top += legendHeight
		} else {
			legendBox = chart.Box{Top: box.Bottom - legendHeight, Left: box.Left, Right: box.Right, Bottom: box.Bottom}
			box.Bottom -= legendHeight
		}
		drawLegend(r, legendBox, c.Legend.Labels, c.Theme, text)
	}

	if box.Width() > 0 && box.Height() > 0 {
		draw(r, c, box, text)
	}
	return r.Save(buf)
}

// drawLegend centers colour swatches with their labels in box
func drawLegend(r chart.Renderer, box chart.Box, labels []string, theme int, text chart.Style) {
	widths := make([]int, len(labels))
	total := 0
	for i, label := range labels {
		widths[i] = chart.Draw.MeasureText(r, label, text).Width()
		total += swatchSize + 4 + widths[i]
	}
	total += legendSpacing * (len(labels) - 1)

	cx, cy := box.Center()
	x := cx - total/2
	for i, label := range labels {
		col := seriesColor(theme, i)
		chart.Draw.Box(r, chart.Box{
			Top:    cy - swatchSize/2,
			Left:   x,
			Right:  x + swatchSize,
			Bottom: cy + swatchSize/2,
		}, chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1})
		x += swatchSize + 4

		tb := chart.Draw.MeasureText(r, label, text)
		chart.Draw.Text(r, label, x, cy+tb.Height()/2, text)
		x += widths[i] + legendSpacing
	}
}

// formatTick renders an axis value without trailing zeros
func formatTick(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}

// drawBars draws grouped bars with the value axis along the bar direction
func drawBars(r chart.Renderer, c *Chart, box chart.Box, text chart.Style) {
	horizontal := c.Orientation == Horizontal

	plot := box
	plot.Left += categoryGutter
	plot.Bottom -= valueGutter
	if plot.Width() <= 0 || plot.Height() <= 0 {
		return
	}

	lo, hi := c.ValueAxis.Min, c.ValueAxis.Max
	if hi <= lo {
		hi = lo + 1
	}
	scale := func(v float64, length int) int {
		v = math.Max(lo, math.Min(hi, v))
		return int(math.Round((v - lo) / (hi - lo) * float64(length)))
	}

	grid := chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: gridStrokeWidth}
	for _, tick := range c.ValueAxis.Ticks() {
		label := formatTick(tick)
		tb := chart.Draw.MeasureText(r, label, text)
		if horizontal {
			x := plot.Left + scale(tick, plot.Width())
			drawLine(r, x, plot.Top, x, plot.Bottom, grid)
			chart.Draw.Text(r, label, x-tb.Width()/2, plot.Bottom+tb.Height()+6, text)
		} else {
			y := plot.Bottom - scale(tick, plot.Height())
			drawLine(r, plot.Left, y, plot.Right, y, grid)
			chart.Draw.Text(r, label, plot.Left-tb.Width()-6, y+tb.Height()/2, text)
		}
	}

	categories := len(c.Categories)
	for _, set := range c.Bars {
		categories = max(categories, len(set.Values))
	}
	if categories == 0 || len(c.Bars) == 0 {
		return
	}

	length := plot.Width()
	if horizontal {
		length = plot.Height()
	}
	band := float64(length) / float64(categories)
	group := band * barGroupFill
	thickness := group / float64(len(c.Bars))

	for ci := 0; ci < categories; ci++ {
		start := band*float64(ci) + (band-group)/2

		if ci < len(c.Categories) {
			label := c.Categories[ci]
			tb := chart.Draw.MeasureText(r, label, text)
			mid := int(band*float64(ci) + band/2)
			if horizontal {
				chart.Draw.Text(r, label, plot.Left-tb.Width()-6, plot.Top+mid+tb.Height()/2, text)
			} else {
				chart.Draw.Text(r, label, plot.Left+mid-tb.Width()/2, plot.Bottom+tb.Height()+6, text)
			}
		}

		for si, set := range c.Bars {
			if ci >= len(set.Values) {
				continue
			}
			col := seriesColor(c.Theme, si)
			style := chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1}
			offset := int(start + thickness*float64(si))
			size := max(int(thickness), 1)

			var bar chart.Box
			if horizontal {
				bar = chart.Box{
					Top:    plot.Top + offset,
					Bottom: plot.Top + offset + size,
					Left:   plot.Left,
					Right:  plot.Left + scale(set.Values[ci], plot.Width()),
				}
			} else {
				bar = chart.Box{
					Left:   plot.Left + offset,
					Right:  plot.Left + offset + size,
					Top:    plot.Bottom - scale(set.Values[ci], plot.Height()),
					Bottom: plot.Bottom,
				}
			}
			chart.Draw.Box(r, bar, style)
		}
	}

	axis := chart.Style{StrokeColor: chart.ColorBlack, StrokeWidth: 1}
	drawLine(r, plot.Left, plot.Top, plot.Left, plot.Bottom, axis)
	drawLine(r, plot.Left, plot.Bottom, plot.Right, plot.Bottom, axis)
}

func drawLine(r chart.Renderer, x0, y0, x1, y1 int, style chart.Style) {
	style.WriteDrawingOptionsToRenderer(r)
	defer r.ResetStyle()
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

// drawPie draws the slices in order with each label placed on the slice's
// bisector, outside the circle when requested
func drawPie(r chart.Renderer, c *Chart, box chart.Box, text chart.Style) {
	cx, cy := box.Center()
	radius := float64(chart.MinInt(box.Width(), box.Height())/2 - pieLabelMargin)
	if radius <= 0 {
		return
	}

	var total float64
	for _, s := range c.Slices {
		total += math.Max(s.Value, 0)
	}

	if total == 0 {
		outline := chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: 2}
		outline.WriteDrawingOptionsToRenderer(r)
		r.Circle(radius, cx, cy)
		r.Stroke()
		r.ResetStyle()
	}

	var done float64
	for i, s := range c.Slices {
		share := 0.0
		if total > 0 {
			share = math.Max(s.Value, 0) / total
		}
		if share > 0 {
			col := seriesColor(c.Theme, i)
			style := chart.Style{FillColor: col, StrokeColor: chart.ColorWhite, StrokeWidth: 2}
			style.WriteDrawingOptionsToRenderer(r)
			r.MoveTo(cx, cy)
			r.ArcTo(cx, cy, radius, radius, chart.PercentToRadians(done), chart.PercentToRadians(share))
			r.LineTo(cx, cy)
			r.Close()
			r.FillStroke()
			r.ResetStyle()
		}

		if s.Label != "" {
			labelRadius := radius * 2 / 3
			if s.LabelOutside {
				labelRadius = radius + pieLabelOffset
			}
			theta := chart.RadianAdd(chart.PercentToRadians(done+share/2), math.Pi/2)
			lx, ly := chart.CirclePoint(cx, cy, labelRadius, theta)
			tb := chart.Draw.MeasureText(r, s.Label, text)
			chart.Draw.Text(r, s.Label, max(lx-tb.Width()/2, 0), max(ly+tb.Height()/2, 0), text)
		}
		done += share
	}
}

// renderLine draws line series with go-chart's axes and legend
func renderLine(c *Chart, width, height int, buf *bytes.Buffer) error {
	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j], ys[j] = p.X, p.Y
		}
		col := seriesColor(c.Theme, i)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}

	ch := chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: canvasPadding, Right: canvasPadding, Bottom: canvasPadding}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: c.XAxis.Min, Max: c.XAxis.Max},
			Ticks: axisTicks(c.XAxis),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: c.YAxis.Min, Max: c.YAxis.Max},
			Ticks: axisTicks(c.YAxis),
		},
		Series: series,
	}
	if c.Legend.Visible {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	return ch.Render(chart.PNG, buf)
}

func axisTicks(a ValueAxis) []chart.Tick {
	values := a.Ticks()
	ticks := make([]chart.Tick, len(values))
	for i, v := range values {
		ticks[i] = chart.Tick{Value: v, Label: formatTick(v)}
	}
	return ticks
}
