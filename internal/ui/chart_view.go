package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/pydash/ares/internal/charts"
)

// ChartView shows a rendered chart and re-renders it when resized
type ChartView struct {
	widget.BaseWidget

	chart    *charts.Chart
	image    *canvas.Image
	rendered fyne.Size
}

// NewChartView creates an empty chart view
func NewChartView() *ChartView {
	v := &ChartView{image: canvas.NewImageFromImage(nil)}
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.ExtendBaseWidget(v)
	return v
}

// Chart returns the chart currently shown
func (v *ChartView) Chart() *charts.Chart {
	return v.chart
}

// SetChart replaces the displayed chart
func (v *ChartView) SetChart(c *charts.Chart) {
	v.chart = c
	v.rendered = fyne.Size{}
	v.render(v.Size())

	if c != nil && c.Animation != charts.NoAnimation {
		v.fadeIn()
	}
	v.Refresh()
}

// render draws the chart at size, skipping work when nothing changed
func (v *ChartView) render(size fyne.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		size = fyne.NewSize(ChartMinWidth, ChartMinHeight)
	}
	if size == v.rendered && v.image.Image != nil {
		return
	}

	w, h := int(size.Width), int(size.Height)
	img, err := charts.Render(v.chart, w, h)
	if err != nil {
		if v.chart != nil {
			log.Printf("Failed to render %s chart: %v", v.chart.Kind, err)
		}
		img = charts.Blank(w, h)
	}
	v.image.Image = img
	v.rendered = size
}

func (v *ChartView) fadeIn() {
	v.image.Translucency = 1
	anim := fyne.NewAnimation(ChartFadeDuration, func(progress float32) {
		v.image.Translucency = float64(1 - progress)
		v.image.Refresh()
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
}

// CreateRenderer creates the widget renderer
func (v *ChartView) CreateRenderer() fyne.WidgetRenderer {
	return &chartViewRenderer{view: v}
}

type chartViewRenderer struct {
	view *ChartView
}

func (r *chartViewRenderer) Layout(size fyne.Size) {
	r.view.render(size)
	r.view.image.Resize(size)
	r.view.image.Move(fyne.NewPos(0, 0))
}

func (r *chartViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

func (r *chartViewRenderer) Refresh() {
	r.Layout(r.view.Size())
	r.view.image.Refresh()
}

func (r *chartViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *chartViewRenderer) Destroy() {}
