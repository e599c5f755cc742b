package charts

import (
	"errors"
	"testing"

	"github.com/pydash/ares/internal/model"
)

func TestRender(t *testing.T) {
	metrics := model.NewMetrics(4, 999, 1000, 12345)

	tests := []struct {
		name  string
		chart *Chart
	}{
		{"horizontal bar", BarChart(Horizontal)},
		{"vertical bar", BarChart(Vertical)},
		{"line", LineChart(metrics)},
		{"pie", PieChart(metrics)},
		{"empty pie", PieChart(model.NewMetrics(0, 0, 0, 0))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			img, err := Render(test.chart, 640, 400)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != 640 || bounds.Dy() != 400 {
				t.Errorf("Render() size = %dx%d, expected 640x400", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(nil, 100, 100); !errors.Is(err, ErrNilChart) {
		t.Errorf("Render(nil) error = %v, expected %v", err, ErrNilChart)
	}
	if _, err := Render(BarChart(Horizontal), 0, 100); err == nil {
		t.Error("Render() with zero width should fail")
	}
}

func TestBlank(t *testing.T) {
	img := Blank(20, 10)
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("Blank() size = %v", img.Bounds())
	}
}
