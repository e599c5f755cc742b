package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pydash/ares/internal/model"
)

// TaskRow renders one task: a checkbox, the label and, for completed tasks,
// a line through the label. Tapping the row toggles its selection.
type TaskRow struct {
	widget.BaseWidget

	check      *widget.Check
	label      *canvas.Text
	strike     *canvas.Line
	background *canvas.Rectangle

	selected bool
	onTapped func()
}

// NewTaskRow creates an empty task row
func NewTaskRow() *TaskRow {
	r := &TaskRow{
		check:      widget.NewCheck("", nil),
		label:      canvas.NewText("", theme.Color(theme.ColorNameForeground)),
		strike:     canvas.NewLine(theme.Color(theme.ColorNameForeground)),
		background: canvas.NewRectangle(color.Transparent),
	}
	r.strike.StrokeWidth = StrikeThickness
	r.strike.Hide()
	r.ExtendBaseWidget(r)
	return r
}

// Bind shows item in the row. onChecked fires when the user toggles the
// checkbox, onTapped when the row itself is tapped.
func (r *TaskRow) Bind(item *model.TaskItem, selected bool, onChecked func(bool), onTapped func()) {
	if item == nil {
		return
	}

	r.check.OnChanged = nil
	r.check.SetChecked(item.Checked)
	r.check.OnChanged = onChecked
	r.onTapped = onTapped

	style := item.Style()
	r.label.Text = item.Label
	r.label.TextStyle = fyne.TextStyle{Italic: style.Italic}
	r.strike.Hidden = !style.Strikethrough
	r.selected = selected

	r.Refresh()
}

// Text returns the label currently shown
func (r *TaskRow) Text() string {
	return r.label.Text
}

// IsStruck reports whether the label is drawn struck through
func (r *TaskRow) IsStruck() bool {
	return !r.strike.Hidden
}

// IsItalic reports whether the label is drawn in italics
func (r *TaskRow) IsItalic() bool {
	return r.label.TextStyle.Italic
}

// IsChecked reports the checkbox state
func (r *TaskRow) IsChecked() bool {
	return r.check.Checked
}

// Tapped toggles the row selection
func (r *TaskRow) Tapped(*fyne.PointEvent) {
	if r.onTapped != nil {
		r.onTapped()
	}
}

// CreateRenderer creates the widget renderer
func (r *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return &taskRowRenderer{row: r}
}

type taskRowRenderer struct {
	row *TaskRow
}

// Layout places the checkbox at the left and the label after it, with the
// strike line through the middle of the label text
func (tr *taskRowRenderer) Layout(size fyne.Size) {
	r := tr.row
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	checkSize := r.check.MinSize()
	r.check.Resize(checkSize)
	r.check.Move(fyne.NewPos(TaskRowPadding, (size.Height-checkSize.Height)/2))

	labelSize := r.label.MinSize()
	labelX := TaskRowPadding*2 + checkSize.Width
	labelY := (size.Height - labelSize.Height) / 2
	r.label.Resize(labelSize)
	r.label.Move(fyne.NewPos(labelX, labelY))

	mid := labelY + labelSize.Height/2
	r.strike.Position1 = fyne.NewPos(labelX, mid)
	r.strike.Position2 = fyne.NewPos(labelX+labelSize.Width, mid)
}

// MinSize returns the minimum size
func (tr *taskRowRenderer) MinSize() fyne.Size {
	r := tr.row
	checkSize := r.check.MinSize()
	labelSize := r.label.MinSize()
	height := fyne.Max(TaskRowHeight, fyne.Max(checkSize.Height, labelSize.Height))
	return fyne.NewSize(TaskRowPadding*3+checkSize.Width+labelSize.Width, height)
}

// Refresh refreshes the renderer
func (tr *taskRowRenderer) Refresh() {
	r := tr.row
	if r.selected {
		r.background.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		r.background.FillColor = color.Transparent
	}
	r.label.Color = theme.Color(theme.ColorNameForeground)
	r.strike.StrokeColor = theme.Color(theme.ColorNameForeground)

	tr.Layout(r.Size())
	r.background.Refresh()
	r.check.Refresh()
	r.label.Refresh()
	r.strike.Refresh()
}

// Objects returns the row objects, background first
func (tr *taskRowRenderer) Objects() []fyne.CanvasObject {
	r := tr.row
	return []fyne.CanvasObject{r.background, r.check, r.label, r.strike}
}

// Destroy cleans up the renderer
func (tr *taskRowRenderer) Destroy() {}
