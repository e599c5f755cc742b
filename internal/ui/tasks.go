package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/model"
)

// TaskPanel is the task checklist with its add and remove buttons
type TaskPanel struct {
	tasks *model.TaskList

	title     *widget.Label
	list      *widget.List
	addBtn    *TooltipButton
	removeBtn *TooltipButton
	content   fyne.CanvasObject
}

// NewTaskPanel creates an empty task panel
func NewTaskPanel(cfg *config.Config, localization *Localization) *TaskPanel {
	p := &TaskPanel{tasks: model.NewTaskList()}

	p.list = widget.NewList(
		func() int { return p.tasks.Len() },
		func() fyne.CanvasObject { return NewTaskRow() },
		p.updateRow,
	)

	add := cfg.Widget(config.WidgetAddTask)
	p.addBtn = NewTooltipButton(add.Text, IconResource(add.Icon), add.Tooltip, func() { p.AddItem() })

	remove := cfg.Widget(config.WidgetRemoveTask)
	p.removeBtn = NewTooltipButton(remove.Text, IconResource(remove.Icon), remove.Tooltip, func() { p.RemoveItems() })

	p.title = widget.NewLabelWithStyle(localization.GetText(KeyTasks), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	buttons := container.NewHBox(p.addBtn, p.removeBtn)
	p.content = container.NewBorder(p.title, buttons, nil, nil, p.list)
	return p
}

// Container returns the panel's canvas object
func (p *TaskPanel) Container() fyne.CanvasObject {
	return p.content
}

// Tasks returns the underlying task list
func (p *TaskPanel) Tasks() *model.TaskList {
	return p.tasks
}

// SetTitle updates the panel heading
func (p *TaskPanel) SetTitle(title string) {
	p.title.SetText(title)
}

// Populate replaces the list with completed then outstanding tasks
func (p *TaskPanel) Populate(tasks model.Tasks) {
	p.tasks.Populate(tasks)
	log.Printf("Task list populated: %d completed, %d outstanding", len(tasks.Completed), len(tasks.Outstanding))
	p.list.Refresh()
}

// AddItem appends a new unchecked item
func (p *TaskPanel) AddItem() {
	item := p.tasks.Add(model.NewItemLabel)
	log.Printf("Task added: id=%s", item.ID)
	p.list.Refresh()
	p.list.ScrollToBottom()
}

// RemoveItems removes every selected item and returns how many were removed
func (p *TaskPanel) RemoveItems() int {
	removed := p.tasks.RemoveSelected()
	if removed == 0 {
		return 0
	}
	log.Printf("Removed %d selected tasks", removed)
	p.list.UnselectAll()
	p.list.Refresh()
	return removed
}

// ToggleSelected flips the selection of row i
func (p *TaskPanel) ToggleSelected(i int) {
	p.tasks.ToggleSelected(i)
	p.list.RefreshItem(i)
}

// SetChecked marks row i completed or not and restyles it
func (p *TaskPanel) SetChecked(i int, checked bool) {
	p.tasks.SetChecked(i, checked)
	p.list.RefreshItem(i)
}

func (p *TaskPanel) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*TaskRow)
	if !ok {
		return
	}
	item := p.tasks.Item(id)
	if item == nil {
		return
	}
	row.Bind(item, p.tasks.IsSelected(id),
		func(checked bool) { p.SetChecked(id, checked) },
		func() { p.ToggleSelected(id) },
	)
}
