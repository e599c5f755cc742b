package model

import (
	"github.com/google/uuid"
)

// NewItemLabel is the text of items appended with the add button
const NewItemLabel = "New Item"

// TaskStyle describes how a task label is drawn
type TaskStyle struct {
	Strikethrough bool
	Italic        bool
}

// TaskItem represents a single row of the task checklist
type TaskItem struct {
	ID      string
	Label   string
	Checked bool
}

// NewTaskItem creates a task item with a fresh id
func NewTaskItem(label string, checked bool) *TaskItem {
	return &TaskItem{
		ID:      uuid.NewString(),
		Label:   label,
		Checked: checked,
	}
}

// Style returns the display style derived from completion
func (t *TaskItem) Style() TaskStyle {
	if t.Checked {
		return TaskStyle{Strikethrough: true, Italic: true}
	}
	return TaskStyle{}
}

// TaskList is the ordered checklist plus the current row selection.
// It is only touched from the UI goroutine.
type TaskList struct {
	items    []*TaskItem
	selected map[string]bool
}

// NewTaskList creates an empty task list
func NewTaskList() *TaskList {
	return &TaskList{selected: make(map[string]bool)}
}

// Populate replaces the list with completed tasks (checked) followed by
// outstanding tasks (unchecked), preserving file order
func (l *TaskList) Populate(tasks Tasks) {
	l.items = make([]*TaskItem, 0, len(tasks.Completed)+len(tasks.Outstanding))
	l.selected = make(map[string]bool)
	for _, label := range tasks.Completed {
		l.items = append(l.items, NewTaskItem(label, true))
	}
	for _, label := range tasks.Outstanding {
		l.items = append(l.items, NewTaskItem(label, false))
	}
}

// Len returns the number of rows
func (l *TaskList) Len() int {
	return len(l.items)
}

// Item returns the row at index i, or nil when out of range
func (l *TaskList) Item(i int) *TaskItem {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns a copy of the rows
func (l *TaskList) Items() []*TaskItem {
	out := make([]*TaskItem, len(l.items))
	copy(out, l.items)
	return out
}

// Add appends an unchecked item
func (l *TaskList) Add(label string) *TaskItem {
	item := NewTaskItem(label, false)
	l.items = append(l.items, item)
	return item
}

// SetChecked updates the completion state of the row at index i
func (l *TaskList) SetChecked(i int, checked bool) {
	if item := l.Item(i); item != nil {
		item.Checked = checked
	}
}

// ToggleSelected flips the selection of the row at index i
func (l *TaskList) ToggleSelected(i int) {
	item := l.Item(i)
	if item == nil {
		return
	}
	if l.selected[item.ID] {
		delete(l.selected, item.ID)
		return
	}
	l.selected[item.ID] = true
}

// IsSelected reports whether the row at index i is selected
func (l *TaskList) IsSelected(i int) bool {
	item := l.Item(i)
	return item != nil && l.selected[item.ID]
}

// SelectedCount returns the number of selected rows
func (l *TaskList) SelectedCount() int {
	return len(l.selected)
}

// RemoveSelected deletes every selected row and returns how many were removed.
// Nothing happens when no row is selected.
func (l *TaskList) RemoveSelected() int {
	if len(l.selected) == 0 {
		return 0
	}

	kept := l.items[:0]
	removed := 0
	for _, item := range l.items {
		if l.selected[item.ID] {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	l.selected = make(map[string]bool)
	return removed
}
