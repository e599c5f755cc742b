// Package window tracks the frameless dashboard window's transient geometry:
// drag offsets, the minimize/maximize/restore cycle, the toggle button's
// appearance, control button placement and opacity. It drives a Host that
// performs the actual window operations.
package window

import (
	"fyne.io/fyne/v2"
)

// Opacity values
const (
	DefaultOpacity    = 0.97
	QuitPromptOpacity = 0.65
)

// Toggle button tooltips
const (
	TooltipMaximize = "Maximize Window"
	TooltipMinimize = "Minimize Window"
)

// SizeState is the window size state
type SizeState int

const (
	Normal SizeState = iota
	Minimized
	Maximized
)

// String returns the state name
func (s SizeState) String() string {
	switch s {
	case Minimized:
		return "minimized"
	case Maximized:
		return "maximized"
	default:
		return "normal"
	}
}

// ToggleIcon selects the toggle button's icon
type ToggleIcon int

const (
	IconMaximize ToggleIcon = iota
	IconMinimize
)

// Appearance is the toggle button's icon and tooltip
type Appearance struct {
	Icon    ToggleIcon
	Tooltip string
}

// Host performs window operations on the real window
type Host interface {
	Move(pos fyne.Position)
	Minimize()
	Maximize()
	Restore()
	Center()
	SetOpacity(opacity float64)
}

// Frame is the window state machine
type Frame struct {
	host     Host
	state    SizeState
	previous SizeState
	position fyne.Position
	offset   fyne.Position
	opacity  float64
}

// NewFrame creates a frame in the normal state at full default opacity
func NewFrame(host Host) *Frame {
	return &Frame{host: host, opacity: DefaultOpacity}
}

// State returns the current size state
func (f *Frame) State() SizeState {
	return f.state
}

// Position returns the window's last known top-left position
func (f *Frame) Position() fyne.Position {
	return f.position
}

// Press records where inside the window the pointer went down
func (f *Frame) Press(local fyne.Position) {
	f.offset = local
}

// DragTo moves the window so the pressed point stays under the pointer at
// the given screen position
func (f *Frame) DragTo(pointer fyne.Position) fyne.Position {
	f.position = pointer.Subtract(f.offset)
	f.host.Move(f.position)
	return f.position
}

// Minimize hides the window until Show is called
func (f *Frame) Minimize() {
	if f.state == Minimized {
		return
	}
	f.previous = f.state
	f.state = Minimized
	f.host.Minimize()
}

// Show brings a minimized window back in its previous state
func (f *Frame) Show() {
	if f.state != Minimized {
		return
	}
	f.state = f.previous
	if f.state == Maximized {
		f.host.Maximize()
	} else {
		f.host.Restore()
	}
}

// ToggleSize maximizes a normal window and restores and recenters a maximized one
func (f *Frame) ToggleSize() Appearance {
	if f.state == Maximized {
		f.state = Normal
		f.host.Restore()
		f.host.Center()
	} else {
		f.state = Maximized
		f.host.Maximize()
	}
	return f.Appearance()
}

// Appearance returns the toggle button's icon and tooltip for the current state
func (f *Frame) Appearance() Appearance {
	if f.state == Maximized {
		return Appearance{Icon: IconMinimize, Tooltip: TooltipMinimize}
	}
	return Appearance{Icon: IconMaximize, Tooltip: TooltipMaximize}
}

// Center recenters the window on screen
func (f *Frame) Center() {
	f.host.Center()
}

// Opacity returns the current window opacity
func (f *Frame) Opacity() float64 {
	return f.opacity
}

// SetOpacity changes the window opacity, clamped to [0, 1]
func (f *Frame) SetOpacity(opacity float64) {
	opacity = max(0, min(1, opacity))
	f.opacity = opacity
	f.host.SetOpacity(opacity)
}
