package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// TooltipButton is a button that shows a short hint while hovered
type TooltipButton struct {
	widget.Button

	mu      sync.Mutex
	tooltip string
	popup   *widget.PopUp
	timer   *time.Timer
}

// NewTooltipButton creates a button with text, icon and tooltip
func NewTooltipButton(text string, icon fyne.Resource, tooltip string, tapped func()) *TooltipButton {
	b := &TooltipButton{tooltip: tooltip}
	b.Text = text
	b.Icon = icon
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

// Tooltip returns the hover hint
func (b *TooltipButton) Tooltip() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tooltip
}

// SetTooltip replaces the hover hint
func (b *TooltipButton) SetTooltip(tooltip string) {
	b.mu.Lock()
	b.tooltip = tooltip
	b.mu.Unlock()
}

// MouseIn shows the tooltip below the button
func (b *TooltipButton) MouseIn(ev *desktop.MouseEvent) {
	b.Button.MouseIn(ev)

	tooltip := b.Tooltip()
	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	if tooltip == "" || c == nil {
		return
	}

	b.hideTooltip()
	label := widget.NewLabel(tooltip)
	popup := widget.NewPopUp(label, c)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	popup.ShowAtPosition(pos.Add(fyne.NewPos(0, b.Size().Height+TooltipOffset)))

	b.mu.Lock()
	b.popup = popup
	b.timer = time.AfterFunc(TooltipAutoHide, func() {
		fyne.Do(b.hideTooltip)
	})
	b.mu.Unlock()
}

// MouseOut hides the tooltip
func (b *TooltipButton) MouseOut() {
	b.Button.MouseOut()
	b.hideTooltip()
}

func (b *TooltipButton) hideTooltip() {
	b.mu.Lock()
	popup, timer := b.popup, b.timer
	b.popup, b.timer = nil, nil
	b.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if popup != nil {
		popup.Hide()
	}
}
