package ui

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/pydash/ares/internal/config"
	"github.com/pydash/ares/internal/window"
)

// NewMainWindow creates the dashboard window. Desktop drivers get a
// borderless window; other drivers fall back to a regular one.
func NewMainWindow(app fyne.App, cfg *config.Config) fyne.Window {
	var w fyne.Window
	if drv, ok := app.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
		w.SetTitle(cfg.Window.Title)
	} else {
		w = app.NewWindow(cfg.Window.Title)
	}

	w.SetIcon(LoadLogoResource(cfg.Window.Icon))
	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	w.SetMaster()
	w.CenterOnScreen()
	return w
}

// fyneHost performs frame operations on a fyne window. Opacity is emulated
// with a translucent overlay since fyne windows have no alpha.
type fyneHost struct {
	app     fyne.App
	window  fyne.Window
	size    fyne.Size
	overlay *canvas.Rectangle

	moveOnce sync.Once
}

func newFyneHost(app fyne.App, w fyne.Window, size fyne.Size) *fyneHost {
	return &fyneHost{
		app:     app,
		window:  w,
		size:    size,
		overlay: canvas.NewRectangle(color.Transparent),
	}
}

// Move is unsupported by fyne drivers
func (h *fyneHost) Move(pos fyne.Position) {
	h.moveOnce.Do(func() {
		log.Printf("Window move to (%.0f, %.0f) is not supported by the driver", pos.X, pos.Y)
	})
}

// Minimize hides the window when a tray icon can bring it back
func (h *fyneHost) Minimize() {
	if _, ok := h.app.(desktop.App); !ok {
		log.Printf("Minimize is not supported without a system tray")
		return
	}
	h.window.Hide()
}

func (h *fyneHost) Maximize() {
	h.window.Show()
	h.window.SetFullScreen(true)
}

func (h *fyneHost) Restore() {
	h.window.SetFullScreen(false)
	h.window.Resize(h.size)
	h.window.Show()
}

func (h *fyneHost) Center() {
	h.window.CenterOnScreen()
}

func (h *fyneHost) SetOpacity(opacity float64) {
	alpha := uint8((1 - opacity) * 255)
	h.overlay.FillColor = color.NRGBA{A: alpha}
	h.overlay.Refresh()
}

// dragArea moves the window while the header is dragged
type dragArea struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	frame    *window.Frame
	dragging bool
	pointer  fyne.Position
}

func newDragArea(content fyne.CanvasObject, frame *window.Frame) *dragArea {
	d := &dragArea{content: content, frame: frame}
	d.ExtendBaseWidget(d)
	return d
}

// Dragged records the press offset on the first event of a drag, then keeps
// the pressed point under the pointer. The screen pointer is tracked by
// accumulating drag deltas, so it stays correct whether or not the host
// actually moves the window.
func (d *dragArea) Dragged(ev *fyne.DragEvent) {
	if !d.dragging {
		d.dragging = true
		press := ev.AbsolutePosition.Subtract(ev.Dragged)
		d.frame.Press(press)
		d.pointer = d.frame.Position().Add(press)
	}
	d.pointer = d.pointer.Add(ev.Dragged)
	d.frame.DragTo(d.pointer)
}

func (d *dragArea) DragEnd() {
	d.dragging = false
}

func (d *dragArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.content)
}

// controlsLayout places the window control buttons at the positions the
// frame computes for the container's size
type controlsLayout struct {
	header bool
}

func (l controlsLayout) positions(size fyne.Size) []fyne.Position {
	if l.header {
		c := window.ControlPositions(fyne.Size{}, size)
		return []fyne.Position{c.Collapse, c.Toggle}
	}
	c := window.ControlPositions(size, fyne.Size{})
	return []fyne.Position{c.Quit, c.Settings, c.User}
}

func (l controlsLayout) buttonSize() fyne.Size {
	if l.header {
		return fyne.NewSize(HeaderButtonWidth, HeaderButtonHeight)
	}
	return fyne.NewSize(MenuButtonWidth, MenuButtonHeight)
}

func (l controlsLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	positions := l.positions(size)
	for i, obj := range objects {
		if i >= len(positions) {
			break
		}
		obj.Resize(l.buttonSize())
		obj.Move(positions[i])
	}
}

func (l controlsLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	btn := l.buttonSize()
	return fyne.NewSize(btn.Width*float32(len(objects)), btn.Height)
}

// setupTray installs the tray menu used to bring a minimized window back
func setupTray(app fyne.App, localization *Localization, onShow, onQuit func()) bool {
	desk, ok := app.(desktop.App)
	if !ok {
		return false
	}

	quit := fyne.NewMenuItem(localization.GetText(KeyQuit), onQuit)
	quit.IsQuit = true
	desk.SetSystemTrayMenu(fyne.NewMenu(TrayMenuTitle,
		fyne.NewMenuItem(localization.GetText(KeyShow), onShow),
		quit,
	))
	return true
}
