package window

import "fyne.io/fyne/v2"

// Control button offsets
const (
	menuBottomOffset   = 51
	settingsX          = 70
	userX              = 140
	collapseRightInset = 81
	toggleRightInset   = 41
	headerTopOffset    = 10
)

// Controls holds the positions of the window control buttons
type Controls struct {
	Quit     fyne.Position
	Settings fyne.Position
	User     fyne.Position
	Collapse fyne.Position
	Toggle   fyne.Position
}

// ControlPositions places quit, settings and user along the bottom of the
// menu frame and collapse and toggle at the right of the header frame
func ControlPositions(menu, header fyne.Size) Controls {
	bottom := menu.Height - menuBottomOffset
	return Controls{
		Quit:     fyne.NewPos(0, bottom),
		Settings: fyne.NewPos(settingsX, bottom),
		User:     fyne.NewPos(userX, bottom),
		Collapse: fyne.NewPos(header.Width-collapseRightInset, headerTopOffset),
		Toggle:   fyne.NewPos(header.Width-toggleRightInset, headerTopOffset),
	}
}
