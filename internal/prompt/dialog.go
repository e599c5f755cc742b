package prompt

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DialogPrompter shows prompts as fyne dialogs on top of a window
type DialogPrompter struct {
	window fyne.Window
}

// NewDialogPrompter creates a prompter bound to the given parent window
func NewDialogPrompter(window fyne.Window) *DialogPrompter {
	return &DialogPrompter{window: window}
}

// Prompt shows the dialog and reports the pressed button through onChoice
func (p *DialogPrompter) Prompt(kind Kind, message, title string, onChoice func(Choice)) {
	spec := kind.Spec()

	icon := widget.NewIcon(theme.Current().Icon(spec.Icon))
	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord
	content := container.NewBorder(nil, nil, container.NewCenter(icon), nil, text)

	d := dialog.NewCustomConfirm(
		title,
		spec.Confirm.String(),
		spec.Dismiss.String(),
		content,
		func(confirmed bool) {
			choice := spec.Resolve(confirmed)
			log.Printf("Prompt %q (%s) closed with %s", title, kind, choice)
			if onChoice != nil {
				onChoice(choice)
			}
		},
		p.window,
	)
	d.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	d.Show()
}

// Dialog sizing
const (
	DialogWidth  float32 = 380
	DialogHeight float32 = 180
)
