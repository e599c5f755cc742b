// Package prompt shows modal messages to the user and reports which button
// was pressed. Dialog kinds form a closed set, each mapped to an icon and a
// fixed pair of buttons.
package prompt

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Kind selects the icon and buttons of a prompt
type Kind int

const (
	// Question asks a Yes/No question
	Question Kind = iota

	// Information reports a success with Ok/Cancel
	Information

	// Warning reports a failure with Ok/Cancel
	Warning
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Question:
		return "Question"
	case Information:
		return "Information"
	case Warning:
		return "Warning"
	default:
		return "Unknown"
	}
}

// Choice is the button the user pressed
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceYes
	ChoiceNo
	ChoiceOk
	ChoiceCancel
)

// String returns the button caption for the choice
func (c Choice) String() string {
	switch c {
	case ChoiceYes:
		return "Yes"
	case ChoiceNo:
		return "No"
	case ChoiceOk:
		return "Ok"
	case ChoiceCancel:
		return "Cancel"
	default:
		return "None"
	}
}

// IsAffirmative reports whether the user accepted the prompt
func (c Choice) IsAffirmative() bool {
	return c == ChoiceYes || c == ChoiceOk
}

// Spec is the presentation of a prompt kind
type Spec struct {
	Icon    fyne.ThemeIconName
	Confirm Choice
	Dismiss Choice
}

// Spec returns the icon and buttons for the kind. Out-of-range kinds are
// presented as Information rather than as an empty dialog.
func (k Kind) Spec() Spec {
	switch k {
	case Question:
		return Spec{Icon: theme.IconNameQuestion, Confirm: ChoiceYes, Dismiss: ChoiceNo}
	case Warning:
		return Spec{Icon: theme.IconNameWarning, Confirm: ChoiceOk, Dismiss: ChoiceCancel}
	default:
		return Spec{Icon: theme.IconNameInfo, Confirm: ChoiceOk, Dismiss: ChoiceCancel}
	}
}

// Resolve maps the confirm/dismiss outcome of a dialog to a Choice
func (s Spec) Resolve(confirmed bool) Choice {
	if confirmed {
		return s.Confirm
	}
	return s.Dismiss
}

// Prompter shows a modal prompt. onChoice, when non-nil, receives the pressed
// button once the dialog closes.
type Prompter interface {
	Prompt(kind Kind, message, title string, onChoice func(Choice))
}
