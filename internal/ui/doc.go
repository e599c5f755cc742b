package ui

// Package ui contains the Fyne-based dashboard window. It composes the metric
// cards, chart view, task list and status indicators, wires every button to
// its handler, and drives the frameless window chrome. All prompt texts are
// localized via Localization.
