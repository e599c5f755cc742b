package model

// Package model defines the dashboard's domain data: the backend state document,
// metric formatting, task list items and the tri-state status flags shown on the
// indicator buttons. Structures are plain values meant for direct use in the UI.
