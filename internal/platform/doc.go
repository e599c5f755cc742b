package platform

// Package platform contains OS integration for the dashboard: the login name of
// the current user and opening or revealing files in the desktop environment.
