package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoProvider is returned when a preview runs without metadata.
	ErrNoProvider = errors.New("tui: no metadata provider configured")
)
