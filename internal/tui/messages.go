package tui

import (
	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// Scene identifies the screen currently on display.
type Scene int

const (
	SceneHome Scene = iota
	SceneParameters
	SceneResults
	SceneHelp
)

// String returns a human-readable scene name for the breadcrumb.
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle.

// NavigateMsg switches to a different scene.
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}

// SnapshotLoadedMsg carries the base inputs read at startup, either from a
// scenario file or the built-in defaults.
type SnapshotLoadedMsg struct {
	Snapshot domain.InputSnapshot
	Source   string // filename, or "defaults"
	Warnings []string
}

// RecalcRequestMsg asks the main model to rerun the pipeline with the
// current slider values.
type RecalcRequestMsg struct{}

// RecalculatedMsg carries a freshly computed results bundle.
type RecalculatedMsg struct {
	Bundle *domain.ResultsBundle
}
