package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hpgo/homebuyer-calculator/internal/calculation"
	"github.com/hpgo/homebuyer-calculator/internal/config"
	"github.com/hpgo/homebuyer-calculator/internal/domain"
)

// Model is the entire application state.
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Inputs and results
	snapshotPath string
	source       string
	snapshot     domain.InputSnapshot
	warnings     []string
	bundle       *domain.ResultsBundle

	engine *calculation.Engine

	parameters *ParametersModel

	err     error
	loading bool
}

// NewModel creates the application model. snapshotPath may be empty, in
// which case the built-in defaults are used.
func NewModel(snapshotPath string) Model {
	return Model{
		currentScene: SceneHome,
		snapshotPath: snapshotPath,
		engine:       calculation.NewEngine(),
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init loads the base snapshot (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadSnapshotCmd(m.snapshotPath)
}

// loadSnapshotCmd returns a command that loads the base inputs.
func loadSnapshotCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return SnapshotLoadedMsg{
				Snapshot: domain.DefaultInputs(),
				Source:   "defaults",
			}
		}

		parser := config.NewInputParser()
		file, warnings, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return SnapshotLoadedMsg{
			Snapshot: file.BaseSnapshot(),
			Source:   path,
			Warnings: warnings,
		}
	}
}

// recalcCmd returns a command that runs the pipeline on the given snapshot.
// The pipeline is pure and fast so this completes within one update cycle.
func recalcCmd(engine *calculation.Engine, snapshot domain.InputSnapshot) tea.Cmd {
	return func() tea.Msg {
		return RecalculatedMsg{Bundle: engine.Recalculate(snapshot)}
	}
}
