package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case SnapshotLoadedMsg:
		m.snapshot = msg.Snapshot
		m.source = msg.Source
		m.warnings = msg.Warnings
		m.loading = false
		m.parameters = NewParametersModel(msg.Snapshot)
		return m, recalcCmd(m.engine, msg.Snapshot)

	case RecalcRequestMsg:
		if m.parameters != nil {
			m.snapshot = m.parameters.Snapshot()
			return m, recalcCmd(m.engine, m.snapshot)
		}
		return m, nil

	case RecalculatedMsg:
		m.bundle = msg.Bundle
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An error screen swallows the next keypress.
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, navigate(SceneHelp)
		}

	case "esc":
		if m.currentScene != SceneHome {
			target := SceneHome
			if m.previousScene != m.currentScene {
				target = m.previousScene
			}
			return m, navigate(target)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m, navigate(SceneHome)
		}

	case "p":
		if m.currentScene != SceneParameters {
			return m, navigate(SceneParameters)
		}

	case "r":
		if m.currentScene != SceneResults {
			return m, navigate(SceneResults)
		}
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates remaining messages to the current scene.
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.currentScene == SceneParameters && m.parameters != nil {
		updated, cmd := m.parameters.Update(msg)
		m.parameters = updated
		return m, cmd
	}
	return m, nil
}
