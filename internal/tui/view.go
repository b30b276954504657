package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application.
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err),
		))
	}

	if m.loading {
		return m.renderApp(BorderStyle.Render("Loading inputs..."))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneParameters:
		content = m.renderParameters()
	case SceneResults:
		content = renderResultsScene(m.bundle)
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title bar and status bar.
func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4
	container := lipgloss.NewStyle().Height(contentHeight).Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		container,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Homebuyer Calculator")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("p", "parameters"),
		formatShortcut("r", "results"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, "  ")

	if m.source != "" {
		label := SubtitleStyle.Render(m.source)
		spacer := strings.Repeat(" ", maxInt(0, m.width-lipgloss.Width(statusText)-lipgloss.Width(label)-2))
		statusText = statusText + spacer + label
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderHome renders the landing screen: where the inputs came from, the
// purchase being modeled, and any parser warnings.
func (m Model) renderHome() string {
	var b strings.Builder

	b.WriteString("Interactive home purchase analysis.\n\n")
	b.WriteString(fmt.Sprintf("Purchase price:  %s\n", FormatCurrency(m.snapshot.PurchasePrice)))
	b.WriteString(fmt.Sprintf("Interest rate:   %s%%\n", m.snapshot.InterestRate.StringFixed(3)))
	loanDesc := fmt.Sprintf("%d-year fixed", m.snapshot.LoanTerm)
	if m.snapshot.LoanType.IsARM() {
		loanDesc = fmt.Sprintf("%s/1 ARM, %d-year term", m.snapshot.LoanType, m.snapshot.LoanTerm)
	}
	b.WriteString(fmt.Sprintf("Loan:            %s\n", loanDesc))
	b.WriteString(fmt.Sprintf("Location:        %s\n", m.snapshot.State))
	b.WriteString("\nPress 'p' to adjust parameters or 'r' for the full analysis.")

	content := BorderStyle.Render(b.String())

	if len(m.warnings) > 0 {
		var w strings.Builder
		for _, warning := range m.warnings {
			w.WriteString("! " + warning + "\n")
		}
		warningBlock := lipgloss.NewStyle().
			Foreground(ColorAccent).
			Render(strings.TrimRight(w.String(), "\n"))
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", warningBlock)
	}

	return content
}

func (m Model) renderParameters() string {
	if m.parameters == nil {
		return InfoStyle.Render("Inputs not loaded yet.")
	}
	return m.parameters.View(m.bundle)
}

func renderHelp() string {
	helpText := `Homebuyer Calculator

KEYBOARD SHORTCUTS:
  h        Home
  p        Parameters (adjust and recalculate)
  r        Full results
  ?        This help
  ESC      Back
  q/Ctrl+C Quit

PARAMETERS:
  ↑/↓      Select slider
  ←/→      Adjust value (recalculates immediately)
  Enter    Jump to full results
  x        Reset to the loaded inputs`

	return BorderStyle.Render(helpText)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
