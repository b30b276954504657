package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
	"github.com/hpgo/homebuyer-calculator/internal/tui/components"
)

// Slider order, used when applying values back to the snapshot.
const (
	sliderPrice = iota
	sliderRate
	sliderDownPayment
	sliderExtraMonthly
	sliderRent
	sliderCount
)

// ParametersModel is the interactive what-if scene: a stack of sliders over
// the base snapshot. Every adjustment reruns the full pipeline.
type ParametersModel struct {
	base          domain.InputSnapshot
	sliders       []*components.ParameterSlider
	focusedSlider int
	modified      bool
}

// NewParametersModel builds sliders seeded from the base snapshot.
func NewParametersModel(base domain.InputSnapshot) *ParametersModel {
	m := &ParametersModel{base: base}
	m.buildSliders()
	return m
}

func (m *ParametersModel) buildSliders() {
	m.sliders = make([]*components.ParameterSlider, sliderCount)

	m.sliders[sliderPrice] = components.NewParameterSlider(
		"Purchase Price", m.base.PurchasePrice.InexactFloat64(), 100000, 3000000, 10000).
		WithPrefix("$").
		WithFormat("%.0f")

	m.sliders[sliderRate] = components.NewParameterSlider(
		"Interest Rate", m.base.InterestRate.InexactFloat64(), 1, 12, 0.125).
		WithUnit("%").
		WithFormat("%.3f")

	m.sliders[sliderDownPayment] = components.NewParameterSlider(
		"Down Payment", m.base.EffectiveDownPaymentPercent().InexactFloat64(), 0, 50, 1).
		WithUnit("%").
		WithFormat("%.0f")

	m.sliders[sliderExtraMonthly] = components.NewParameterSlider(
		"Extra Monthly Payment", m.base.ExtraMonthly.InexactFloat64(), 0, 3000, 50).
		WithPrefix("$").
		WithFormat("%.0f")

	m.sliders[sliderRent] = components.NewParameterSlider(
		"Comparison Rent", m.base.RentAmount.InexactFloat64(), 500, 10000, 100).
		WithPrefix("$").
		WithFormat("%.0f")

	m.focusedSlider = 0
	m.sliders[0].SetFocused(true)
	m.modified = false
}

// SetBase replaces the base snapshot and rebuilds the sliders.
func (m *ParametersModel) SetBase(base domain.InputSnapshot) {
	m.base = base
	m.buildSliders()
}

// Snapshot returns the base snapshot with the slider values applied. The
// down payment slider always writes percent mode, so a base expressed as a
// dollar amount converts once the slider moves.
func (m *ParametersModel) Snapshot() domain.InputSnapshot {
	s := m.base
	s.PurchasePrice = decimal.NewFromFloat(m.sliders[sliderPrice].Value)
	s.InterestRate = decimal.NewFromFloat(m.sliders[sliderRate].Value)
	s.DownPaymentMode = domain.DownPaymentPercent
	s.DownPaymentPercent = decimal.NewFromFloat(m.sliders[sliderDownPayment].Value)
	s.ExtraMonthly = decimal.NewFromFloat(m.sliders[sliderExtraMonthly].Value)
	s.RentAmount = decimal.NewFromFloat(m.sliders[sliderRent].Value)
	return s
}

// Update handles messages for the parameters scene.
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(keyMsg)
	}
	return m, nil
}

func (m *ParametersModel) handleKeyPress(msg tea.KeyMsg) (*ParametersModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
		m.sliders[m.focusedSlider].Decrement()
		m.modified = true
		return m, requestRecalc()

	case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
		m.sliders[m.focusedSlider].Increment()
		m.modified = true
		return m, requestRecalc()

	case key.Matches(msg, key.NewBinding(key.WithKeys("x"))):
		m.buildSliders()
		return m, requestRecalc()

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		return m, func() tea.Msg {
			return NavigateMsg{Scene: SceneResults}
		}
	}

	return m, nil
}

func requestRecalc() tea.Cmd {
	return func() tea.Msg {
		return RecalcRequestMsg{}
	}
}

func (m *ParametersModel) moveFocus(delta int) {
	next := m.focusedSlider + delta
	if next < 0 || next >= len(m.sliders) {
		return
	}
	m.sliders[m.focusedSlider].SetFocused(false)
	m.focusedSlider = next
	m.sliders[m.focusedSlider].SetFocused(true)
}

// View renders the slider stack plus a live summary of the key outputs.
func (m *ParametersModel) View(bundle *domain.ResultsBundle) string {
	var rendered []string
	for _, slider := range m.sliders {
		rendered = append(rendered, slider.Render(), "")
	}

	slidersBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 3).
		Render(strings.Join(rendered, "\n"))

	summary := renderLiveSummary(bundle)

	status := ""
	if m.modified {
		status = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Render("Adjusted. Press Enter for full results, x to reset.")
	}

	help := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render("↑/↓ select  ←/→ adjust  Enter results  x reset  ESC back")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, slidersBox, "  ", summary),
		"",
		status,
		help,
	)
}

// renderLiveSummary shows the headline numbers next to the sliders so the
// effect of each adjustment is visible without leaving the scene.
func renderLiveSummary(bundle *domain.ResultsBundle) string {
	if bundle == nil {
		return InfoStyle.Render("Calculating...")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Monthly PITI", FormatCurrency(bundle.PITI.TotalPITI)},
		{"True Monthly Cost", FormatCurrency(bundle.PITI.TrueMonthlyCost)},
		{"Cash to Close", FormatCurrency(bundle.Upfront.TotalCashNeeded)},
		{"Monthly Tax Benefit", FormatCurrency(bundle.TaxBenefits.MonthlySavings)},
	}
	if len(bundle.Schedule) > 0 {
		last := bundle.Schedule[len(bundle.Schedule)-1]
		rows = append(rows, struct {
			label string
			value string
		}{"10-Year Wealth", FormatCurrency(last.TotalWealthImpact)})
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(MetricLabelStyle.Render(r.label))
		b.WriteString("\n")
		b.WriteString(MetricValueStyle.Render(r.value))
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 3).
		Render(strings.TrimRight(b.String(), "\n"))
}
