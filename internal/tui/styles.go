package tui

import "github.com/hpgo/homebuyer-calculator/internal/tui/tuistyles"

// Re-export styles from tuistyles so scenes and components share one palette
// without an import cycle.
var (
	ColorPrimary = tuistyles.ColorPrimary
	ColorAccent  = tuistyles.ColorAccent
	ColorSuccess = tuistyles.ColorSuccess
	ColorDanger  = tuistyles.ColorDanger
	ColorInfo    = tuistyles.ColorInfo
	ColorMuted   = tuistyles.ColorMuted
	ColorBorder  = tuistyles.ColorBorder

	TitleStyle       = tuistyles.TitleStyle
	SubtitleStyle    = tuistyles.SubtitleStyle
	StatusBarStyle   = tuistyles.StatusBarStyle
	StatusKeyStyle   = tuistyles.StatusKeyStyle
	BorderStyle      = tuistyles.BorderStyle
	ErrorStyle       = tuistyles.ErrorStyle
	InfoStyle        = tuistyles.InfoStyle
	TableHeaderStyle = tuistyles.TableHeaderStyle
	TableCellStyle   = tuistyles.TableCellStyle
	MetricLabelStyle = tuistyles.MetricLabelStyle
	MetricValueStyle = tuistyles.MetricValueStyle
)

// FormatCurrency is the shared compact money formatter.
var FormatCurrency = tuistyles.FormatCurrency
