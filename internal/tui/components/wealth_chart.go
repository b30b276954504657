package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hpgo/homebuyer-calculator/internal/tui/tuistyles"
)

// DataSeries is one plotted line, e.g. buyer wealth by year.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// WealthChart plots one or two yearly series as an ASCII line chart. It is
// sized for the ten-year projection but handles any point count above one.
type WealthChart struct {
	Title  string
	Series []*DataSeries
	Width  int
	Height int
}

// NewWealthChart creates a chart with the default dimensions.
func NewWealthChart(title string) *WealthChart {
	return &WealthChart{
		Title:  title,
		Width:  56,
		Height: 12,
	}
}

// AddSeries appends a line to the chart.
func (c *WealthChart) AddSeries(name string, points []float64, color lipgloss.Color) *WealthChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the plot area dimensions.
func (c *WealthChart) WithSize(width, height int) *WealthChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart with Y-axis labels and a legend.
func (c *WealthChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(tuistyles.ColorPrimary).
			Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

func (c *WealthChart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			minVal = math.Min(minVal, p)
			maxVal = math.Max(maxVal, p)
		}
	}
	if minVal > maxVal {
		return 0, 0
	}
	pad := (maxVal - minVal) * 0.1
	if pad == 0 {
		pad = 1
	}
	return minVal - pad, maxVal + pad
}

func (c *WealthChart) renderGrid(minVal, maxVal float64) string {
	const yAxisWidth = 9
	plotWidth := c.Width - yAxisWidth
	if plotWidth < 10 {
		plotWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for idx, s := range c.Series {
		if len(s.Points) < 2 {
			continue
		}
		char := seriesChar(idx)
		prevX, prevY := -1, -1
		for i, point := range s.Points {
			x := int(float64(i) / float64(len(s.Points)-1) * float64(plotWidth-1))
			y := c.Height - 1 - int((point-minVal)/(maxVal-minVal)*float64(c.Height-1))
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y, char)
			}
			if x >= 0 && x < plotWidth && y >= 0 && y < c.Height {
				grid[y][x] = char
			}
			prevX, prevY = x, y
		}
	}

	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	var out strings.Builder
	valueRange := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		out.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", plotWidth))
	out.WriteString("\n")
	out.WriteString(strings.Repeat(" ", yAxisWidth+3))
	out.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("year 1"))
	out.WriteString(strings.Repeat(" ", max(0, plotWidth-14)))
	out.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("year 10"))

	return out.String()
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■'}
	return chars[index%len(chars)]
}

// drawLine connects two grid points using Bresenham's algorithm.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *WealthChart) renderLegend() string {
	var items []string
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Render(strings.Join(items, "   "))
}

func formatChartValue(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case abs >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
