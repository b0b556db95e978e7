package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#1976d2")
)

var (
	styleOK     = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn   = lipgloss.NewStyle().Foreground(colorYellow)
	styleFail   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleCmd    = lipgloss.NewStyle().Bold(true)
)

// header renders a section title with an underline.
func header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return styleHeader.Render(text) + "\n" + styleDim.Render(line)
}

// check tags a doctor line.
func check(w io.Writer, status, format string, args ...interface{}) {
	var tag string
	switch status {
	case "ok":
		tag = styleOK.Render("[ OK ]")
	case "warn":
		tag = styleWarn.Render("[WARN]")
	case "miss":
		tag = styleWarn.Render("[MISS]")
	default:
		tag = styleFail.Render("[FAIL]")
	}
	fmt.Fprintf(w, "  %s %s\n", tag, fmt.Sprintf(format, args...))
}
