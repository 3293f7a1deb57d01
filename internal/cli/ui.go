package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - keys
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Output helpers
// =============================================================================

// printer writes styled report lines to one writer.
type printer struct {
	w io.Writer
}

func (p printer) title(format string, args ...any) {
	fmt.Fprintln(p.w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

func (p printer) success(format string, args ...any) {
	fmt.Fprintln(p.w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (p printer) warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(msg))
}

// keyValue prints a labeled value with an aligned key column.
func (p printer) keyValue(key, value string) {
	fmt.Fprintln(p.w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// keyNumber prints a labeled integer.
func (p printer) keyNumber(key string, n int64) {
	fmt.Fprintln(p.w, styleKey.Render(key)+" "+styleNumber.Render(fmt.Sprint(n)))
}

// stats prints graph size on a single dim line: "  6 vertices · 9 edges · directed".
func (p printer) stats(vertices, edges int, directed bool) {
	kind := "undirected"
	if directed {
		kind = "directed"
	}
	parts := []string{
		fmt.Sprintf("%d vertices", vertices),
		fmt.Sprintf("%d edges", edges),
		kind,
	}
	fmt.Fprintln(p.w, "  "+styleDim.Render(strings.Join(parts, " · ")))
}

// path prints "  → 1 → 2 → 4".
func (p printer) path(steps []string) {
	fmt.Fprintln(p.w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(strings.Join(steps, " "+iconArrow+" ")))
}

func toStrings[T any](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// joinIDs renders values space-separated.
func joinIDs[T any](vs []T) string {
	return strings.Join(toStrings(vs), " ")
}
