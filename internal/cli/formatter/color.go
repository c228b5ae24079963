package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkorsten/foresight/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ConfidenceColor returns the lipgloss style for the given confidence band.
func ConfidenceColor(c domain.Confidence) lipgloss.Style {
	switch c {
	case domain.ConfidenceVeryHigh, domain.ConfidenceHigh:
		return StyleGreen
	case domain.ConfidenceMedium:
		return StyleYellow
	case domain.ConfidenceLow:
		return StyleRed
	default:
		return StyleDim
	}
}

// ConfidenceIndicator returns a colored confidence string such as "● HIGH".
func ConfidenceIndicator(c domain.Confidence) string {
	switch c {
	case domain.ConfidenceVeryHigh:
		return StyleGreen.Render("● VERY HIGH")
	case domain.ConfidenceHigh:
		return StyleGreen.Render("● HIGH")
	case domain.ConfidenceMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.ConfidenceLow:
		return StyleRed.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// RiskIndicator maps a 0-100 delay risk score to a colored severity label.
func RiskIndicator(score int) string {
	switch {
	case score >= 70:
		return StyleRed.Render(fmt.Sprintf("● HIGH (%d)", score))
	case score >= 40:
		return StyleYellow.Render(fmt.Sprintf("● MEDIUM (%d)", score))
	default:
		return StyleGreen.Render(fmt.Sprintf("● LOW (%d)", score))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
