package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tickerlens/tickerlens/pkg/theme"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing and shared container styles
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// CardStyle returns the bordered container used by every component
// preview card.
func CardStyle(t theme.Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceSM)
}

// TitleStyle returns the style for card titles.
func TitleStyle(t theme.Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Bold(true).
		Foreground(t.Accent)
}

// CaptionStyle returns the style for secondary descriptive text.
func CaptionStyle(t theme.Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Foreground(t.Subtext)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(t theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots
func RenderSubtleDivider(t theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Render(strings.Repeat("·", width))
}
