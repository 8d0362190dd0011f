package ui

import (
	"strings"

	"github.com/tickerlens/tickerlens/pkg/theme"
)

// TabIcon is one entry of the app's bottom tab bar.
type TabIcon struct {
	Name  string
	Glyph string
	Label string
}

// Tabs returns the tab bar icons in display order.
func Tabs() []TabIcon {
	return []TabIcon{
		{Name: "watchlist", Glyph: "☰", Label: "Watchlist"},
		{Name: "charts", Glyph: "📈", Label: "Charts"},
		{Name: "trade", Glyph: "⇄", Label: "Trade"},
		{Name: "portfolio", Glyph: "◔", Label: "Portfolio"},
		{Name: "settings", Glyph: "⚙", Label: "Settings"},
	}
}

// RenderTabStrip draws the tab bar with the tab at active highlighted.
// An out-of-range active index renders every tab inactive.
func RenderTabStrip(t theme.Theme, active int) string {
	tabs := Tabs()

	activeStyle := t.Renderer.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Padding(0, SpaceXS)
	inactiveStyle := t.Renderer.NewStyle().
		Foreground(t.Muted).
		Padding(0, SpaceXS)

	cells := make([]string, len(tabs))
	for i, tab := range tabs {
		cell := tab.Glyph + " " + tab.Label
		if i == active {
			cells[i] = activeStyle.Render(cell)
		} else {
			cells[i] = inactiveStyle.Render(cell)
		}
	}
	return strings.Join(cells, " ")
}
