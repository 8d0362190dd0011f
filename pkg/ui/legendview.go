package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tickerlens/tickerlens/pkg/legend"
	"github.com/tickerlens/tickerlens/pkg/theme"
)

// LegendView renders a legend set as a titled card with a two-column
// grid of indicator + label cells. Entries fill the grid left-to-right,
// top-to-bottom, preserving the set's order.
type LegendView struct {
	theme   theme.Theme
	columns int
}

// NewLegendView creates a legend card renderer.
func NewLegendView(t theme.Theme) LegendView {
	return LegendView{theme: t, columns: 2}
}

// WithColumns returns a copy rendering with the given column count.
// Values below 1 are clamped to 1.
func (v LegendView) WithColumns(n int) LegendView {
	if n < 1 {
		n = 1
	}
	v.columns = n
	return v
}

// Render draws the legend card. An empty set renders as a card with
// only its title (or nothing), so unknown-kind fallbacks stay visually
// quiet instead of failing.
func (v LegendView) Render(set legend.Set) string {
	var lines []string

	if set.Title != "" {
		lines = append(lines, TitleStyle(v.theme).Render(set.Title))
	}

	if len(set.Entries) > 0 {
		cells := make([]string, len(set.Entries))
		widths := make([]int, len(set.Entries))
		for i, e := range set.Entries {
			cells[i] = v.renderMarker(e.Indicator) + " " + v.theme.Renderer.NewStyle().Foreground(v.theme.Text).Render(e.Label)
			// Marker and separator are both one cell wide.
			widths[i] = 2 + runewidth.StringWidth(e.Label)
		}

		colWidth := 0
		for _, w := range widths {
			if w > colWidth {
				colWidth = w
			}
		}
		colWidth += SpaceSM

		var row strings.Builder
		for i, cell := range cells {
			row.WriteString(cell)
			lastInRow := (i+1)%v.columns == 0 || i == len(cells)-1
			if lastInRow {
				lines = append(lines, row.String())
				row.Reset()
			} else {
				row.WriteString(strings.Repeat(" ", colWidth-widths[i]))
			}
		}
	}

	return CardStyle(v.theme).Render(strings.Join(lines, "\n"))
}

// renderMarker draws the one-cell visual indicator: a colored swatch
// dot for color indicators, a glyph for icon indicators.
func (v LegendView) renderMarker(in legend.Indicator) string {
	if name, ok := in.Icon(); ok {
		return v.theme.Renderer.NewStyle().Foreground(v.theme.Info).Render(IconGlyph(name))
	}
	return v.theme.Renderer.NewStyle().Foreground(swatchColor(in)).Render(SwatchGlyph)
}

// swatchColor resolves an indicator's color token to a terminal color.
func swatchColor(in legend.Indicator) lipgloss.TerminalColor {
	c, ok := in.RGBA()
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
