package ui

import (
	"strings"

	"github.com/tickerlens/tickerlens/pkg/theme"
)

// EmptyState is a placeholder illustration shown where data would be:
// a small piece of line art with a title and caption.
type EmptyState struct {
	Name    string
	Art     []string
	Title   string
	Caption string
}

// EmptyStates returns the predefined empty-state illustrations, in the
// order the gallery cycles them.
func EmptyStates() []EmptyState {
	return []EmptyState{
		{
			Name: "no-chart-data",
			Art: []string{
				`  ┌────────────┐`,
				`  │ ╌╌╌╌╌╌╌╌╌╌ │`,
				`  └────────────┘`,
			},
			Title:   "No Chart Data",
			Caption: "Data will appear once the market opens.",
		},
		{
			Name: "no-positions",
			Art: []string{
				`   ┌──────┐`,
				`   │      │`,
				`   └──────┘`,
			},
			Title:   "No Open Positions",
			Caption: "Your positions will show up here.",
		},
		{
			Name: "no-watchlist",
			Art: []string{
				`    ✩ ✩ ✩`,
			},
			Title:   "Watchlist Is Empty",
			Caption: "Star a symbol to keep an eye on it.",
		},
	}
}

// RenderEmptyState draws the illustration centered in a card.
func RenderEmptyState(t theme.Theme, es EmptyState) string {
	art := t.Renderer.NewStyle().Foreground(t.Muted).Render(strings.Join(es.Art, "\n"))
	title := TitleStyle(t).Render(es.Title)
	caption := CaptionStyle(t).Render(es.Caption)

	body := strings.Join([]string{art, "", title, caption}, "\n")
	return CardStyle(t).Render(body)
}
