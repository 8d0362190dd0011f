package gallery

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/tickerlens/tickerlens/pkg/theme"
	"github.com/tickerlens/tickerlens/pkg/ui"
)

// pickerModel is the fuzzy-search overlay for jumping to a preview.
type pickerModel struct {
	input    textinput.Model
	names    []string
	filtered []int // indices into names, in match order
	cursor   int
	theme    theme.Theme

	confirmed bool
	cancelled bool
	choice    int
}

func newPicker(names []string, th theme.Theme) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Search previews..."
	ti.CharLimit = 48
	ti.Width = 32
	ti.Focus()

	all := make([]int, len(names))
	for i := range names {
		all[i] = i
	}
	return pickerModel{
		input:    ti,
		names:    names,
		filtered: all,
		theme:    th,
	}
}

// Confirmed returns the chosen preview index once the user hits enter.
func (p pickerModel) Confirmed() (int, bool) {
	return p.choice, p.confirmed
}

// Cancelled reports whether the picker was dismissed.
func (p pickerModel) Cancelled() bool { return p.cancelled }

func (p pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			p.cancelled = true
			return p, nil
		case "enter":
			if len(p.filtered) > 0 {
				p.choice = p.filtered[p.cursor]
				p.confirmed = true
			} else {
				p.cancelled = true
			}
			return p, nil
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.refilter()
	return p, cmd
}

// refilter recomputes the match list for the current query.
func (p *pickerModel) refilter() {
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.filtered = make([]int, len(p.names))
		for i := range p.names {
			p.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, p.names)
		p.filtered = make([]int, len(matches))
		for i, m := range matches {
			p.filtered[i] = m.Index
		}
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
}

func (p pickerModel) View() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle(p.theme).Render("Go to preview"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.filtered) == 0 {
		b.WriteString(ui.CaptionStyle(p.theme).Render("No matches"))
	}

	selStyle := p.theme.Renderer.NewStyle().
		Foreground(p.theme.Accent).
		Bold(true)
	rowStyle := p.theme.Renderer.NewStyle().
		Foreground(p.theme.Text)

	for i, idx := range p.filtered {
		if i == p.cursor {
			b.WriteString(selStyle.Render("> " + p.names[idx]))
		} else {
			b.WriteString(rowStyle.Render("  " + p.names[idx]))
		}
		if i < len(p.filtered)-1 {
			b.WriteString("\n")
		}
	}

	return ui.CardStyle(p.theme).Render(b.String())
}
