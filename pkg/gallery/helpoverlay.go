package gallery

import (
	"github.com/charmbracelet/glamour"

	"github.com/tickerlens/tickerlens/pkg/theme"
	"github.com/tickerlens/tickerlens/pkg/ui"
)

const helpMarkdown = `# Component Gallery

Cycle the previews with the arrow keys, or hit ` + "`/`" + ` to jump by name.

## Keys

| Key | Action |
|-----|--------|
| → / l / tab | Next preview |
| ← / h | Previous preview |
| / | Find a preview by name |
| b / s | Press the buy / sell button |
| d | Toggle the trade buttons enabled |
| t | Cycle the active tab icon |
| y | Copy the current preview as text |
| ? | Toggle this help |
| q | Quit |

Point the gallery at a theme file with ` + "`-theme`" + ` and edits to it
apply live.
`

// helpOverlay renders the keyboard help, formatted once through glamour.
type helpOverlay struct {
	visible  bool
	rendered string
	theme    theme.Theme
}

func newHelpOverlay(th theme.Theme) helpOverlay {
	out, err := glamour.Render(helpMarkdown, "dark")
	if err != nil {
		// Fall back to the raw markdown rather than losing the help.
		out = helpMarkdown
	}
	return helpOverlay{rendered: out, theme: th}
}

// Toggle flips visibility.
func (h *helpOverlay) Toggle() { h.visible = !h.visible }

// Hide makes the overlay invisible.
func (h *helpOverlay) Hide() { h.visible = false }

// IsVisible returns true if the overlay is showing.
func (h helpOverlay) IsVisible() bool { return h.visible }

// View renders the overlay.
func (h helpOverlay) View() string {
	if !h.visible {
		return ""
	}
	return ui.CardStyle(h.theme).Render(h.rendered)
}
