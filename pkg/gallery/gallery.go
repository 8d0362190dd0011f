// Package gallery is the component preview harness: a bubbletea program
// that cycles through the kit's components so each one can be eyeballed
// against live theme edits without wiring up the whole app.
package gallery

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tickerlens/tickerlens/pkg/chart"
	"github.com/tickerlens/tickerlens/pkg/legend"
	"github.com/tickerlens/tickerlens/pkg/theme"
	"github.com/tickerlens/tickerlens/pkg/ui"
)

// buttonHoldTime is how long a keyboard-triggered press stays down
// before the button springs back.
const buttonHoldTime = 400 * time.Millisecond

// statusTime is how long transient status messages stay visible.
const statusTime = 2 * time.Second

// preview is one gallery page: a name for the picker and a renderer
// reading the model's current state.
type preview struct {
	name   string
	render func(m Model) string
}

// Config configures a gallery.
type Config struct {
	Theme theme.Theme

	// ThemePath and Reloads enable live theme reloading: whenever
	// Reloads delivers, the override at ThemePath is re-applied.
	ThemePath string
	Reloads   <-chan struct{}
}

// Model is the gallery's bubbletea model.
type Model struct {
	theme     theme.Theme
	themePath string
	reloads   <-chan struct{}

	previews []preview
	index    int

	buy       ui.TradeButton
	sell      ui.TradeButton
	activeTab int

	picker     pickerModel
	showPicker bool
	overlay    helpOverlay
	helpBar    help.Model
	keys       keyMap

	width  int
	height int
	status string
}

type releaseMsg struct{ side ui.Side }
type statusExpireMsg struct{}
type themeReloadMsg struct {
	theme theme.Theme
	err   error
}

// New creates a gallery model.
func New(cfg Config) Model {
	m := Model{
		theme:     cfg.Theme,
		themePath: cfg.ThemePath,
		reloads:   cfg.Reloads,
		buy:       ui.NewTradeButton(ui.Buy, cfg.Theme),
		sell:      ui.NewTradeButton(ui.Sell, cfg.Theme),
		overlay:   newHelpOverlay(cfg.Theme),
		helpBar:   help.New(),
		keys:      defaultKeyMap(),
	}
	m.previews = buildPreviews()
	m.picker = newPicker(m.previewNames(), cfg.Theme)
	return m
}

// buildPreviews assembles the gallery pages: one legend card per chart
// kind (over its sample series), the trade buttons, each empty state,
// and the tab icon strip.
func buildPreviews() []preview {
	var out []preview

	for _, kind := range legend.Kinds() {
		kind := kind
		out = append(out, preview{
			name: "Legend · " + string(kind),
			render: func(m Model) string {
				backdrop := renderBackdrop(kind, m.theme)
				card := ui.NewLegendView(m.theme).Render(legend.GetOrEmpty(kind))
				return backdrop + "\n" + card
			},
		})
	}

	out = append(out, preview{
		name: "Trade Buttons",
		render: func(m Model) string {
			buttons := lipgloss.JoinHorizontal(lipgloss.Top,
				m.buy.View(),
				strings.Repeat(" ", ui.SpaceMD),
				m.sell.View(),
			)
			state := "enabled"
			if m.buy.State() == ui.StateDisabled {
				state = "disabled"
			}
			caption := ui.CaptionStyle(m.theme).Render("b/s to press · d to toggle (" + state + ")")
			return buttons + "\n\n" + caption
		},
	})

	for _, es := range ui.EmptyStates() {
		es := es
		out = append(out, preview{
			name: "Empty State · " + es.Title,
			render: func(m Model) string {
				return ui.RenderEmptyState(m.theme, es)
			},
		})
	}

	out = append(out, preview{
		name: "Tab Icons",
		render: func(m Model) string {
			strip := ui.RenderTabStrip(m.theme, m.activeTab)
			caption := ui.CaptionStyle(m.theme).Render("t to cycle the active tab")
			return strip + "\n\n" + caption
		},
	})

	return out
}

// renderBackdrop draws the sample series behind a legend card.
func renderBackdrop(kind legend.ChartKind, th theme.Theme) string {
	switch kind {
	case legend.KindCandlestick:
		candles := chart.SampleCandles()
		return chart.CandleRow(candles, th) + "\n" + chart.VolumeRow(candles, th)
	case legend.KindPnL:
		return th.Renderer.NewStyle().Foreground(th.Bull).Render(chart.Sparkline(chart.SampleEquity()))
	case legend.KindPrice:
		return th.Renderer.NewStyle().Foreground(th.Info).Render(chart.Sparkline(chart.SamplePrice()))
	}
	return ""
}

func (m Model) previewNames() []string {
	names := make([]string, len(m.previews))
	for i, p := range m.previews {
		names[i] = p.name
	}
	return names
}

// Index returns the enumerated selection index of the current preview.
func (m Model) Index() int { return m.index }

// CurrentPreview returns the name of the current preview.
func (m Model) CurrentPreview() string { return m.previews[m.index].name }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.reloads != nil {
		return m.waitForReload()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpBar.Width = msg.Width
		return m, nil

	case ui.ButtonFrameMsg:
		var bCmd, sCmd tea.Cmd
		m.buy, bCmd = m.buy.Update(msg)
		m.sell, sCmd = m.sell.Update(msg)
		return m, tea.Batch(bCmd, sCmd)

	case releaseMsg:
		var cmd tea.Cmd
		if msg.side == ui.Buy {
			m.buy, cmd = m.buy.Release()
		} else {
			m.sell, cmd = m.sell.Release()
		}
		return m, cmd

	case statusExpireMsg:
		m.status = ""
		return m, nil

	case themeReloadMsg:
		return m.applyReload(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if idx, ok := m.picker.Confirmed(); ok {
			m.index = idx
			m.showPicker = false
		} else if m.picker.Cancelled() {
			m.showPicker = false
		}
		return m, cmd
	}

	if m.overlay.IsVisible() {
		m.overlay.Hide()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.index = (m.index + 1) % len(m.previews)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.index = (m.index - 1 + len(m.previews)) % len(m.previews)
		return m, nil

	case key.Matches(msg, m.keys.Picker):
		m.picker = newPicker(m.previewNames(), m.theme)
		m.showPicker = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.overlay.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Buy):
		var cmd tea.Cmd
		m.buy, cmd = m.buy.Press()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, holdThenRelease(ui.Buy))

	case key.Matches(msg, m.keys.Sell):
		var cmd tea.Cmd
		m.sell, cmd = m.sell.Press()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, holdThenRelease(ui.Sell))

	case key.Matches(msg, m.keys.Disable):
		if m.buy.State() == ui.StateDisabled {
			m.buy = m.buy.Enable()
			m.sell = m.sell.Enable()
		} else {
			m.buy = m.buy.Disable()
			m.sell = m.sell.Disable()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.activeTab = (m.activeTab + 1) % len(ui.Tabs())
		return m, nil

	case key.Matches(msg, m.keys.Yank):
		return m.yank()
	}
	return m, nil
}

// yank copies the current preview, re-rendered without colors, to the
// system clipboard.
func (m Model) yank() (tea.Model, tea.Cmd) {
	plain := m
	plain.theme = theme.Default(lipgloss.NewRenderer(io.Discard))
	plain.buy = ui.NewTradeButton(ui.Buy, plain.theme)
	plain.sell = ui.NewTradeButton(ui.Sell, plain.theme)

	text := plain.previews[plain.index].render(plain)
	if err := clipboard.WriteAll(text); err != nil {
		m.status = "Copy failed: " + err.Error()
	} else {
		m.status = "Copied " + m.CurrentPreview()
	}
	return m, expireStatus()
}

func (m Model) applyReload(msg themeReloadMsg) (tea.Model, tea.Cmd) {
	next := m.waitForReload()
	if msg.err != nil {
		m.status = "Theme reload failed: " + msg.err.Error()
		return m, tea.Batch(next, expireStatus())
	}

	m.theme = msg.theme
	m.buy = ui.NewTradeButton(ui.Buy, m.theme)
	m.sell = ui.NewTradeButton(ui.Sell, m.theme)
	m.overlay = newHelpOverlay(m.theme)
	m.status = "Theme reloaded"
	return m, tea.Batch(next, expireStatus())
}

// waitForReload blocks on the watcher channel and re-applies the theme
// override when it fires.
func (m Model) waitForReload() tea.Cmd {
	ch := m.reloads
	path := m.themePath
	renderer := m.theme.Renderer
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		th := theme.Default(renderer)
		o, err := theme.LoadOverride(path)
		if err != nil {
			return themeReloadMsg{err: err}
		}
		th, err = th.Apply(o)
		if err != nil {
			return themeReloadMsg{err: err}
		}
		return themeReloadMsg{theme: th}
	}
}

func holdThenRelease(side ui.Side) tea.Cmd {
	return tea.Tick(buttonHoldTime, func(time.Time) tea.Msg {
		return releaseMsg{side: side}
	})
}

func expireStatus() tea.Cmd {
	return tea.Tick(statusTime, func(time.Time) tea.Msg {
		return statusExpireMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	header := ui.TitleStyle(m.theme).Render("tickerlens gallery") +
		ui.CaptionStyle(m.theme).Render(fmt.Sprintf("  %d/%d · %s", m.index+1, len(m.previews), m.CurrentPreview()))

	var body string
	switch {
	case m.showPicker:
		body = m.picker.View()
	case m.overlay.IsVisible():
		body = m.overlay.View()
	default:
		body = m.previews[m.index].render(m)
	}

	footer := m.helpBar.View(m.keys)
	if m.status != "" {
		footer = ui.CaptionStyle(m.theme).Render(m.status) + "\n" + footer
	}

	parts := []string{header, "", body, "", footer}
	out := strings.Join(parts, "\n")
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, out)
	}
	return out
}
