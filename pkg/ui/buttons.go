package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/tickerlens/tickerlens/pkg/theme"
)

// Side is the order side a trade button submits.
type Side int

const (
	Buy Side = iota
	Sell
)

// String returns the button label for the side.
func (s Side) String() string {
	if s == Sell {
		return "SELL"
	}
	return "BUY"
}

// ButtonState is the interaction state of a trade button.
type ButtonState int

const (
	StateIdle ButtonState = iota
	StatePressed
	StateDisabled
)

const buttonFPS = 60

// ButtonFrameMsg advances a button's press animation by one frame.
type ButtonFrameMsg struct {
	Side Side
}

// TradeButton is a buy or sell button. A press darkens the background
// along a spring curve rather than snapping, and releasing springs it
// back. Disabled buttons ignore presses entirely.
type TradeButton struct {
	side  Side
	theme theme.Theme
	state ButtonState
	width int

	spring   harmonica.Spring
	press    float64 // 0 released .. 1 fully pressed
	velocity float64
}

// NewTradeButton creates a button for the given side.
func NewTradeButton(side Side, t theme.Theme) TradeButton {
	return TradeButton{
		side:   side,
		theme:  t,
		width:  12,
		spring: harmonica.NewSpring(harmonica.FPS(buttonFPS), 10.0, 0.6),
	}
}

// WithWidth returns a copy rendered at the given width.
func (b TradeButton) WithWidth(w int) TradeButton {
	if w > 0 {
		b.width = w
	}
	return b
}

// Side returns the button's order side.
func (b TradeButton) Side() Side { return b.side }

// State returns the current interaction state.
func (b TradeButton) State() ButtonState { return b.state }

// Disable puts the button in the inert state. Any in-flight press
// animation is dropped.
func (b TradeButton) Disable() TradeButton {
	b.state = StateDisabled
	b.press = 0
	b.velocity = 0
	return b
}

// Enable returns the button to the idle state.
func (b TradeButton) Enable() TradeButton {
	if b.state == StateDisabled {
		b.state = StateIdle
	}
	return b
}

// Press begins the pressed-state animation. Disabled buttons ignore it.
func (b TradeButton) Press() (TradeButton, tea.Cmd) {
	if b.state == StateDisabled {
		return b, nil
	}
	b.state = StatePressed
	return b, b.frame()
}

// Release begins the spring back to idle.
func (b TradeButton) Release() (TradeButton, tea.Cmd) {
	if b.state != StatePressed {
		return b, nil
	}
	b.state = StateIdle
	return b, b.frame()
}

// Update advances the press spring on frame messages addressed to this
// button's side and keeps ticking until the spring settles.
func (b TradeButton) Update(msg tea.Msg) (TradeButton, tea.Cmd) {
	fm, ok := msg.(ButtonFrameMsg)
	if !ok || fm.Side != b.side || b.state == StateDisabled {
		return b, nil
	}

	target := 0.0
	if b.state == StatePressed {
		target = 1.0
	}
	b.press, b.velocity = b.spring.Update(b.press, b.velocity, target)

	if b.settled(target) {
		b.press = target
		b.velocity = 0
		return b, nil
	}
	return b, b.frame()
}

// PressDepth returns how far into the press animation the button is,
// from 0 (released) to 1 (fully pressed).
func (b TradeButton) PressDepth() float64 { return b.press }

// View renders the button.
func (b TradeButton) View() string {
	base := b.theme.Bull
	if b.side == Sell {
		base = b.theme.Bear
	}

	var bg lipgloss.AdaptiveColor
	switch b.state {
	case StateDisabled:
		bg = theme.DisabledShade(base)
	default:
		shade := theme.PressedShade(base)
		bg = lipgloss.AdaptiveColor{
			Light: theme.BlendToward(base.Light, shade.Light, b.press),
			Dark:  theme.BlendToward(base.Dark, shade.Dark, b.press),
		}
	}

	style := b.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(bg).
		Width(b.width).
		Align(lipgloss.Center).
		Padding(0, SpaceSM)

	if b.state == StateDisabled {
		style = style.Faint(true)
	}
	return style.Render(b.side.String())
}

func (b TradeButton) frame() tea.Cmd {
	side := b.side
	return tea.Tick(time.Second/buttonFPS, func(time.Time) tea.Msg {
		return ButtonFrameMsg{Side: side}
	})
}

func (b TradeButton) settled(target float64) bool {
	return math.Abs(b.press-target) < 0.001 && math.Abs(b.velocity) < 0.001
}
