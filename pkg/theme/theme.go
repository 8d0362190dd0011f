// Package theme holds the semantic color theme shared by every
// component renderer. Colors are adaptive: lipgloss picks the light or
// dark variant based on the terminal background.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme names every color the component kit uses. View code never
// hard-codes a color; it reads a token from here so overrides and
// light/dark adaptation apply everywhere at once.
type Theme struct {
	Renderer *lipgloss.Renderer

	// Market semantics
	Bull   lipgloss.AdaptiveColor // upward movement, buy side
	Bear   lipgloss.AdaptiveColor // downward movement, sell side
	Volume lipgloss.AdaptiveColor

	// Chrome
	Accent    lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Surface   lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
}

// Default returns the stock dark-leaning palette bound to the given
// renderer.
func Default(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer: r,

		Bull:   lipgloss.AdaptiveColor{Light: "#0E8A16", Dark: "#26A69A"},
		Bear:   lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"},
		Volume: lipgloss.AdaptiveColor{Light: "#3E6A8E", Dark: "#5C7FA3"},

		Accent:    lipgloss.AdaptiveColor{Light: "#6930C3", Dark: "#BD93F9"},
		Info:      lipgloss.AdaptiveColor{Light: "#0B7285", Dark: "#8BE9FD"},
		Warning:   lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#FFB86C"},
		Text:      lipgloss.AdaptiveColor{Light: "#1A1B26", Dark: "#F8F8F2"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#4A4A58", Dark: "#BFBFBF"},
		Muted:     lipgloss.AdaptiveColor{Light: "#8A8A99", Dark: "#6272A4"},
		Border:    lipgloss.AdaptiveColor{Light: "#C5C5D2", Dark: "#44475A"},
		Surface:   lipgloss.AdaptiveColor{Light: "#F2F2F7", Dark: "#282A36"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E4E4EE", Dark: "#363949"},
	}
}

// PressedShade returns the color blended toward black, used as the
// button background while a press is animating.
func PressedShade(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: blendHex(c.Light, 0.35),
		Dark:  blendHex(c.Dark, 0.35),
	}
}

// DisabledShade returns a desaturated, dimmed variant of the color for
// inert controls.
func DisabledShade(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: desaturateHex(c.Light),
		Dark:  desaturateHex(c.Dark),
	}
}

// BlendToward mixes from toward to by the given fraction (0 keeps from,
// 1 yields to) and returns the result as hex. Used for per-frame button
// press interpolation.
func BlendToward(from, to string, frac float64) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, frac).Clamped().Hex()
}

func blendHex(hex string, frac float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{R: 0, G: 0, B: 0}
	return c.BlendLab(black, frac).Clamped().Hex()
}

func desaturateHex(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s*0.25, l*0.7).Clamped().Hex()
}
