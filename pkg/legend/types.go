// Package legend defines the chart legend data model: immutable legend
// entries keyed by chart kind, each carrying a label and exactly one
// visual indicator (a color swatch or a symbolic icon).
package legend

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ChartKind identifies the category of chart a legend describes.
type ChartKind string

const (
	KindCandlestick ChartKind = "candlestick"
	KindPnL         ChartKind = "pnl"
	KindPrice       ChartKind = "price"
)

// IsValid returns true if the kind is one of the built-in chart kinds.
func (k ChartKind) IsValid() bool {
	switch k {
	case KindCandlestick, KindPnL, KindPrice:
		return true
	}
	return false
}

// Indicator is the visual marker drawn beside a legend label. It is a
// tagged union: a swatch color token or a symbolic icon name, never both.
// The zero value is invalid; use ColorIndicator or IconIndicator.
type Indicator struct {
	color string
	icon  string
}

// ColorIndicator returns an indicator drawn as a color swatch. The token
// is either a "#RRGGBB" hex value or a lowercase SVG 1.1 color name.
func ColorIndicator(token string) Indicator {
	return Indicator{color: token}
}

// IconIndicator returns an indicator drawn as a symbolic icon glyph.
func IconIndicator(name string) Indicator {
	return Indicator{icon: name}
}

// Color returns the swatch color token, and whether this is a color indicator.
func (in Indicator) Color() (string, bool) {
	return in.color, in.color != ""
}

// Icon returns the icon name, and whether this is an icon indicator.
func (in Indicator) Icon() (string, bool) {
	return in.icon, in.icon != ""
}

// IsColor returns true if the indicator is a color swatch.
func (in Indicator) IsColor() bool { return in.color != "" }

// IsIcon returns true if the indicator is a symbolic icon.
func (in Indicator) IsIcon() bool { return in.icon != "" }

// Validate checks the tagged-union invariant: exactly one of color and
// icon must be set. Constructed indicators always pass; this guards
// hand-built values.
func (in Indicator) Validate() error {
	if in.color == "" && in.icon == "" {
		return fmt.Errorf("indicator has neither color nor icon")
	}
	if in.color != "" && in.icon != "" {
		return fmt.Errorf("indicator has both color %q and icon %q", in.color, in.icon)
	}
	if in.color != "" {
		if _, ok := in.RGBA(); !ok {
			return fmt.Errorf("unresolvable color token %q", in.color)
		}
	}
	return nil
}

// RGBA resolves the swatch color token to a concrete RGBA value. It
// returns false for icon indicators and for tokens that are neither a
// hex value nor a recognized color name.
func (in Indicator) RGBA() (color.RGBA, bool) {
	if in.color == "" {
		return color.RGBA{}, false
	}
	if strings.HasPrefix(in.color, "#") {
		return parseHex(in.color)
	}
	c, ok := colornames.Map[strings.ToLower(in.color)]
	return c, ok
}

func parseHex(s string) (color.RGBA, bool) {
	if len(s) != 7 {
		return color.RGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, true
}

// Entry is a single legend row: a display label with its indicator.
// The ID is opaque and stable for the process lifetime; it exists only
// to give list renderers a durable identity and carries no meaning.
type Entry struct {
	ID        string
	Label     string
	Indicator Indicator
}

// Validate checks that the entry is well formed.
func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry ID cannot be empty")
	}
	if e.Label == "" {
		return fmt.Errorf("entry label cannot be empty")
	}
	if err := e.Indicator.Validate(); err != nil {
		return fmt.Errorf("entry %q: %w", e.Label, err)
	}
	return nil
}

// Set is an ordered legend for one chart kind. Entry order is
// significant: it is the order the rendering layer fills its grid.
type Set struct {
	Title   string
	Entries []Entry
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	clone := s
	if s.Entries != nil {
		clone.Entries = make([]Entry, len(s.Entries))
		copy(clone.Entries, s.Entries)
	}
	return clone
}

// Validate checks every entry in the set.
func (s Set) Validate() error {
	for _, e := range s.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
