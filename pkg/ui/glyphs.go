package ui

// Icon glyphs for legend indicators. Legend data carries symbolic icon
// names; this table is the terminal rendering of each one.
var iconGlyphs = map[string]string{
	"trend":     "↗",
	"baseline":  "┄",
	"range":     "↕",
	"crosshair": "✛",
	"pulse":     "⌁",
}

// FallbackGlyph is drawn for icon names with no registered glyph, so an
// unknown icon degrades to a neutral marker instead of an empty cell.
const FallbackGlyph = "•"

// IconGlyph returns the terminal glyph for a symbolic icon name.
func IconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return FallbackGlyph
}

// SwatchGlyph is the marker drawn for color indicators.
const SwatchGlyph = "●"
