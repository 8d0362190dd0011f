package export

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tickerlens/tickerlens/pkg/legend"
)

// WritePNG renders a legend set as a PNG card. Icon indicators are
// drawn as outlined squares: the raster context's builtin font has no
// coverage for the icon glyphs, and an outline keeps the color/icon
// distinction visible.
func WritePNG(path string, set legend.Set, opts Options) error {
	opts = opts.withDefaults()
	height := cardHeight(set)

	dc := gg.NewContext(opts.Width, height)
	setHexColor(dc, opts.Background)
	dc.Clear()

	y := float64(padding)
	if set.Title != "" {
		setHexColor(dc, opts.TextColor)
		dc.DrawString(set.Title, float64(padding), y+14)
		y += rowHeight + titleGap
	}

	for _, e := range set.Entries {
		markerX := float64(padding)
		textX := float64(padding + swatch + 10)
		baseline := y + swatch

		if _, ok := e.Indicator.Color(); ok {
			c, _ := e.Indicator.RGBA()
			dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 255)
			dc.DrawRectangle(markerX, y+3, swatch, swatch)
			dc.Fill()
		} else {
			setHexColor(dc, opts.MutedColor)
			dc.SetLineWidth(1.5)
			dc.DrawRectangle(markerX+1, y+4, swatch-2, swatch-2)
			dc.Stroke()
		}

		setHexColor(dc, opts.TextColor)
		dc.DrawString(e.Label, textX, baseline)
		y += rowHeight
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func setHexColor(dc *gg.Context, hex string) {
	c, err := colorful.Hex(hex)
	if err != nil {
		dc.SetRGB(1, 1, 1)
		return
	}
	dc.SetRGB(c.R, c.G, c.B)
}
