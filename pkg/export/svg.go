package export

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/tickerlens/tickerlens/pkg/legend"
	"github.com/tickerlens/tickerlens/pkg/ui"
)

// WriteSVG renders a legend set as an SVG card.
func WriteSVG(w io.Writer, set legend.Set, opts Options) error {
	opts = opts.withDefaults()
	height := cardHeight(set)

	// svgo writes unconditionally, so render to a buffer and flush once
	// to surface write errors.
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(opts.Width, height)
	canvas.Roundrect(0, 0, opts.Width, height, 8, 8, "fill:"+opts.Background)

	y := padding
	if set.Title != "" {
		canvas.Text(padding, y+16,
			set.Title,
			fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:16px;font-weight:bold", opts.TextColor))
		y += rowHeight + titleGap
	}

	for _, e := range set.Entries {
		markerX := padding
		textX := padding + swatch + 10
		baseline := y + swatch + 1

		if tok, ok := e.Indicator.Color(); ok {
			canvas.Rect(markerX, y+3, swatch, swatch, "fill:"+colorHex(e.Indicator, tok))
		} else if name, ok := e.Indicator.Icon(); ok {
			canvas.Text(markerX+swatch/2, baseline,
				ui.IconGlyph(name),
				fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:14px;text-anchor:middle", opts.MutedColor))
		}

		canvas.Text(textX, baseline,
			e.Label,
			fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:14px", opts.TextColor))
		y += rowHeight
	}

	canvas.End()
	_, err := w.Write(buf.Bytes())
	return err
}

// colorHex resolves an indicator's color token to hex for SVG fills.
// Named tokens pass through the same resolution the terminal uses.
func colorHex(in legend.Indicator, token string) string {
	c, ok := in.RGBA()
	if !ok {
		return token
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
