// Package export renders legend cards to static image files, so the
// same legend data that drives the terminal views can be dropped into
// docs and design reviews.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/tickerlens/tickerlens/pkg/legend"
)

// Layout constants, in pixels.
const (
	padding   = 16
	rowHeight = 24
	swatch    = 14
	titleGap  = 10
)

// Options controls the rendered card's size and colors. Colors are hex
// strings; the zero value picks the defaults.
type Options struct {
	Width      int
	Background string
	TextColor  string
	MutedColor string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 320
	}
	if o.Background == "" {
		o.Background = "#282A36"
	}
	if o.TextColor == "" {
		o.TextColor = "#F8F8F2"
	}
	if o.MutedColor == "" {
		o.MutedColor = "#6272A4"
	}
	return o
}

// cardHeight returns the pixel height needed for a set.
func cardHeight(set legend.Set) int {
	h := padding * 2
	if set.Title != "" {
		h += rowHeight + titleGap
	}
	h += len(set.Entries) * rowHeight
	return h
}

// ExportSVG writes the legend card for one chart kind to an SVG file.
func ExportSVG(path string, kind legend.ChartKind, opts Options) error {
	set, err := legend.Get(kind)
	if err != nil {
		return fmt.Errorf("export %s: %w", kind, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteSVG(f, set, opts); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportPNG writes the legend card for one chart kind to a PNG file.
func ExportPNG(path string, kind legend.ChartKind, opts Options) error {
	set, err := legend.Get(kind)
	if err != nil {
		return fmt.Errorf("export %s: %w", kind, err)
	}
	if err := WritePNG(path, set, opts); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteAll exports every registered chart kind to dir in the given
// format ("svg" or "png"), one file per kind, rendering concurrently.
// It returns the paths it wrote.
func WriteAll(dir, format string, opts Options) ([]string, error) {
	if format != "svg" && format != "png" {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	kinds := legend.Kinds()
	paths := make([]string, len(kinds))
	var g errgroup.Group
	for i, kind := range kinds {
		path := filepath.Join(dir, fmt.Sprintf("legend-%s.%s", kind, format))
		paths[i] = path
		kind := kind
		g.Go(func() error {
			if format == "svg" {
				return ExportSVG(path, kind, opts)
			}
			return ExportPNG(path, kind, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
