package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tickerlens/tickerlens/pkg/export"
	"github.com/tickerlens/tickerlens/pkg/gallery"
	"github.com/tickerlens/tickerlens/pkg/legend"
	"github.com/tickerlens/tickerlens/pkg/theme"
	"github.com/tickerlens/tickerlens/pkg/ui"
	"github.com/tickerlens/tickerlens/pkg/watcher"
)

const version = "0.1.0"

func main() {
	kind := flag.String("kind", "", "Render the legend card for one chart kind (candlestick, pnl, price)")
	exportFmt := flag.String("export", "", "Export format: svg or png (inferred from -out when omitted)")
	out := flag.String("out", "", "Export output path (single kind) or directory (all kinds)")
	themePath := flag.String("theme", "", "YAML theme override file; edits apply live in the gallery")
	list := flag.Bool("list", false, "List chart kinds and exit")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *showVersion {
		fmt.Println("tickerlens version " + version)
		os.Exit(0)
	}

	if *list {
		for _, k := range legend.Kinds() {
			fmt.Println(k)
		}
		os.Exit(0)
	}

	th, err := loadTheme(*themePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
		os.Exit(1)
	}

	if *exportFmt != "" || *out != "" {
		if err := runExport(*kind, *exportFmt, *out); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *kind != "" {
		set, err := legend.Get(legend.ChartKind(*kind))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown chart kind %q (try -list)\n", *kind)
			os.Exit(1)
		}
		fmt.Println(ui.NewLegendView(th).Render(set))
		return
	}

	runGallery(th, *themePath)
}

// loadTheme builds the theme, applying the override file when given.
func loadTheme(path string) (theme.Theme, error) {
	th := theme.Default(lipgloss.DefaultRenderer())
	if path == "" {
		return th, nil
	}
	o, err := theme.LoadOverride(path)
	if err != nil {
		return theme.Theme{}, err
	}
	return th.Apply(o)
}

// runExport writes legend cards as image files. With a kind it writes
// one file; without, every registered kind goes into the out directory.
func runExport(kind, format, out string) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(out), ".")
	}
	if format == "" {
		var err error
		format, err = askFormat()
		if err != nil {
			return err
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}

	if kind == "" {
		dir := out
		if dir == "" {
			dir = "."
		}
		paths, err := export.WriteAll(dir, format, export.Options{})
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println("Wrote " + p)
		}
		return nil
	}

	k := legend.ChartKind(kind)
	if out == "" || filepath.Ext(out) == "" {
		out = filepath.Join(out, fmt.Sprintf("legend-%s.%s", kind, format))
	}
	var err error
	if format == "svg" {
		err = export.ExportSVG(out, k, export.Options{})
	} else {
		err = export.ExportPNG(out, k, export.Options{})
	}
	if err != nil {
		return err
	}
	fmt.Println("Wrote " + out)
	return nil
}

// askFormat prompts for the export format when it cannot be inferred.
// Off a terminal there is nobody to ask, so default to SVG.
func askFormat() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "svg", nil
	}
	format := "svg"
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Export format").
			Options(
				huh.NewOption("SVG", "svg"),
				huh.NewOption("PNG", "png"),
			).
			Value(&format),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return format, nil
}

func runGallery(th theme.Theme, themePath string) {
	cfg := gallery.Config{Theme: th, ThemePath: themePath}

	if themePath != "" {
		w, err := watcher.WatchFile(themePath, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching theme file: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		cfg.Reloads = w.Events()
	}

	p := tea.NewProgram(gallery.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running gallery: %v\n", err)
		os.Exit(1)
	}
}
