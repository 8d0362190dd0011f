package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/tickerlens/tickerlens/pkg/legend"
	"github.com/tickerlens/tickerlens/pkg/theme"
)

func testTheme() theme.Theme {
	return theme.Default(lipgloss.NewRenderer(os.Stdout))
}

func TestLegendView_TitleAndLabels(t *testing.T) {
	set, err := legend.Get(legend.KindCandlestick)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	out := NewLegendView(testTheme()).Render(set)
	if !strings.Contains(out, "Chart Legend") {
		t.Error("rendered card missing title")
	}
	for _, e := range set.Entries {
		if !strings.Contains(out, e.Label) {
			t.Errorf("rendered card missing label %q", e.Label)
		}
	}
}

func TestLegendView_OrderPreserved(t *testing.T) {
	set, _ := legend.Get(legend.KindCandlestick)
	out := NewLegendView(testTheme()).Render(set)

	// Grid fill is left-to-right then top-to-bottom, so label order in
	// the output string must match entry order.
	pos := -1
	for _, e := range set.Entries {
		idx := strings.Index(out, e.Label)
		if idx < 0 {
			t.Fatalf("label %q not rendered", e.Label)
		}
		if idx <= pos {
			t.Errorf("label %q out of order", e.Label)
		}
		pos = idx
	}
}

func TestLegendView_SwatchAndIconMarkers(t *testing.T) {
	set, _ := legend.Get(legend.KindPnL)
	out := NewLegendView(testTheme()).Render(set)

	if !strings.Contains(out, SwatchGlyph) {
		t.Error("color entries should render the swatch glyph")
	}
	if !strings.Contains(out, IconGlyph("trend")) {
		t.Error("icon entries should render their glyph")
	}
}

func TestLegendView_EmptySet(t *testing.T) {
	out := NewLegendView(testTheme()).Render(legend.Set{})
	if out == "" {
		t.Error("empty set should still render a card, not nothing")
	}
	if strings.Contains(out, SwatchGlyph) {
		t.Error("empty set should render no markers")
	}
}

func TestLegendView_SingleColumn(t *testing.T) {
	set, _ := legend.Get(legend.KindCandlestick)
	out := NewLegendView(testTheme()).WithColumns(1).Render(set)

	// One entry per line: title line + 4 entry lines inside the border.
	lines := strings.Split(out, "\n")
	wantLines := 2 + 1 + len(set.Entries) // border top/bottom + title + entries
	if len(lines) != wantLines {
		t.Errorf("single-column card has %d lines, want %d", len(lines), wantLines)
	}
}

func TestLegendView_UnknownKindFallback(t *testing.T) {
	set := legend.GetOrEmpty(legend.ChartKind("heatmap"))
	out := NewLegendView(testTheme()).Render(set)
	if out == "" {
		t.Error("fallback set should render an empty card")
	}
}
