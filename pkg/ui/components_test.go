package ui

import (
	"strings"
	"testing"
)

func TestIconGlyph_KnownAndFallback(t *testing.T) {
	if g := IconGlyph("trend"); g == FallbackGlyph {
		t.Error("known icon fell back")
	}
	if g := IconGlyph("no-such-icon"); g != FallbackGlyph {
		t.Errorf("unknown icon = %q, want fallback %q", g, FallbackGlyph)
	}
}

func TestIconGlyph_CoversRegistryIcons(t *testing.T) {
	// Every icon name used by the legend registry must have a real
	// glyph; the fallback is for future registry additions only.
	for _, name := range []string{"trend", "baseline", "range", "crosshair"} {
		if IconGlyph(name) == FallbackGlyph {
			t.Errorf("registry icon %q has no glyph", name)
		}
	}
}

func TestTabs_Order(t *testing.T) {
	tabs := Tabs()
	want := []string{"watchlist", "charts", "trade", "portfolio", "settings"}
	if len(tabs) != len(want) {
		t.Fatalf("tab count = %d, want %d", len(tabs), len(want))
	}
	for i, tab := range tabs {
		if tab.Name != want[i] {
			t.Errorf("tab %d = %q, want %q", i, tab.Name, want[i])
		}
		if tab.Glyph == "" || tab.Label == "" {
			t.Errorf("tab %q missing glyph or label", tab.Name)
		}
	}
}

func TestRenderTabStrip_AllLabels(t *testing.T) {
	out := RenderTabStrip(testTheme(), 1)
	for _, tab := range Tabs() {
		if !strings.Contains(out, tab.Label) {
			t.Errorf("tab strip missing %q", tab.Label)
		}
	}
}

func TestRenderTabStrip_OutOfRangeActive(t *testing.T) {
	// Should not panic and should still render every tab.
	out := RenderTabStrip(testTheme(), -1)
	if len(out) == 0 {
		t.Error("strip with no active tab should still render")
	}
	out = RenderTabStrip(testTheme(), 99)
	for _, tab := range Tabs() {
		if !strings.Contains(out, tab.Label) {
			t.Errorf("tab strip missing %q", tab.Label)
		}
	}
}

func TestEmptyStates_WellFormed(t *testing.T) {
	states := EmptyStates()
	if len(states) == 0 {
		t.Fatal("no empty states defined")
	}
	seen := map[string]bool{}
	for _, es := range states {
		if es.Name == "" || es.Title == "" || es.Caption == "" || len(es.Art) == 0 {
			t.Errorf("empty state %+v is incomplete", es)
		}
		if seen[es.Name] {
			t.Errorf("duplicate empty state name %q", es.Name)
		}
		seen[es.Name] = true
	}
}

func TestRenderEmptyState(t *testing.T) {
	es := EmptyStates()[0]
	out := RenderEmptyState(testTheme(), es)
	if !strings.Contains(out, es.Title) {
		t.Error("rendered empty state missing title")
	}
	if !strings.Contains(out, es.Caption) {
		t.Error("rendered empty state missing caption")
	}
}

func TestRenderDivider_Widths(t *testing.T) {
	if RenderDivider(testTheme(), 0) != "" {
		t.Error("zero-width divider should be empty")
	}
	if RenderDivider(testTheme(), -2) != "" {
		t.Error("negative-width divider should be empty")
	}
	if !strings.Contains(RenderDivider(testTheme(), 4), "────") {
		t.Error("divider missing line characters")
	}
}
