package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	_, _, l := c.Hsl()
	return l
}

func TestDefault_AllTokensSet(t *testing.T) {
	th := Default(lipgloss.NewRenderer(os.Stdout))
	tokens := map[string]lipgloss.AdaptiveColor{
		"Bull": th.Bull, "Bear": th.Bear, "Volume": th.Volume,
		"Accent": th.Accent, "Info": th.Info, "Warning": th.Warning,
		"Text": th.Text, "Subtext": th.Subtext, "Muted": th.Muted,
		"Border": th.Border, "Surface": th.Surface, "Highlight": th.Highlight,
	}
	for name, c := range tokens {
		if c.Light == "" || c.Dark == "" {
			t.Errorf("token %s missing a variant: %+v", name, c)
		}
		if !strings.HasPrefix(c.Light, "#") || !strings.HasPrefix(c.Dark, "#") {
			t.Errorf("token %s is not hex: %+v", name, c)
		}
	}
}

func TestPressedShade_Darker(t *testing.T) {
	th := Default(lipgloss.NewRenderer(os.Stdout))
	pressed := PressedShade(th.Bull)
	if luminance(pressed.Dark) >= luminance(th.Bull.Dark) {
		t.Errorf("pressed shade %s not darker than base %s", pressed.Dark, th.Bull.Dark)
	}
	if luminance(pressed.Light) >= luminance(th.Bull.Light) {
		t.Errorf("pressed shade %s not darker than base %s", pressed.Light, th.Bull.Light)
	}
}

func TestBlendToward_Endpoints(t *testing.T) {
	if got := BlendToward("#FF0000", "#000000", 0); got != "#ff0000" {
		t.Errorf("frac 0 = %s, want #ff0000", got)
	}
	if got := BlendToward("#FF0000", "#000000", 1); got != "#000000" {
		t.Errorf("frac 1 = %s, want #000000", got)
	}
	// Out-of-range fractions clamp.
	if got := BlendToward("#FF0000", "#000000", -3); got != "#ff0000" {
		t.Errorf("frac -3 = %s, want #ff0000", got)
	}
}

func TestApply_Override(t *testing.T) {
	th := Default(lipgloss.NewRenderer(os.Stdout))
	out, err := th.Apply(Override{Colors: map[string]string{
		"bull": "#00C853",
		"bear": "#D50000",
	}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Bull.Dark != "#00C853" || out.Bull.Light != "#00C853" {
		t.Errorf("bull override not applied: %+v", out.Bull)
	}
	if out.Bear.Dark != "#D50000" {
		t.Errorf("bear override not applied: %+v", out.Bear)
	}
	// Untouched tokens keep their defaults.
	if out.Text != th.Text {
		t.Errorf("text changed unexpectedly: %+v", out.Text)
	}
	// Receiver is unchanged.
	if th.Bull.Dark == "#00C853" {
		t.Error("Apply mutated the receiver")
	}
}

func TestApply_UnknownToken(t *testing.T) {
	th := Default(lipgloss.NewRenderer(os.Stdout))
	if _, err := th.Apply(Override{Colors: map[string]string{"bulll": "#00C853"}}); err == nil {
		t.Error("unknown token should be rejected")
	}
}

func TestApply_BadHex(t *testing.T) {
	th := Default(lipgloss.NewRenderer(os.Stdout))
	if _, err := th.Apply(Override{Colors: map[string]string{"bull": "greenish"}}); err == nil {
		t.Error("invalid hex should be rejected")
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	content := "colors:\n  bull: \"#00C853\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOverride(path)
	if err != nil {
		t.Fatalf("LoadOverride: %v", err)
	}
	if o.Colors["bull"] != "#00C853" {
		t.Errorf("bull = %q, want #00C853", o.Colors["bull"])
	}

	if _, err := LoadOverride(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
