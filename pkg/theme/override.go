package theme

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Override is a user-supplied recoloring of the default palette, loaded
// from a small YAML file:
//
//	colors:
//	  bull: "#00C853"
//	  bear: "#D50000"
//
// Overridden tokens lose their light/dark adaptation: the given hex is
// used for both variants.
type Override struct {
	Colors map[string]string `yaml:"colors"`
}

// LoadOverride reads and parses an override file.
func LoadOverride(path string) (Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Override{}, fmt.Errorf("read theme override: %w", err)
	}
	var o Override
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Override{}, fmt.Errorf("parse theme override %s: %w", path, err)
	}
	return o, nil
}

// Apply returns a copy of the theme with the override's tokens replaced.
// Unknown token names and unparsable hex values are errors, so a typo in
// the file surfaces instead of silently keeping the default.
func (t Theme) Apply(o Override) (Theme, error) {
	out := t
	slots := map[string]*lipgloss.AdaptiveColor{
		"bull":      &out.Bull,
		"bear":      &out.Bear,
		"volume":    &out.Volume,
		"accent":    &out.Accent,
		"info":      &out.Info,
		"warning":   &out.Warning,
		"text":      &out.Text,
		"subtext":   &out.Subtext,
		"muted":     &out.Muted,
		"border":    &out.Border,
		"surface":   &out.Surface,
		"highlight": &out.Highlight,
	}

	names := make([]string, 0, len(o.Colors))
	for name := range o.Colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slot, ok := slots[name]
		if !ok {
			return Theme{}, fmt.Errorf("unknown theme token %q", name)
		}
		val := o.Colors[name]
		if _, err := colorful.Hex(val); err != nil {
			return Theme{}, fmt.Errorf("theme token %q: invalid color %q", name, val)
		}
		*slot = lipgloss.AdaptiveColor{Light: val, Dark: val}
	}
	return out, nil
}
