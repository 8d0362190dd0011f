package legend

import (
	"errors"
	"fmt"
)

// ErrLegendNotFound is returned by Get for chart kinds with no
// registered legend set.
var ErrLegendNotFound = errors.New("no legend set for chart kind")

// Registry maps chart kinds to their canonical legend sets. All data is
// built once at construction and never mutated afterwards, so a Registry
// is safe for concurrent readers.
type Registry struct {
	sets  map[ChartKind]Set
	order []ChartKind
}

// NewRegistry builds a registry containing the canonical legend sets for
// the built-in chart kinds.
func NewRegistry() *Registry {
	r := &Registry{sets: make(map[ChartKind]Set)}

	r.register(KindCandlestick, Set{
		Title: "Chart Legend",
		Entries: []Entry{
			{Label: "Bullish Candle", Indicator: ColorIndicator("green")},
			{Label: "Bearish Candle", Indicator: ColorIndicator("red")},
			{Label: "Volume", Indicator: ColorIndicator("steelblue")},
			{Label: "Price Range", Indicator: IconIndicator("range")},
		},
	})

	r.register(KindPnL, Set{
		Title: "Profit & Loss Chart",
		Entries: []Entry{
			{Label: "Equity Over Time", Indicator: IconIndicator("trend")},
			{Label: "Profit Zone", Indicator: ColorIndicator("mediumseagreen")},
			{Label: "Loss Zone", Indicator: ColorIndicator("indianred")},
			{Label: "Break-Even Level", Indicator: IconIndicator("baseline")},
		},
	})

	r.register(KindPrice, Set{
		Title: "Price Chart",
		Entries: []Entry{
			{Label: "Current Price", Indicator: IconIndicator("crosshair")},
			{Label: "Price History", Indicator: ColorIndicator("dodgerblue")},
			{Label: "Session Range", Indicator: IconIndicator("range")},
		},
	})

	return r
}

// register assigns entry IDs and stores the set. IDs are sequential per
// kind; callers must never rely on their shape.
func (r *Registry) register(kind ChartKind, s Set) {
	set := s.Clone()
	for i := range set.Entries {
		set.Entries[i].ID = fmt.Sprintf("%s-%d", kind, i)
	}
	if err := set.Validate(); err != nil {
		panic("legend: invalid canonical set for " + string(kind) + ": " + err.Error())
	}
	if _, exists := r.sets[kind]; !exists {
		r.order = append(r.order, kind)
	}
	r.sets[kind] = set
}

// Get returns the canonical legend set for the kind, or ErrLegendNotFound
// if no set is registered. The returned set is a copy; mutating it does
// not affect the registry.
func (r *Registry) Get(kind ChartKind) (Set, error) {
	s, ok := r.sets[kind]
	if !ok {
		return Set{}, ErrLegendNotFound
	}
	return s.Clone(), nil
}

// GetOrEmpty returns the legend set for the kind, or an untitled empty
// set when the kind is unknown. Callers that cannot surface an error use
// this to degrade to drawing nothing rather than failing.
func (r *Registry) GetOrEmpty(kind ChartKind) Set {
	s, err := r.Get(kind)
	if err != nil {
		return Set{}
	}
	return s
}

// Kinds returns the registered chart kinds in registration order.
func (r *Registry) Kinds() []ChartKind {
	out := make([]ChartKind, len(r.order))
	copy(out, r.order)
	return out
}

// defaultRegistry holds the canonical sets, built eagerly so first use
// from any goroutine sees fully initialized data.
var defaultRegistry = NewRegistry()

// Get looks up a legend set in the default registry.
func Get(kind ChartKind) (Set, error) { return defaultRegistry.Get(kind) }

// GetOrEmpty looks up a legend set in the default registry, degrading to
// an empty set for unknown kinds.
func GetOrEmpty(kind ChartKind) Set { return defaultRegistry.GetOrEmpty(kind) }

// Kinds returns the default registry's chart kinds in stable order.
func Kinds() []ChartKind { return defaultRegistry.Kinds() }
