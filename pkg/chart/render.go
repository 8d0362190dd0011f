package chart

import (
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/tickerlens/tickerlens/pkg/theme"
)

// sparkRunes are the eight block levels used for single-row series.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a series as one row of block characters, one column
// per value, scaled to the series min/max.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo := floats.Min(values)
	hi := floats.Max(values)
	span := hi - lo

	var b strings.Builder
	for _, v := range values {
		idx := len(sparkRunes) / 2
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// CandleRow renders candle closes as a sparkline with each column
// colored by direction: bull color for up candles, bear for down.
func CandleRow(candles []Candle, th theme.Theme) string {
	if len(candles) == 0 {
		return ""
	}
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	lo := floats.Min(closes)
	hi := floats.Max(closes)
	span := hi - lo

	bull := th.Renderer.NewStyle().Foreground(th.Bull)
	bear := th.Renderer.NewStyle().Foreground(th.Bear)

	var b strings.Builder
	for _, c := range candles {
		idx := len(sparkRunes) / 2
		if span > 0 {
			idx = int((c.Close - lo) / span * float64(len(sparkRunes)-1))
		}
		col := string(sparkRunes[idx])
		if c.Bullish() {
			b.WriteString(bull.Render(col))
		} else {
			b.WriteString(bear.Render(col))
		}
	}
	return b.String()
}

// VolumeRow renders candle volumes as a sparkline in the volume color.
func VolumeRow(candles []Candle, th theme.Theme) string {
	if len(candles) == 0 {
		return ""
	}
	vols := make([]float64, len(candles))
	for i, c := range candles {
		vols[i] = c.Volume
	}
	return th.Renderer.NewStyle().Foreground(th.Volume).Render(Sparkline(vols))
}
