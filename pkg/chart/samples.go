// Package chart provides fixed sample market series and small unicode
// renderers. The series exist purely as preview backdrops for the
// component gallery; nothing here touches live data.
package chart

import "time"

// Candle is one OHLCV bar of a candlestick series.
type Candle struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	Time   time.Time
}

// Bullish reports whether the candle closed at or above its open.
func (c Candle) Bullish() bool { return c.Close >= c.Open }

var sampleStart = time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC)

// SampleCandles returns a fixed intraday candlestick series.
func SampleCandles() []Candle {
	bars := []struct{ o, h, l, c, v float64 }{
		{101.20, 102.10, 100.80, 101.90, 48_200},
		{101.90, 102.60, 101.50, 102.40, 39_500},
		{102.40, 102.50, 101.10, 101.30, 52_700},
		{101.30, 101.60, 100.20, 100.40, 61_300},
		{100.40, 101.80, 100.30, 101.60, 44_900},
		{101.60, 103.20, 101.40, 103.00, 70_100},
		{103.00, 103.40, 102.20, 102.50, 35_800},
		{102.50, 104.10, 102.40, 103.90, 66_400},
		{103.90, 104.30, 103.10, 103.30, 41_000},
		{103.30, 103.60, 101.90, 102.10, 57_600},
		{102.10, 102.90, 101.70, 102.70, 33_200},
		{102.70, 104.80, 102.60, 104.50, 78_900},
	}
	out := make([]Candle, len(bars))
	for i, b := range bars {
		out[i] = Candle{
			Open: b.o, High: b.h, Low: b.l, Close: b.c, Volume: b.v,
			Time: sampleStart.Add(time.Duration(i) * 5 * time.Minute),
		}
	}
	return out
}

// SampleEquity returns a fixed equity-over-time curve that dips below
// its starting value, so both profit and loss zones show in previews.
func SampleEquity() []float64 {
	return []float64{
		10_000, 10_140, 10_090, 9_920, 9_760, 9_840, 10_050, 10_310,
		10_280, 10_460, 10_420, 10_610, 10_550, 10_740, 10_920, 11_080,
	}
}

// SamplePrice returns a fixed price history line.
func SamplePrice() []float64 {
	return []float64{
		101.9, 102.4, 101.3, 100.4, 101.6, 103.0, 102.5, 103.9,
		103.3, 102.1, 102.7, 104.5,
	}
}
