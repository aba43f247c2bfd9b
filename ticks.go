package delphesplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks is a plot.Ticker for histogram axes. Unlike plot.DefaultTicks
// it picks the major step from NSuggestedTicks, so narrow ranges such as a
// 15 ns time-of-flight axis get a label on every few bins, and it subdivides
// steps of 3, 5 and 6 into thirds or fifths instead of halves.
//
// A range with max <= min yields no ticks rather than a panic: gonum widens
// empty data ranges before asking for ticks, so the case only shows up for
// axes the caller pinned by hand.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	n := t.NSuggestedTicks
	if n < 2 {
		n = 4
	}

	if !(max > min) || math.IsInf(max-min, 0) {
		return nil
	}

	mult, step := majorStep(max-min, n)
	ticks := majorTicks(min, max, step)
	return append(ticks, minorTicks(min, max, minorStep(mult, step), ticks)...)
}

// majorStep returns the major tick spacing as mult*10^k with mult chosen
// so that about n labels fit in span.
func majorStep(span float64, n int) (int, float64) {
	tens := math.Pow10(int(math.Floor(math.Log10(span))))
	for span/tens < float64(n-1) {
		tens /= 10
	}

	mult := int(span / tens / float64(n-1))
	switch {
	case mult < 1:
		mult = 1
	case mult == 7:
		mult = 6
	case mult == 9:
		mult = 8
	}
	return mult, float64(mult) * tens
}

func minorStep(mult int, step float64) float64 {
	switch mult {
	case 3, 6:
		return step / 3
	case 5:
		return step / 5
	}
	return step / 2
}

func majorTicks(min, max, step float64) []plot.Tick {
	var values []float64
	val := math.Floor(min/step) * step
	for ; val <= max; val += step {
		if val >= min {
			values = append(values, val)
		}
	}

	top := math.Max(math.Abs(min), math.Abs(max))
	if top < step {
		top = step
	}
	digits := int(math.Ceil(math.Log10(top)) - math.Floor(math.Log10(step)) + 1)
	ticks := make([]plot.Tick, 0, len(values))
	for _, v := range values {
		v = roundTo(v, digits)
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}
	return ticks
}

func minorTicks(min, max, step float64, major []plot.Tick) []plot.Tick {
	labelled := make(map[float64]bool, len(major))
	for _, tick := range major {
		labelled[tick.Value] = true
	}

	var ticks []plot.Tick
	for val := math.Floor(min/step) * step; val <= max; val += step {
		if val >= min && !labelled[val] {
			ticks = append(ticks, plot.Tick{Value: val})
		}
	}
	return ticks
}

// roundTo rounds x half away from zero to the given number of decimals.
// Integers and non-finite scalings are returned unchanged.
func roundTo(x float64, decimals int) float64 {
	if x == 0 {
		return 0
	}
	if decimals >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(decimals)
	if math.IsInf(x*pow, 0) || math.IsNaN(x*pow) {
		return x
	}
	if r := math.Round(x*pow) / pow; r != 0 {
		return r
	}
	return 0
}
