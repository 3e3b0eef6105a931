package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PAE colour scale limits, in Ångströms.
const (
	PAEMin = 0.0
	PAEMax = 30.0
)

const paletteSize = 256

// greensReversed runs from dark green (low error) to near white (high
// error).
var greensReversed = []drawing.Color{
	drawing.ColorFromHex("00441b"),
	drawing.ColorFromHex("006d2c"),
	drawing.ColorFromHex("238b45"),
	drawing.ColorFromHex("41ab5d"),
	drawing.ColorFromHex("74c476"),
	drawing.ColorFromHex("a1d99b"),
	drawing.ColorFromHex("c7e9c0"),
	drawing.ColorFromHex("e5f5e0"),
	drawing.ColorFromHex("f7fcf5"),
}

var paePalette = buildPalette(greensReversed, paletteSize)

func buildPalette(stops []drawing.Color, n int) []drawing.Color {
	colors := make([]drawing.Color, n)
	segments := float64(len(stops) - 1)
	for i := range colors {
		pos := float64(i) / float64(n-1) * segments
		lo := int(math.Floor(pos))
		if lo >= len(stops)-1 {
			colors[i] = stops[len(stops)-1]
			continue
		}
		colors[i] = lerp(stops[lo], stops[lo+1], pos-float64(lo))
	}
	return colors
}

func lerp(a, b drawing.Color, t float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// paeIndex maps an error value to its palette slot. Values outside
// [PAEMin, PAEMax] take the end colours; NaN is treated as the maximum.
func paeIndex(v float64) int {
	if math.IsNaN(v) || v >= PAEMax {
		return paletteSize - 1
	}
	if v <= PAEMin {
		return 0
	}
	return int(math.Round((v - PAEMin) / (PAEMax - PAEMin) * (paletteSize - 1)))
}

// PAEColor returns the heatmap colour of an error value.
func PAEColor(v float64) drawing.Color {
	return paePalette[paeIndex(v)]
}
