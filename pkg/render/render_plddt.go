package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/yumyai/af3plot/pkg/model"
)

// pLDDT figure layout, in inches and points.
const (
	plddtWidth  = 20.0
	plddtHeight = 10.0

	plddtNameFontSize   = 46.0
	plddtTickFontSize   = 28.0
	plddtLegendFontSize = 24.0
	plddtLineWidth      = 5.0
)

// ConfidenceBand is one pLDDT confidence tier.
type ConfidenceBand struct {
	Label  string
	Lo, Hi float64
	Color  drawing.Color
}

// ConfidenceBands are the AlphaFold DB tiers. The shading does not depend
// on the data.
var ConfidenceBands = []ConfidenceBand{
	{"Very Low (0–50)", 0, 50, drawing.ColorFromHex("ff7f0e")},
	{"Low (50–70)", 50, 70, drawing.ColorFromHex("bcbd22")},
	{"High (70–90)", 70, 90, drawing.ColorFromHex("17becf")},
	{"Very High (90–100)", 90, 100, drawing.ColorFromHex("1f77b4")},
}

// Thresholds are the pLDDT values marked with dashed grey lines.
var Thresholds = []float64{50, 70, 90}

// bandAlpha is the opacity of the shaded tiers (0.2).
const bandAlpha = 51

func (o Options) traceChart(xName string, series []chart.Series) chart.Chart {
	return chart.Chart{
		Width:      o.px(plddtWidth),
		Height:     o.px(plddtHeight),
		DPI:        o.dpi(),
		Background: chart.Style{Padding: o.padding(16)},
		XAxis: chart.XAxis{
			Name:           xName,
			NameStyle:      chart.Style{FontSize: plddtNameFontSize},
			Style:          chart.Style{FontSize: plddtTickFontSize},
			ValueFormatter: integerFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "pLDDT",
			NameStyle:      chart.Style{FontSize: plddtNameFontSize},
			Style:          chart.Style{FontSize: plddtTickFontSize},
			ValueFormatter: integerFormatter,
		},
		Series: series,
	}
}

func (o Options) traceSeries(name string, xs, ys []float64, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: o.pt(plddtLineWidth),
		},
		XValues: xs,
		YValues: ys,
	}
}

// percentTicks are the fixed y ticks 0, 10, ..., 100.
func percentTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 11)
	for v := 0.0; v <= 100; v += 10 {
		ticks = append(ticks, chart.Tick{Value: v, Label: integerFormatter(v)})
	}
	return ticks
}

func residueXs(residues []int) []float64 {
	xs := make([]float64, len(residues))
	for i, r := range residues {
		xs[i] = float64(r)
	}
	return xs
}

// valueRange returns the data range padded by 5%, or by one unit when all
// values are equal. Without values it is 0-100.
func valueRange(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 100
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// AtomPlddt plots per-atom pLDDT values against their 1-based position,
// with a dashed vertical line at every chain boundary. Without values only
// the axes and boundaries are drawn.
func AtomPlddt(path string, plddt []float64, boundaries []int, opts Options) error {
	img, err := rasterize(opts.atomPlddtChart(plddt, boundaries))
	if err != nil {
		return err
	}
	return writeJPEG(path, img)
}

func (o Options) atomPlddtChart(plddt []float64, boundaries []int) chart.Chart {
	xs := make([]float64, len(plddt))
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	lo, hi := valueRange(plddt)

	var series []chart.Series
	if len(plddt) > 0 {
		series = append(series, o.traceSeries("pLDDT", xs, plddt, colorTraceBlue))
	}
	for _, b := range boundaries {
		series = append(series, vline(float64(b), lo, hi, o.boundaryStyle()))
	}
	if len(series) == 0 {
		series = append(series, blankSeries{})
	}

	c := o.traceChart("Residues", series)
	c.XAxis.Range = residueRange(len(plddt))
	c.YAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	return c
}

// PlddtBands plots a per-residue trace over the shaded confidence tiers,
// with grey threshold lines, chain-break lines and a legend.
func PlddtBands(path string, trace model.Trace, opts Options) error {
	series := make([]chart.Series, 0, len(ConfidenceBands)+1)
	for _, band := range ConfidenceBands {
		series = append(series, bandSeries{
			Name:  band.Label,
			Lo:    band.Lo,
			Hi:    band.Hi,
			Color: band.Color.WithAlpha(bandAlpha),
			Style: chart.Style{StrokeColor: band.Color, StrokeWidth: opts.pt(8)},
		})
	}
	if trace.Len() > 0 {
		series = append(series, opts.traceSeries("pLDDT", residueXs(trace.Residues), trace.Plddt, colorBlack))
	}

	img, err := rasterize(opts.residueChart(trace, series))
	if err != nil {
		return err
	}
	return writeJPEG(path, img)
}

// PlddtPlain is PlddtBands without the shaded tiers.
func PlddtPlain(path string, trace model.Trace, opts Options) error {
	var series []chart.Series
	if trace.Len() > 0 {
		series = append(series, opts.traceSeries("pLDDT", residueXs(trace.Residues), trace.Plddt, colorTraceBlue))
	}

	img, err := rasterize(opts.residueChart(trace, series))
	if err != nil {
		return err
	}
	return writeJPEG(path, img)
}

// residueChart adds chain breaks and thresholds to series, fixes the y axis
// to 0-100 and, when series is not empty, puts a legend of it in the corner.
func (o Options) residueChart(trace model.Trace, series []chart.Series) chart.Chart {
	xr := residueRange(trace.Len())
	named := append([]chart.Series(nil), series...)

	for _, b := range trace.Breaks {
		series = append(series, vline(float64(b), 0, 100, o.boundaryStyle()))
	}
	for _, y := range Thresholds {
		series = append(series, hline(y, xr.Min, xr.Max, o.thresholdStyle()))
	}

	c := o.traceChart("Residue", series)
	c.XAxis.Range = xr
	c.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 100}
	c.YAxis.Ticks = percentTicks()

	if len(named) == 0 {
		return c
	}
	lc := c
	lc.Series = named
	c.Elements = []chart.Renderable{
		chart.Legend(&lc, chart.Style{
			FontSize:    plddtLegendFontSize,
			FillColor:   colorWhite,
			StrokeColor: colorThreshold,
		}),
	}
	return c
}
