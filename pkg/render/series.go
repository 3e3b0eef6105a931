package render

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/yumyai/af3plot/pkg/model"
)

func fillRect(r chart.Renderer, color drawing.Color, left, top, right, bottom int) {
	r.SetFillColor(color)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.Close()
	r.Fill()
}

// heatmapSeries draws a matrix with cell (i, j) covering x in [j, j+1] and
// y in [i, i+1].
//
// Matrix rows or columns narrower than a pixel are skipped, and adjacent
// cells of the same colour are merged into one rectangle, so the number of
// fills is bounded by the pixel size of the canvas rather than the size of
// the matrix.
type heatmapSeries struct {
	Matrix model.PAEMatrix
}

func (h heatmapSeries) GetName() string { return "" }
func (h heatmapSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (h heatmapSeries) GetStyle() chart.Style { return chart.Style{} }
func (h heatmapSeries) Validate() error { return nil }

func (h heatmapSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	px := func(x float64) int { return canvasBox.Left + xrange.Translate(x) }
	py := func(y float64) int { return canvasBox.Bottom - yrange.Translate(y) }

	for i, row := range h.Matrix {
		y0, y1 := py(float64(i)), py(float64(i+1))
		if y0 == y1 {
			continue
		}

		runStart, runIndex := -1, -1
		flush := func(end int) {
			if runStart >= 0 && px(float64(runStart)) != end {
				fillRect(r, paePalette[runIndex], px(float64(runStart)), y0, end, y1)
			}
		}

		for j, v := range row {
			x0, x1 := px(float64(j)), px(float64(j+1))
			if x0 == x1 {
				continue
			}
			idx := paeIndex(v)
			if idx != runIndex {
				flush(x0)
				runStart, runIndex = j, idx
			}
		}
		flush(px(float64(len(row))))
	}
}

// bandSeries shades the full width of the canvas between two y values.
// Its style is only used for the legend swatch.
type bandSeries struct {
	Name   string
	Lo, Hi float64
	Color  drawing.Color
	Style  chart.Style
}

func (b bandSeries) GetName() string { return b.Name }
func (b bandSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (b bandSeries) GetStyle() chart.Style { return b.Style }
func (b bandSeries) Validate() error { return nil }

func (b bandSeries) Render(r chart.Renderer, canvasBox chart.Box, _, yrange chart.Range, _ chart.Style) {
	top := canvasBox.Bottom - yrange.Translate(b.Hi)
	bottom := canvasBox.Bottom - yrange.Translate(b.Lo)
	fillRect(r, b.Color, canvasBox.Left, top, canvasBox.Right, bottom)
}

// gradientSeries paints the PAE palette left to right over the x range,
// for use as a colour bar.
type gradientSeries struct{}

func (g gradientSeries) GetName() string { return "" }
func (g gradientSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (g gradientSeries) GetStyle() chart.Style { return chart.Style{} }
func (g gradientSeries) Validate() error { return nil }

func (g gradientSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, _ chart.Range, _ chart.Style) {
	step := (PAEMax - PAEMin) / paletteSize
	for i, color := range paePalette {
		left := canvasBox.Left + xrange.Translate(PAEMin+float64(i)*step)
		right := canvasBox.Left + xrange.Translate(PAEMin+float64(i+1)*step)
		if right == left {
			continue
		}
		fillRect(r, color, left, canvasBox.Top, right, canvasBox.Bottom)
	}
}

// blankSeries draws nothing. It keeps a chart with no data renderable.
type blankSeries struct{}

func (blankSeries) GetName() string { return "" }
func (blankSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (blankSeries) GetStyle() chart.Style { return chart.Style{} }
func (blankSeries) Validate() error { return nil }

func (blankSeries) Render(chart.Renderer, chart.Box, chart.Range, chart.Range, chart.Style) {}
