package render

import (
	"errors"
	"image"
	"image/draw"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/yumyai/af3plot/pkg/model"
)

// PAE figure layout, in inches.
const (
	paeWidth          = 7.0
	paeHeatmapHeight  = 7.0
	paeColorBarHeight = 2.0

	paeFontSize = 18.0
)

const colorBarLabel = "Expected position error (Ångströms)"

var ErrEmptyMatrix = errors.New("PAE matrix is empty")

// PAEHeatmap draws the PAE matrix with the scored residue on x and the
// aligned residue on y (row 0 at the top), a colour bar annotated with the
// summary scores, and a dashed line on both axes at every chain boundary.
func PAEHeatmap(path string, matrix model.PAEMatrix, summary model.Summary, boundaries []int, opts Options) error {
	img, err := paeImage(matrix, summary, boundaries, opts)
	if err != nil {
		return err
	}
	return writeJPEG(path, img)
}

func paeImage(matrix model.PAEMatrix, summary model.Summary, boundaries []int, opts Options) (image.Image, error) {
	rows, cols := matrix.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}

	heat, err := rasterize(heatmapChart(matrix, boundaries, opts))
	if err != nil {
		return nil, err
	}
	bar, err := rasterize(colorBarChart(summary, opts))
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.px(paeWidth), opts.px(paeHeatmapHeight+paeColorBarHeight)))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, heat.Bounds(), heat, image.Point{}, draw.Src)
	barAt := image.Pt(0, heat.Bounds().Dy())
	draw.Draw(out, bar.Bounds().Add(barAt), bar, image.Point{}, draw.Src)
	return out, nil
}

func heatmapChart(matrix model.PAEMatrix, boundaries []int, opts Options) chart.Chart {
	rows, cols := matrix.Dims()
	axisStyle := chart.Style{FontSize: paeFontSize}
	nameStyle := chart.Style{FontSize: paeFontSize}

	series := []chart.Series{heatmapSeries{Matrix: matrix}}
	for _, b := range boundaries {
		series = append(series,
			vline(float64(b), 0, float64(rows), opts.boundaryStyle()),
			hline(float64(b), 0, float64(cols), opts.boundaryStyle()))
	}

	return chart.Chart{
		Width:      opts.px(paeWidth),
		Height:     opts.px(paeHeatmapHeight),
		DPI:        opts.dpi(),
		Background: chart.Style{Padding: opts.padding(12)},
		XAxis: chart.XAxis{
			Name:           "Scored residue",
			NameStyle:      nameStyle,
			Style:          axisStyle,
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(cols)},
			ValueFormatter: integerFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Aligned residue",
			NameStyle:      nameStyle,
			Style:          axisStyle,
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(rows), Descending: true},
			ValueFormatter: integerFormatter,
		},
		Series: series,
	}
}

func colorBarChart(summary model.Summary, opts Options) chart.Chart {
	ticks := make([]chart.Tick, 0, 7)
	for v := PAEMin; v <= PAEMax; v += 5 {
		ticks = append(ticks, chart.Tick{Value: v, Label: integerFormatter(v)})
	}

	return chart.Chart{
		Title:      summary.Label(),
		TitleStyle: chart.Style{FontSize: paeFontSize, FontColor: colorBlack},
		Width:      opts.px(paeWidth),
		Height:     opts.px(paeColorBarHeight),
		DPI:        opts.dpi(),
		Background: chart.Style{
			Padding: chart.Box{
				Top:    int(opts.pt(40)),
				Left:   int(opts.pt(36)),
				Right:  int(opts.pt(36)),
				Bottom: int(opts.pt(8)),
			},
		},
		XAxis: chart.XAxis{
			Name:      colorBarLabel,
			NameStyle: chart.Style{FontSize: paeFontSize},
			Style:     chart.Style{FontSize: paeFontSize},
			Ticks:     ticks,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{gradientSeries{}},
	}
}
