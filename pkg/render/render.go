// Package render draws the confidence plots with go-chart and writes them
// as JPEG images.
//
// Figure sizes are given in inches and converted with the DPI of Options,
// so that font sizes (points) and line widths keep their proportions at any
// resolution.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yumyai/af3plot/logger"
)

const (
	DefaultDPI  = 500.0
	JPEGQuality = 95
)

var (
	colorBlack     = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	colorWhite     = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	colorTraceBlue = drawing.ColorFromHex("1f77b4")
	colorThreshold = drawing.Color{R: 128, G: 128, B: 128, A: 255}

	// Chain boundaries: dark red at half opacity.
	colorBoundary = drawing.Color{R: 139, G: 0, B: 0, A: 128}
)

// Options controls the output resolution.
type Options struct {
	DPI float64
}

func (o Options) dpi() float64 {
	if o.DPI <= 0 {
		return DefaultDPI
	}
	return o.DPI
}

// px converts a length in inches to pixels.
func (o Options) px(inches float64) int {
	return int(inches * o.dpi())
}

// pt converts a length in points to pixels.
func (o Options) pt(points float64) float64 {
	return points * o.dpi() / 72
}

func (o Options) padding(points float64) chart.Box {
	p := int(o.pt(points))
	return chart.Box{Top: p, Left: p, Right: p, Bottom: p}
}

func (o Options) boundaryStyle() chart.Style {
	return chart.Style{
		StrokeColor:     colorBoundary,
		StrokeWidth:     o.pt(2),
		StrokeDashArray: []float64{o.pt(6), o.pt(4)},
	}
}

func (o Options) thresholdStyle() chart.Style {
	return chart.Style{
		StrokeColor:     colorThreshold,
		StrokeWidth:     o.pt(1.5),
		StrokeDashArray: []float64{o.pt(5.5), o.pt(2.5)},
	}
}

func integerFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%v", v)
}

func vline(x, y0, y1 float64, style chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Style:   style,
		XValues: []float64{x, x},
		YValues: []float64{y0, y1},
	}
}

func hline(y, x0, x1 float64, style chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Style:   style,
		XValues: []float64{x0, x1},
		YValues: []float64{y, y},
	}
}

// residueRange is the x range of a trace numbered 1..n.
func residueRange(n int) *chart.ContinuousRange {
	max := float64(n)
	if n < 2 {
		max = 2
	}
	return &chart.ContinuousRange{Min: 1, Max: max}
}

// rasterize renders the chart and decodes the result.
func rasterize(c chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// writeJPEG encodes img to path, replacing any existing file.
func writeJPEG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if info, statErr := f.Stat(); statErr == nil {
		logger.Debug("Wrote image",
			zap.String("path", path),
			zap.String("size", humanize.Bytes(uint64(info.Size()))),
			zap.Int("width", img.Bounds().Dx()),
			zap.Int("height", img.Bounds().Dy()))
	}
	return nil
}
