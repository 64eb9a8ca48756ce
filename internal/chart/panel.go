// Package chart provides the chart panels and the multi-panel figure used to
// render the mutation overview images.
//
// Axis-based panels (bars, histogram, heatmap, network) are gonum plots;
// the pie chart and the sequence diagram are drawn directly with gg.
// A Figure lays panels out on a grid and writes the result as PNG.
package chart

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Panel renders itself into an image of the given pixel size.
type Panel interface {
	Render(width, height int, dpi float64) (image.Image, error)
}

// PlotPanel adapts a gonum plot to a Panel.
type PlotPanel struct {
	Plot *plot.Plot
}

// Render draws the plot on a raster canvas of width x height pixels.
func (pp PlotPanel) Render(width, height int, dpi float64) (image.Image, error) {
	if pp.Plot == nil {
		return nil, fmt.Errorf("render plot: nil plot")
	}
	c, err := newPlotCanvas(width, height, dpi)
	if err != nil {
		return nil, fmt.Errorf("render plot: %w", err)
	}
	pp.Plot.Draw(draw.New(c))
	return c.Image(), nil
}

// newPlotCanvas returns a raster canvas of exactly width x height pixels.
// vgimg only takes whole dpi values, so dpi is rounded and the canvas size
// in inches derived from the rounded value.
func newPlotCanvas(width, height int, dpi float64) (*vgimg.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if err := CheckDPI(dpi); err != nil {
		return nil, err
	}
	res := math.Round(dpi)
	w := vg.Length(float64(width)/res) * vg.Inch
	h := vg.Length(float64(height)/res) * vg.Inch
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(res))), nil
}

// CheckDPI reports an error for resolutions below one dot per inch.
func CheckDPI(dpi float64) error {
	if math.IsNaN(dpi) || dpi < 1 {
		return fmt.Errorf("invalid resolution %v dpi: must be at least 1", dpi)
	}
	return nil
}

// newPlot creates a plot with the given title and title size in points.
func newPlot(title string, titleSize float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	if titleSize > 0 {
		p.Title.TextStyle.Font.Size = vg.Points(titleSize)
	}
	p.Title.Padding = vg.Points(6)
	return p
}
