package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram describes a binned distribution with an optional vertical marker.
type Histogram struct {
	Title     string
	TitleSize float64
	XLabel    string
	YLabel    string
	Values    []float64
	Bins      int
	Color     color.Color

	// Marker draws a dashed vertical line at MarkerX when MarkerLabel is set.
	MarkerX     float64
	MarkerLabel string
	MarkerColor color.Color
}

// HistogramPlot builds a gonum plot for h.
func HistogramPlot(h Histogram) (*plot.Plot, error) {
	if len(h.Values) == 0 {
		return nil, fmt.Errorf("histogram %q: no values", h.Title)
	}
	bins := h.Bins
	if bins <= 0 {
		bins = 10
	}

	p := newPlot(h.Title, h.TitleSize)
	p.X.Label.Text = h.XLabel
	p.Y.Label.Text = h.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 220}
	grid.Horizontal.Color = color.Gray{Y: 220}
	p.Add(grid)

	hist, err := plotter.NewHist(plotter.Values(h.Values), bins)
	if err != nil {
		return nil, fmt.Errorf("histogram %q: %w", h.Title, err)
	}
	hist.FillColor = h.Color
	hist.LineStyle.Color = color.Black
	hist.LineStyle.Width = vg.Points(0.8)
	p.Add(hist)

	if h.MarkerLabel != "" {
		top := 0.0
		for _, b := range hist.Bins {
			if b.Weight > top {
				top = b.Weight
			}
		}
		marker, err := plotter.NewLine(plotter.XYs{{X: h.MarkerX, Y: 0}, {X: h.MarkerX, Y: top * 1.05}})
		if err != nil {
			return nil, fmt.Errorf("histogram %q: marker: %w", h.Title, err)
		}
		marker.LineStyle.Color = h.MarkerColor
		marker.LineStyle.Width = vg.Points(2)
		marker.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(marker)
		p.Legend.Add(h.MarkerLabel, marker)
		p.Legend.Top = true
	}

	p.Y.Min = 0
	return p, nil
}
