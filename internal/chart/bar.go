package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const defaultBarWidth = 20.0

// Bars describes a single-series bar chart where every bar may have its own color.
type Bars struct {
	Title      string
	TitleSize  float64
	XLabel     string
	YLabel     string
	Labels     []string      // Category labels, one per value
	Values     []float64     // Bar lengths
	Colors     []color.Color // Cycled over the bars
	Horizontal bool
	BarWidth   float64 // Bar thickness in points (default 20)

	// ValueFormat formats the label drawn at the end of each bar.
	// No labels are drawn when empty.
	ValueFormat string
	// ValuePad is the data-unit gap between a bar end and its label.
	ValuePad float64

	// RotateLabels tilts the category labels by 45 degrees.
	RotateLabels bool
}

// BarPlot builds a gonum plot for b.
func BarPlot(b Bars) (*plot.Plot, error) {
	if len(b.Labels) != len(b.Values) {
		return nil, fmt.Errorf("bar plot %q: %d labels for %d values", b.Title, len(b.Labels), len(b.Values))
	}
	if len(b.Values) == 0 {
		return nil, fmt.Errorf("bar plot %q: no values", b.Title)
	}

	p := newPlot(b.Title, b.TitleSize)
	p.X.Label.Text = b.XLabel
	p.Y.Label.Text = b.YLabel
	p.Add(valueGrid(b.Horizontal))

	width := vg.Points(b.BarWidth)
	if b.BarWidth <= 0 {
		width = vg.Points(defaultBarWidth)
	}

	for i, v := range b.Values {
		bc, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return nil, fmt.Errorf("bar plot %q: bar %s: %w", b.Title, b.Labels[i], err)
		}
		bc.XMin = float64(i)
		bc.Color = cycle(b.Colors, i)
		bc.LineStyle.Width = 0
		bc.Horizontal = b.Horizontal
		p.Add(bc)
	}

	if b.ValueFormat != "" {
		labels, err := valueLabels(b)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	if b.Horizontal {
		p.NominalY(b.Labels...)
		p.X.Min = 0
	} else {
		p.NominalX(b.Labels...)
		p.Y.Min = 0
		if b.RotateLabels {
			rotateTicks(p)
		}
	}
	return p, nil
}

// valueLabels places formatted values just beyond the end of each bar.
func valueLabels(b Bars) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(b.Values))
	text := make([]string, len(b.Values))
	for i, v := range b.Values {
		if b.Horizontal {
			xys[i] = plotter.XY{X: v + b.ValuePad, Y: float64(i)}
		} else {
			xys[i] = plotter.XY{X: float64(i), Y: v + b.ValuePad}
		}
		text[i] = fmt.Sprintf(b.ValueFormat, v)
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, fmt.Errorf("bar plot %q: value labels: %w", b.Title, err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = vg.Points(9)
		if b.Horizontal {
			l.TextStyle[i].YAlign = draw.YCenter
		} else {
			l.TextStyle[i].XAlign = draw.XCenter
		}
	}
	return l, nil
}

// Series is one named group of a grouped bar chart.
type Series struct {
	Name   string
	Values []float64
	Color  color.Color
}

// GroupedBars describes bars for several series side by side per category.
type GroupedBars struct {
	Title      string
	TitleSize  float64
	XLabel     string
	YLabel     string
	Categories []string
	Series     []Series
	BarWidth   float64 // Bar thickness in points (default 20)
}

// GroupedBarPlot builds a gonum plot for g.
func GroupedBarPlot(g GroupedBars) (*plot.Plot, error) {
	if len(g.Series) == 0 {
		return nil, fmt.Errorf("grouped bar plot %q: no series", g.Title)
	}

	p := newPlot(g.Title, g.TitleSize)
	p.X.Label.Text = g.XLabel
	p.Y.Label.Text = g.YLabel
	p.Add(valueGrid(false))

	width := vg.Points(g.BarWidth)
	if g.BarWidth <= 0 {
		width = vg.Points(defaultBarWidth)
	}

	center := float64(len(g.Series)-1) / 2
	for k, s := range g.Series {
		if len(s.Values) != len(g.Categories) {
			return nil, fmt.Errorf("grouped bar plot %q: series %q has %d values for %d categories",
				g.Title, s.Name, len(s.Values), len(g.Categories))
		}
		bc, err := plotter.NewBarChart(plotter.Values(s.Values), width)
		if err != nil {
			return nil, fmt.Errorf("grouped bar plot %q: series %q: %w", g.Title, s.Name, err)
		}
		bc.Color = s.Color
		bc.LineStyle.Width = 0
		bc.Offset = vg.Length(float64(k)-center) * width
		p.Add(bc)
		p.Legend.Add(s.Name, bc)
	}

	p.Legend.Top = true
	p.NominalX(g.Categories...)
	p.Y.Min = 0
	return p, nil
}

// valueGrid returns grid lines along the value axis only.
func valueGrid(horizontal bool) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = color.Gray{Y: 220}
	g.Horizontal.Color = color.Gray{Y: 220}
	if horizontal {
		g.Horizontal.Color = nil
	} else {
		g.Vertical.Color = nil
	}
	return g
}

func rotateTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}
