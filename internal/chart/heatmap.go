package chart

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// colorBarShare is the fraction of a heatmap panel's width given to its color bar.
const colorBarShare = 0.18

// Heatmap describes a labelled matrix. Row 0 is drawn at the top.
type Heatmap struct {
	Title     string
	TitleSize float64
	RowLabels []string
	ColLabels []string
	Values    [][]float64
	BarLabel  string // Color bar axis label
}

func (h Heatmap) validate() error {
	if len(h.Values) == 0 || len(h.Values[0]) == 0 {
		return fmt.Errorf("heatmap %q: empty matrix", h.Title)
	}
	if len(h.Values) != len(h.RowLabels) {
		return fmt.Errorf("heatmap %q: %d rows for %d row labels", h.Title, len(h.Values), len(h.RowLabels))
	}
	for i, row := range h.Values {
		if len(row) != len(h.ColLabels) {
			return fmt.Errorf("heatmap %q: row %d has %d values for %d columns", h.Title, i, len(row), len(h.ColLabels))
		}
	}
	return nil
}

// colorMap returns a yellow-orange-red map spanning the matrix values.
func (h Heatmap) colorMap() palette.ColorMap {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range h.Values {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	cm := NewYlOrRdMap()
	cm.SetMin(lo)
	cm.SetMax(hi)
	return cm
}

// HeatmapPlot builds a gonum plot for h using a yellow-orange-red palette.
func HeatmapPlot(h Heatmap) (*plot.Plot, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}

	p := newPlot(h.Title, h.TitleSize)
	p.Add(plotter.NewHeatMap(matrixGrid(h.Values), YlOrRd(64)))

	rows := make([]string, len(h.RowLabels))
	for i, l := range h.RowLabels {
		rows[len(rows)-1-i] = l
	}
	p.NominalX(h.ColLabels...)
	p.NominalY(rows...)
	rotateTicks(p)
	return p, nil
}

// ColorBarPlot builds a vertical color bar for the value range of h.
func ColorBarPlot(h Heatmap) (*plot.Plot, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.HideX()
	p.X.Padding, p.Y.Padding = 0, 0
	p.Y.Label.Text = h.BarLabel
	p.Add(&plotter.ColorBar{ColorMap: h.colorMap(), Vertical: true, Colors: 64})
	return p, nil
}

// HeatmapPanel returns a panel drawing the heatmap with its color bar on
// the right, aligned to the heatmap's data area.
func HeatmapPanel(h Heatmap) (Panel, error) {
	heat, err := HeatmapPlot(h)
	if err != nil {
		return nil, err
	}
	bar, err := ColorBarPlot(h)
	if err != nil {
		return nil, err
	}
	return heatmapPanel{heat: heat, bar: bar}, nil
}

type heatmapPanel struct {
	heat *plot.Plot
	bar  *plot.Plot
}

func (hp heatmapPanel) Render(width, height int, dpi float64) (image.Image, error) {
	c, err := newPlotCanvas(width, height, dpi)
	if err != nil {
		return nil, fmt.Errorf("render heatmap: %w", err)
	}
	dc := draw.New(c)

	barWidth := (dc.Max.X - dc.Min.X) * colorBarShare
	left := draw.Crop(dc, 0, -barWidth, 0, 0)
	hp.heat.Draw(left)

	data := hp.heat.DataCanvas(left)
	hp.bar.Draw(draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: left.Max.X, Y: data.Min.Y},
			Max: vg.Point{X: dc.Max.X - vg.Points(6), Y: data.Max.Y},
		},
	})
	return c.Image(), nil
}

// matrixGrid exposes a row-major matrix as a plotter.GridXYZ with row 0 on top.
type matrixGrid [][]float64

func (m matrixGrid) Dims() (c, r int) { return len(m[0]), len(m) }
func (m matrixGrid) Z(c, r int) float64 { return m[len(m)-1-r][c] }
func (m matrixGrid) X(c int) float64 { return float64(c) }
func (m matrixGrid) Y(r int) float64 { return float64(r) }

// ylOrRdStops are the ColorBrewer YlOrRd anchor colors.
var ylOrRdStops = []string{
	"#FFFFCC", "#FFEDA0", "#FED976", "#FEB24C", "#FD8D3C",
	"#FC4E2A", "#E31A1C", "#BD0026", "#800026",
}

type gradient []color.Color

func (g gradient) Colors() []color.Color { return g }

// ylOrRdAt returns the YlOrRd color at position t in [0,1].
func ylOrRdAt(t float64) color.NRGBA {
	last := len(ylOrRdStops) - 1
	pos := math.Max(0, math.Min(1, t)) * float64(last)
	lo := int(pos)
	if lo >= last {
		return Hex(ylOrRdStops[last], 1)
	}
	return lerp(Hex(ylOrRdStops[lo], 1), Hex(ylOrRdStops[lo+1], 1), pos-float64(lo))
}

// YlOrRd returns an n-step yellow-orange-red palette.
func YlOrRd(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	out := make(gradient, n)
	for i := range out {
		out[i] = ylOrRdAt(float64(i) / float64(n-1))
	}
	return out
}

// YlOrRdMap is a continuous yellow-orange-red palette.ColorMap.
type YlOrRdMap struct {
	min, max, alpha float64
}

// NewYlOrRdMap returns an opaque map over [0,1].
func NewYlOrRdMap() *YlOrRdMap {
	return &YlOrRdMap{min: 0, max: 1, alpha: 1}
}

// At implements palette.ColorMap.
func (m *YlOrRdMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	t := 0.0
	if m.max > m.min {
		t = (v - m.min) / (m.max - m.min)
	}
	c := ylOrRdAt(t)
	c.A = uint8(m.alpha*255 + 0.5)
	return c, nil
}

func (m *YlOrRdMap) Max() float64 { return m.max }
func (m *YlOrRdMap) SetMax(v float64) { m.max = v }
func (m *YlOrRdMap) Min() float64 { return m.min }
func (m *YlOrRdMap) SetMin(v float64) { m.min = v }
func (m *YlOrRdMap) Alpha() float64 { return m.alpha }

// SetAlpha sets the opacity, clamped to [0,1].
func (m *YlOrRdMap) SetAlpha(a float64) {
	m.alpha = math.Max(0, math.Min(1, a))
}

// Palette implements palette.ColorMap.
func (m *YlOrRdMap) Palette(colors int) palette.Palette {
	if colors < 2 {
		colors = 2
	}
	out := make(gradient, colors)
	for i := range out {
		v := m.min + (m.max-m.min)*float64(i)/float64(colors-1)
		c, err := m.At(v)
		if err != nil {
			c = ylOrRdAt(float64(i) / float64(colors-1))
		}
		out[i] = c
	}
	return out
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
