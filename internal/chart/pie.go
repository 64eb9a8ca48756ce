package chart

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Pie is a pie chart with percentage labels inside the wedges. The first
// wedge starts at twelve o'clock and wedges follow counter-clockwise.
type Pie struct {
	Title     string
	TitleSize float64
	Labels    []string
	Values    []float64
	Colors    []color.Color
}

// Render implements Panel.
func (p Pie) Render(width, height int, dpi float64) (image.Image, error) {
	if len(p.Labels) != len(p.Values) {
		return nil, fmt.Errorf("pie %q: %d labels for %d values", p.Title, len(p.Labels), len(p.Values))
	}
	total := 0.0
	for _, v := range p.Values {
		if v < 0 {
			return nil, fmt.Errorf("pie %q: negative value %v", p.Title, v)
		}
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("pie %q: values sum to zero", p.Title)
	}

	c := newCanvas(width, height, dpi)
	top, err := c.title(p.Title, p.TitleSize)
	if err != nil {
		return nil, err
	}

	w, h := float64(width), float64(height)
	cx, cy := w/2, top+(h-top)/2
	r := 0.35 * math.Min(w, h-top)

	dc := c.dc
	angle := -math.Pi / 2
	mids := make([]float64, len(p.Values))
	for i, v := range p.Values {
		sweep := 2 * math.Pi * v / total
		next := angle - sweep
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r, angle, next)
		dc.ClosePath()
		dc.SetColor(cycle(p.Colors, i))
		dc.Fill()
		mids[i] = angle - sweep/2
		angle = next
	}

	if err := c.setFont(10, false); err != nil {
		return nil, err
	}
	dc.SetColor(color.Black)
	for i, label := range p.Labels {
		x := cx + 1.15*r*math.Cos(mids[i])
		y := cy + 1.15*r*math.Sin(mids[i])
		ax := 0.0
		if math.Cos(mids[i]) < 0 {
			ax = 1
		}
		dc.DrawStringAnchored(label, x, y, ax, 0.5)
	}

	if err := c.setFont(10, true); err != nil {
		return nil, err
	}
	dc.SetColor(color.White)
	for i, v := range p.Values {
		x := cx + 0.6*r*math.Cos(mids[i])
		y := cy + 0.6*r*math.Sin(mids[i])
		dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", 100*v/total), x, y, 0.5, 0.5)
	}

	return dc.Image(), nil
}
