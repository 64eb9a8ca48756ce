package chart

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
)

// Sequence draws a base sequence as a row of colored unit cells with
// markers above the mutated positions. Data coordinates span
// [0,len(Bases)] horizontally and [0,2] vertically.
type Sequence struct {
	Title       string
	TitleSize   float64
	XLabel      string
	Bases       string
	BaseColors  map[byte]color.Color
	Sites       []int       // 0-based mutated positions
	MarkerColor color.Color // Fill of the site markers
	MarkerEdge  color.Color
	MarkerText  string
}

const (
	cellBottom   = 0.8
	cellHeight   = 0.4
	markerCenter = 1.6
	markerRadius = 0.3
	sequenceYMax = 2.0
	tickEvery    = 10
)

// Render implements Panel.
func (s Sequence) Render(width, height int, dpi float64) (image.Image, error) {
	n := len(s.Bases)
	if n == 0 {
		return nil, fmt.Errorf("sequence %q: empty sequence", s.Title)
	}
	for _, site := range s.Sites {
		if site < 0 || site >= n {
			return nil, fmt.Errorf("sequence %q: site %d outside sequence of length %d", s.Title, site, n)
		}
	}

	c := newCanvas(width, height, dpi)
	top, err := c.title(s.Title, s.TitleSize)
	if err != nil {
		return nil, err
	}
	dc := c.dc

	left, right := c.pt(20), float64(width)-c.pt(20)
	bottom := float64(height) - c.pt(40)
	unitX := (right - left) / float64(n)
	unitY := (bottom - top) / sequenceYMax
	px := func(x float64) float64 { return left + x*unitX }
	py := func(y float64) float64 { return bottom - y*unitY }

	// Grid at the tick positions.
	dc.SetColor(color.Gray{Y: 225})
	dc.SetLineWidth(c.pt(0.5))
	for x := 0; x <= n; x += tickEvery {
		dc.DrawLine(px(float64(x)), py(0), px(float64(x)), py(sequenceYMax))
		dc.Stroke()
	}

	if err := c.setFont(8, true); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		base := s.Bases[i]
		fill, ok := s.BaseColors[base]
		if !ok {
			fill = color.Gray{Y: 200}
		}
		x, y := px(float64(i)), py(cellBottom+cellHeight)
		dc.DrawRectangle(x, y, unitX, cellHeight*unitY)
		dc.SetColor(fill)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(c.pt(0.5))
		dc.Stroke()
		dc.DrawStringAnchored(string(base), px(float64(i)+0.5), py(cellBottom+cellHeight/2), 0.5, 0.5)
	}

	for _, site := range s.Sites {
		x, y := px(float64(site)+0.5), py(markerCenter)
		dc.DrawEllipse(x, y, markerRadius*unitX, markerRadius*unitY)
		dc.SetColor(s.MarkerColor)
		dc.FillPreserve()
		dc.SetColor(s.MarkerEdge)
		dc.SetLineWidth(c.pt(1))
		dc.Stroke()
		dc.SetColor(color.White)
		dc.DrawStringAnchored(s.MarkerText, x, y, 0.5, 0.5)
	}

	// X axis with ticks and label.
	dc.SetColor(color.Black)
	dc.SetLineWidth(c.pt(0.8))
	dc.DrawLine(px(0), py(0), px(float64(n)), py(0))
	dc.Stroke()
	if err := c.setFont(9, false); err != nil {
		return nil, err
	}
	for x := 0; x <= n; x += tickEvery {
		dc.DrawLine(px(float64(x)), py(0), px(float64(x)), py(0)+c.pt(4))
		dc.Stroke()
		dc.DrawStringAnchored(strconv.Itoa(x), px(float64(x)), py(0)+c.pt(6), 0.5, 1)
	}
	if err := c.setFont(10, false); err != nil {
		return nil, err
	}
	dc.DrawStringAnchored(s.XLabel, (left+right)/2, float64(height)-c.pt(8), 0.5, 0)

	return dc.Image(), nil
}
