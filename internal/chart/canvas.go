package chart

import (
	"image/color"

	"github.com/fogleman/gg"
)

const defaultFontSize = 12.0

// canvas wraps a gg context with point-based sizing for a target dpi.
type canvas struct {
	dc  *gg.Context
	dpi float64
}

func newCanvas(width, height int, dpi float64) *canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	return &canvas{dc: dc, dpi: dpi}
}

// pt converts points to pixels.
func (c *canvas) pt(points float64) float64 {
	return points * c.dpi / 72
}

func (c *canvas) setFont(points float64, bold bool) error {
	if points <= 0 {
		points = defaultFontSize
	}
	f, err := face(points, c.dpi, bold)
	if err != nil {
		return err
	}
	c.dc.SetFontFace(f)
	return nil
}

// title draws a centered, possibly multi-line title and returns the y
// coordinate just below it.
func (c *canvas) title(text string, points float64) (float64, error) {
	if err := c.setFont(points, true); err != nil {
		return 0, err
	}
	top := c.pt(8)
	width := float64(c.dc.Width())
	c.dc.SetColor(color.Black)
	c.dc.DrawStringWrapped(text, width/2, top, 0.5, 0, width-c.pt(16), 1.3, gg.AlignCenter)
	lines := c.dc.WordWrap(text, width-c.pt(16))
	return top + float64(len(lines))*c.dc.FontHeight()*1.3 + c.pt(6), nil
}
