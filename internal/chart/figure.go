package chart

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// titleBand is the share of the figure height reserved for the title.
const titleBand = 0.05

// Figure lays out panels on a rows x cols grid under a common title.
type Figure struct {
	Title     string
	TitleSize float64 // Points
	Rows      int
	Cols      int
	Width     float64 // Inches
	Height    float64 // Inches
	DPI       float64
}

// Size returns the figure size in pixels.
func (f Figure) Size() (width, height int) {
	return int(f.Width * f.DPI), int(f.Height * f.DPI)
}

// Render draws every panel into its grid cell, row by row.
func (f Figure) Render(panels []Panel) (image.Image, error) {
	if f.Rows <= 0 || f.Cols <= 0 {
		return nil, fmt.Errorf("figure %q: invalid grid %dx%d", f.Title, f.Rows, f.Cols)
	}
	if len(panels) > f.Rows*f.Cols {
		return nil, fmt.Errorf("figure %q: %d panels do not fit a %dx%d grid", f.Title, len(panels), f.Rows, f.Cols)
	}
	if err := CheckDPI(f.DPI); err != nil {
		return nil, fmt.Errorf("figure %q: %w", f.Title, err)
	}
	width, height := f.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("figure %q: invalid size %dx%d", f.Title, width, height)
	}

	c := newCanvas(width, height, f.DPI)
	band := int(float64(height) * titleBand)
	if err := c.setFont(f.TitleSize, true); err != nil {
		return nil, err
	}
	c.dc.SetColor(color.Black)
	c.dc.DrawStringAnchored(f.Title, float64(width)/2, float64(band)/2, 0.5, 0.5)

	cellW := width / f.Cols
	cellH := (height - band) / f.Rows
	for i, p := range panels {
		row, col := i/f.Cols, i%f.Cols
		img, err := p.Render(cellW, cellH, f.DPI)
		if err != nil {
			return nil, fmt.Errorf("figure %q: panel %d: %w", f.Title, i+1, err)
		}
		c.dc.DrawImage(img, col*cellW, band+row*cellH)
	}
	return c.dc.Image(), nil
}

// WritePNG renders the figure and encodes it as PNG to w.
func (f Figure) WritePNG(w io.Writer, panels []Panel) error {
	img, err := f.Render(panels)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Save renders the figure to a PNG file at path and returns the file size.
func (f Figure) Save(path string, panels []Panel) (int64, error) {
	img, err := f.Render(panels)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := gg.SavePNG(path, img); err != nil {
		return 0, fmt.Errorf("save figure: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat figure: %w", err)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return 0, fmt.Errorf("figure %s is empty after rendering", path)
	}
	return info.Size(), nil
}
