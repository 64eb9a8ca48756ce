// Package figure composes the CTAG diagram and the advanced analysis figures
// from the mutation table.
package figure

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/pdctag/internal/chart"
	"github.com/inodb/pdctag/internal/genome"
)

// DefaultDPI is the resolution of the written images.
const DefaultDPI = 300

// Renderer writes the figures as PNG files.
type Renderer struct {
	dpi    float64
	logger *zap.Logger
}

// NewRenderer creates a renderer for the given resolution.
// A non-positive dpi selects DefaultDPI.
func NewRenderer(dpi float64) *Renderer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Renderer{
		dpi:    dpi,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for progress messages.
func (r *Renderer) SetLogger(l *zap.Logger) {
	r.logger = l
}

// DPI returns the rendering resolution.
func (r *Renderer) DPI() float64 {
	return r.dpi
}

// Primary writes the CTAG diagram figure to path.
func (r *Renderer) Primary(t *genome.Table, path string) error {
	panels, err := PrimaryPanels(t)
	if err != nil {
		return fmt.Errorf("build CTAG diagram: %w", err)
	}
	return r.save(PrimaryLayout(r.dpi), panels, path)
}

// Advanced writes the advanced analysis figure to path.
func (r *Renderer) Advanced(t *genome.Table, src genome.Float64Source, path string) error {
	panels, err := AdvancedPanels(t, src)
	if err != nil {
		return fmt.Errorf("build advanced analysis: %w", err)
	}
	return r.save(AdvancedLayout(r.dpi), panels, path)
}

func (r *Renderer) save(f chart.Figure, panels []chart.Panel, path string) error {
	start := time.Now()
	size, err := f.Save(path, panels)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w, h := f.Size()
	r.logger.Info("figure written",
		zap.String("path", path),
		zap.Int("panels", len(panels)),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int64("bytes", size),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
