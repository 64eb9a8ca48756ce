// Package pipeline runs the end-to-end report: data generation, console
// output, both figures and optional display.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inodb/pdctag/internal/chart"
	"github.com/inodb/pdctag/internal/duckdb"
	"github.com/inodb/pdctag/internal/figure"
	"github.com/inodb/pdctag/internal/genome"
	"github.com/inodb/pdctag/internal/output"
	"github.com/inodb/pdctag/internal/viewer"
)

// Default output file names.
const (
	DefaultPrimaryName  = "parkinson_ctag_diagram.png"
	DefaultAdvancedName = "advanced_parkinson_genomics.png"
	PreviewRows         = 8
	DefaultDPI          = figure.DefaultDPI
)

// Options configures a run.
type Options struct {
	OutputDir    string
	PrimaryName  string
	AdvancedName string
	DPI          float64
	// Seed seeds the heatmap filler values. Zero seeds from the clock.
	Seed uint64
	// Display opens each figure in the viewer after it is written.
	Display bool
	// SkipFigures prints the text report only.
	SkipFigures bool
}

func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.PrimaryName == "" {
		o.PrimaryName = DefaultPrimaryName
	}
	if o.AdvancedName == "" {
		o.AdvancedName = DefaultAdvancedName
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	return o
}

// Validate reports options that cannot produce figures.
func (o Options) Validate() error {
	if o.SkipFigures {
		return nil
	}
	if err := chart.CheckDPI(o.DPI); err != nil {
		return fmt.Errorf("output dpi: %w", err)
	}
	return nil
}

// Result describes a completed run.
type Result struct {
	RunID     string
	Table     *genome.Table
	Artifacts []string
	Elapsed   time.Duration
}

// Runner executes the report pipeline.
type Runner struct {
	opts   Options
	out    io.Writer
	viewer viewer.Opener
	logger *zap.Logger
}

// NewRunner creates a Runner writing the console report to out.
func NewRunner(opts Options, out io.Writer) *Runner {
	return &Runner{
		opts:   opts.withDefaults(),
		out:    out,
		viewer: viewer.Nop{},
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for run progress.
func (r *Runner) SetLogger(l *zap.Logger) {
	r.logger = l
}

// SetViewer sets the Opener used when Display is enabled.
func (r *Runner) SetViewer(v viewer.Opener) {
	r.viewer = v
}

// Options returns the effective options.
func (r *Runner) Options() Options {
	return r.opts
}

// Run executes the full pipeline.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.New().String()
	logger := r.logger.With(zap.String("run_id", runID))

	rw := output.NewReportWriter(r.out)
	rw.WriteBanner()

	rw.WriteStep("Generating genomic data...")
	t := genome.Generate()
	logger.Debug("table generated", zap.Int("rows", t.Len()))

	if err := crossCheck(t); err != nil {
		return nil, err
	}

	rw.WritePreview(t, PreviewRows)

	res := &Result{RunID: runID, Table: t}

	if r.opts.SkipFigures {
		rw.WriteGenomicReport(t)
		if err := rw.Flush(); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		res.Elapsed = time.Since(start)
		return res, nil
	}

	renderer := figure.NewRenderer(r.opts.DPI)
	renderer.SetLogger(logger)

	rw.WriteStep("Creating CTAG diagram...")
	if err := rw.Flush(); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run interrupted before CTAG diagram: %w", err)
	}
	primary := filepath.Join(r.opts.OutputDir, r.opts.PrimaryName)
	if err := renderer.Primary(t, primary); err != nil {
		return nil, err
	}
	res.Artifacts = append(res.Artifacts, primary)
	r.display(ctx, logger, primary)

	rw.WriteGenomicReport(t)

	rw.WriteStep("Creating advanced genomic analysis...")
	if err := rw.Flush(); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("run interrupted before advanced analysis: %w", err)
	}
	advanced := filepath.Join(r.opts.OutputDir, r.opts.AdvancedName)
	if err := renderer.Advanced(t, heatmapSource(r.opts.Seed), advanced); err != nil {
		return nil, err
	}
	res.Artifacts = append(res.Artifacts, advanced)
	r.display(ctx, logger, advanced)

	rw.WriteArtifacts(res.Artifacts)
	if err := rw.Flush(); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	res.Elapsed = time.Since(start)
	logger.Info("run complete",
		zap.Strings("artifacts", res.Artifacts),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

func (r *Runner) display(ctx context.Context, logger *zap.Logger, path string) {
	if !r.opts.Display {
		return
	}
	if err := r.viewer.Open(ctx, path); err != nil {
		logger.Warn("could not display figure", zap.String("path", path), zap.Error(err))
	}
}

// heatmapSource returns the random source for heatmap filler values.
func heatmapSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// crossCheck loads t into an in-memory DuckDB and verifies that SQL
// aggregates agree with the in-process ones.
func crossCheck(t *genome.Table) error {
	store, err := duckdb.Open("")
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	defer store.Close()

	if err := store.LoadTable(t); err != nil {
		return fmt.Errorf("load table: %w", err)
	}

	mean, err := store.MeanFrequency()
	if err != nil {
		return err
	}
	if math.Abs(mean-t.MeanFrequency()) > 1e-9 {
		return fmt.Errorf("mean frequency mismatch: sql %.6f, table %.6f", mean, t.MeanFrequency())
	}

	counts, err := store.TypeCounts()
	if err != nil {
		return err
	}
	want := t.TypeCounts()
	if len(counts) != len(want) {
		return fmt.Errorf("type count mismatch: sql %d types, table %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			return fmt.Errorf("type count mismatch for %s: sql %d, table %d", want[i].Label, counts[i].N, want[i].N)
		}
	}
	return nil
}
