package figure

import (
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/inodb/pdctag/internal/chart"
	"github.com/inodb/pdctag/internal/genome"
)

const testDPI = 15

func TestPrimaryPanels(t *testing.T) {
	panels, err := PrimaryPanels(genome.Generate())
	require.NoError(t, err)
	require.Len(t, panels, 4)

	assert.IsType(t, chart.PlotPanel{}, panels[0])
	assert.IsType(t, chart.Pie{}, panels[1])
	assert.IsType(t, chart.Sequence{}, panels[2])
	assert.IsType(t, chart.PlotPanel{}, panels[3])

	pie := panels[1].(chart.Pie)
	assert.Equal(t, []string{"Missense", "Deletion", "Frameshift"}, pie.Labels)
	assert.Equal(t, []float64{11, 2, 1}, pie.Values)

	seq := panels[2].(chart.Sequence)
	assert.Equal(t, genome.Sequence, seq.Bases)
	assert.Equal(t, []int{8, 15, 22, 30, 42}, seq.Sites)
}

func TestAdvancedPanels(t *testing.T) {
	panels, err := AdvancedPanels(genome.Generate(), rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	require.Len(t, panels, 6)

	img, err := panels[0].Render(120, 90, testDPI)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	for i, p := range panels[1:] {
		assert.IsType(t, chart.PlotPanel{}, p, "panel %d", i+2)
	}
}

func TestFrequencyBars(t *testing.T) {
	b := frequencyBars(genome.Generate())
	require.Len(t, b.Labels, 14)
	require.Len(t, b.Colors, 14)
	assert.True(t, b.Horizontal)
	assert.Equal(t, "%.1f%%", b.ValueFormat)

	tests := []struct {
		gene    string
		percent float64
		color   color.Color
	}{
		{"SNCA", 15, highlightColor},
		{"LRRK2", 12, highlightColor},
		{"PARK2", 8, highlightColor},
		{"PINK1", 6, baseGeneColor},
		{"GBA", 10, baseGeneColor},
		{"SYNJ1", 1, baseGeneColor},
	}
	for _, tt := range tests {
		t.Run(tt.gene, func(t *testing.T) {
			i := slices.Index(b.Labels, tt.gene)
			require.GreaterOrEqual(t, i, 0)
			assert.InDelta(t, tt.percent, b.Values[i], 1e-9)
			assert.Equal(t, tt.color, b.Colors[i])
		})
	}
}

func TestBarData(t *testing.T) {
	tbl := genome.Generate()
	tests := []struct {
		name   string
		bars   chart.Bars
		labels []string
		values []float64
	}{
		{
			name:   "clinical impact",
			bars:   clinicalImpactBars(tbl),
			labels: []string{"Pathogenic", "Risk_Factor"},
			values: []float64{13, 1},
		},
		{
			name:   "pathways",
			bars:   pathwayBars(),
			labels: []string{"Proteostasis", "Mitochondrial Function", "Vesicular Trafficking", "Lysosomal"},
			values: []float64{3, 3, 3, 2},
		},
		{
			name:   "spectrum",
			bars:   spectrumBars(),
			labels: []string{"C>T", "C>G", "C>A", "T>C", "T>G", "T>A"},
			values: []float64{120, 30, 40, 90, 25, 35},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.labels, tt.bars.Labels)
			assert.Equal(t, tt.values, tt.bars.Values)
			assert.Equal(t, "%.0f", tt.bars.ValueFormat)
		})
	}
}

func TestSignatureBars(t *testing.T) {
	g := signatureBars()
	assert.Equal(t, []string{"C>A", "C>G", "C>T", "T>A", "T>C", "T>G"}, g.Categories)
	require.Len(t, g.Series, 2)

	assert.Equal(t, "Sporadic Signature", g.Series[0].Name)
	assert.Equal(t, []float64{0.15, 0.08, 0.35, 0.12, 0.20, 0.10}, g.Series[0].Values)
	assert.Equal(t, brown, g.Series[0].Color)

	assert.Equal(t, "Familial Signature", g.Series[1].Name)
	assert.Equal(t, []float64{0.25, 0.12, 0.25, 0.15, 0.15, 0.08}, g.Series[1].Values)
	assert.Equal(t, lightBrown, g.Series[1].Color)
}

func TestFrequencyHistogram(t *testing.T) {
	h := frequencyHistogram(genome.Generate())
	require.Len(t, h.Values, 14)
	assert.InDelta(t, 15, h.Values[0], 1e-9)
	assert.Equal(t, 8, h.Bins)
	assert.InDelta(t, 5.357, h.MarkerX, 1e-3)
	assert.Equal(t, "Mean: 5.4%", h.MarkerLabel)
}

func TestInteractionNetwork(t *testing.T) {
	n, err := interactionNetwork()
	require.NoError(t, err)
	require.Len(t, n.Nodes, 8)
	require.Len(t, n.Edges, 8)

	for _, node := range n.Nodes {
		want := color.Color(baseGeneColor)
		if genome.IsPrincipal(node.Label) {
			want = brown
		}
		assert.Equal(t, want, node.Color, node.Label)
	}
	assert.Equal(t, chart.NetworkEdge{From: 0, To: 1}, n.Edges[0], "SNCA-LRRK2")
}

func TestMutationHeatmap(t *testing.T) {
	h := mutationHeatmap(genome.Generate(), rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, []string{"Missense", "Deletion", "Frameshift"}, h.ColLabels)
	require.Len(t, h.RowLabels, 14)
	assert.Len(t, h.Values, 14)
	assert.Equal(t, "Relative frequency", h.BarLabel)
}

func TestLayouts(t *testing.T) {
	primary := PrimaryLayout(DefaultDPI)
	w, h := primary.Size()
	assert.Equal(t, 6000, w)
	assert.Equal(t, 4800, h)
	assert.Equal(t, 4, primary.Rows*primary.Cols)

	advanced := AdvancedLayout(DefaultDPI)
	w, h = advanced.Size()
	assert.Equal(t, 5400, w)
	assert.Equal(t, 3600, h)
	assert.Equal(t, 6, advanced.Rows*advanced.Cols)
}

func TestNewRenderer_DefaultDPI(t *testing.T) {
	assert.Equal(t, float64(DefaultDPI), NewRenderer(0).DPI())
	assert.Equal(t, 72.0, NewRenderer(72).DPI())
}

func TestRenderer_WritesFigures(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewRenderer(testDPI)
	r.SetLogger(zap.New(core))

	dir := t.TempDir()
	tbl := genome.Generate()
	primary := filepath.Join(dir, "primary.png")
	advanced := filepath.Join(dir, "advanced.png")

	require.NoError(t, r.Primary(tbl, primary))
	require.NoError(t, r.Advanced(tbl, rand.New(rand.NewPCG(1, 1)), advanced))

	tests := []struct {
		path          string
		width, height int
	}{
		{primary, 300, 240},
		{advanced, 270, 180},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			f, err := os.Open(tt.path)
			require.NoError(t, err)
			defer f.Close()

			cfg, err := png.DecodeConfig(f)
			require.NoError(t, err)
			assert.Equal(t, tt.width, cfg.Width)
			assert.Equal(t, tt.height, cfg.Height)
		})
	}

	entries := logs.FilterMessage("figure written").All()
	require.Len(t, entries, 2)
	assert.Equal(t, primary, entries[0].ContextMap()["path"])
}

func TestRenderer_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := NewRenderer(testDPI).Primary(genome.Generate(), filepath.Join(blocker, "out.png"))
	assert.Error(t, err)
}

func TestRenderer_SubUnitDPI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	err := NewRenderer(0.9).Primary(genome.Generate(), path)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestRenderer_FractionalDPI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, NewRenderer(14.6).Primary(genome.Generate(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 292, cfg.Width)
	assert.Equal(t, 233, cfg.Height)
}
