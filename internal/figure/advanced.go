package figure

import (
	"fmt"
	"image/color"

	"github.com/inodb/pdctag/internal/chart"
	"github.com/inodb/pdctag/internal/genome"
)

// AdvancedLayout is the 2x3 advanced analysis figure at the given resolution.
func AdvancedLayout(dpi float64) chart.Figure {
	return chart.Figure{
		Title:     "Advanced Genomic Analysis - Parkinson's Disease",
		TitleSize: 16,
		Rows:      2,
		Cols:      3,
		Width:     18,
		Height:    12,
		DPI:       dpi,
	}
}

// AdvancedPanels builds the six panels of the advanced analysis figure.
// Heatmap filler values are drawn from src.
func AdvancedPanels(t *genome.Table, src genome.Float64Source) ([]chart.Panel, error) {
	heat, err := chart.HeatmapPanel(mutationHeatmap(t, src))
	if err != nil {
		return nil, fmt.Errorf("heatmap panel: %w", err)
	}

	hist, err := chart.HistogramPlot(frequencyHistogram(t))
	if err != nil {
		return nil, fmt.Errorf("distribution panel: %w", err)
	}

	network, err := interactionNetwork()
	if err != nil {
		return nil, fmt.Errorf("network panel: %w", err)
	}
	net, err := chart.NetworkPlot(network)
	if err != nil {
		return nil, fmt.Errorf("network panel: %w", err)
	}

	sig, err := chart.GroupedBarPlot(signatureBars())
	if err != nil {
		return nil, fmt.Errorf("signature panel: %w", err)
	}

	pathways, err := barPanel("pathway", pathwayBars())
	if err != nil {
		return nil, err
	}
	spectrum, err := barPanel("spectrum", spectrumBars())
	if err != nil {
		return nil, err
	}

	return []chart.Panel{
		heat,
		chart.PlotPanel{Plot: hist},
		chart.PlotPanel{Plot: net},
		chart.PlotPanel{Plot: sig},
		pathways,
		spectrum,
	}, nil
}

func mutationHeatmap(t *genome.Table, src genome.Float64Source) chart.Heatmap {
	return chart.Heatmap{
		Title:     "Mutation Heatmap\nby Gene and Type",
		TitleSize: 10,
		RowLabels: t.Genes(),
		ColLabels: t.UniqueTypes(),
		Values:    genome.HeatmapMatrix(t, src),
		BarLabel:  "Relative frequency",
	}
}

// frequencyHistogram bins the gene frequencies in percent and marks their mean.
func frequencyHistogram(t *genome.Table) chart.Histogram {
	freqs := t.Frequencies()
	percents := make([]float64, len(freqs))
	for i, f := range freqs {
		percents[i] = f * 100
	}
	mean := t.MeanFrequency() * 100

	return chart.Histogram{
		Title:       "Distribution of Mutation Frequencies",
		TitleSize:   10,
		XLabel:      "Mutation Frequency (%)",
		YLabel:      "Number of Genes",
		Values:      percents,
		Bins:        8,
		Color:       chart.Hex("#8B4513", 0.7),
		MarkerX:     mean,
		MarkerLabel: fmt.Sprintf("Mean: %.1f%%", mean),
		MarkerColor: meanLineRed,
	}
}

func interactionNetwork() (chart.Network, error) {
	nodes := make([]chart.NetworkNode, len(genome.NetworkNodes))
	index := make(map[string]int, len(genome.NetworkNodes))
	for i, n := range genome.NetworkNodes {
		c := color.Color(baseGeneColor)
		if genome.IsPrincipal(n.Gene) {
			c = brown
		}
		nodes[i] = chart.NetworkNode{Label: n.Gene, X: n.X, Y: n.Y, Color: c}
		index[n.Gene] = i
	}

	edges := make([]chart.NetworkEdge, len(genome.NetworkEdges))
	for i, e := range genome.NetworkEdges {
		from, ok := index[e.From]
		if !ok {
			return chart.Network{}, fmt.Errorf("unknown gene %s", e.From)
		}
		to, ok := index[e.To]
		if !ok {
			return chart.Network{}, fmt.Errorf("unknown gene %s", e.To)
		}
		edges[i] = chart.NetworkEdge{From: from, To: to}
	}

	return chart.Network{
		Title:     "Parkinson's Gene Interaction Network",
		TitleSize: 10,
		Nodes:     nodes,
		Edges:     edges,
		Min:       0,
		Max:       6,
		EdgeColor: edgeGray,
	}, nil
}

func signatureBars() chart.GroupedBars {
	colors := []color.Color{brown, lightBrown}
	series := make([]chart.Series, len(genome.Signatures))
	for i, s := range genome.Signatures {
		series[i] = chart.Series{Name: s.Name, Values: s.Values, Color: colors[i%len(colors)]}
	}

	return chart.GroupedBars{
		Title:      "Parkinson's Mutational Signatures",
		TitleSize:  10,
		XLabel:     "Mutation Type",
		YLabel:     "Relative Frequency",
		Categories: genome.SignatureContexts,
		Series:     series,
		BarWidth:   16,
	}
}

// pathwayBars is the number of genes in each signaling pathway.
func pathwayBars() chart.Bars {
	labels := make([]string, len(genome.Pathways))
	values := make([]float64, len(genome.Pathways))
	for i, pw := range genome.Pathways {
		labels[i] = pw.Name
		values[i] = float64(len(pw.Genes))
	}

	return chart.Bars{
		Title:        "Parkinson's Signaling Pathways",
		TitleSize:    10,
		YLabel:       "Number of Genes",
		Labels:       labels,
		Values:       values,
		Colors:       pathwayColors,
		BarWidth:     40,
		ValueFormat:  "%.0f",
		ValuePad:     0.1,
		RotateLabels: true,
	}
}

func spectrumBars() chart.Bars {
	labels := make([]string, len(genome.Spectrum))
	values := make([]float64, len(genome.Spectrum))
	for i, s := range genome.Spectrum {
		labels[i] = s.Substitution
		values[i] = float64(s.Count)
	}

	return chart.Bars{
		Title:       "Parkinson's CTAG Mutation Spectrum",
		TitleSize:   10,
		YLabel:      "Number of Mutations",
		Labels:      labels,
		Values:      values,
		Colors:      spectrumColors,
		BarWidth:    28,
		ValueFormat: "%.0f",
		ValuePad:    2,
	}
}
