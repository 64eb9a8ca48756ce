package figure

import (
	"fmt"
	"image/color"

	"github.com/inodb/pdctag/internal/chart"
	"github.com/inodb/pdctag/internal/genome"
)

// PrimaryLayout is the 2x2 CTAG diagram figure at the given resolution.
func PrimaryLayout(dpi float64) chart.Figure {
	return chart.Figure{
		Title:     "Parkinson's Disease Genomic Analysis - CTAG Diagram",
		TitleSize: 16,
		Rows:      2,
		Cols:      2,
		Width:     20,
		Height:    16,
		DPI:       dpi,
	}
}

// PrimaryPanels builds the four panels of the CTAG diagram figure:
// frequency per gene, mutation types, the CTAG sequence and clinical impact.
func PrimaryPanels(t *genome.Table) ([]chart.Panel, error) {
	freq, err := barPanel("frequency", frequencyBars(t))
	if err != nil {
		return nil, err
	}
	impact, err := barPanel("clinical impact", clinicalImpactBars(t))
	if err != nil {
		return nil, err
	}
	return []chart.Panel{freq, mutationTypePie(t), sequenceDiagram(), impact}, nil
}

// barPanel renders b as a gonum bar chart panel.
func barPanel(name string, b chart.Bars) (chart.Panel, error) {
	p, err := chart.BarPlot(b)
	if err != nil {
		return nil, fmt.Errorf("%s panel: %w", name, err)
	}
	return chart.PlotPanel{Plot: p}, nil
}

// frequencyBars is one horizontal bar per gene in table order, with the
// principal genes highlighted.
func frequencyBars(t *genome.Table) chart.Bars {
	recs := t.Records()
	labels := make([]string, len(recs))
	values := make([]float64, len(recs))
	colors := make([]color.Color, len(recs))
	for i, r := range recs {
		labels[i] = r.Gene
		values[i] = r.FrequencyPercent()
		colors[i] = baseGeneColor
		if genome.IsPrincipal(r.Gene) {
			colors[i] = highlightColor
		}
	}

	return chart.Bars{
		Title:       "Mutation Frequency per Gene\nin Parkinson's Disease",
		TitleSize:   12,
		XLabel:      "Mutation Frequency (%)",
		Labels:      labels,
		Values:      values,
		Colors:      colors,
		Horizontal:  true,
		BarWidth:    24,
		ValueFormat: "%.1f%%",
		ValuePad:    0.5,
	}
}

func mutationTypePie(t *genome.Table) chart.Pie {
	labels, values := countSeries(t.TypeCounts())
	return chart.Pie{
		Title:     "Distribution of Mutation Types",
		TitleSize: 12,
		Labels:    labels,
		Values:    values,
		Colors:    typeColors,
	}
}

func sequenceDiagram() chart.Sequence {
	return chart.Sequence{
		Title:       "CTAG Diagram - Genomic Sequence with Parkinson's Mutations",
		TitleSize:   12,
		XLabel:      "Position in sequence",
		Bases:       genome.Sequence,
		BaseColors:  baseColors,
		Sites:       genome.MutationSites,
		MarkerColor: brown,
		MarkerEdge:  markerEdge,
		MarkerText:  "M",
	}
}

func clinicalImpactBars(t *genome.Table) chart.Bars {
	labels, values := countSeries(t.SignificanceCounts())
	return chart.Bars{
		Title:        "Clinical Impact of Mutations",
		TitleSize:    12,
		YLabel:       "Number of Genes",
		Labels:       labels,
		Values:       values,
		Colors:       significanceColors,
		BarWidth:     120,
		ValueFormat:  "%.0f",
		ValuePad:     0.1,
		RotateLabels: true,
	}
}

func countSeries(counts []genome.Count) ([]string, []float64) {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		values[i] = float64(c.N)
	}
	return labels, values
}
