package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NetworkNode is a labelled point of a network drawing.
type NetworkNode struct {
	Label string
	X, Y  float64
	Color color.Color
}

// NetworkEdge joins two nodes by index.
type NetworkEdge struct {
	From, To int
}

// Network describes a node-link drawing on a fixed square extent.
type Network struct {
	Title     string
	TitleSize float64
	Nodes     []NetworkNode
	Edges     []NetworkEdge
	Min, Max  float64 // Extent of both axes
	EdgeColor color.Color
}

// NetworkPlot builds a gonum plot for n with hidden axes.
func NetworkPlot(n Network) (*plot.Plot, error) {
	p := newPlot(n.Title, n.TitleSize)

	for _, e := range n.Edges {
		if e.From < 0 || e.From >= len(n.Nodes) || e.To < 0 || e.To >= len(n.Nodes) {
			return nil, fmt.Errorf("network %q: edge %d-%d out of range", n.Title, e.From, e.To)
		}
		a, b := n.Nodes[e.From], n.Nodes[e.To]
		line, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return nil, fmt.Errorf("network %q: edge %s-%s: %w", n.Title, a.Label, b.Label, err)
		}
		line.LineStyle.Color = n.EdgeColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	}

	xys := make(plotter.XYs, len(n.Nodes))
	labels := make([]string, len(n.Nodes))
	for i, node := range n.Nodes {
		xys[i] = plotter.XY{X: node.X, Y: node.Y}
		labels[i] = node.Label

		disc, err := plotter.NewScatter(plotter.XYs{xys[i]})
		if err != nil {
			return nil, fmt.Errorf("network %q: node %s: %w", n.Title, node.Label, err)
		}
		disc.GlyphStyle = draw.GlyphStyle{Color: node.Color, Radius: vg.Points(12), Shape: draw.CircleGlyph{}}

		ring, err := plotter.NewScatter(plotter.XYs{xys[i]})
		if err != nil {
			return nil, fmt.Errorf("network %q: node %s: %w", n.Title, node.Label, err)
		}
		ring.GlyphStyle = draw.GlyphStyle{Color: color.Black, Radius: vg.Points(12), Shape: draw.RingGlyph{}}
		p.Add(disc, ring)
	}

	if len(n.Nodes) > 0 {
		names, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("network %q: labels: %w", n.Title, err)
		}
		for i := range names.TextStyle {
			names.TextStyle[i].Font.Size = vg.Points(8)
			names.TextStyle[i].XAlign = draw.XCenter
			names.TextStyle[i].YAlign = draw.YCenter
		}
		p.Add(names)
	}

	p.HideAxes()
	p.X.Min, p.X.Max = n.Min, n.Max
	p.Y.Min, p.Y.Max = n.Min, n.Max
	return p, nil
}
