package figure

import (
	"image/color"

	"github.com/inodb/pdctag/internal/chart"
)

// Colors shared by the two figures.
var (
	highlightColor = chart.Hex("#FF6B6B", 0.8)
	baseGeneColor  = chart.Hex("#45B7D1", 0.8)
	brown          = chart.Hex("#8B4513", 0.8)
	lightBrown     = chart.Hex("#D2691E", 0.8)
	markerEdge     = chart.Hex("#654321", 1)
	edgeGray       = chart.Hex("#808080", 0.6)
	meanLineRed    = chart.Hex("#FF0000", 1)

	typeColors         = chart.Hexes(1, "#FF6B6B", "#4ECDC4", "#45B7D1", "#F9A602", "#6A0572", "#2A9D8F")
	significanceColors = chart.Hexes(0.8, "#E76F51", "#2A9D8F", "#F9A602")
	pathwayColors      = chart.Hexes(0.8, "#8B4513", "#D2691E", "#A0522D", "#CD853F")
	spectrumColors     = chart.Hexes(0.8, "#8B4513", "#D2691E", "#A0522D", "#CD853F", "#DEB887", "#F4A460")
)

// baseColors maps a nucleotide to its CTAG diagram color.
var baseColors = map[byte]color.Color{
	'A': chart.Hex("#FF6B6B", 0.7),
	'T': chart.Hex("#4ECDC4", 0.7),
	'C': chart.Hex("#45B7D1", 0.7),
	'G': chart.Hex("#F9A602", 0.7),
}
