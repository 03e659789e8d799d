package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/carbocation/snpscan/snpstats"
	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"
)

const (
	cellSize     = 12.0
	labelMargin  = 120.0
	headerMargin = 40.0
)

// viridis anchors, low to high
var palette = []color.RGBA{
	{68, 1, 84, 255},
	{59, 82, 139, 255},
	{33, 145, 140, 255},
	{94, 201, 98, 255},
	{253, 231, 37, 255},
}

// Ramp maps v in [0, 1] onto the palette by linear interpolation.
func Ramp(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))

	scaled := v * float64(len(palette)-1)
	lo := int(math.Floor(scaled))
	if lo >= len(palette)-1 {
		return palette[len(palette)-1]
	}
	frac := scaled - float64(lo)

	a, b := palette[lo], palette[lo+1]
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + frac*(float64(y)-float64(x))))
	}

	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// MaxHeatmapColumns bounds the heatmap width. Wider matrices are binned into
// this many columns of adjacent positions.
const MaxHeatmapColumns = 200

// Heatmap draws one cell per (sequence, position) pair, colored by its record
// count relative to the largest cell. When there are more than
// MaxHeatmapColumns positions, each cell sums a run of adjacent positions.
func Heatmap(w io.Writer, m snpstats.Matrix) error {
	if m.Empty() {
		return ErrNoData
	}

	counts := binColumns(m.Counts, MaxHeatmapColumns)
	rows, cols := counts.Dims()
	width := int(labelMargin + cellSize*float64(cols) + 10)
	height := int(headerMargin + cellSize*float64(rows) + 10)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	title := fmt.Sprintf("SNPs by sequence x position (%d-%d)", m.Positions[0], m.Positions[len(m.Positions)-1])
	if cols < len(m.Positions) {
		title = fmt.Sprintf("SNPs by sequence x position (%d-%d, %d positions in %d bins)", m.Positions[0], m.Positions[len(m.Positions)-1], len(m.Positions), cols)
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(width)/2, headerMargin/2, 0.5, 0.5)

	max := mat.Max(counts)
	for i := 0; i < rows; i++ {
		y := headerMargin + cellSize*float64(i)

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(truncateLabel(m.SequenceIDs[i], 16), labelMargin-4, y+cellSize/2, 1, 0.5)

		for j := 0; j < cols; j++ {
			v := 0.0
			if max > 0 {
				v = counts.At(i, j) / max
			}
			dc.DrawRectangle(labelMargin+cellSize*float64(j), y, cellSize, cellSize)
			dc.SetColor(Ramp(v))
			dc.Fill()
		}
	}

	return dc.EncodePNG(w)
}

// binColumns sums runs of adjacent columns so that at most maxCols remain.
// Bins differ in width by at most one column.
func binColumns(counts *mat.Dense, maxCols int) *mat.Dense {
	rows, cols := counts.Dims()
	if cols <= maxCols {
		return counts
	}

	out := mat.NewDense(rows, maxCols, nil)
	for j := 0; j < cols; j++ {
		bin := j * maxCols / cols
		for i := 0; i < rows; i++ {
			out.Set(i, bin, out.At(i, bin)+counts.At(i, j))
		}
	}

	return out
}

func truncateLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "~"
}
