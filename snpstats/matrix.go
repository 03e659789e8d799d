package snpstats

import (
	"sort"

	"github.com/carbocation/snpscan/snp"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a sequence x position table of record counts. Rows follow
// SequenceIDs and columns follow Positions. Counts is nil when the
// collection is empty.
type Matrix struct {
	SequenceIDs []string
	Positions   []int
	Counts      *mat.Dense
}

func (m Matrix) Empty() bool {
	return m.Counts == nil
}

// At returns the count for a sequence id and position, or 0 if either is
// absent.
func (m Matrix) At(sequenceID string, position int) float64 {
	if m.Empty() {
		return 0
	}

	row := sort.SearchStrings(m.SequenceIDs, sequenceID)
	if row >= len(m.SequenceIDs) || m.SequenceIDs[row] != sequenceID {
		return 0
	}
	col := sort.SearchInts(m.Positions, position)
	if col >= len(m.Positions) || m.Positions[col] != position {
		return 0
	}

	return m.Counts.At(row, col)
}

// PositionMatrix pivots the collection into a sequence x position count
// matrix, with sequence ids and positions in ascending order.
func PositionMatrix(c snp.Collection) Matrix {
	out := Matrix{}
	if len(c) == 0 {
		return out
	}

	out.SequenceIDs = c.SequenceIDs()
	sort.Strings(out.SequenceIDs)

	counts := positionCounts(c)
	out.Positions = make([]int, 0, len(counts))
	for pos := range counts {
		out.Positions = append(out.Positions, pos)
	}
	sort.Ints(out.Positions)

	rowOf := make(map[string]int, len(out.SequenceIDs))
	for i, id := range out.SequenceIDs {
		rowOf[id] = i
	}
	colOf := make(map[int]int, len(out.Positions))
	for j, pos := range out.Positions {
		colOf[pos] = j
	}

	out.Counts = mat.NewDense(len(out.SequenceIDs), len(out.Positions), nil)
	for _, rec := range c {
		i, j := rowOf[rec.SequenceID], colOf[rec.Position]
		out.Counts.Set(i, j, out.Counts.At(i, j)+1)
	}

	return out
}

// Max returns the largest cell value, or 0 for an empty matrix.
func (m Matrix) Max() float64 {
	if m.Empty() {
		return 0
	}

	return mat.Max(m.Counts)
}
