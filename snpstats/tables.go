// Package snpstats computes summary tables over SNP collections. Every
// function is a read-only query: inputs are never modified and outputs are
// freshly allocated.
package snpstats

import (
	"sort"

	"github.com/carbocation/snpscan/mutation"
	"github.com/carbocation/snpscan/snp"
)

// DefaultTopN is the number of positions TopPositions returns when n is not
// positive.
const DefaultTopN = 20

type SequenceCount struct {
	SequenceID string `json:"sequence_id"`
	NumSNPs    int    `json:"num_snps"`
}

type TypeCount struct {
	Type  mutation.Type
	Count int
}

type PositionCount struct {
	Position int `json:"position"`
	Count    int `json:"count"`
}

// CountsPerSequence counts records per sequence id, most-mutated first. Ties
// are broken by id.
func CountsPerSequence(c snp.Collection) []SequenceCount {
	counts := make(map[string]int)
	for _, rec := range c {
		counts[rec.SequenceID]++
	}

	out := make([]SequenceCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, SequenceCount{SequenceID: id, NumSNPs: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].NumSNPs != out[j].NumSNPs {
			return out[i].NumSNPs > out[j].NumSNPs
		}
		return out[i].SequenceID < out[j].SequenceID
	})

	return out
}

// TypeFrequencies counts records per mutation type. Types with no records are
// absent.
func TypeFrequencies(c snp.Collection) []TypeCount {
	counts := make(map[mutation.Type]int)
	for _, rec := range c {
		counts[rec.Type]++
	}

	out := make([]TypeCount, 0, len(counts))
	for typ, n := range counts {
		out = append(out, TypeCount{Type: typ, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type.String() < out[j].Type.String()
	})

	return out
}

// TopPositions returns the n positions with the most records across all
// sequences. Ties are broken by position, so the cutoff is deterministic.
func TopPositions(c snp.Collection, n int) []PositionCount {
	if n <= 0 {
		n = DefaultTopN
	}

	counts := positionCounts(c)

	out := make([]PositionCount, 0, len(counts))
	for pos, count := range counts {
		out = append(out, PositionCount{Position: pos, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Position < out[j].Position
	})

	if len(out) > n {
		out = out[:n]
	}

	return out
}

// positionCounts counts rows (not distinct sequences) at each position.
func positionCounts(c snp.Collection) map[int]int {
	counts := make(map[int]int)
	for _, rec := range c {
		counts[rec.Position]++
	}

	return counts
}
