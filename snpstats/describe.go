package snpstats

import (
	"sort"

	"github.com/carbocation/snpscan/mutation"
	"github.com/carbocation/snpscan/snp"
	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// Summary holds descriptive statistics of a collection. Per-sequence values
// are null when there are no sequences to describe, and TsTv is null when
// there are no transversions.
type Summary struct {
	Records   int
	Sequences int
	Positions int

	MeanSNPsPerSequence   null.Float
	MedianSNPsPerSequence null.Float
	StdDevSNPsPerSequence null.Float
	MaxSNPsPerSequence    null.Float

	Transitions   int
	Transversions int
	TsTv          null.Float
}

// Describe summarizes c. Sequences listed in allIDs that have no records are
// counted as carrying zero SNPs; without them, only sequences that appear in
// c are described.
func Describe(c snp.Collection, allIDs ...string) Summary {
	out := Summary{
		Records:   len(c),
		Positions: len(positionCounts(c)),
	}

	perSequence := make(map[string]int)
	for _, id := range allIDs {
		perSequence[id] = 0
	}
	for _, rec := range c {
		perSequence[rec.SequenceID]++

		switch rec.Type {
		case mutation.Transition:
			out.Transitions++
		case mutation.Transversion:
			out.Transversions++
		}
	}
	out.Sequences = len(perSequence)

	if out.Transversions > 0 {
		out.TsTv = null.FloatFrom(float64(out.Transitions) / float64(out.Transversions))
	}

	if len(perSequence) == 0 {
		return out
	}

	// Sorted so floating point sums do not depend on map order
	ids := make([]string, 0, len(perSequence))
	for id := range perSequence {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	counts := make([]int, 0, len(ids))
	for _, id := range ids {
		counts = append(counts, perSequence[id])
	}

	data := stats.LoadRawData(counts)
	if v, err := data.Mean(); err == nil {
		out.MeanSNPsPerSequence = null.FloatFrom(v)
	}
	if v, err := data.Median(); err == nil {
		out.MedianSNPsPerSequence = null.FloatFrom(v)
	}
	if v, err := data.StandardDeviation(); err == nil {
		out.StdDevSNPsPerSequence = null.FloatFrom(v)
	}
	if v, err := data.Max(); err == nil {
		out.MaxSNPsPerSequence = null.FloatFrom(v)
	}

	return out
}
