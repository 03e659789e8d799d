package snpstats

import (
	"github.com/carbocation/snpscan/snp"
	"gopkg.in/guregu/null.v3"
)

// FrequencyBounds is an inclusive [Min, Max] range. An invalid (null) bound is
// unbounded on that side.
type FrequencyBounds struct {
	Min null.Float
	Max null.Float
}

// Bounds builds a FrequencyBounds from optional values.
func Bounds(min, max *float64) FrequencyBounds {
	return FrequencyBounds{
		Min: null.FloatFromPtr(min),
		Max: null.FloatFromPtr(max),
	}
}

func (b FrequencyBounds) Contains(freq float64) bool {
	if b.Min.Valid && freq < b.Min.Float64 {
		return false
	}
	if b.Max.Valid && freq > b.Max.Float64 {
		return false
	}

	return true
}

// PositionFrequencies maps each position to the number of records at that
// position divided by the number of distinct sequence ids in the collection.
// The numerator counts rows, so a sequence carrying two alternate alleles at
// one position contributes twice.
func PositionFrequencies(c snp.Collection) map[int]float64 {
	out := make(map[int]float64)

	total := len(c.SequenceIDs())
	if total == 0 {
		return out
	}

	for pos, count := range positionCounts(c) {
		out[pos] = float64(count) / float64(total)
	}

	return out
}

// FilterByFrequency returns the records whose position frequency (see
// PositionFrequencies) lies within bounds. The input is returned as-is when
// it is empty.
func FilterByFrequency(c snp.Collection, bounds FrequencyBounds) snp.Collection {
	if len(c) == 0 {
		return c
	}

	freqs := PositionFrequencies(c)

	out := make(snp.Collection, 0, len(c))
	for _, rec := range c {
		if bounds.Contains(freqs[rec.Position]) {
			out = append(out, rec)
		}
	}

	return out
}
