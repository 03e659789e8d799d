package snpstats

import (
	"sort"

	"github.com/carbocation/snpscan/mutation"
	"github.com/carbocation/snpscan/snp"
)

// SpectrumCount is the number of records for one ref>alt substitution.
type SpectrumCount struct {
	Ref   byte
	Alt   byte
	Type  mutation.Type
	Count int
}

type substitution struct {
	Ref byte
	Alt byte
}

// Spectrum counts each observed ref>alt substitution, sorted by ref and then
// alt.
func Spectrum(c snp.Collection) []SpectrumCount {
	counter := make(map[substitution]int)
	for _, rec := range c {
		counter[substitution{rec.Ref, rec.Alt}]++
	}

	out := make([]SpectrumCount, 0, len(counter))
	for s, n := range counter {
		out = append(out, SpectrumCount{
			Ref:   s.Ref,
			Alt:   s.Alt,
			Type:  mutation.Classify(s.Ref, s.Alt),
			Count: n,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Ref != out[j].Ref {
			return out[i].Ref < out[j].Ref
		}
		return out[i].Alt < out[j].Alt
	})

	return out
}
