package snp

import (
	"sort"

	"github.com/carbocation/snpscan/mutation"
)

// Diff compares each candidate to the reference, position by position, and
// returns one record per mismatch. Only the overlap of the two sequences is
// compared; trailing bases of the longer one are ignored. Positions where
// either base is N are skipped. Candidates are processed in slice order and
// positions in increasing order.
func Diff(reference Sequence, candidates []Sequence) Collection {
	out := make(Collection, 0)
	for _, candidate := range candidates {
		out = append(out, diffOne(reference.Bases, candidate)...)
	}

	return out
}

// DiffMap is Diff over a map of id => bases. Since maps are unordered, the ids
// are processed in ascending order.
func DiffMap(reference Sequence, candidates map[string]string) Collection {
	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seqs := make([]Sequence, 0, len(ids))
	for _, id := range ids {
		seqs = append(seqs, Sequence{ID: id, Bases: candidates[id]})
	}

	return Diff(reference, seqs)
}

func diffOne(ref string, candidate Sequence) Collection {
	n := len(ref)
	if len(candidate.Bases) < n {
		n = len(candidate.Bases)
	}

	var out Collection
	for i := 0; i < n; i++ {
		refNT, altNT := ref[i], candidate.Bases[i]
		if refNT == Ambiguous || altNT == Ambiguous || refNT == altNT {
			continue
		}

		out = append(out, Record{
			SequenceID: candidate.ID,
			Position:   i + 1,
			Ref:        refNT,
			Alt:        altNT,
			Type:       mutation.Classify(refNT, altNT),
		})
	}

	return out
}
