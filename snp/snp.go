// Package snp finds single-nucleotide differences between aligned sequences
// and a reference, or extracts them from pre-called variant rows.
package snp

import (
	"fmt"

	"github.com/carbocation/snpscan/mutation"
)

// Ambiguous is the nucleotide symbol that never produces a record.
const Ambiguous = 'N'

// Sequence is an identifier paired with uppercase bases drawn from
// {A,C,G,T,N}.
type Sequence struct {
	ID    string
	Bases string
}

// Record is a single-base difference. Ref and Alt always differ and neither
// is N.
type Record struct {
	SequenceID string
	Position   int // 1-based
	Ref        byte
	Alt        byte
	Type       mutation.Type
}

func (r Record) String() string {
	return fmt.Sprintf("%s:%d:%c>%c (%s)", r.SequenceID, r.Position, r.Ref, r.Alt, r.Type)
}

// Collection is an ordered set of records. Consumers must not depend on its
// order; derived tables sort explicitly.
type Collection []Record

// SequenceIDs returns the distinct sequence ids in order of first appearance.
func (c Collection) SequenceIDs() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, rec := range c {
		if _, exists := seen[rec.SequenceID]; exists {
			continue
		}
		seen[rec.SequenceID] = struct{}{}
		out = append(out, rec.SequenceID)
	}

	return out
}

// EmptyInputError is returned when a reference source holds no sequence.
type EmptyInputError struct {
	Path string
}

func (e EmptyInputError) Error() string {
	if e.Path == "" {
		return "No sequence found in the reference input"
	}

	return fmt.Sprintf("No sequence found in the reference file %s", e.Path)
}
