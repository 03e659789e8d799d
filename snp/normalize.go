package snp

import (
	"strings"

	"github.com/carbocation/snpscan/mutation"
)

// VariantRow is the subset of a VCF line that the normalizer looks at. Alt
// holds one or more comma-separated alleles.
type VariantRow struct {
	Chrom string
	Pos   int
	Ref   string
	Alt   string
}

// Normalize expands each variant row into one record per single-base
// alternate allele. Alleles where either ref or alt is not exactly one base
// long (indels, multi-base substitutions) are dropped without error, as are
// alleles identical to ref, alleles with N on either side, and the VCF
// placeholders "." and "*".
func Normalize(rows []VariantRow) Collection {
	out, _ := NormalizeWithSkipped(rows)
	return out
}

// NormalizeWithSkipped is Normalize, additionally reporting how many alleles
// were dropped for not being single-base substitutions.
func NormalizeWithSkipped(rows []VariantRow) (Collection, int) {
	out := make(Collection, 0, len(rows))
	skipped := 0

	for _, row := range rows {
		// VCF, for an alt like A,C, lists several alleles at one site; each
		// becomes its own record.
		for _, allele := range strings.Split(row.Alt, ",") {
			if len(row.Ref) != 1 || len(allele) != 1 || !substitutes(row.Ref[0], allele[0]) {
				skipped++
				continue
			}

			out = append(out, Record{
				SequenceID: row.Chrom,
				Position:   row.Pos,
				Ref:        row.Ref[0],
				Alt:        allele[0],
				Type:       mutation.Classify(row.Ref[0], allele[0]),
			})
		}
	}

	return out, skipped
}

func substitutes(ref, alt byte) bool {
	if alt == '.' || alt == '*' {
		return false
	}

	if ref == Ambiguous || alt == Ambiguous {
		return false
	}

	return ref != alt
}
