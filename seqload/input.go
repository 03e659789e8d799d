package seqload

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/snpscan/snp"
)

// Input names the files for one analysis: either a reference plus one or
// more sequence files, or a variant file.
type Input struct {
	Reference string
	Sequences []string
	VCF       string
	Layout    string
}

func (in Input) Validate() error {
	if in.VCF != "" && (in.Reference != "" || len(in.Sequences) > 0) {
		return fmt.Errorf("--vcf cannot be combined with --reference or --sequences")
	}
	if in.VCF == "" && in.Reference == "" {
		return fmt.Errorf("Please provide either --vcf, or --reference with one or more --sequences")
	}
	if in.Reference != "" && len(in.Sequences) == 0 {
		return fmt.Errorf("Please provide at least one --sequences file to compare against --reference")
	}

	return nil
}

// NeedsStorage reports whether any input lives in Google Storage.
func (in Input) NeedsStorage() bool {
	for _, p := range append([]string{in.Reference, in.VCF}, in.Sequences...) {
		if strings.HasPrefix(p, "gs://") {
			return true
		}
	}

	return false
}

// LoadCollection produces the unfiltered SNP collection for in, along with the
// ids of every compared sequence (including those without any SNP). For
// variant input the ids are the chromosomes that carry a SNP.
func LoadCollection(ctx context.Context, in Input, client *storage.Client) (snp.Collection, []string, error) {
	if in.VCF != "" {
		layout, err := LookupLayout(in.Layout)
		if err != nil {
			return nil, nil, err
		}

		rows, err := LoadVariants(ctx, in.VCF, layout, client)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Read %d variant rows from %s\n", len(rows), in.VCF)

		collection, skipped := snp.NormalizeWithSkipped(rows)
		if skipped > 0 {
			log.Printf("Skipped %d alleles that were not single-base substitutions\n", skipped)
		}

		return collection, collection.SequenceIDs(), nil
	}

	ref, err := LoadReference(ctx, in.Reference, client)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Reference %s has %d bases\n", ref.ID, len(ref.Bases))

	candidates := make([]snp.Sequence, 0)
	for _, path := range in.Sequences {
		seqs, err := LoadSequences(ctx, path, client)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Read %d sequences from %s\n", len(seqs), path)
		candidates = append(candidates, seqs...)
	}

	ids := make([]string, 0, len(candidates))
	for _, s := range candidates {
		if len(s.Bases) != len(ref.Bases) {
			log.Printf("%s has %d bases but the reference has %d; only the overlap is compared\n", s.ID, len(s.Bases), len(ref.Bases))
		}
		ids = append(ids, s.ID)
	}

	return snp.Diff(ref, candidates), ids, nil
}
