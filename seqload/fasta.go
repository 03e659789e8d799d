// Package seqload reads reference and sample sequences from FASTA, and
// variant rows from VCF or VCF-like tables, into the in-memory types of
// package snp.
package seqload

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/carbocation/snpscan"
	"github.com/carbocation/snpscan/snp"
)

// ValidNucleotides are the only symbols kept from FASTA input.
const ValidNucleotides = "ACGTN"

// CleanBases uppercases s and drops every symbol outside ValidNucleotides.
func CleanBases(s string) string {
	b := strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if strings.IndexByte(ValidNucleotides, c) < 0 {
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}

// ReadFASTA returns every record of a FASTA stream, in file order, with bases
// cleaned by CleanBases.
func ReadFASTA(r io.Reader) ([]snp.Sequence, error) {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	out := make([]snp.Sequence, 0)
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("Unexpected sequence type %T", sc.Seq())
		}

		raw := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			raw[i] = byte(l)
		}

		out = append(out, snp.Sequence{
			ID:    s.Name(),
			Bases: CleanBases(string(raw)),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadSequences reads all sequences from a local or gs:// FASTA file, which
// may be compressed. client may be nil for local files.
func LoadSequences(ctx context.Context, path string, client *storage.Client) ([]snp.Sequence, error) {
	f, err := snpscan.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seqs, err := ReadFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return seqs, nil
}

// LoadReference reads the first sequence of a FASTA file. A file with no
// records yields snp.EmptyInputError.
func LoadReference(ctx context.Context, path string, client *storage.Client) (snp.Sequence, error) {
	seqs, err := LoadSequences(ctx, path, client)
	if err != nil {
		return snp.Sequence{}, err
	}

	if len(seqs) == 0 {
		return snp.Sequence{}, snp.EmptyInputError{Path: path}
	}

	return seqs[0], nil
}

// ReadReference is LoadReference over an already-open stream.
func ReadReference(r io.Reader) (snp.Sequence, error) {
	seqs, err := ReadFASTA(r)
	if err != nil {
		return snp.Sequence{}, err
	}

	if len(seqs) == 0 {
		return snp.Sequence{}, snp.EmptyInputError{}
	}

	return seqs[0], nil
}
