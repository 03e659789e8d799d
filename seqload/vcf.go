package seqload

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/snpscan"
	"github.com/carbocation/snpscan/snp"
	"github.com/carbocation/vcfgo"
)

const vcfMagic = "##fileformat=VCF"

// RowError reports a variant row the loader could not interpret.
type RowError struct {
	Line    int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// LoadVariants reads variant rows from a local or gs:// file, which may be
// compressed. See ReadVariants.
func LoadVariants(ctx context.Context, path string, layout Layout, client *storage.Client) ([]snp.VariantRow, error) {
	f, err := snpscan.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadVariants(f, layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// ReadVariants reads a VCF (when the stream starts with the ##fileformat
// meta line) or otherwise a headerless delimited table described by layout.
func ReadVariants(r io.Reader, layout Layout) ([]snp.VariantRow, error) {
	buffRead := bufio.NewReader(r)

	head, err := buffRead.Peek(len(vcfMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}

	if bytes.HasPrefix(head, []byte(vcfMagic)) {
		return ReadVCF(buffRead)
	}

	return ReadTable(buffRead, layout)
}

// ReadVCF reads a VCF with a full header. Multiallelic ALT values are joined
// back into a single comma-separated field so normalization sees the row as
// written.
func ReadVCF(r io.Reader) ([]snp.VariantRow, error) {
	rdr, err := vcfgo.NewReader(r, true) // Genotypes are never consulted
	if err != nil {
		if rdr == nil {
			return nil, fmt.Errorf("VCF reader could not be initialized: %w", err)
		}
		log.Println("Invalid VCF header. Attempting to continue. Invalid features include:", err)
		rdr.Clear()
	}

	out := make([]snp.VariantRow, 0)
	for {
		variant := rdr.Read()
		if variant == nil {
			break
		}

		out = append(out, snp.VariantRow{
			Chrom: variant.Chrom(),
			Pos:   int(variant.Pos),
			Ref:   strings.ToUpper(variant.Ref()),
			Alt:   strings.ToUpper(strings.Join(variant.Alt(), ",")),
		})
	}

	if err := rdr.Error(); err != nil {
		log.Println("VCF contained invalid features:", err)
		rdr.Clear()
	}

	return out, nil
}

// ReadTable reads a headerless variant table. Lines starting with the
// layout's comment rune are ignored.
func ReadTable(r io.Reader, layout Layout) ([]snp.VariantRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if layout.Delimiter == 0 {
		sample := data
		if len(sample) > 64*1024 {
			sample = sample[:64*1024]
		}
		layout.Delimiter = snpscan.DetermineDelimiterBytes(sample)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = layout.Delimiter
	cr.Comment = layout.Comment
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	need := layout.MinColumns()
	out := make([]snp.VariantRow, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)

		if len(row) < need {
			return nil, RowError{Line: line, Message: fmt.Sprintf("expected at least %d columns, found %d", need, len(row))}
		}

		pos, err := strconv.Atoi(strings.TrimSpace(row[layout.ColPos]))
		if err != nil {
			return nil, RowError{Line: line, Message: fmt.Sprintf("position %q is not an integer", row[layout.ColPos])}
		}

		out = append(out, snp.VariantRow{
			Chrom: strings.TrimSpace(row[layout.ColChrom]),
			Pos:   pos,
			Ref:   strings.ToUpper(strings.TrimSpace(row[layout.ColRef])),
			Alt:   strings.ToUpper(strings.TrimSpace(row[layout.ColAlt])),
		})
	}

	return out, nil
}
