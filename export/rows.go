// Package export flattens SNP collections and summary tables into
// CSV, TSV and SQLite for downstream tools.
package export

import (
	"fmt"

	"github.com/carbocation/snpscan/mutation"
	"github.com/carbocation/snpscan/snp"
	"gopkg.in/guregu/null.v3"
)

// Row is the flat, column-per-field form of a snp.Record. Freq is set only
// when the rows were produced alongside a position frequency map.
type Row struct {
	SequenceID   string     `csv:"sequence_id" db:"sequence_id" json:"sequence_id"`
	Position     int        `csv:"position" db:"position" json:"position"`
	RefNT        string     `csv:"ref_nt" db:"ref_nt" json:"ref_nt"`
	AltNT        string     `csv:"alt_nt" db:"alt_nt" json:"alt_nt"`
	MutationType string     `csv:"mutation_type" db:"mutation_type" json:"mutation_type"`
	Freq         null.Float `csv:"-" db:"freq" json:"freq"`
}

// Rows flattens c. freqs may be nil; otherwise each row carries the frequency
// of its position.
func Rows(c snp.Collection, freqs map[int]float64) []Row {
	out := make([]Row, 0, len(c))
	for _, rec := range c {
		row := Row{
			SequenceID:   rec.SequenceID,
			Position:     rec.Position,
			RefNT:        string(rec.Ref),
			AltNT:        string(rec.Alt),
			MutationType: rec.Type.String(),
		}
		if freqs != nil {
			if f, ok := freqs[rec.Position]; ok {
				row.Freq = null.FloatFrom(f)
			}
		}
		out = append(out, row)
	}

	return out
}

// Record converts a row back into a snp.Record.
func (r Row) Record() (snp.Record, error) {
	if len(r.RefNT) != 1 || len(r.AltNT) != 1 {
		return snp.Record{}, fmt.Errorf("%s:%d: ref %q and alt %q must be single bases", r.SequenceID, r.Position, r.RefNT, r.AltNT)
	}

	typ, err := mutation.ParseType(r.MutationType)
	if err != nil {
		return snp.Record{}, err
	}

	return snp.Record{
		SequenceID: r.SequenceID,
		Position:   r.Position,
		Ref:        r.RefNT[0],
		Alt:        r.AltNT[0],
		Type:       typ,
	}, nil
}

// Collection converts rows back into a snp.Collection.
func Collection(rows []Row) (snp.Collection, error) {
	out := make(snp.Collection, 0, len(rows))
	for _, row := range rows {
		rec, err := row.Record()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}
