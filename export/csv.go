package export

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/snpscan/snp"
	"github.com/gocarina/gocsv"
)

// csvRow adds the string-formatted freq column that gocsv writes.
type csvRow struct {
	Row
	FreqText string `csv:"freq"`
}

// WriteCSV writes rows with a header line. The freq column is empty for rows
// without a frequency.
func WriteCSV(w io.Writer, rows []Row) error {
	out := make([]*csvRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &csvRow{Row: row, FreqText: NullFloatFormatter(row.Freq)})
	}

	return gocsv.MarshalCSV(&out, gocsv.NewSafeCSVWriter(csv.NewWriter(w)))
}

// ReadCSV reads a file produced by WriteCSV back into a collection. The freq
// column, if present, is ignored.
func ReadCSV(r io.Reader) (snp.Collection, error) {
	rows := []*Row{}
	if err := gocsv.UnmarshalCSV(gocsv.DefaultCSVReader(r), &rows); err != nil {
		return nil, err
	}

	flat := make([]Row, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, *row)
	}

	return Collection(flat)
}
