package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/snpscan/mutation"
	"github.com/carbocation/snpscan/snp"
	"github.com/carbocation/snpscan/snpstats"
)

func exampleCollection() snp.Collection {
	return snp.Collection{
		{SequenceID: "s1", Position: 2, Ref: 'C', Alt: 'G', Type: mutation.Transversion},
		{SequenceID: "s1", Position: 5, Ref: 'A', Alt: 'G', Type: mutation.Transition},
		{SequenceID: "s2", Position: 5, Ref: 'A', Alt: 'G', Type: mutation.Transition},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(exampleCollection(), nil)
	if len(rows) != 3 {
		t.Fatalf("Got %d rows", len(rows))
	}
	if r := rows[0]; r.SequenceID != "s1" || r.Position != 2 || r.RefNT != "C" || r.AltNT != "G" || r.MutationType != "transversion" || r.Freq.Valid {
		t.Errorf("Got %+v", r)
	}

	c := exampleCollection()
	withFreq := Rows(c, snpstats.PositionFrequencies(c))
	if !withFreq[1].Freq.Valid || withFreq[1].Freq.Float64 != 1.0 {
		t.Errorf("Expected freq 1.0, got %v", withFreq[1].Freq)
	}
	if withFreq[0].Freq.Float64 != 0.5 {
		t.Errorf("Expected freq 0.5, got %v", withFreq[0].Freq)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	c := exampleCollection()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, Rows(c, snpstats.PositionFrequencies(c))); err != nil {
		t.Fatal(err)
	}

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if header != "sequence_id,position,ref_nt,alt_nt,mutation_type,freq" {
		t.Errorf("Unexpected header: %s", header)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(c) {
		t.Fatalf("Got %d records, expected %d", len(got), len(c))
	}
	for i := range c {
		if got[i] != c[i] {
			t.Errorf("Record %d: got %v, expected %v", i, got[i], c[i])
		}
	}
}

func TestRowRecordRejectsMultiBase(t *testing.T) {
	if _, err := (Row{RefNT: "AT", AltNT: "A", MutationType: "transition"}).Record(); err == nil {
		t.Error("Expected an error for a multi-base ref")
	}
	if _, err := (Row{RefNT: "A", AltNT: "G", MutationType: "deletion"}).Record(); err == nil {
		t.Error("Expected an error for an unknown mutation type")
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, Rows(exampleCollection()[:1], nil)); err != nil {
		t.Fatal(err)
	}

	expected := "sequence_id\tposition\tref_nt\talt_nt\tmutation_type\tfreq\n" +
		"s1\t2\tC\tG\ttransversion\t\n"
	if buf.String() != expected {
		t.Errorf("Got %q, expected %q", buf.String(), expected)
	}
}

func TestWriteTables(t *testing.T) {
	c := exampleCollection()

	var buf bytes.Buffer
	if err := WriteSequenceCounts(&buf, snpstats.CountsPerSequence(c)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "sequence_id\tnum_snps\ns1\t2\ns2\t1\n" {
		t.Errorf("Got %q", buf.String())
	}

	buf.Reset()
	if err := WriteTypeCounts(&buf, snpstats.TypeFrequencies(c)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "mutation_type\tcount\ntransition\t2\ntransversion\t1\n" {
		t.Errorf("Got %q", buf.String())
	}

	buf.Reset()
	if err := WritePositionCounts(&buf, snpstats.TopPositions(c, 1)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "position\tcount\n5\t2\n" {
		t.Errorf("Got %q", buf.String())
	}

	buf.Reset()
	if err := WriteSpectrum(&buf, snpstats.Spectrum(c)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "ref_nt\talt_nt\tmutation_type\tcount\nA\tG\ttransition\t2\nC\tG\ttransversion\t1\n" {
		t.Errorf("Got %q", buf.String())
	}

	buf.Reset()
	if err := WriteSummary(&buf, snpstats.Describe(c)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "ts_tv\t2\n") {
		t.Errorf("Summary is missing ts_tv: %q", buf.String())
	}
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snps.db")
	c := exampleCollection()

	if err := WriteSQLite(path, Rows(c, snpstats.PositionFrequencies(c))); err != nil {
		t.Fatal(err)
	}

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows, err := SelectRows(db)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Collection(rows)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(c) {
		t.Fatalf("Got %d records, expected %d", len(got), len(c))
	}
	for i := range c {
		if got[i] != c[i] {
			t.Errorf("Record %d: got %v, expected %v", i, got[i], c[i])
		}
	}
	if !rows[0].Freq.Valid || rows[0].Freq.Float64 != 0.5 {
		t.Errorf("Expected freq 0.5, got %v", rows[0].Freq)
	}
}
