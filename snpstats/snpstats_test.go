package snpstats

import (
	"math"
	"testing"

	"github.com/carbocation/snpscan/mutation"
	"github.com/carbocation/snpscan/snp"
)

func rec(id string, pos int, ref, alt byte) snp.Record {
	return snp.Record{SequenceID: id, Position: pos, Ref: ref, Alt: alt, Type: mutation.Classify(ref, alt)}
}

func exampleCollection() snp.Collection {
	return snp.Collection{
		rec("s1", 5, 'A', 'G'),
		rec("s1", 9, 'C', 'A'),
		rec("s2", 5, 'A', 'G'),
		rec("s3", 5, 'A', 'T'),
		rec("s3", 12, 'G', 'A'),
		rec("s3", 20, 'T', 'C'),
	}
}

func TestCountsPerSequence(t *testing.T) {
	c := exampleCollection()
	got := CountsPerSequence(c)

	expected := []SequenceCount{{"s3", 3}, {"s1", 2}, {"s2", 1}}
	if len(got) != len(expected) {
		t.Fatalf("Got %v, expected %v", got, expected)
	}
	sum := 0
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Row %d: got %v, expected %v", i, got[i], expected[i])
		}
		sum += got[i].NumSNPs
	}
	if sum != len(c) {
		t.Errorf("Counts sum to %d, expected %d", sum, len(c))
	}
}

func TestCountsPerSequenceTies(t *testing.T) {
	got := CountsPerSequence(snp.Collection{
		rec("b", 1, 'A', 'G'),
		rec("c", 1, 'A', 'G'),
		rec("a", 1, 'A', 'G'),
	})

	for i, id := range []string{"a", "b", "c"} {
		if got[i].SequenceID != id {
			t.Errorf("Row %d: got %s, expected %s", i, got[i].SequenceID, id)
		}
	}
}

func TestTypeFrequencies(t *testing.T) {
	c := exampleCollection()
	got := TypeFrequencies(c)

	if len(got) != 2 {
		t.Fatalf("Expected 2 types, got %v", got)
	}
	if got[0].Type != mutation.Transition || got[0].Count != 4 {
		t.Errorf("Got %v, expected 4 transitions first", got[0])
	}
	if got[1].Type != mutation.Transversion || got[1].Count != 2 {
		t.Errorf("Got %v, expected 2 transversions", got[1])
	}
	if got[0].Count+got[1].Count != len(c) {
		t.Errorf("Type counts do not sum to %d", len(c))
	}
}

func TestTypeFrequenciesOmitsZero(t *testing.T) {
	got := TypeFrequencies(snp.Collection{rec("s", 1, 'A', 'G')})
	if len(got) != 1 || got[0].Type != mutation.Transition {
		t.Errorf("Got %v", got)
	}
}

func TestTopPositions(t *testing.T) {
	got := TopPositions(exampleCollection(), 2)

	expected := []PositionCount{{5, 3}, {9, 1}}
	if len(got) != len(expected) {
		t.Fatalf("Got %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Row %d: got %v, expected %v", i, got[i], expected[i])
		}
	}

	if all := TopPositions(exampleCollection(), 0); len(all) != 4 {
		t.Errorf("Default n should return all 4 positions, got %v", all)
	}
}

func TestTopPositionsDefaultBound(t *testing.T) {
	var c snp.Collection
	for pos := 1; pos <= 30; pos++ {
		c = append(c, rec("s", pos, 'A', 'C'))
	}

	if got := TopPositions(c, -1); len(got) != DefaultTopN {
		t.Errorf("Expected %d positions, got %d", DefaultTopN, len(got))
	}
}

func TestFilterByFrequencyUniversalBounds(t *testing.T) {
	c := exampleCollection()
	min, max := 0.0, 1.0
	got := FilterByFrequency(c, Bounds(&min, &max))

	if len(got) != len(c) {
		t.Fatalf("Expected %d records, got %d", len(c), len(got))
	}

	want := make(map[snp.Record]int)
	for _, r := range c {
		want[r]++
	}
	for _, r := range got {
		want[r]--
	}
	for r, n := range want {
		if n != 0 {
			t.Errorf("Record %v differs by %d", r, n)
		}
	}
}

func TestFilterByFrequencyBoundary(t *testing.T) {
	c := snp.Collection{
		rec("s1", 5, 'A', 'G'),
		rec("s2", 5, 'A', 'G'),
		rec("s1", 9, 'C', 'T'),
	}

	min := 0.6
	got := FilterByFrequency(c, Bounds(&min, nil))

	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %v", got)
	}
	for _, r := range got {
		if r.Position != 5 {
			t.Errorf("Unexpected record retained: %v", r)
		}
	}

	max := 0.5
	got = FilterByFrequency(c, Bounds(nil, &max))
	if len(got) != 1 || got[0].Position != 9 {
		t.Errorf("Expected only position 9, got %v", got)
	}
}

func TestFilterByFrequencyCountsRows(t *testing.T) {
	// s1 carries two alt alleles at position 3, so position 3 has two rows
	// across two sequences: frequency 1.0 even though only s1 carries it.
	c := snp.Collection{
		rec("s1", 3, 'A', 'G'),
		rec("s1", 3, 'A', 'C'),
		rec("s2", 8, 'T', 'C'),
	}

	freqs := PositionFrequencies(c)
	if freqs[3] != 1.0 {
		t.Errorf("Position 3: got %f, expected 1.0", freqs[3])
	}
	if freqs[8] != 0.5 {
		t.Errorf("Position 8: got %f, expected 0.5", freqs[8])
	}

	min := 0.75
	if got := FilterByFrequency(c, Bounds(&min, nil)); len(got) != 2 {
		t.Errorf("Expected both position 3 rows, got %v", got)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	c := exampleCollection()
	before := append(snp.Collection(nil), c...)

	min := 0.9
	FilterByFrequency(c, Bounds(&min, nil))

	for i := range before {
		if c[i] != before[i] {
			t.Fatalf("Input modified at %d", i)
		}
	}
}

func TestEmptyCollection(t *testing.T) {
	var c snp.Collection

	if got := CountsPerSequence(c); len(got) != 0 {
		t.Errorf("CountsPerSequence: %v", got)
	}
	if got := TypeFrequencies(c); len(got) != 0 {
		t.Errorf("TypeFrequencies: %v", got)
	}
	if got := TopPositions(c, 20); len(got) != 0 {
		t.Errorf("TopPositions: %v", got)
	}
	min := 0.5
	if got := FilterByFrequency(c, Bounds(&min, nil)); len(got) != 0 {
		t.Errorf("FilterByFrequency: %v", got)
	}
	if got := PositionFrequencies(c); len(got) != 0 {
		t.Errorf("PositionFrequencies: %v", got)
	}
	if got := Spectrum(c); len(got) != 0 {
		t.Errorf("Spectrum: %v", got)
	}
	if m := PositionMatrix(c); !m.Empty() || m.Max() != 0 {
		t.Errorf("PositionMatrix: %+v", m)
	}
	if s := Describe(c); s.Records != 0 || s.MeanSNPsPerSequence.Valid || s.TsTv.Valid {
		t.Errorf("Describe: %+v", s)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe(exampleCollection(), "s4")

	if s.Records != 6 || s.Sequences != 4 || s.Positions != 4 {
		t.Errorf("Unexpected totals: %+v", s)
	}
	if s.Transitions != 4 || s.Transversions != 2 {
		t.Errorf("Unexpected type totals: %+v", s)
	}
	if !s.TsTv.Valid || s.TsTv.Float64 != 2 {
		t.Errorf("Expected Ts/Tv of 2, got %v", s.TsTv)
	}

	// Counts per sequence are 2, 1, 3, 0
	if math.Abs(s.MeanSNPsPerSequence.Float64-1.5) > 1e-9 {
		t.Errorf("Mean: got %f", s.MeanSNPsPerSequence.Float64)
	}
	if math.Abs(s.MedianSNPsPerSequence.Float64-1.5) > 1e-9 {
		t.Errorf("Median: got %f", s.MedianSNPsPerSequence.Float64)
	}
	if s.MaxSNPsPerSequence.Float64 != 3 {
		t.Errorf("Max: got %f", s.MaxSNPsPerSequence.Float64)
	}
	if math.Abs(s.StdDevSNPsPerSequence.Float64-math.Sqrt(1.25)) > 1e-9 {
		t.Errorf("StdDev: got %f", s.StdDevSNPsPerSequence.Float64)
	}
}

func TestSpectrum(t *testing.T) {
	got := Spectrum(exampleCollection())

	expected := []struct {
		Ref, Alt byte
		Count    int
	}{
		{'A', 'G', 2},
		{'A', 'T', 1},
		{'C', 'A', 1},
		{'G', 'A', 1},
		{'T', 'C', 1},
	}

	if len(got) != len(expected) {
		t.Fatalf("Got %v", got)
	}
	for i, v := range expected {
		if got[i].Ref != v.Ref || got[i].Alt != v.Alt || got[i].Count != v.Count {
			t.Errorf("Row %d: got %c>%c %d, expected %c>%c %d", i, got[i].Ref, got[i].Alt, got[i].Count, v.Ref, v.Alt, v.Count)
		}
	}
}

func TestPositionMatrix(t *testing.T) {
	c := append(exampleCollection(), rec("s1", 5, 'A', 'C'))
	m := PositionMatrix(c)

	if r, cols := m.Counts.Dims(); r != 3 || cols != 4 {
		t.Fatalf("Got %dx%d matrix", r, cols)
	}
	if m.SequenceIDs[0] != "s1" || m.Positions[0] != 5 || m.Positions[3] != 20 {
		t.Errorf("Unexpected labels: %v %v", m.SequenceIDs, m.Positions)
	}
	if m.At("s1", 5) != 2 {
		t.Errorf("s1:5 got %f, expected 2", m.At("s1", 5))
	}
	if m.At("s2", 9) != 0 || m.At("missing", 5) != 0 || m.At("s1", 1000) != 0 {
		t.Error("Expected zero for absent cells")
	}
	if m.Max() != 2 {
		t.Errorf("Max: got %f", m.Max())
	}
}
