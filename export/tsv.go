package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/snpscan/snpstats"
	"gopkg.in/guregu/null.v3"
)

func NullFloatFormatter(n null.Float) string {
	if !n.Valid {
		return ""
	}

	return strconv.FormatFloat(n.Float64, 'g', -1, 64)
}

// WriteTSV writes rows as a tab-delimited table with a header.
func WriteTSV(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "sequence_id\tposition\tref_nt\talt_nt\tmutation_type\tfreq\n")
	for _, r := range rows {
		fmt.Fprintf(bw, "%s\t%d\t%s\t%s\t%s\t%s\n", r.SequenceID, r.Position, r.RefNT, r.AltNT, r.MutationType, NullFloatFormatter(r.Freq))
	}

	return bw.Flush()
}

func WriteSequenceCounts(w io.Writer, table []snpstats.SequenceCount) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "sequence_id\tnum_snps\n")
	for _, v := range table {
		fmt.Fprintf(bw, "%s\t%d\n", v.SequenceID, v.NumSNPs)
	}

	return bw.Flush()
}

func WriteTypeCounts(w io.Writer, table []snpstats.TypeCount) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "mutation_type\tcount\n")
	for _, v := range table {
		fmt.Fprintf(bw, "%s\t%d\n", v.Type, v.Count)
	}

	return bw.Flush()
}

func WritePositionCounts(w io.Writer, table []snpstats.PositionCount) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "position\tcount\n")
	for _, v := range table {
		fmt.Fprintf(bw, "%d\t%d\n", v.Position, v.Count)
	}

	return bw.Flush()
}

func WriteSpectrum(w io.Writer, table []snpstats.SpectrumCount) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "ref_nt\talt_nt\tmutation_type\tcount\n")
	for _, v := range table {
		fmt.Fprintf(bw, "%c\t%c\t%s\t%d\n", v.Ref, v.Alt, v.Type, v.Count)
	}

	return bw.Flush()
}

// WriteSummary writes the summary as key/value lines.
func WriteSummary(w io.Writer, s snpstats.Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "statistic\tvalue\n")
	fmt.Fprintf(bw, "records\t%d\n", s.Records)
	fmt.Fprintf(bw, "sequences\t%d\n", s.Sequences)
	fmt.Fprintf(bw, "positions\t%d\n", s.Positions)
	fmt.Fprintf(bw, "transitions\t%d\n", s.Transitions)
	fmt.Fprintf(bw, "transversions\t%d\n", s.Transversions)
	fmt.Fprintf(bw, "ts_tv\t%s\n", NullFloatFormatter(s.TsTv))
	fmt.Fprintf(bw, "mean_snps_per_sequence\t%s\n", NullFloatFormatter(s.MeanSNPsPerSequence))
	fmt.Fprintf(bw, "median_snps_per_sequence\t%s\n", NullFloatFormatter(s.MedianSNPsPerSequence))
	fmt.Fprintf(bw, "sd_snps_per_sequence\t%s\n", NullFloatFormatter(s.StdDevSNPsPerSequence))
	fmt.Fprintf(bw, "max_snps_per_sequence\t%s\n", NullFloatFormatter(s.MaxSNPsPerSequence))

	return bw.Flush()
}
