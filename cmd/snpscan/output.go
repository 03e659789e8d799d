package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"
	"github.com/carbocation/snpscan/export"
	"github.com/carbocation/snpscan/plot"
	"github.com/carbocation/snpscan/snpstats"
)

// WriteOutputs writes every optional output that cfg asks for.
func WriteOutputs(cfg Config, result Result) error {
	rows := export.Rows(result.Filtered, result.Frequencies)

	if cfg.Output != "" {
		tables := map[string]func(io.Writer) error{
			"snps":      func(w io.Writer) error { return export.WriteTSV(w, rows) },
			"sequences": func(w io.Writer) error { return export.WriteSequenceCounts(w, result.PerSequence) },
			"types":     func(w io.Writer) error { return export.WriteTypeCounts(w, result.Types) },
			"positions": func(w io.Writer) error { return export.WritePositionCounts(w, result.TopPositions) },
			"spectrum":  func(w io.Writer) error { return export.WriteSpectrum(w, result.Spectrum) },
			"summary":   func(w io.Writer) error { return export.WriteSummary(w, result.Summary) },
		}
		for name, write := range tables {
			if err := writeFile(fmt.Sprintf("%s.%s.tsv", cfg.Output, name), write); err != nil {
				return err
			}
		}
	}

	if cfg.CSV != "" {
		if err := writeFile(cfg.CSV, func(w io.Writer) error { return export.WriteCSV(w, rows) }); err != nil {
			return err
		}
		log.Println("Wrote", len(rows), "SNPs to", cfg.CSV)
	}

	if cfg.SQLite != "" {
		if err := export.WriteSQLite(cfg.SQLite, rows); err != nil {
			return err
		}
		log.Println("Wrote", len(rows), "SNPs to", cfg.SQLite)
	}

	if cfg.Charts != "" {
		if err := os.MkdirAll(cfg.Charts, 0755); err != nil {
			return pfx.Err(err)
		}

		charts := map[string]func(io.Writer) error{
			"sequences.png": func(w io.Writer) error { return plot.SequenceBarChart(w, result.PerSequence) },
			"types.png":     func(w io.Writer) error { return plot.TypePieChart(w, result.Types) },
			"heatmap.png":   func(w io.Writer) error { return plot.Heatmap(w, result.Matrix) },
		}
		for name, render := range charts {
			err := writeFile(filepath.Join(cfg.Charts, name), render)
			if err == plot.ErrNoData {
				log.Printf("Skipping %s: no SNPs to plot\n", name)
				continue
			} else if err != nil {
				return err
			}
		}
	}

	return nil
}

// writeFile creates path and fills it with write. On failure the partial file
// is removed.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}

// PrintHistogram draws the distribution of SNPs per sequence in the
// terminal.
func PrintHistogram(w io.Writer, table []snpstats.SequenceCount) error {
	if len(table) == 0 {
		return plot.ErrNoData
	}

	data := make([]float64, 0, len(table))
	for _, v := range table {
		data = append(data, float64(v.NumSNPs))
	}

	// The table is sorted descending, so equal ends mean a single value,
	// which would give the histogram zero-width bins.
	if data[0] == data[len(data)-1] {
		_, err := fmt.Fprintf(w, "SNPs per sequence: all %d sequences carry %d\n", len(data), table[0].NumSNPs)
		return err
	}

	bins := 10
	if len(data) < bins {
		bins = len(data)
	}

	fmt.Fprintln(w, "SNPs per sequence:")
	hist := histogram.Hist(bins, data)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
