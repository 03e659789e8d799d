package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"cloud.google.com/go/storage"
	_ "github.com/carbocation/snpscan/compileinfoprint"
	"github.com/carbocation/snpscan/export"
	"github.com/carbocation/snpscan/seqload"
	"github.com/carbocation/snpscan/snpstats"
)

var (
	BufferSize = 4096 * 8
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var cfg Config
	var sequences flagSlice
	var minFreq, maxFreq float64
	flag.StringVar(&cfg.Input.Reference, "reference", "", "FASTA file whose first record is the reference sequence. May be gzipped and may be a gs:// path.")
	flag.Var(&sequences, "sequences", "FASTA file of sequences to compare against --reference. Pass once per file.")
	flag.StringVar(&cfg.Input.VCF, "vcf", "", "VCF (or headerless VCF-like table) of pre-called variants. Mutually exclusive with --reference.")
	flag.StringVar(&cfg.Input.Layout, "layout", "VCF", fmt.Sprint("Column layout for headerless variant tables. Options include: ", seqload.LayoutNames()))
	flag.Float64Var(&minFreq, "min-freq", math.NaN(), "Optional: keep only SNPs at positions whose frequency is at least this value.")
	flag.Float64Var(&maxFreq, "max-freq", math.NaN(), "Optional: keep only SNPs at positions whose frequency is at most this value.")
	flag.IntVar(&cfg.TopN, "top", snpstats.DefaultTopN, "Number of most frequently mutated positions to report.")
	flag.StringVar(&cfg.Output, "output", "", "Optional: prefix for the summary tables (e.g., out/run1 yields out/run1.sequences.tsv, ...).")
	flag.StringVar(&cfg.CSV, "csv", "", "Optional: path for a CSV export of the (filtered) SNPs.")
	flag.StringVar(&cfg.SQLite, "sqlite", "", "Optional: path to a SQLite database into which the (filtered) SNPs are appended.")
	flag.StringVar(&cfg.Charts, "charts", "", "Optional: folder into which PNG charts are written.")
	flag.BoolVar(&cfg.Histogram, "histogram", false, "Print a histogram of SNPs per sequence to STDERR?")
	flag.Parse()

	cfg.Input.Sequences = sequences
	if !math.IsNaN(minFreq) {
		cfg.Bounds.Min.SetValid(minFreq)
	}
	if !math.IsNaN(maxFreq) {
		cfg.Bounds.Max.SetValid(maxFreq)
	}

	if err := cfg.Validate(); err != nil {
		flag.PrintDefaults()
		log.Fatalln(err)
	}

	ctx := context.Background()

	var client *storage.Client
	if cfg.Input.NeedsStorage() {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	result, err := Run(ctx, cfg, client)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("Found %d SNPs across %d sequences; %d remain after frequency filtering\n", len(result.All), len(result.SequenceIDs), len(result.Filtered))

	if err := export.WriteSequenceCounts(STDOUT, result.PerSequence); err != nil {
		log.Fatalln(err)
	}
	fmt.Fprintln(STDOUT)
	if err := export.WriteTypeCounts(STDOUT, result.Types); err != nil {
		log.Fatalln(err)
	}
	fmt.Fprintln(STDOUT)
	if err := export.WritePositionCounts(STDOUT, result.TopPositions); err != nil {
		log.Fatalln(err)
	}
	fmt.Fprintln(STDOUT)
	if err := export.WriteSummary(STDOUT, result.Summary); err != nil {
		log.Fatalln(err)
	}

	if cfg.Histogram {
		if err := PrintHistogram(os.Stderr, result.PerSequence); err != nil {
			log.Println(err)
		}
	}

	if err := WriteOutputs(cfg, result); err != nil {
		log.Fatalln(err)
	}

	log.Println("Completed")
}

// Config is everything a run needs; there is no other state.
type Config struct {
	Input seqload.Input

	Bounds snpstats.FrequencyBounds
	TopN   int

	Output    string
	CSV       string
	SQLite    string
	Charts    string
	Histogram bool
}

func (c Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if c.Bounds.Min.Valid && c.Bounds.Max.Valid && c.Bounds.Min.Float64 > c.Bounds.Max.Float64 {
		return fmt.Errorf("--min-freq (%g) is greater than --max-freq (%g)", c.Bounds.Min.Float64, c.Bounds.Max.Float64)
	}

	return nil
}
