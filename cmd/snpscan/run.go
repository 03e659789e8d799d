package main

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/carbocation/snpscan/seqload"
	"github.com/carbocation/snpscan/snp"
	"github.com/carbocation/snpscan/snpstats"
)

// Result holds the unfiltered collection and every table derived from the
// filtered one.
type Result struct {
	SequenceIDs []string
	All         snp.Collection
	Filtered    snp.Collection
	Frequencies map[int]float64

	PerSequence  []snpstats.SequenceCount
	Types        []snpstats.TypeCount
	TopPositions []snpstats.PositionCount
	Spectrum     []snpstats.SpectrumCount
	Summary      snpstats.Summary
	Matrix       snpstats.Matrix
}

func Run(ctx context.Context, cfg Config, client *storage.Client) (Result, error) {
	all, ids, err := seqload.LoadCollection(ctx, cfg.Input, client)
	if err != nil {
		return Result{}, err
	}

	return Summarize(all, ids, cfg), nil
}

// Summarize filters the collection and derives every table from the filtered
// records. Frequencies are those of the unfiltered collection, which decided
// what was kept.
func Summarize(all snp.Collection, ids []string, cfg Config) Result {
	filtered := snpstats.FilterByFrequency(all, cfg.Bounds)

	return Result{
		SequenceIDs: ids,
		All:         all,
		Filtered:    filtered,
		Frequencies: snpstats.PositionFrequencies(all),

		PerSequence:  snpstats.CountsPerSequence(filtered),
		Types:        snpstats.TypeFrequencies(filtered),
		TopPositions: snpstats.TopPositions(filtered, cfg.TopN),
		Spectrum:     snpstats.Spectrum(filtered),
		Summary:      snpstats.Describe(filtered, ids...),
		Matrix:       snpstats.PositionMatrix(filtered),
	}
}
