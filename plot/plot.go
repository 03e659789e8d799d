// Package plot renders summary tables as PNG charts.
package plot

import (
	"errors"
	"io"

	"github.com/carbocation/snpscan/snpstats"
	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when asked to chart an empty table.
var ErrNoData = errors.New("No data to plot")

// SequenceBarChart renders the number of SNPs per sequence as a bar chart.
func SequenceBarChart(w io.Writer, table []snpstats.SequenceCount) error {
	if len(table) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(table))
	max := 0.0
	for _, v := range table {
		bars = append(bars, chart.Value{Value: float64(v.NumSNPs), Label: v.SequenceID})
		if float64(v.NumSNPs) > max {
			max = float64(v.NumSNPs)
		}
	}

	width := 80*len(bars) + 120
	if width < 512 {
		width = 512
	}

	graph := chart.BarChart{
		Title: "SNPs per sequence",
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Width:    width,
		Height:   384,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: max},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}

// TypePieChart renders the proportion of each mutation type.
func TypePieChart(w io.Writer, table []snpstats.TypeCount) error {
	if len(table) == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, 0, len(table))
	for _, v := range table {
		values = append(values, chart.Value{Value: float64(v.Count), Label: v.Type.String()})
	}

	graph := chart.PieChart{
		Title:  "Mutation types",
		Width:  384,
		Height: 384,
		Values: values,
	}

	return graph.Render(chart.PNG, w)
}
