package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/carbocation/snpscan/export"
	"github.com/carbocation/snpscan/plot"
	"github.com/carbocation/snpscan/snp"
	"github.com/carbocation/snpscan/snpstats"
	"github.com/gorilla/mux"
)

type handler struct {
	*Global
}

// queryError is a malformed request parameter; it maps to 400.
type queryError struct {
	Param string
	Value string
}

func (e queryError) Error() string {
	return fmt.Sprintf("Could not parse %s=%q as a number", e.Param, e.Value)
}

// bounds reads the optional min_freq and max_freq query parameters.
func bounds(r *http.Request) (snpstats.FrequencyBounds, error) {
	out := snpstats.FrequencyBounds{}

	for param, target := range map[string]func(float64){
		"min_freq": out.Min.SetValid,
		"max_freq": out.Max.SetValid,
	} {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, queryError{Param: param, Value: raw}
		}
		target(v)
	}

	return out, nil
}

// filtered applies the request's frequency bounds to the loaded collection.
func (h *handler) filtered(r *http.Request) (snp.Collection, error) {
	b, err := bounds(r)
	if err != nil {
		return nil, err
	}

	return snpstats.FilterByFrequency(h.Collection, b), nil
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	c, err := h.filtered(r)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	output := struct {
		Site      string
		Source    string
		BuildInfo string
		Summary   summaryJSON
	}{
		h.Site,
		h.Source,
		h.BuildInfo.String(),
		newSummaryJSON(snpstats.Describe(c, h.SequenceIDs...)),
	}

	writeJSON(h, w, output)
}

func (h *handler) SNPs(w http.ResponseWriter, r *http.Request) {
	c, err := h.filtered(r)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	writeJSON(h, w, export.Rows(c, snpstats.PositionFrequencies(h.Collection)))
}

func (h *handler) Table(w http.ResponseWriter, r *http.Request) {
	c, err := h.filtered(r)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	switch mux.Vars(r)["table"] {
	case "sequences":
		writeJSON(h, w, snpstats.CountsPerSequence(c))
	case "types":
		out := make([]map[string]interface{}, 0)
		for _, v := range snpstats.TypeFrequencies(c) {
			out = append(out, map[string]interface{}{"mutation_type": v.Type.String(), "count": v.Count})
		}
		writeJSON(h, w, out)
	case "positions":
		n := snpstats.DefaultTopN
		if raw := r.URL.Query().Get("n"); raw != "" {
			if n, err = strconv.Atoi(raw); err != nil {
				HTTPError(h, w, r, queryError{Param: "n", Value: raw})
				return
			}
		}
		writeJSON(h, w, snpstats.TopPositions(c, n))
	case "spectrum":
		out := make([]map[string]interface{}, 0)
		for _, v := range snpstats.Spectrum(c) {
			out = append(out, map[string]interface{}{"ref_nt": string(v.Ref), "alt_nt": string(v.Alt), "mutation_type": v.Type.String(), "count": v.Count})
		}
		writeJSON(h, w, out)
	default:
		http.NotFound(w, r)
	}
}

func (h *handler) Chart(w http.ResponseWriter, r *http.Request) {
	c, err := h.filtered(r)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	// Render to a byte buffer so a failure can still become an error page
	buffer := bytes.NewBuffer([]byte{})

	switch mux.Vars(r)["chart"] {
	case "sequences":
		err = plot.SequenceBarChart(buffer, snpstats.CountsPerSequence(c))
	case "types":
		err = plot.TypePieChart(buffer, snpstats.TypeFrequencies(c))
	case "heatmap":
		err = plot.Heatmap(buffer, snpstats.PositionMatrix(c))
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	buffer.WriteTo(w)
}

func (h *handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	c, err := h.filtered(r)
	if err != nil {
		HTTPError(h, w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, export.Rows(c, snpstats.PositionFrequencies(h.Collection))); err != nil {
		HTTPError(h, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="snps.csv"`)
	buf.WriteTo(w)
}

func HTTPError(h *handler, w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case queryError:
		status = http.StatusBadRequest
	}
	if err == plot.ErrNoData {
		status = http.StatusNotFound
	}

	h.log.Printf("%s %s: %v\n", r.Method, r.URL, err)
	http.Error(w, err.Error(), status)
}

func writeJSON(h *handler, w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Println(err)
	}
}

// summaryJSON flattens null values to JSON null.
type summaryJSON struct {
	Records               int      `json:"records"`
	Sequences             int      `json:"sequences"`
	Positions             int      `json:"positions"`
	Transitions           int      `json:"transitions"`
	Transversions         int      `json:"transversions"`
	TsTv                  *float64 `json:"ts_tv"`
	MeanSNPsPerSequence   *float64 `json:"mean_snps_per_sequence"`
	MedianSNPsPerSequence *float64 `json:"median_snps_per_sequence"`
}

func newSummaryJSON(s snpstats.Summary) summaryJSON {
	return summaryJSON{
		Records:               s.Records,
		Sequences:             s.Sequences,
		Positions:             s.Positions,
		Transitions:           s.Transitions,
		Transversions:         s.Transversions,
		TsTv:                  s.TsTv.Ptr(),
		MeanSNPsPerSequence:   s.MeanSNPsPerSequence.Ptr(),
		MedianSNPsPerSequence: s.MedianSNPsPerSequence.Ptr(),
	}
}
