package snpscan

import (
	"bytes"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. Tab is the fallback, since
// variant tables are tab-delimited unless shown otherwise.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}

// DetermineDelimiterBytes is DetermineDelimiter over an in-memory sample,
// ignoring '#' comment lines which would otherwise dominate the vote.
func DetermineDelimiterBytes(sample []byte) rune {
	var body bytes.Buffer
	for _, line := range bytes.Split(sample, []byte("\n")) {
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		body.Write(line)
		body.WriteByte('\n')
	}

	return DetermineDelimiter(&body)
}
