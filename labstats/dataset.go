// Package labstats summarizes laboratory flow-rate measurements and renders
// them as box plots: one box per head bin for spillway similarity studies,
// or a single box for a repeated-measurement series.
package labstats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Column headers as they appear in the lab data acquisition export.
const (
	DefaultHeadColumn = "_H_(head above the crest)"
	DefaultFlowColumn = "Q(m3/s)"
)

// Record is one measurement row: weir head and the discharge read from the
// bench flowmeter.
type Record struct {
	Head float64 // m
	Flow float64 // m^3/s
}

// Dataset is an ordered series of measurements.
type Dataset []Record

// Flows returns the discharge column.
func (d Dataset) Flows() (q []float64) {
	q = make([]float64, len(d))
	for i, r := range d {
		q[i] = r.Flow
	}
	return
}

// Heads returns the head column.
func (d Dataset) Heads() (h []float64) {
	h = make([]float64, len(d))
	for i, r := range d {
		h[i] = r.Head
	}
	return
}

// LoadCSV reads the head and flow columns from a lab data export. Empty
// column names select the default headers. Rows with blank head or flow
// fields are skipped; malformed numbers are an error.
func LoadCSV(path, headColumn, flowColumn string) (Dataset, error) {
	if headColumn == "" {
		headColumn = DefaultHeadColumn
	}
	if flowColumn == "" {
		flowColumn = DefaultFlowColumn
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labstats: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("labstats: reading header of %s: %w", path, err)
	}
	hi, qi := -1, -1
	for i, name := range header {
		switch name {
		case headColumn:
			hi = i
		case flowColumn:
			qi = i
		}
	}
	if hi < 0 {
		return nil, fmt.Errorf("labstats: %s has no column %q", path, headColumn)
	}
	if qi < 0 {
		return nil, fmt.Errorf("labstats: %s has no column %q", path, flowColumn)
	}

	var d Dataset
	for row := 2; ; row++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("labstats: %s row %d: %w", path, row, err)
		}
		if rec[hi] == "" || rec[qi] == "" {
			log.WithFields(log.Fields{"file": path, "row": row}).
				Debug("skipping row with blank fields")
			continue
		}
		h, err := strconv.ParseFloat(rec[hi], 64)
		if err != nil {
			return nil, fmt.Errorf("labstats: %s row %d, column %q: %w", path, row, headColumn, err)
		}
		q, err := strconv.ParseFloat(rec[qi], 64)
		if err != nil {
			return nil, fmt.Errorf("labstats: %s row %d, column %q: %w", path, row, flowColumn, err)
		}
		d = append(d, Record{Head: h, Flow: q})
	}
	return d, nil
}
