// SPDX-License-Identifier: MIT
// Package: tilesearch/experiment
//
// row.go - the flattened run record and its CSV exchange format.
//
// Schema policy:
//   • One row per search run; the header below is the stable on-disk
//     contract for analyze/plot tooling.
//   • Cells that do not apply to an algorithm stay EMPTY rather than zero:
//     frontier peaks belong to astar, recursion depth and bounds to the
//     iterative-deepening family (dfs writes its bound only when one was
//     configured), the g cell only to solved runs.
//   • Reading inverts the same policy: an empty g cell is cost −1, other
//     empty numeric cells are zero.

package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/dfs"
	"github.com/katalvlaran/tilesearch/idastar"
)

// Row is one flattened run record: identity, fixture, counters, outcome.
type Row struct {
	RunID         string
	Algorithm     string
	Heuristic     string
	Rows          int
	Cols          int
	Depth         int
	Seed          int64
	Expanded      int
	Generated     int
	Duplicates    int
	Cost          int // -1 when the run did not solve
	TimeSec       float64
	PeakOpen      int
	PeakClosed    int
	PeakRecursion int
	BoundFinal    int
	TieBreak      string
	Termination   string
	Solvable      bool
}

// csvHeader is the column contract, in writing order.
var csvHeader = []string{
	"run_id", "algorithm", "heuristic", "rows", "cols", "depth", "seed",
	"expanded", "generated", "duplicates", "g", "time_sec",
	"peak_open", "peak_closed", "peak_recursion", "bound_final",
	"tie_break", "termination", "solvable",
}

// record renders the row, applying the empty-cell policy per algorithm.
func (r Row) record() []string {
	g := ""
	if r.Cost >= 0 {
		g = strconv.Itoa(r.Cost)
	}

	peakOpen, peakClosed := "", ""
	if r.Algorithm == astar.Algorithm {
		peakOpen = strconv.Itoa(r.PeakOpen)
		peakClosed = strconv.Itoa(r.PeakClosed)
	}

	peakRecursion, boundFinal := "", ""
	switch r.Algorithm {
	case idastar.Algorithm, idastar.AlgorithmBPMX:
		peakRecursion = strconv.Itoa(r.PeakRecursion)
		boundFinal = strconv.Itoa(r.BoundFinal)
	case dfs.Algorithm:
		peakRecursion = strconv.Itoa(r.PeakRecursion)
		if r.BoundFinal > 0 {
			boundFinal = strconv.Itoa(r.BoundFinal)
		}
	}

	solvable := "0"
	if r.Solvable {
		solvable = "1"
	}

	return []string{
		r.RunID, r.Algorithm, r.Heuristic,
		strconv.Itoa(r.Rows), strconv.Itoa(r.Cols),
		strconv.Itoa(r.Depth), strconv.FormatInt(r.Seed, 10),
		strconv.Itoa(r.Expanded), strconv.Itoa(r.Generated), strconv.Itoa(r.Duplicates),
		g, strconv.FormatFloat(r.TimeSec, 'f', 6, 64),
		peakOpen, peakClosed, peakRecursion, boundFinal,
		r.TieBreak, r.Termination, solvable,
	}
}

// WriteCSV writes the header and all rows to w.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("experiment: write header: %w", err)
	}
	for i := range rows {
		if err := cw.Write(rows[i].record()); err != nil {
			return fmt.Errorf("experiment: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a results file produced by WriteCSV. The header must
// match the schema exactly; any unparsable cell yields ErrBadCSV naming
// the offending line.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrBadCSV, err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("%w: header has %d columns, want %d", ErrBadCSV, len(header), len(csvHeader))
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadCSV, i, header[i], name)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadCSV, line, err)
		}
		row, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadCSV, line, err)
		}
		rows = append(rows, row)
	}
}

// decodeRecord inverts record: empty numeric cells are zero, an empty g
// cell is cost -1.
func decodeRecord(rec []string) (Row, error) {
	ints := make([]int, 0, 10)
	for _, col := range []int{3, 4, 5, 7, 8, 9, 12, 13, 14, 15} {
		v, err := intCell(rec[col], csvHeader[col])
		if err != nil {
			return Row{}, err
		}
		ints = append(ints, v)
	}

	seed, err := strconv.ParseInt(rec[6], 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("seed %q: %v", rec[6], err)
	}

	cost := -1
	if rec[10] != "" {
		if cost, err = strconv.Atoi(rec[10]); err != nil {
			return Row{}, fmt.Errorf("g %q: %v", rec[10], err)
		}
	}

	timeSec, err := strconv.ParseFloat(rec[11], 64)
	if err != nil {
		return Row{}, fmt.Errorf("time_sec %q: %v", rec[11], err)
	}

	var solvable bool
	switch rec[18] {
	case "1":
		solvable = true
	case "0":
		solvable = false
	default:
		return Row{}, fmt.Errorf("solvable %q: want 0 or 1", rec[18])
	}

	return Row{
		RunID:         rec[0],
		Algorithm:     rec[1],
		Heuristic:     rec[2],
		Rows:          ints[0],
		Cols:          ints[1],
		Depth:         ints[2],
		Seed:          seed,
		Expanded:      ints[3],
		Generated:     ints[4],
		Duplicates:    ints[5],
		Cost:          cost,
		TimeSec:       timeSec,
		PeakOpen:      ints[6],
		PeakClosed:    ints[7],
		PeakRecursion: ints[8],
		BoundFinal:    ints[9],
		TieBreak:      rec[16],
		Termination:   rec[17],
		Solvable:      solvable,
	}, nil
}

// intCell parses an integer cell, treating empty as zero.
func intCell(s, name string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %v", name, s, err)
	}
	return v, nil
}
