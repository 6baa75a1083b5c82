package harness

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Sink receives exactly one row per batch a Harness runs, at the end of
// RandomBatch — its lifecycle is scoped to the batch, not to individual
// queries. It is passed in by the caller (package cmd/wsp3d wires a
// CSVSink; tests wire an in-memory one) rather than written through a
// package-level global stream, so that two Harness instances in the same
// process never interleave output.
type Sink interface {
	WriteRow(BatchRecord) error
	Close() error
}

// NopSink discards every row. Useful when a caller only wants BatchStats
// and has no use for the batch record, or is running a single query (which
// never writes to a Sink at all).
type NopSink struct{}

// WriteRow implements Sink.
func (NopSink) WriteRow(BatchRecord) error { return nil }

// Close implements Sink.
func (NopSink) Close() error { return nil }

// CSVSink appends one row per batch to a CSV file: stretch, yardstick,
// |V|, |E|, followed by every query's distance in run order.
type CSVSink struct {
	f *os.File
	w *csv.Writer
}

// NewCSVSink opens path for appending, creating it if it does not already
// exist, and returns a Sink writing to it. No header row is written: each
// line stands on its own as one batch's record.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("harness: opening %s: %w", path, err)
	}
	return &CSVSink{f: f, w: csv.NewWriter(f)}, nil
}

// WriteRow implements Sink.
func (s *CSVSink) WriteRow(r BatchRecord) error {
	row := make([]string, 0, 4+len(r.Distances))
	row = append(row,
		fmt.Sprintf("%g", r.Stretch),
		fmt.Sprintf("%g", r.Yardstick),
		fmt.Sprintf("%d", r.NumVertices),
		fmt.Sprintf("%d", r.NumEdges),
	)
	for _, d := range r.Distances {
		row = append(row, fmt.Sprintf("%g", d))
	}
	return s.w.Write(row)
}

// Close flushes buffered rows and closes the underlying file.
func (s *CSVSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
