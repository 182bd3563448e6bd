package report

import (
	"encoding/csv"
	"io"
)

// BOM is the UTF-8 byte order mark, written first so Excel on Windows picks
// the right encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter wraps csv.Writer for the coverage report.
type CSVWriter struct {
	out io.Writer
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{out: w, csv: csv.NewWriter(w)}
}

// WriteHeader writes the BOM and the header row.
func (w *CSVWriter) WriteHeader() error {
	if _, err := w.out.Write(BOM); err != nil {
		return err
	}
	return w.csv.Write(columns)
}

// WriteRows writes one line per coverage row.
func (w *CSVWriter) WriteRows(rows []CoverageRow) error {
	for i := range rows {
		if err := w.csv.Write(rows[i].cells()); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes a complete CSV report.
func WriteCSV(out io.Writer, rows []CoverageRow) error {
	w := NewCSVWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteRows(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
