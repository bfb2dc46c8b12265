// Package export serializes parse results for the presentation side:
// JSON for whole results and CSV for the transaction sample. Absent fields
// serialize as JSON null; that choice is applied consistently everywhere.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
)

// Writer serializes ParseResults. Configure once, reuse across statements.
type Writer struct {
	pretty       bool
	csvDelimiter rune
	logger       logging.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPretty toggles indented JSON output.
func WithPretty(pretty bool) WriterOption {
	return func(w *Writer) {
		w.pretty = pretty
	}
}

// WithCSVDelimiter sets the CSV field delimiter.
func WithCSVDelimiter(delimiter rune) WriterOption {
	return func(w *Writer) {
		if delimiter != 0 {
			w.csvDelimiter = delimiter
		}
	}
}

// WithWriterLogger sets the logger used while exporting.
func WithWriterLogger(logger logging.Logger) WriterOption {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWriter creates a Writer with pretty JSON and comma-delimited CSV.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		pretty:       true,
		csvDelimiter: ',',
		logger:       logging.NewLogrusAdapter("info", "text"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteJSON serializes the result to w.
func (e *Writer) WriteJSON(result models.ParseResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	if e.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result as JSON: %w", err)
	}
	return nil
}

// WriteJSONFile serializes the result to a file, creating parent
// directories as needed.
func (e *Writer) WriteJSONFile(result models.ParseResult, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating JSON file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	if err := e.WriteJSON(result, file); err != nil {
		return err
	}

	e.logger.Info("Wrote parse result to JSON file",
		logging.Field{Key: logging.FieldOutputFile, Value: path})
	return nil
}

// WriteTransactionsCSV writes the transaction sample to a CSV file in a
// standardized format, creating parent directories as needed. An empty
// sample still produces a file with headers.
func (e *Writer) WriteTransactionsCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := gocsv.DefaultCSVWriter(out)
		writer.Comma = e.csvDelimiter
		return writer
	})

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing transactions CSV: %w", err)
	}

	e.logger.Info("Wrote transactions to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
