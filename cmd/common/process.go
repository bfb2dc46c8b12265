// Package common contains the shared processing pipeline used by the
// command handlers: validate, extract text, parse, export.
package common

import (
	"os"

	"rkapoor/cardstmt/internal/dateutils"
	"rkapoor/cardstmt/internal/export"
	"rkapoor/cardstmt/internal/fileutils"
	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
	"rkapoor/cardstmt/internal/parsererror"
	"rkapoor/cardstmt/internal/pdftext"
	"rkapoor/cardstmt/internal/statement"
)

// Pipeline wires the collaborators of one statement conversion. Commands
// build it once and run it over one or many inputs.
type Pipeline struct {
	Extractor      pdftext.Extractor
	Parser         *statement.Parser
	Writer         *export.Writer
	Log            logging.Logger
	MaxFileSizeMB  int64
	NormalizeDates bool
}

// ProcessPDF validates and parses one PDF statement and writes the result
// as JSON to outputFile, or to stdout when outputFile is empty. When
// csvFile is non-empty the transaction sample is additionally written
// there as CSV.
func (p *Pipeline) ProcessPDF(inputFile, outputFile, csvFile string) error {
	if err := fileutils.ValidatePDF(inputFile, p.MaxFileSizeMB); err != nil {
		return err
	}

	fields := []logging.Field{{Key: logging.FieldInputFile, Value: inputFile}}
	if info, err := os.Stat(inputFile); err == nil {
		fields = append(fields, logging.Field{
			Key: logging.FieldFileSize, Value: fileutils.FormatFileSize(info.Size())})
	}
	p.Log.Info("Extracting statement text", fields...)

	text, err := p.Extractor.ExtractText(inputFile)
	if err != nil {
		return err
	}

	return p.processText(text, outputFile, csvFile)
}

// ProcessTextFile parses a statement already available as plain text.
func (p *Pipeline) ProcessTextFile(inputFile, outputFile, csvFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return &parsererror.ExtractionError{
			Source: inputFile,
			Reason: "failed to read statement text",
			Err:    err,
		}
	}
	return p.processText(string(data), outputFile, csvFile)
}

func (p *Pipeline) processText(text, outputFile, csvFile string) error {
	result := p.Parser.Parse(text)

	if p.NormalizeDates {
		normalizeResultDates(&result)
	}

	p.logSummary(text, result)

	if outputFile == "" {
		if err := p.Writer.WriteJSON(result, os.Stdout); err != nil {
			return err
		}
	} else {
		if err := p.Writer.WriteJSONFile(result, outputFile); err != nil {
			return err
		}
	}

	if csvFile != "" {
		if err := p.Writer.WriteTransactionsCSV(result.Transactions, csvFile); err != nil {
			return err
		}
	}

	return nil
}

// normalizeResultDates rewrites every captured date into DD/MM/YYYY where a
// layout can be guessed; unparseable values stay raw.
func normalizeResultDates(result *models.ParseResult) {
	if result.PaymentDueDate != nil {
		result.PaymentDueDate = models.StringPtr(dateutils.Normalize(*result.PaymentDueDate))
	}
	if result.BillingCycle != nil {
		result.BillingCycle.StartDate = dateutils.Normalize(result.BillingCycle.StartDate)
		result.BillingCycle.EndDate = dateutils.Normalize(result.BillingCycle.EndDate)
	}
	for i := range result.Transactions {
		result.Transactions[i].Date = dateutils.Normalize(result.Transactions[i].Date)
	}
}
