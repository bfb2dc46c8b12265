package common

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkapoor/cardstmt/internal/export"
	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
	"rkapoor/cardstmt/internal/parsererror"
	"rkapoor/cardstmt/internal/pdftext"
	"rkapoor/cardstmt/internal/statement"
)

const extractedStatement = `ICICI Bank Credit Card Statement
Card Number: XXXXXXXX4321
Statement Period: 01-02-2024 to 29-02-2024
Total Amount Due: Rs. 8,750.00
Payment Due Date: 15-03-2024
05-02-2024 BOOK STORE 1,250.00
Customer care support@icicibank.com or call 1800-425-4332`

func newTestPipeline(extractorText string, extractorErr error) *Pipeline {
	log := &logging.MockLogger{}
	return &Pipeline{
		Extractor:     pdftext.NewMockExtractor(extractorText, extractorErr),
		Parser:        statement.NewParser(nil, statement.WithLogger(log)),
		Writer:        export.NewWriter(export.WithWriterLogger(log)),
		Log:           log,
		MaxFileSizeMB: 10,
	}
}

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0600))
	return path
}

func TestProcessPDF(t *testing.T) {
	pipeline := newTestPipeline(extractedStatement, nil)

	outFile := filepath.Join(t.TempDir(), "result.json")
	csvFile := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, pipeline.ProcessPDF(writeTempPDF(t), outFile, csvFile))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var result models.ParseResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, "ICICI Bank", result.Issuer)
	require.NotNil(t, result.CardLastFour)
	assert.Equal(t, "4321", *result.CardLastFour)
	require.NotNil(t, result.TotalAmountDue)
	assert.Equal(t, "8750.00", *result.TotalAmountDue)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "1250.00", result.Transactions[0].Amount)

	csvData, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "BOOK STORE")
}

func TestProcessPDFValidationFailure(t *testing.T) {
	pipeline := newTestPipeline(extractedStatement, nil)

	err := pipeline.ProcessPDF(filepath.Join(t.TempDir(), "missing.pdf"), "", "")
	require.Error(t, err)

	var validationErr *parsererror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestProcessPDFExtractionFailure(t *testing.T) {
	wantErr := &parsererror.ExtractionError{Source: "statement.pdf", Reason: "image-based document"}
	pipeline := newTestPipeline("", wantErr)

	err := pipeline.ProcessPDF(writeTempPDF(t), "", "")
	require.Error(t, err)

	var extractionErr *parsererror.ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestProcessTextFile(t *testing.T) {
	pipeline := newTestPipeline("", nil)

	inputFile := filepath.Join(t.TempDir(), "statement.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte(extractedStatement), 0600))

	outFile := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, pipeline.ProcessTextFile(inputFile, outFile, ""))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var result models.ParseResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "ICICI Bank", result.Issuer)
}

func findEntry(entries []logging.LogEntry, msg string) (logging.LogEntry, bool) {
	for _, e := range entries {
		if e.Message == msg {
			return e, true
		}
	}
	return logging.LogEntry{}, false
}

func TestProcessPDFLogsSummary(t *testing.T) {
	pipeline := newTestPipeline(extractedStatement, nil)
	log := pipeline.Log.(*logging.MockLogger)

	outFile := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, pipeline.ProcessPDF(writeTempPDF(t), outFile, ""))

	entry, ok := findEntry(log.Entries, "Card on file")
	require.True(t, ok)
	assert.Contains(t, entry.Fields, logging.Field{Key: logging.FieldMaskedCard, Value: "****4321"})

	entry, ok = findEntry(log.Entries, "Total amount due")
	require.True(t, ok)
	assert.Contains(t, entry.Fields, logging.Field{Key: logging.FieldAmount, Value: "₹8750.00"})

	entry, ok = findEntry(log.Entries, "Payment due")
	require.True(t, ok)
	assert.Contains(t, entry.Fields, logging.Field{Key: logging.FieldDueDate, Value: "15-03-2024"})
	hasDays := false
	for _, f := range entry.Fields {
		if f.Key == logging.FieldDaysUntilDue {
			hasDays = true
		}
	}
	assert.True(t, hasDays, "days-until-due field missing")

	entry, ok = findEntry(log.Entries, "Statement contact details")
	require.True(t, ok)
	assert.Contains(t, entry.Fields, logging.Field{Key: logging.FieldEmail, Value: "support@icicibank.com"})
	assert.Contains(t, entry.Fields, logging.Field{Key: logging.FieldPhone, Value: "1800-425-4332"})
}

func TestProcessPDFLogsFileSize(t *testing.T) {
	pipeline := newTestPipeline(extractedStatement, nil)
	log := pipeline.Log.(*logging.MockLogger)

	require.NoError(t, pipeline.ProcessPDF(writeTempPDF(t), filepath.Join(t.TempDir(), "r.json"), ""))

	entry, ok := findEntry(log.Entries, "Extracting statement text")
	require.True(t, ok)
	hasSize := false
	for _, f := range entry.Fields {
		if f.Key == logging.FieldFileSize {
			hasSize = true
		}
	}
	assert.True(t, hasSize, "file-size field missing")
}

func TestProcessPDFSummarySkipsAbsentFields(t *testing.T) {
	pipeline := newTestPipeline("no recognizable statement content", nil)
	log := pipeline.Log.(*logging.MockLogger)

	require.NoError(t, pipeline.ProcessPDF(writeTempPDF(t), filepath.Join(t.TempDir(), "r.json"), ""))

	_, ok := findEntry(log.Entries, "Card on file")
	assert.False(t, ok)
	_, ok = findEntry(log.Entries, "Total amount due")
	assert.False(t, ok)
	_, ok = findEntry(log.Entries, "Payment due")
	assert.False(t, ok)
	_, ok = findEntry(log.Entries, "Statement contact details")
	assert.False(t, ok)
}

func TestProcessTextFileReadFailure(t *testing.T) {
	pipeline := newTestPipeline("", nil)

	err := pipeline.ProcessTextFile(filepath.Join(t.TempDir(), "absent.txt"), "", "")
	require.Error(t, err)

	var extractionErr *parsererror.ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestProcessTextFileNormalizesDates(t *testing.T) {
	pipeline := newTestPipeline("", nil)
	pipeline.NormalizeDates = true

	inputFile := filepath.Join(t.TempDir(), "statement.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte(extractedStatement), 0600))

	outFile := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, pipeline.ProcessTextFile(inputFile, outFile, ""))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var result models.ParseResult
	require.NoError(t, json.Unmarshal(data, &result))

	require.NotNil(t, result.PaymentDueDate)
	assert.Equal(t, "15/03/2024", *result.PaymentDueDate)
	require.NotNil(t, result.BillingCycle)
	assert.Equal(t, "01/02/2024", result.BillingCycle.StartDate)
	assert.Equal(t, "29/02/2024", result.BillingCycle.EndDate)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "05/02/2024", result.Transactions[0].Date)
}
