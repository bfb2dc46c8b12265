// Package statement implements the credit-card statement extraction engine.
// Given the plain text of one statement it identifies the issuer and pulls
// out the masked card number, billing cycle, payment due date, total amount
// due and a bounded sample of transactions, driven entirely by the pattern
// table it was constructed with.
package statement

import (
	"io"
	"strings"

	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
	"rkapoor/cardstmt/internal/parsererror"
	"rkapoor/cardstmt/internal/patterns"
)

// DefaultMaxTransactions caps the transaction sample per statement. The cap
// is a display-sampling limit, not a completeness guarantee.
const DefaultMaxTransactions = 10

// Parser extracts structured fields from statement text. A Parser is
// immutable after construction and safe for concurrent use: every Parse
// call works on its own input and shares only the read-only pattern table.
type Parser struct {
	table           *patterns.Table
	maxTransactions int
	logger          logging.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used during parsing.
func WithLogger(logger logging.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMaxTransactions overrides the transaction sample cap.
func WithMaxTransactions(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxTransactions = n
		}
	}
}

// NewParser creates a Parser over the given pattern table. A nil table
// falls back to the built-in one.
func NewParser(table *patterns.Table, opts ...Option) *Parser {
	if table == nil {
		table = patterns.Default()
	}
	p := &Parser{
		table:           table,
		maxTransactions: DefaultMaxTransactions,
		logger:          logging.NewLogrusAdapter("info", "text"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts all fields from the statement text and assembles the
// result. Extraction is fail-soft: a field whose patterns never match is
// reported as absent, never as an error. Empty text is valid and yields
// an Unknown issuer with every field absent. The input is neither retained
// nor mutated.
func (p *Parser) Parse(text string) models.ParseResult {
	doc := normalize(text)

	issuer := p.identifyIssuer(doc)

	result := models.ParseResult{
		Issuer:         issuer,
		CardLastFour:   p.extractCardLastFour(doc, issuer),
		BillingCycle:   p.extractBillingCycle(doc),
		PaymentDueDate: p.extractPaymentDueDate(doc),
		TotalAmountDue: p.extractTotalAmountDue(doc),
		Transactions:   p.extractTransactions(doc),
	}

	p.logger.Info("Parsed statement",
		logging.Field{Key: logging.FieldIssuer, Value: result.Issuer},
		logging.Field{Key: logging.FieldCount, Value: len(result.Transactions)})

	return result
}

// ParseReader reads the full statement text from r and parses it. A read
// failure is the one fatal condition: it is reported as an ExtractionError
// and no partial result is produced.
func (p *Parser) ParseReader(r io.Reader) (models.ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ParseResult{}, &parsererror.ExtractionError{
			Source: "reader",
			Reason: "failed to read statement text",
			Err:    err,
		}
	}
	return p.Parse(string(data)), nil
}

// document carries the statement text in its two searchable forms: the
// original casing for capture-group extraction and a lowercase copy for
// keyword search.
type document struct {
	original string
	lower    string
}

// normalize produces the two searchable forms of the raw text. The original
// text is kept unchanged so captured values preserve the statement's casing.
func normalize(raw string) document {
	return document{
		original: raw,
		lower:    strings.ToLower(raw),
	}
}
