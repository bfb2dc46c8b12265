// Package models defines the data structures produced by the statement
// extraction engine.
package models

// IssuerUnknown is the issuer value reported when no known issuer keyword
// matches the statement text. The Issuer field is always populated with
// either a known issuer name or this literal; it is never empty.
const IssuerUnknown = "Unknown"

// BillingCycle holds the statement period boundaries as captured from the
// document. Dates are raw strings in whatever format the statement used;
// normalization is an optional post-processing step. Both dates are always
// present: a cycle with only one boundary is reported as absent instead.
type BillingCycle struct {
	StartDate string `json:"start_date" yaml:"start_date"`
	EndDate   string `json:"end_date" yaml:"end_date"`
}

// Transaction is one entry of the bounded transaction sample. Amount is
// digits with an optional decimal point; thousands separators are stripped
// at capture time. Currency symbols are not captured.
type Transaction struct {
	Date        string `json:"date" csv:"Date"`
	Description string `json:"description" csv:"Description"`
	Amount      string `json:"amount" csv:"Amount"`
}

// ParseResult is the outcome of parsing one statement. It is created once
// per parse, returned by value, and never retained by the parser.
//
// Optional fields use pointers: nil means the field was not found, which is
// a normal outcome rather than an error. Absent fields serialize to JSON
// null. An empty string is never used to signal absence.
type ParseResult struct {
	Issuer         string        `json:"issuer"`
	CardLastFour   *string       `json:"card_last_four"`
	BillingCycle   *BillingCycle `json:"billing_cycle"`
	PaymentDueDate *string       `json:"payment_due_date"`
	TotalAmountDue *string       `json:"total_amount_due"`
	Transactions   []Transaction `json:"transactions"`
}

// HasCardLastFour reports whether the masked card digits were found.
func (r *ParseResult) HasCardLastFour() bool {
	return r.CardLastFour != nil
}

// HasBillingCycle reports whether both billing cycle boundaries were found.
func (r *ParseResult) HasBillingCycle() bool {
	return r.BillingCycle != nil
}

// StringPtr returns a pointer to s. Convenience for building expected
// results in tests and for the extractors' optional return values.
func StringPtr(s string) *string {
	return &s
}
