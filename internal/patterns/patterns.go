// Package patterns holds the declarative pattern tables driving statement
// extraction: the ordered issuer rules and the per-field regex cascades.
// A Table is compiled once, passed to the parser explicitly, and is safe
// for unsynchronized concurrent reads.
package patterns

import (
	"fmt"
	"regexp"
)

// IssuerRule describes how one supported issuer is recognized in statement
// text. Rules are evaluated in declaration order and the first rule whose
// condition holds wins, so a statement that merely mentions another bank
// (e.g. in a payment-network disclaimer) does not misidentify.
type IssuerRule struct {
	// Name is the canonical issuer name reported in results.
	Name string
	// Keywords are lowercase substrings; any one of them matching satisfies
	// the primary condition.
	Keywords []string
	// RequireAny, when non-empty, adds a compound condition: at least one
	// of these lowercase substrings must also be present. Chase uses this
	// so a bare "chase" mention is insufficient.
	RequireAny []string
	// CardPattern is an issuer-specific masked-card regex. When the issuer
	// is identified, this pattern is tried ahead of the generic cascade.
	CardPattern *regexp.Regexp
}

// FieldPatternSet is an ordered regex cascade for one field. Patterns are
// tried in order against the original-case text; the first successful match
// wins and later patterns are never consulted.
type FieldPatternSet struct {
	Field    string
	Patterns []*regexp.Regexp
}

// Table is the complete read-only pattern configuration for a parser.
type Table struct {
	Issuers        []IssuerRule
	CardLastFour   FieldPatternSet
	BillingCycle   FieldPatternSet
	PaymentDueDate FieldPatternSet
	TotalAmountDue FieldPatternSet
	// Transaction matches one line of the shape <date> <description> <amount>.
	Transaction *regexp.Regexp
}

// IssuerNames returns the canonical issuer names in priority order.
func (t *Table) IssuerNames() []string {
	names := make([]string, len(t.Issuers))
	for i, rule := range t.Issuers {
		names[i] = rule.Name
	}
	return names
}

// IssuerRule returns the rule for the given issuer name, if present.
func (t *Table) IssuerRule(name string) (IssuerRule, bool) {
	for _, rule := range t.Issuers {
		if rule.Name == name {
			return rule, true
		}
	}
	return IssuerRule{}, false
}

// Default returns the built-in pattern table covering the five supported
// issuers: American Express, Chase, Citibank, HDFC Bank and ICICI Bank.
func Default() *Table {
	return &Table{
		Issuers: []IssuerRule{
			{
				Name:        "American Express",
				Keywords:    []string{"american express", "amex"},
				CardPattern: regexp.MustCompile(`(?i)card[\s]+(?:ending|number)[\s:]*[x*]{10,12}(\d{4})`),
			},
			{
				Name:        "Chase",
				Keywords:    []string{"chase", "chase bank"},
				RequireAny:  []string{"credit card", "visa", "mastercard"},
				CardPattern: regexp.MustCompile(`(?i)account[\s]+number[\s:]*[x*]+(\d{4})`),
			},
			{
				Name:        "Citibank",
				Keywords:    []string{"citibank", "citi"},
				CardPattern: regexp.MustCompile(`(?i)card[\s]+number[\s:]*[x*]+(\d{4})`),
			},
			{
				Name:        "HDFC Bank",
				Keywords:    []string{"hdfc", "hdfc bank"},
				CardPattern: regexp.MustCompile(`(?i)card[\s]+no[\s.:]*[x*]+(\d{4})`),
			},
			{
				Name:        "ICICI Bank",
				Keywords:    []string{"icici", "icici bank"},
				CardPattern: regexp.MustCompile(`(?i)card[\s]+number[\s:]*[x*]+(\d{4})`),
			},
		},
		CardLastFour: FieldPatternSet{
			Field: "card_last_four",
			Patterns: compileAll(
				`(?i)(?:card|account)[\s#:]*(?:ending|number)?[\s#:]*[x*]{4,12}(\d{4})`,
				`(?i)[x*]{4,12}[\s-]?(\d{4})`,
				`(?i)(\d{4})[\s]*(?:card|account)`,
				`(?i)account[\s]+number[\s:]*[x*]+(\d{4})`,
			),
		},
		BillingCycle: FieldPatternSet{
			Field: "billing_cycle",
			Patterns: compileAll(
				`(?i)(?:billing|statement)[\s]+(?:period|cycle|date)[\s:]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})[\s]*(?:to|-|through)[\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
				`(?i)statement[\s]+from[\s:]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})[\s]*(?:to|-|through)[\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
				`(?i)(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})[\s]*(?:to|-|through)[\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
			),
		},
		PaymentDueDate: FieldPatternSet{
			Field: "payment_due_date",
			Patterns: compileAll(
				`(?i)(?:payment|pay)[\s]+due[\s]+(?:date|by)[\s:]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
				`(?i)due[\s]+date[\s:]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
				`(?i)please[\s]+pay[\s]+by[\s:]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`,
			),
		},
		TotalAmountDue: FieldPatternSet{
			Field: "total_amount_due",
			Patterns: compileAll(
				`(?i)(?:total|new|amount)[\s]+(?:balance|due|amount due)[\s:]*(?:Rs\.?|INR|USD|\$)?[\s]*([0-9,]+\.?\d*)`,
				`(?i)(?:amount|payment)[\s]+due[\s:]*(?:Rs\.?|INR|USD|\$)?[\s]*([0-9,]+\.?\d*)`,
				`(?i)(?:minimum|total)[\s]+(?:payment|amount)[\s]+due[\s:]*(?:Rs\.?|INR|USD|\$)?[\s]*([0-9,]+\.?\d*)`,
				`(?i)new[\s]+balance[\s:]*(?:Rs\.?|INR|USD|\$)?[\s]*([0-9,]+\.?\d*)`,
			),
		},
		Transaction: regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})[\s]+([A-Za-z\s*&\-.]+?)[\s]+(?:Rs\.?|INR|USD|\$)?[\s]*([0-9,]+\.?\d{2})`),
	}
}

// compileAll compiles an ordered list of expressions, panicking on invalid
// ones. Only used for the built-in table; user-supplied tables go through
// the YAML loader, which returns errors instead.
func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return compiled
}

// validate checks structural requirements on a compiled table: billing cycle
// patterns must capture two groups, single-value fields at least one.
func (t *Table) validate() error {
	if len(t.Issuers) == 0 {
		return fmt.Errorf("pattern table has no issuer rules")
	}
	for _, set := range []FieldPatternSet{t.CardLastFour, t.PaymentDueDate, t.TotalAmountDue} {
		for i, re := range set.Patterns {
			if re.NumSubexp() < 1 {
				return fmt.Errorf("%s pattern %d has no capture group", set.Field, i)
			}
		}
	}
	for i, re := range t.BillingCycle.Patterns {
		if re.NumSubexp() < 2 {
			return fmt.Errorf("billing_cycle pattern %d needs two capture groups", i)
		}
	}
	if t.Transaction == nil || t.Transaction.NumSubexp() < 3 {
		return fmt.Errorf("transaction pattern needs three capture groups")
	}
	return nil
}
