package statement

import (
	"strings"

	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
	"rkapoor/cardstmt/internal/patterns"
)

// extractCardLastFour returns the last four card digits. When the identified
// issuer declares its own card pattern it is tried first; the generic
// cascade is the fallback, so extraction still works for Unknown issuers.
func (p *Parser) extractCardLastFour(doc document, issuer string) *string {
	if rule, ok := p.table.IssuerRule(issuer); ok && rule.CardPattern != nil {
		if m := rule.CardPattern.FindStringSubmatch(doc.original); m != nil && m[1] != "" {
			p.logger.Debug("Card digits matched issuer-specific pattern",
				logging.Field{Key: logging.FieldIssuer, Value: issuer})
			return models.StringPtr(m[1])
		}
	}
	return p.extractFirstGroup(p.table.CardLastFour, doc)
}

// extractBillingCycle returns the statement period. The field is
// all-or-nothing: a pattern only succeeds when both capture groups are
// non-empty, and no pattern succeeding means the whole cycle is absent.
func (p *Parser) extractBillingCycle(doc document) *models.BillingCycle {
	for i, re := range p.table.BillingCycle.Patterns {
		m := re.FindStringSubmatch(doc.original)
		if m == nil || m[1] == "" || m[2] == "" {
			continue
		}
		p.logger.Debug("Field extracted",
			logging.Field{Key: logging.FieldField, Value: p.table.BillingCycle.Field},
			logging.Field{Key: logging.FieldPattern, Value: i})
		return &models.BillingCycle{
			StartDate: m[1],
			EndDate:   m[2],
		}
	}
	return nil
}

// extractPaymentDueDate returns the due date as captured, unnormalized.
func (p *Parser) extractPaymentDueDate(doc document) *string {
	return p.extractFirstGroup(p.table.PaymentDueDate, doc)
}

// extractTotalAmountDue returns the amount with thousands separators
// stripped. Currency symbols are consumed by the patterns and not captured.
func (p *Parser) extractTotalAmountDue(doc document) *string {
	value := p.extractFirstGroup(p.table.TotalAmountDue, doc)
	if value == nil {
		return nil
	}
	return models.StringPtr(strings.ReplaceAll(*value, ",", ""))
}

// extractFirstGroup tries each pattern of the set in order against the
// original-case text and returns the first match's capture group. The first
// success is trusted unconditionally: patterns are ordered most-specific
// first and later alternatives are never consulted.
func (p *Parser) extractFirstGroup(set patterns.FieldPatternSet, doc document) *string {
	for i, re := range set.Patterns {
		m := re.FindStringSubmatch(doc.original)
		if m == nil || m[1] == "" {
			continue
		}
		p.logger.Debug("Field extracted",
			logging.Field{Key: logging.FieldField, Value: set.Field},
			logging.Field{Key: logging.FieldPattern, Value: i})
		return models.StringPtr(m[1])
	}
	p.logger.Debug("Field not found",
		logging.Field{Key: logging.FieldField, Value: set.Field})
	return nil
}
