package statement

import (
	"strings"

	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
)

// identifyIssuer runs the strict priority cascade over the lowercase text.
// Rules are evaluated issuer-by-issuer in declaration order and the first
// rule whose condition holds terminates the cascade. Declaration order
// matters: a statement that merely mentions another bank in a disclaimer
// must not shadow the actual issuer.
func (p *Parser) identifyIssuer(doc document) string {
	for _, rule := range p.table.Issuers {
		if !containsAny(doc.lower, rule.Keywords) {
			continue
		}
		if len(rule.RequireAny) > 0 && !containsAny(doc.lower, rule.RequireAny) {
			continue
		}
		p.logger.Debug("Identified issuer",
			logging.Field{Key: logging.FieldIssuer, Value: rule.Name})
		return rule.Name
	}

	p.logger.Debug("No issuer keywords matched")
	return models.IssuerUnknown
}

// containsAny reports whether any of the lowercase keywords occurs in text.
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
