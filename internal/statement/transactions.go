package statement

import (
	"strings"

	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
)

// extractTransactions scans the text for lines of the shape
// <date> <description> <amount> and collects them in first-seen order up to
// the configured cap. Matches are not deduplicated or sorted.
func (p *Parser) extractTransactions(doc document) []models.Transaction {
	matches := p.table.Transaction.FindAllStringSubmatch(doc.original, p.maxTransactions)

	transactions := make([]models.Transaction, 0, len(matches))
	for _, m := range matches {
		transactions = append(transactions, models.Transaction{
			Date:        m[1],
			Description: strings.TrimSpace(m[2]),
			Amount:      strings.ReplaceAll(m[3], ",", ""),
		})
	}

	p.logger.Debug("Collected transaction sample",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions
}
