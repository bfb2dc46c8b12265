package common

import (
	"time"

	"rkapoor/cardstmt/internal/currencyutils"
	"rkapoor/cardstmt/internal/dateutils"
	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/models"
	"rkapoor/cardstmt/internal/textutils"
)

// logSummary reports the extracted fields in human-readable form alongside
// the serialized result: masked card digits, the amount with its currency
// symbol, how many days remain until the payment is due, and any contact
// details found in the statement text.
func (p *Pipeline) logSummary(text string, result models.ParseResult) {
	if result.CardLastFour != nil {
		p.Log.Info("Card on file",
			logging.Field{Key: logging.FieldMaskedCard, Value: textutils.MaskCardNumber(*result.CardLastFour)})
	}

	if result.TotalAmountDue != nil {
		if amount, err := currencyutils.CleanAmount(*result.TotalAmountDue); err == nil {
			p.Log.Info("Total amount due",
				logging.Field{Key: logging.FieldAmount, Value: currencyutils.FormatWithSymbol(amount, "INR")})
		}
	}

	if result.PaymentDueDate != nil {
		fields := []logging.Field{{Key: logging.FieldDueDate, Value: *result.PaymentDueDate}}
		if days, err := dateutils.DaysUntil(*result.PaymentDueDate, time.Now()); err == nil {
			fields = append(fields, logging.Field{Key: logging.FieldDaysUntilDue, Value: days})
		}
		p.Log.Info("Payment due", fields...)
	}

	email := textutils.ExtractEmail(text)
	phone := textutils.ExtractPhone(text)
	if email != "" || phone != "" {
		p.Log.Info("Statement contact details",
			logging.Field{Key: logging.FieldEmail, Value: email},
			logging.Field{Key: logging.FieldPhone, Value: phone})
	}
}
