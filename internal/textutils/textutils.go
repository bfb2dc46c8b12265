// Package textutils provides small text extraction helpers shared across
// the application: contact details and card-number masking.
package textutils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{10}`),
	regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
}

// ExtractEmail returns the first email address found in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-number-shaped token found in text,
// trying the more specific patterns first.
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// MaskCardNumber renders a card number with everything but the last four
// digits hidden. Inputs shorter than four characters mask entirely.
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename strips characters unsafe in file names and replaces
// spaces with underscores.
func SanitizeFilename(filename string) string {
	sanitized := unsafeFilenameChars.ReplaceAllString(filename, "")
	return strings.ReplaceAll(sanitized, " ", "_")
}
