// Package pdftext converts PDF statements into the plain text the extraction
// engine consumes. Pages are concatenated in document order with a newline
// separator so patterns spanning page boundaries still match.
package pdftext

// Extractor defines the interface for extracting text from PDF files.
// It allows dependency injection and makes callers testable without real
// PDF fixtures.
type Extractor interface {
	// ExtractText extracts the text content of the PDF at the given path,
	// pages concatenated in document order.
	ExtractText(pdfPath string) (string, error)
}

// MockExtractor implements Extractor for testing purposes. It returns
// predefined text or an error instead of reading a file.
type MockExtractor struct {
	Text string
	Err  error
}

// NewMockExtractor creates a MockExtractor with the given canned result.
func NewMockExtractor(text string, err error) *MockExtractor {
	return &MockExtractor{Text: text, Err: err}
}

// ExtractText returns the predefined text or error.
func (e *MockExtractor) ExtractText(pdfPath string) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.Text, nil
}
