package pdftext

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"rkapoor/cardstmt/internal/logging"
	"rkapoor/cardstmt/internal/parsererror"
)

// PDFExtractor is the production Extractor. It reads PDFs with the
// ledongthuc/pdf library and, when the library cannot produce readable
// text (scanned pages, exotic font encodings), optionally falls back to
// the external pdftotext command from poppler-utils.
type PDFExtractor struct {
	logger            logging.Logger
	pdftotextFallback bool
}

// ExtractorOption configures a PDFExtractor.
type ExtractorOption func(*PDFExtractor)

// WithExtractorLogger sets the logger used during extraction.
func WithExtractorLogger(logger logging.Logger) ExtractorOption {
	return func(e *PDFExtractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPdftotextFallback toggles the external pdftotext fallback.
func WithPdftotextFallback(enabled bool) ExtractorOption {
	return func(e *PDFExtractor) {
		e.pdftotextFallback = enabled
	}
}

// NewPDFExtractor creates a PDFExtractor with the fallback enabled.
func NewPDFExtractor(opts ...ExtractorOption) *PDFExtractor {
	e := &PDFExtractor{
		logger:            logging.NewLogrusAdapter("info", "text"),
		pdftotextFallback: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText extracts the full text of the PDF, pages concatenated in
// document order. Failure to produce readable text is an ExtractionError:
// the one fatal condition of the pipeline.
func (e *PDFExtractor) ExtractText(pdfPath string) (string, error) {
	text, libErr := e.extractWithLibrary(pdfPath)
	if libErr == nil && isReadableText(text) {
		return text, nil
	}

	if e.pdftotextFallback {
		e.logger.WithError(libErr).Debug("PDF library extraction unusable, trying pdftotext",
			logging.Field{Key: logging.FieldFile, Value: pdfPath})
		if text, err := extractWithPdftotext(pdfPath); err == nil && isReadableText(text) {
			return text, nil
		}
	}

	return "", &parsererror.ExtractionError{
		Source: pdfPath,
		Reason: "no readable text could be extracted; the file may be image-based or use undecodable font encodings",
		Err:    libErr,
	}
}

// extractWithLibrary reads every page with ledongthuc/pdf. The library can
// panic on malformed documents, so the panic is converted to an error.
func (e *PDFExtractor) extractWithLibrary(pdfPath string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			e.logger.WithError(closeErr).Warn("Failed to close PDF file",
				logging.Field{Key: logging.FieldFile, Value: pdfPath})
		}
	}()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font, len(fontNames))
		for _, name := range fontNames {
			font := page.Font(name)
			fonts[name] = &font
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			e.logger.WithError(err).Debug("Skipping unreadable page",
				logging.Field{Key: logging.FieldPages, Value: i})
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	e.logger.Debug("Extracted text from PDF",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldPages, Value: len(pages)})

	return strings.Join(pages, "\n"), nil
}

// extractWithPdftotext shells out to pdftotext with layout preservation.
func extractWithPdftotext(pdfPath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	tempFile := pdfPath + ".txt"
	cmd := exec.Command("pdftotext", "-layout", pdfPath, tempFile)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}

	output, err := os.ReadFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}

	_ = os.Remove(tempFile)

	return string(output), nil
}

// isReadableText checks that extracted text is long enough and is mostly
// printable ASCII. Identity-encoded fonts produce text that decodes into
// garbage; a strict ASCII ratio catches that better than unicode classes.
func isReadableText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 50 {
		return false
	}

	total := 0
	readable := 0
	for _, r := range trimmed {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(`.,-/:;()'"$%&@#!?+=*₹£€`, r) {
			readable++
		}
	}

	return float64(readable)/float64(total) > 0.6
}
