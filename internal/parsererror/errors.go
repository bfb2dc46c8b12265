// Package parsererror defines the structured error types used by the
// statement extraction pipeline. Only text acquisition can fail; a field
// that does not match any pattern is a normal outcome, not an error.
package parsererror

import "fmt"

// ExtractionError represents a failure to obtain usable text from the
// upstream document source. It aborts the parse entirely; no partial
// result is produced.
type ExtractionError struct {
	Source string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text extraction failed for %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("text extraction failed for %s: %s", e.Source, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not
// conform to the expected document format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ValidationError represents a file-level validation failure, such as a
// missing file or one exceeding the size limit.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
