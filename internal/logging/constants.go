package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the extraction engine
// and the commands, making logs easier to filter and analyze.
const (
	FieldFile       = "file_path"
	FieldIssuer     = "issuer"
	FieldField      = "field"
	FieldPattern    = "pattern_index"
	FieldCount      = "count"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldPages      = "pages"

	FieldMaskedCard   = "masked_card"
	FieldAmount       = "amount"
	FieldDueDate      = "due_date"
	FieldDaysUntilDue = "days_until_due"
	FieldFileSize     = "file_size"
	FieldEmail        = "email"
	FieldPhone        = "phone"
)
