package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldLine       = "line"
	FieldRecordCode = "record_code"
	FieldRecords    = "records"
	FieldGroups     = "groups"
	FieldAccounts   = "accounts"
	FieldDetails    = "details"
	FieldCurrency   = "currency"
	FieldError      = "error"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
