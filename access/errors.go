package access

import "fmt"

// Operations recorded in Error.Op.
const (
	// OpOpen is the driver lookup and connection setup phase.
	OpOpen = "open"
	// OpQuery is the query execution phase.
	OpQuery = "query"
	// OpConvert is the result set to CSV conversion phase.
	OpConvert = "convert"
)

// Error records a failed access operation. Source is the data source name;
// credentials never appear in an access error.
type Error struct {
	Op     string // failing operation, one of OpOpen, OpQuery, OpConvert
	Source string // data source name
	Err    error  // underlying error
}

// Error returns the error string.
func (e *Error) Error() string {
	return fmt.Sprintf("access: %s %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
