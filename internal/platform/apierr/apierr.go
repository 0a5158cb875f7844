package apierr

import "fmt"

// Error codes for the comparator resolution and materialization paths.
const (
	CodeMissingParams   = "missing_parameters"
	CodeTypeNotFound    = "type_not_found"
	CodeItemsNotFound   = "items_not_found"
	CodeExactlyTwoItems = "exactly_two_items_required"
	CodeCreateFailed    = "page_create_failed"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}
