package sheet

import "errors"

// User-facing validation failures. The message text is shown as-is.
//
//nolint:staticcheck // messages are displayed verbatim
var (
	ErrAmountRequired  = errors.New("Please enter an amount first")
	ErrEmptyName       = errors.New("Please enter a sheet name.")
	ErrLastItem        = errors.New("At least one row must remain")
	ErrIndexOutOfRange = errors.New("row index out of range")
)
