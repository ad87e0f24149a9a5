package errors

import "fmt"

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "price must be positive".
	Message string

	// Code (required) is the machine-readable error code string.
	// E.g. "validation_error".
	Code string

	// Field (optional) is the related field the error occurred on, if any.
	Field string
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// Error is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(message, field string) *ErrorDetails {
	return NewErrorDetails(message, string(ValidationError), field)
}

// NewMissingTimezone creates a validation error for zone-less datetime input.
func NewMissingTimezone(field string) *ErrorDetails {
	return NewErrorDetails(
		"datetime must be timezone-aware (use 'Z' suffix for UTC or provide an offset)",
		string(MissingTimezone),
		field,
	)
}

// NewNotFound creates a not-found error for a missing (symbol, time) key.
func NewNotFound(message string) *ErrorDetails {
	return NewErrorDetails(message, string(NotFound), "")
}

// NewRangeTooLarge creates a range error carrying the requested and allowed spans.
func NewRangeTooLarge(requested, allowed string) *ErrorDetails {
	return NewErrorDetails(
		fmt.Sprintf("time range too large: requested %s, maximum %s", requested, allowed),
		string(RangeTooLarge),
		"range",
	)
}

// ErrorCodeEquals checks whether a given `error` has a specific code.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	errDetails, ok := err.(*ErrorDetails)
	if !ok {
		return false
	}
	return errDetails.Code == string(code)
}

// CodeOf extracts the error code from err, or GeneralInternalError when
// no *ErrorDetails is found in the chain.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if details, ok := err.(*ErrorDetails); ok {
			return ErrorCode(details.Code)
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
	}
	return GeneralInternalError
}
