package service

type ErrorCode string

const (
	ErrorCodeInvalidBody        ErrorCode = "INVALID_BODY"
	ErrorCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrorCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrorCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeUnspecified        ErrorCode = "UNSPECIFIED"
)

// NonFieldErrors keys errors that belong to the payload as a whole.
const NonFieldErrors = "non_field_errors"

type Error struct {
	Code    ErrorCode           `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewValidationError builds a VALIDATION_FAILED error keyed by field name.
func NewValidationError(fields map[string][]string) *Error {
	return &Error{
		Code:    ErrorCodeValidationFailed,
		Message: "validation failed",
		Fields:  fields,
	}
}

func NewFieldError(field, message string) *Error {
	return NewValidationError(map[string][]string{field: {message}})
}

// Merge folds the field errors of other into e. Both must be validation errors.
func (e *Error) Merge(other *Error) *Error {
	if e == nil {
		return other
	}
	if other == nil {
		return e
	}

	merged := NewValidationError(make(map[string][]string, len(e.Fields)+len(other.Fields)))
	for _, src := range []*Error{e, other} {
		for field, msgs := range src.Fields {
			merged.Fields[field] = append(merged.Fields[field], msgs...)
		}
	}
	return merged
}

func (e *Error) Error() string {
	return e.Message
}
