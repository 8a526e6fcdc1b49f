package protoreg

import "fmt"

// ErrorCode represents a machine-readable registration error code.
type ErrorCode string

const (
	CodeMissingReturnType  ErrorCode = "missing_return_type"
	CodeUnknownReturnType  ErrorCode = "unknown_return_type"
	CodeUnknownLookupField ErrorCode = "unknown_lookup_field"
	CodeUnknownSerializer  ErrorCode = "unknown_serializer"
	CodeInvalidAction      ErrorCode = "invalid_action"
	CodeUnsupportedMethod  ErrorCode = "unsupported_method"
)

// Error is a registration error. It identifies the app, service,
// method/action, and field involved so failures can be acted on without
// re-running with extra instrumentation.
type Error struct {
	Code    ErrorCode
	Message string

	// Context of the failed registration. Empty fields were not applicable.
	App     string
	Service string
	Method  string
	Field   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new registration error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new registration error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// In returns a copy of the error annotated with registration context.
// Empty arguments leave the corresponding field unchanged, so call sites
// can layer context as an error travels up the registration stack.
func (e *Error) In(app, service, method, field string) *Error {
	out := *e
	if app != "" {
		out.App = app
	}
	if service != "" {
		out.Service = service
	}
	if method != "" {
		out.Method = method
	}
	if field != "" {
		out.Field = field
	}
	return &out
}
