package serrors

import "fmt"

// Base is a coded error that crosses the API boundary. Code is stable and
// machine-readable, Message is for humans, Details is optional context.
type Base struct {
	Code    string
	Message string
	Details string
}

func NewError(code, message, details string) *Base {
	return &Base{Code: code, Message: message, Details: details}
}

func (e *Base) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy of the error carrying the given details, so the
// package-level sentinel values stay immutable.
func (e *Base) WithDetails(format string, args ...any) *Base {
	return &Base{Code: e.Code, Message: e.Message, Details: fmt.Sprintf(format, args...)}
}

func (e *Base) Is(target error) bool {
	t, ok := target.(*Base)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
