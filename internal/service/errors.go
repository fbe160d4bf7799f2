package service

import "fmt"

// ValidationError marks a caller mistake: malformed input, unknown enum
// value, oversized upload. The API layer maps it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
