package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a failed aggregate write. Callers branch on it; HTTP maps it to a status.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeConflict           ErrorCode = "conflict"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Error is returned by every aggregate write.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	// Fields names the columns involved in a conflict, when the store reported them.
	Fields []string
	Cause  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap tags err with code, keeping it as the cause.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// WrapConflict wraps err as a conflict on the given fields.
func WrapConflict(op string, fields []string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    CodeConflict,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(err.Error()),
		Fields:  fields,
		Cause:   err,
	}
}

func asError(err error) *Error {
	var aggErr *Error
	if errors.As(err, &aggErr) {
		return aggErr
	}
	return nil
}

// IsCode reports whether err carries code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	return code != "" && CodeOf(err) == code
}

// CodeOf returns err's aggregate code, or "" for errors that never passed through MapError.
func CodeOf(err error) ErrorCode {
	if aggErr := asError(err); aggErr != nil {
		return aggErr.Code
	}
	return ""
}

// FieldsOf returns the conflicting columns carried by err.
func FieldsOf(err error) []string {
	if aggErr := asError(err); aggErr != nil {
		return aggErr.Fields
	}
	return nil
}
