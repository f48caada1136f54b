package errors

import (
	"errors"
	"fmt"
)

const (
	ErrInternalError   = ErrorType("internal error")
	ErrNotFound        = ErrorType("not found")
	ErrInvalidArgument = ErrorType("invalid argument")
	ErrFailedPrecond   = ErrorType("failed precondition")
)

type ErrorType string

func (e ErrorType) String() string {
	return string(e)
}

// DomainError is the error returned from the domain layers, it keeps the
// entity it originated from so callers can surface actionable messages.
type DomainError struct {
	ErrorType  ErrorType
	Entity     string
	Message    string
	WrappedErr error
}

func NewError(errType ErrorType, entity, msg string) *DomainError {
	return &DomainError{
		ErrorType: errType,
		Entity:    entity,
		Message:   msg,
	}
}

func InvalidArgument(entity, msg string) error {
	return NewError(ErrInvalidArgument, entity, msg)
}

func NotFound(entity, msg string) error {
	return NewError(ErrNotFound, entity, msg)
}

func FailedPrecondition(entity, msg string) error {
	return NewError(ErrFailedPrecond, entity, msg)
}

func InternalError(entity, msg string, err error) error {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// Wrap keeps the cause of an error while annotating it with the entity
// and message of the layer it crossed.
func Wrap(entity, msg string, err error) error {
	return &DomainError{
		ErrorType:  errorType(err),
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// AddErrContext adds context to an existing domain error, any other error
// is treated as internal.
func AddErrContext(err error, entity, msg string) error {
	return &DomainError{
		ErrorType:  errorType(err),
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

func (d *DomainError) Error() string {
	if d.WrappedErr != nil {
		return fmt.Sprintf("%s for entity %s: %s: %s", d.ErrorType, d.Entity, d.Message, d.WrappedErr.Error())
	}
	return fmt.Sprintf("%s for entity %s: %s", d.ErrorType, d.Entity, d.Message)
}

func (d *DomainError) Unwrap() error {
	return d.WrappedErr
}

func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

func errorType(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType
	}
	return ErrInternalError
}

// MultiError collects errors across a loop while preserving each message.
type MultiError struct {
	msg    string
	Errors []error
}

func NewMultiError(msg string) *MultiError {
	return &MultiError{msg: msg}
}

func (m *MultiError) Append(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

func (m *MultiError) ToErr() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

func (m *MultiError) Error() string {
	msg := m.msg + ":"
	for _, err := range m.Errors {
		msg += "\n " + err.Error()
	}
	return msg
}
