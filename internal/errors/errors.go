package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeMalformedURL ErrorType = "MALFORMED_URL"
	ErrTypeTransport    ErrorType = "TRANSPORT"
	ErrTypeAbsent       ErrorType = "ABSENT"
	ErrTypePersist      ErrorType = "PERSIST"
	ErrTypeInternal     ErrorType = "INTERNAL"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func MalformedURL(message string, err error) *DomainError {
	return New(ErrTypeMalformedURL, message, err)
}

func Transport(message string, err error) *DomainError {
	return New(ErrTypeTransport, message, err)
}

func Absent(message string, err error) *DomainError {
	return New(ErrTypeAbsent, message, err)
}

func Persist(message string, err error) *DomainError {
	return New(ErrTypePersist, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

// IsType reports whether err is (or wraps) a DomainError of the given type.
func IsType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type == errType
	}
	return false
}

// IsAbsent reports whether err marks a posting that does not exist or is
// closed, which callers treat as "no record" rather than a failure.
func IsAbsent(err error) bool {
	return IsType(err, ErrTypeAbsent)
}
