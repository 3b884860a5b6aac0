package event

import (
	"errors"
	"fmt"
)

// Code categorizes store and command failures.
type Code string

const (
	// CodeInvalidName indicates an empty or malformed event name.
	CodeInvalidName Code = "INVALID_NAME"

	// CodeDuplicateEvent indicates add on a name that already exists.
	CodeDuplicateEvent Code = "DUPLICATE_EVENT"

	// CodeNotFound indicates did/query/remove on a name never added.
	CodeNotFound Code = "EVENT_NOT_FOUND"

	// CodeCorruptStore indicates the persisted store file could not be parsed.
	CodeCorruptStore Code = "CORRUPT_STORE"

	// CodeIOFailure indicates a filesystem read or write failed.
	CodeIOFailure Code = "IO_FAILURE"
)

// Error is the structured error returned by store operations.
//
// Callers match on Code via the Is* predicates rather than on message text.
type Error struct {
	Code Code

	// Name is the event name involved, if any.
	Name string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause (optional).
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidName creates an Error for a malformed event name.
func NewInvalidName(name, reason string) *Error {
	return &Error{Code: CodeInvalidName, Name: name, Message: reason}
}

// NewDuplicate creates an Error for add on an existing name.
func NewDuplicate(name string) *Error {
	return &Error{
		Code:    CodeDuplicateEvent,
		Name:    name,
		Message: fmt.Sprintf("event %q already exists (use 'did' to update it)", name),
	}
}

// NewNotFound creates an Error for an operation on a missing name.
func NewNotFound(name string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Name:    name,
		Message: fmt.Sprintf("event %q not found (use 'add' to create it)", name),
	}
}

// NewCorruptStore creates an Error for an unparseable store file.
func NewCorruptStore(path string, err error) *Error {
	return &Error{
		Code:    CodeCorruptStore,
		Message: fmt.Sprintf("store file %s is not valid", path),
		Err:     err,
	}
}

// NewIOFailure wraps a filesystem error.
func NewIOFailure(op string, err error) *Error {
	return &Error{Code: CodeIOFailure, Message: op, Err: err}
}

// CodeOf extracts the Code from an error chain.
// Returns an empty Code if the chain contains no *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNotFound returns true if the error is an EVENT_NOT_FOUND error.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsDuplicate returns true if the error is a DUPLICATE_EVENT error.
func IsDuplicate(err error) bool {
	return CodeOf(err) == CodeDuplicateEvent
}

// IsInvalidName returns true if the error is an INVALID_NAME error.
func IsInvalidName(err error) bool {
	return CodeOf(err) == CodeInvalidName
}

// IsCorruptStore returns true if the error is a CORRUPT_STORE error.
func IsCorruptStore(err error) bool {
	return CodeOf(err) == CodeCorruptStore
}
