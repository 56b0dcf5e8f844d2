package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateProgram is returned when a program name is defined twice.
	ErrDuplicateProgram = errors.New("duplicate program")
	// ErrUnknownProgram is returned when querying a program that was never defined.
	ErrUnknownProgram = errors.New("unknown program")
)

// Error describes a rejected request. It matches both its Kind sentinel and
// the underlying registry error with errors.Is.
type Error struct {
	Kind error
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func duplicateProgram(name string, cause error) error {
	return &Error{Kind: ErrDuplicateProgram, Name: name, Err: cause}
}

func unknownProgram(name string, cause error) error {
	return &Error{Kind: ErrUnknownProgram, Name: name, Err: cause}
}
