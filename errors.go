package aoc

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	Unknown Kind = iota
	InvalidArgument
	IO
	Parse
	Logic
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case IO:
		return "io"
	case Parse:
		return "parse"
	case Logic:
		return "logic"
	}
	return "unknown"
}

// Error is an error tagged with a Kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// Errorf formats an error of kind k. A %w verb in format is unwrappable.
func Errorf(k Kind, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &Error{Kind: k, Msg: err.Error(), Err: errors.Unwrap(err)}
}

// Parsef returns a Parse error.
func Parsef(format string, args ...any) error {
	return Errorf(Parse, format, args...)
}

// Logicf returns a Logic error.
func Logicf(format string, args ...any) error {
	return Errorf(Logic, format, args...)
}

// AtLine prefixes err with a 1-based line number, keeping its Kind.
func AtLine(n int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("line %d: %w", n, err)
}

// KindOf reports the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
