// Package errors provides structured error values for the Motion library.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindParsing indicates a descriptor parsing failure.
	KindParsing
	// KindConfig indicates an invalid or incompatible configuration.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Motion library.
type Error struct {
	// Op is the operation that failed (e.g., "timeline.Parse").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to parse a descriptor field.
type ParseError struct {
	// Field is the descriptor field that failed to parse.
	Field string
	// Got is the offending value.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: got %q", e.Field, fmt.Sprint(e.Got))
}
