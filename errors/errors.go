// Package errors defines the error types reported while compiling Jack source.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind categorizes a compile error.
type Kind int

const (
	// LexicalError indicates an unrecognized lexeme or a malformed literal.
	LexicalError Kind = iota + 1
	// TypeMismatch indicates a token accessor was used on a token of another
	// kind. It signals a bug in the caller and is always fatal.
	TypeMismatch
	// SyntaxError indicates the token stream does not match the grammar.
	SyntaxError
	// DuplicateSymbol indicates a name declared twice in the same scope.
	DuplicateSymbol
	// UnresolvedReference indicates a name that could not be resolved.
	UnresolvedReference
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case TypeMismatch:
		return "type mismatch"
	case SyntaxError:
		return "syntax error"
	case DuplicateSymbol:
		return "duplicate symbol"
	case UnresolvedReference:
		return "unresolved reference"
	default:
		return "error"
	}
}

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// CompileError is a fatal error raised while compiling one source unit.
type CompileError struct {
	Kind        Kind
	Code        ErrorCode
	Message     string
	Location    SourceLocation
	Suggestions []Suggestion
	Note        string
}

// New returns a CompileError of the given kind, using the default code for
// that kind.
func New(kind Kind, loc SourceLocation, msg string) *CompileError {
	return &CompileError{
		Kind:     kind,
		Code:     defaultCodes[kind],
		Message:  msg,
		Location: loc,
	}
}

// Errorf is like New but formats the message.
func Errorf(kind Kind, loc SourceLocation, format string, args ...any) *CompileError {
	return New(kind, loc, fmt.Sprintf(format, args...))
}

// WithCode overrides the error code and returns the error.
func (e *CompileError) WithCode(code ErrorCode) *CompileError {
	e.Code = code
	return e
}

// WithSuggestions attaches "did you mean" candidates and returns the error.
func (e *CompileError) WithSuggestions(s []Suggestion) *CompileError {
	e.Suggestions = s
	return e
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if !e.Location.IsZero() {
		b.WriteString(" (")
		b.WriteString(e.Location.String())
		b.WriteString(")")
	}
	return b.String()
}

// FriendlyErrorMessage returns a human-friendly error message.
func (e *CompileError) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts to the FormattedError type for display.
func (e *CompileError) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:     e.Code,
		Kind:     e.Kind.String(),
		Message:  e.Message,
		Filename: e.Location.Filename,
		Line:     e.Location.Line,
		Column:   e.Location.Column,
		Note:     e.Note,
	}
	if e.Location.Source != "" {
		fe.SourceLines = []SourceLineEntry{
			{Number: e.Location.Line, Text: e.Location.Source, IsMain: true},
		}
	}
	if len(e.Suggestions) > 0 {
		fe.Hint = FormatSuggestions(e.Suggestions)
	}
	return fe
}

// IsKind reports whether err, or any error it wraps, is a CompileError of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var ce *CompileError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind
}

// As is a convenience wrapper around the standard library errors.As for
// CompileError values.
func As(err error) (*CompileError, bool) {
	var ce *CompileError
	ok := stderrors.As(err, &ce)
	return ce, ok
}
