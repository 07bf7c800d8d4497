package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lexical errors
//   - E2xxx: Syntax errors
//   - E3xxx: Symbol errors
type ErrorCode string

const (
	// Lexical errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unrecognized lexeme
	E1002 ErrorCode = "E1002" // Unterminated string literal
	E1003 ErrorCode = "E1003" // Unterminated comment
	E1004 ErrorCode = "E1004" // Integer constant out of range
	E1005 ErrorCode = "E1005" // Invalid character in string constant

	// Syntax errors (E2xxx)
	E2001 ErrorCode = "E2001" // Unexpected token
	E2002 ErrorCode = "E2002" // Unexpected end of input
	E2003 ErrorCode = "E2003" // Expected identifier
	E2004 ErrorCode = "E2004" // Expected type
	E2005 ErrorCode = "E2005" // Token kind mismatch

	// Symbol errors (E3xxx)
	E3001 ErrorCode = "E3001" // Duplicate declaration
	E3002 ErrorCode = "E3002" // Undefined variable
	E3003 ErrorCode = "E3003" // Unknown receiver type
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unrecognized lexeme",
	E1002: "unterminated string literal",
	E1003: "unterminated comment",
	E1004: "integer constant out of range",
	E1005: "invalid character in string constant",

	E2001: "unexpected token",
	E2002: "unexpected end of input",
	E2003: "expected identifier",
	E2004: "expected type",
	E2005: "token kind mismatch",

	E3001: "duplicate declaration",
	E3002: "undefined variable",
	E3003: "unknown receiver type",
}

var defaultCodes = map[Kind]ErrorCode{
	LexicalError:        E1001,
	TypeMismatch:        E2005,
	SyntaxError:         E2001,
	DuplicateSymbol:     E3001,
	UnresolvedReference: E3002,
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}
