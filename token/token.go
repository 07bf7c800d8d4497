// Package token defines the keywords, symbols and token kinds of the Jack
// language.
package token

import "strings"

// Kind classifies a token.
type Kind int

const (
	// Invalid is the zero Kind. It is reported when no token is available.
	Invalid Kind = iota
	Keyword
	Symbol
	IntegerConstant
	StringConstant
	Identifier
)

// String returns the name of the kind as used in token listings.
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	case IntegerConstant:
		return "integerConstant"
	case StringConstant:
		return "stringConstant"
	case Identifier:
		return "identifier"
	default:
		return "invalid"
	}
}

// MaxInt is the largest integer constant representable in a machine word.
const MaxInt = 32767

// Position points to a particular location in an input string.
type Position struct {
	Char   int    // byte offset within the file
	Line   int    // 0-indexed line number
	Column int    // 0-indexed column number
	File   string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Token represents one token lexed from the input source code. For string
// constants the Literal holds the text between the quotes.
type Token struct {
	Kind     Kind
	Literal  string
	Position Position
}

// Is reports whether the token has the given kind and literal.
func (t Token) Is(kind Kind, literal string) bool {
	return t.Kind == kind && t.Literal == literal
}

// Describe returns a short human readable description of the token, used in
// diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case Invalid:
		return "end of input"
	case StringConstant:
		return "string \"" + t.Literal + "\""
	default:
		return t.Kind.String() + " '" + t.Literal + "'"
	}
}

// Keywords
const (
	CLASS       = "class"
	CONSTRUCTOR = "constructor"
	FUNCTION    = "function"
	METHOD      = "method"
	FIELD       = "field"
	STATIC      = "static"
	VAR         = "var"
	INT         = "int"
	CHAR        = "char"
	BOOLEAN     = "boolean"
	VOID        = "void"
	TRUE        = "true"
	FALSE       = "false"
	NULL        = "null"
	THIS        = "this"
	LET         = "let"
	DO          = "do"
	IF          = "if"
	ELSE        = "else"
	WHILE       = "while"
	RETURN      = "return"
)

// Symbols
const (
	LBRACE    = "{"
	RBRACE    = "}"
	LPAREN    = "("
	RPAREN    = ")"
	LBRACKET  = "["
	RBRACKET  = "]"
	PERIOD    = "."
	COMMA     = ","
	SEMICOLON = ";"
	PLUS      = "+"
	MINUS     = "-"
	ASTERISK  = "*"
	SLASH     = "/"
	AMPERSAND = "&"
	PIPE      = "|"
	LT        = "<"
	GT        = ">"
	ASSIGN    = "="
	TILDE     = "~"
)

// SymbolChars holds every single-character symbol of the language.
const SymbolChars = "{}()[].,;+-*/&|<>=~"

var keywords = map[string]bool{
	CLASS:       true,
	CONSTRUCTOR: true,
	FUNCTION:    true,
	METHOD:      true,
	FIELD:       true,
	STATIC:      true,
	VAR:         true,
	INT:         true,
	CHAR:        true,
	BOOLEAN:     true,
	VOID:        true,
	TRUE:        true,
	FALSE:       true,
	NULL:        true,
	THIS:        true,
	LET:         true,
	DO:          true,
	IF:          true,
	ELSE:        true,
	WHILE:       true,
	RETURN:      true,
}

// IsKeyword reports whether s is a reserved keyword.
func IsKeyword(s string) bool {
	return keywords[s]
}

// Keywords returns all reserved keywords.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for k := range keywords {
		names = append(names, k)
	}
	return names
}

// IsSymbol reports whether ch is a symbol character.
func IsSymbol(ch byte) bool {
	return strings.IndexByte(SymbolChars, ch) >= 0
}
