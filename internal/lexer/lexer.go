// Package lexer converts Jack source text into tokens.
//
// Comments are stripped before classification: block comments are delimited
// by "/*" and "*/" and do not nest, line comments run from "//" to the end of
// the line. A quoted string is scanned as a single unit, so whitespace and
// comment markers inside it are preserved. Any other run of characters is
// split on whitespace and on the single-character symbols of the language.
//
// A lexeme is classified with the following precedence: keyword, symbol,
// integer constant, string constant, identifier. A lexeme matching none of
// these is a lexical error.
package lexer

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/deepnoodle-ai/jackc/errors"
	"github.com/deepnoodle-ai/jackc/token"
)

// Lexer scans tokens from a source string, one at a time.
type Lexer struct {
	input     string
	file      string
	pos       int // byte offset of the next character
	line      int // 0-indexed line number
	lineStart int // byte offset of the start of the current line
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithFile sets the filename reported in token positions and errors.
func WithFile(file string) Option {
	return func(l *Lexer) {
		l.file = file
	}
}

// New returns a Lexer for the given input.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Position returns the position of the next unread character.
func (l *Lexer) Position() token.Position {
	return token.Position{
		Char:   l.pos,
		Line:   l.line,
		Column: l.pos - l.lineStart,
		File:   l.file,
	}
}

// Location converts a token position into an error location that includes
// the text of the source line.
func (l *Lexer) Location(pos token.Position) errors.SourceLocation {
	return errors.SourceLocation{
		Filename: l.file,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   SourceLine(l.input, pos.Line),
	}
}

// Next returns the next token. It returns io.EOF once the input is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}
	if l.pos >= len(l.input) {
		return token.Token{}, io.EOF
	}
	start := l.Position()
	ch := l.input[l.pos]
	switch {
	case ch == '"':
		return l.readString(start)
	case token.IsSymbol(ch):
		l.advance()
		return token.Token{Kind: token.Symbol, Literal: string(ch), Position: start}, nil
	default:
		for l.pos < len(l.input) && !isDelimiter(l.input[l.pos]) {
			l.advance()
		}
		return l.classify(l.input[start.Char:l.pos], start)
	}
}

func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.lineStart = l.pos + 1
	}
	l.pos++
}

func (l *Lexer) peekIs(offset int, ch byte) bool {
	i := l.pos + offset
	return i < len(l.input) && l.input[i] == ch
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for l.pos < len(l.input) {
		switch {
		case isSpace(l.input[l.pos]):
			l.advance()
		case l.peekIs(0, '/') && l.peekIs(1, '/'):
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
		case l.peekIs(0, '/') && l.peekIs(1, '*'):
			start := l.Position()
			l.advance()
			l.advance()
			for {
				if l.pos >= len(l.input) {
					return errors.New(errors.LexicalError, l.Location(start), "unterminated block comment").
						WithCode(errors.E1003)
				}
				if l.peekIs(0, '*') && l.peekIs(1, '/') {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) readString(start token.Position) (token.Token, error) {
	l.advance() // opening quote
	begin := l.pos
	for {
		if l.pos >= len(l.input) || l.input[l.pos] == '\n' {
			return token.Token{}, errors.New(errors.LexicalError, l.Location(start), "unterminated string constant").
				WithCode(errors.E1002)
		}
		if l.input[l.pos] == '"' {
			break
		}
		l.advance()
	}
	literal := l.input[begin:l.pos]
	if err := l.checkChars(literal, start); err != nil {
		return token.Token{}, err
	}
	l.advance() // closing quote
	return token.Token{Kind: token.StringConstant, Literal: literal, Position: start}, nil
}

// checkChars rejects string contents whose characters cannot be pushed as
// integer constants.
func (l *Lexer) checkChars(literal string, start token.Position) error {
	for i, r := range literal {
		switch {
		case r == utf8.RuneError && !strings.HasPrefix(literal[i:], string(utf8.RuneError)):
			return errors.Errorf(errors.LexicalError, l.Location(start),
				"invalid UTF-8 in string constant at byte %d", i).WithCode(errors.E1005)
		case r > token.MaxInt:
			return errors.Errorf(errors.LexicalError, l.Location(start),
				"character %q in string constant out of range [0, %d]", r, token.MaxInt).WithCode(errors.E1005)
		}
	}
	return nil
}

// classify assigns a kind to a lexeme that is neither a symbol nor a quoted
// string.
func (l *Lexer) classify(lexeme string, pos token.Position) (token.Token, error) {
	tok := token.Token{Literal: lexeme, Position: pos}
	switch {
	case token.IsKeyword(lexeme):
		tok.Kind = token.Keyword
	case isDigits(lexeme):
		value, err := strconv.Atoi(lexeme)
		if err != nil || value > token.MaxInt {
			return token.Token{}, errors.Errorf(errors.LexicalError, l.Location(pos),
				"integer constant %s out of range [0, %d]", lexeme, token.MaxInt).WithCode(errors.E1004)
		}
		tok.Kind = token.IntegerConstant
	case isIdentifier(lexeme):
		tok.Kind = token.Identifier
	default:
		return token.Token{}, errors.Errorf(errors.LexicalError, l.Location(pos), "unrecognized lexeme %q", lexeme).
			WithCode(errors.E1001)
	}
	return tok, nil
}

// SourceLine returns the text of the 0-indexed line of input, without its
// line terminator.
func SourceLine(input string, line int) string {
	for i := 0; i < line; i++ {
		idx := strings.IndexByte(input, '\n')
		if idx < 0 {
			return ""
		}
		input = input[idx+1:]
	}
	if idx := strings.IndexByte(input, '\n'); idx >= 0 {
		input = input[:idx]
	}
	return strings.TrimRight(input, "\r")
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDelimiter(ch byte) bool {
	return isSpace(ch) || ch == '"' || token.IsSymbol(ch)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func isIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !isLetter(ch) && !isDigit(ch) {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
