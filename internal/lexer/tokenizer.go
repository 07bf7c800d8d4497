package lexer

import (
	stderrors "errors"
	"fmt"
	"io"
	"strconv"

	"github.com/deepnoodle-ai/jackc/errors"
	"github.com/deepnoodle-ai/jackc/token"
)

// Tokenizer exposes the tokens of one source unit as an index-addressable
// sequence with a current token. Tokens are lexed on demand and cached, so
// the sequence can be restarted from any index already reached.
type Tokenizer struct {
	lexer  *Lexer
	tokens []token.Token
	index  int
	eof    bool
	err    error
}

// NewTokenizer returns a Tokenizer positioned at the first token of input.
func NewTokenizer(input string, opts ...Option) *Tokenizer {
	t := &Tokenizer{lexer: New(input, opts...)}
	t.fill(0)
	return t
}

// fill lexes tokens until index i is available or the input is exhausted.
// It reports whether index i is available.
func (t *Tokenizer) fill(i int) bool {
	for len(t.tokens) <= i && !t.eof && t.err == nil {
		tok, err := t.lexer.Next()
		if stderrors.Is(err, io.EOF) {
			t.eof = true
			break
		}
		if err != nil {
			t.err = err
			break
		}
		t.tokens = append(t.tokens, tok)
	}
	return i < len(t.tokens)
}

// HasMore reports whether a current token is available.
func (t *Tokenizer) HasMore() bool {
	return t.fill(t.index)
}

// Advance moves to the next token. It is a no-op past the end of input.
func (t *Tokenizer) Advance() {
	if t.HasMore() {
		t.index++
		t.fill(t.index)
	}
}

// Err returns the lexical error that stopped tokenization, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

// Token returns the current token. Past the end of input, a token of kind
// token.Invalid positioned at the end of the scanned input is returned.
func (t *Tokenizer) Token() token.Token {
	if t.fill(t.index) {
		return t.tokens[t.index]
	}
	return token.Token{Position: t.lexer.Position()}
}

// Kind returns the kind of the current token.
func (t *Tokenizer) Kind() token.Kind {
	return t.Token().Kind
}

// Index returns the index of the current token.
func (t *Tokenizer) Index() int {
	return t.index
}

// Seek makes the token at index i current. Seeking to the index just past
// the last token is allowed and leaves the tokenizer at end of input.
func (t *Tokenizer) Seek(i int) error {
	if i < 0 {
		return fmt.Errorf("seek to negative token index %d", i)
	}
	if !t.fill(i) && i != len(t.tokens) {
		if t.err != nil {
			return t.err
		}
		return fmt.Errorf("seek to token index %d beyond end of input (%d tokens)", i, len(t.tokens))
	}
	t.index = i
	return nil
}

// Reset restarts the sequence at the first token.
func (t *Tokenizer) Reset() {
	t.index = 0
}

// Tokens lexes the remaining input and returns every token of the unit.
func (t *Tokenizer) Tokens() ([]token.Token, error) {
	for t.fill(len(t.tokens)) {
	}
	if t.err != nil {
		return nil, t.err
	}
	out := make([]token.Token, len(t.tokens))
	copy(out, t.tokens)
	return out, nil
}

// Location returns the error location for a token position.
func (t *Tokenizer) Location(pos token.Position) errors.SourceLocation {
	return t.lexer.Location(pos)
}

func (t *Tokenizer) expectKind(kind token.Kind) (token.Token, error) {
	tok := t.Token()
	if tok.Kind != kind {
		return tok, errors.Errorf(errors.TypeMismatch, t.Location(tok.Position),
			"requested %s from %s", kind, tok.Describe())
	}
	return tok, nil
}

// Keyword returns the current token's keyword.
func (t *Tokenizer) Keyword() (string, error) {
	tok, err := t.expectKind(token.Keyword)
	return tok.Literal, err
}

// Symbol returns the current token's symbol.
func (t *Tokenizer) Symbol() (string, error) {
	tok, err := t.expectKind(token.Symbol)
	return tok.Literal, err
}

// Identifier returns the current token's identifier.
func (t *Tokenizer) Identifier() (string, error) {
	tok, err := t.expectKind(token.Identifier)
	return tok.Literal, err
}

// IntVal returns the current token's integer value.
func (t *Tokenizer) IntVal() (int, error) {
	tok, err := t.expectKind(token.IntegerConstant)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok.Literal)
}

// StringVal returns the current token's string value, without quotes.
func (t *Tokenizer) StringVal() (string, error) {
	tok, err := t.expectKind(token.StringConstant)
	return tok.Literal, err
}
