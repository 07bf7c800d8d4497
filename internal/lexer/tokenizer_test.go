package lexer

import (
	"testing"

	"github.com/deepnoodle-ai/jackc/errors"
	"github.com/deepnoodle-ai/jackc/token"
	"github.com/stretchr/testify/require"
)

func TestTokenizerWalk(t *testing.T) {
	tz := NewTokenizer(`return "hi";`)

	require.True(t, tz.HasMore())
	kw, err := tz.Keyword()
	require.NoError(t, err)
	require.Equal(t, "return", kw)

	tz.Advance()
	s, err := tz.StringVal()
	require.NoError(t, err)
	require.Equal(t, "hi", s)

	tz.Advance()
	sym, err := tz.Symbol()
	require.NoError(t, err)
	require.Equal(t, ";", sym)

	tz.Advance()
	require.False(t, tz.HasMore())
	require.Equal(t, token.Invalid, tz.Kind())

	// Advancing past the end is a no-op
	tz.Advance()
	require.Equal(t, 3, tz.Index())
	require.NoError(t, tz.Err())
}

func TestTokenizerTypeMismatch(t *testing.T) {
	tz := NewTokenizer("x 12")

	_, err := tz.Keyword()
	require.True(t, errors.IsKind(err, errors.TypeMismatch))
	_, err = tz.IntVal()
	require.True(t, errors.IsKind(err, errors.TypeMismatch))

	name, err := tz.Identifier()
	require.NoError(t, err)
	require.Equal(t, "x", name)

	tz.Advance()
	n, err := tz.IntVal()
	require.NoError(t, err)
	require.Equal(t, 12, n)
	_, err = tz.StringVal()
	require.True(t, errors.IsKind(err, errors.TypeMismatch))
	_, err = tz.Symbol()
	require.True(t, errors.IsKind(err, errors.TypeMismatch))
}

func TestTokenizerSeek(t *testing.T) {
	tz := NewTokenizer("a b c")
	tz.Advance()
	tz.Advance()
	require.Equal(t, "c", tz.Token().Literal)

	require.NoError(t, tz.Seek(1))
	require.Equal(t, "b", tz.Token().Literal)

	tz.Reset()
	require.Equal(t, "a", tz.Token().Literal)

	require.NoError(t, tz.Seek(3))
	require.False(t, tz.HasMore())

	require.Error(t, tz.Seek(4))
	require.Error(t, tz.Seek(-1))
}

func TestTokenizerIsLazy(t *testing.T) {
	// The lexical error is only reported once the scan reaches it
	tz := NewTokenizer("let x = $;")
	require.NoError(t, tz.Err())
	require.Equal(t, "let", tz.Token().Literal)

	tz.Advance()
	tz.Advance()
	require.Equal(t, "=", tz.Token().Literal)
	require.NoError(t, tz.Err())

	tz.Advance()
	require.False(t, tz.HasMore())
	require.True(t, errors.IsKind(tz.Err(), errors.LexicalError))
}

func TestTokensRestartable(t *testing.T) {
	tz := NewTokenizer("class Main { }")
	first, err := tz.Tokens()
	require.NoError(t, err)
	tz.Reset()
	second, err := tz.Tokens()
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, 4)
}
