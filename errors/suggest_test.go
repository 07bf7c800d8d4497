package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestSimilar(t *testing.T) {
	keywords := []string{"let", "do", "if", "while", "return", "class"}

	got := SuggestSimilar("retrun", keywords)
	require.Len(t, got, 1)
	require.Equal(t, "return", got[0].Value)

	got = SuggestSimilar("whle", keywords)
	require.Equal(t, "while", got[0].Value)

	require.Empty(t, SuggestSimilar("banana", keywords))
	require.Nil(t, SuggestSimilar("", keywords))
	require.Nil(t, SuggestSimilar("let", nil))
}

func TestSuggestSimilarOrdering(t *testing.T) {
	got := SuggestSimilar("count", []string{"counts", "Count", "banana", "counter"})
	require.Equal(t, []Suggestion{
		{Value: "Count", Distance: 0},
		{Value: "counts", Distance: 1},
		{Value: "counter", Distance: 2},
	}, got)
}

func TestFormatSuggestions(t *testing.T) {
	require.Equal(t, "", FormatSuggestions(nil))
	require.Equal(t, "Did you mean 'x'?", FormatSuggestions([]Suggestion{{Value: "x"}}))
	require.Equal(t, "Did you mean one of: 'a', 'b'?",
		FormatSuggestions([]Suggestion{{Value: "a"}, {Value: "b"}}))
}

func TestLevenshteinDistance(t *testing.T) {
	require.Equal(t, 0, levenshteinDistance("abc", "abc"))
	require.Equal(t, 3, levenshteinDistance("", "abc"))
	require.Equal(t, 1, levenshteinDistance("field", "fields"))
	require.Equal(t, 2, levenshteinDistance("static", "statci"))
}
