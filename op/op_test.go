package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(Function)
	require.Equal(t, "function", info.Name)
	require.Equal(t, 2, info.OperandCount)
	require.Equal(t, Function, info.Code)
}

func TestGetInfoAllCodes(t *testing.T) {
	tests := []struct {
		code     Code
		name     string
		operands int
	}{
		{Push, "push", 2},
		{Pop, "pop", 2},
		{Label, "label", 1},
		{Goto, "goto", 1},
		{IfGoto, "if-goto", 1},
		{Function, "function", 2},
		{Call, "call", 2},
		{Return, "return", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetInfo(tt.code)
			require.Equal(t, tt.name, info.Name)
			require.Equal(t, tt.operands, info.OperandCount)

			code, ok := Lookup(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.code, code)
		})
	}
	require.Equal(t, Info{}, GetInfo(Code(200)))
}

func TestLookupArithmetic(t *testing.T) {
	for _, name := range []string{"add", "sub", "neg", "eq", "gt", "lt", "and", "or", "not"} {
		code, ok := Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, Arithmetic, code)

		o, ok := LookupOperator(name)
		require.True(t, ok)
		require.Equal(t, name, o.String())
	}
	_, ok := Lookup("arithmetic")
	require.False(t, ok)
	_, ok = Lookup("mul")
	require.False(t, ok)
}

func TestSegments(t *testing.T) {
	for _, name := range []string{"constant", "argument", "local", "static", "this", "that", "pointer", "temp"} {
		seg, ok := LookupSegment(name)
		require.True(t, ok, name)
		require.Equal(t, name, seg.String())
	}
	_, ok := LookupSegment("")
	require.False(t, ok)
	_, ok = LookupSegment("heap")
	require.False(t, ok)
}

func TestUnaryOperators(t *testing.T) {
	require.True(t, Neg.IsUnary())
	require.True(t, Not.IsUnary())
	require.False(t, Add.IsUnary())
	require.False(t, Eq.IsUnary())
}
