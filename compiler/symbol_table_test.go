package compiler

import (
	"testing"

	"github.com/deepnoodle-ai/jackc/errors"
	"github.com/deepnoodle-ai/jackc/op"
	"github.com/stretchr/testify/require"
)

func TestDefineAssignsDenseIndexes(t *testing.T) {
	table := NewSymbolTable()

	for i, name := range []string{"x", "y", "z"} {
		sym, err := table.Define(name, "int", Field)
		require.NoError(t, err)
		require.Equal(t, i, sym.Index)
	}
	s, err := table.Define("count", "int", Static)
	require.NoError(t, err)
	require.Equal(t, 0, s.Index)

	a, err := table.Define("a", "Point", Argument)
	require.NoError(t, err)
	require.Equal(t, 0, a.Index)
	l, err := table.Define("l", "boolean", Local)
	require.NoError(t, err)
	require.Equal(t, 0, l.Index)

	require.Equal(t, 3, table.VarCount(Field))
	require.Equal(t, 1, table.VarCount(Static))
	require.Equal(t, 1, table.VarCount(Argument))
	require.Equal(t, 1, table.VarCount(Local))
	require.Equal(t, 0, table.VarCount(None))
}

func TestStartSubroutine(t *testing.T) {
	table := NewSymbolTable()
	_, err := table.Define("size", "int", Field)
	require.NoError(t, err)
	_, err = table.Define("n", "int", Argument)
	require.NoError(t, err)
	_, err = table.Define("i", "int", Local)
	require.NoError(t, err)

	table.StartSubroutine()

	require.Equal(t, 0, table.VarCount(Argument))
	require.Equal(t, 0, table.VarCount(Local))
	require.Equal(t, 1, table.VarCount(Field))
	require.Equal(t, None, table.KindOf("i"))
	require.Equal(t, Field, table.KindOf("size"))

	// Indexes restart in the new subroutine
	sym, err := table.Define("j", "int", Local)
	require.NoError(t, err)
	require.Equal(t, 0, sym.Index)
}

func TestResolveShadowing(t *testing.T) {
	table := NewSymbolTable()
	_, err := table.Define("count", "int", Field)
	require.NoError(t, err)
	_, err = table.Define("other", "int", Field)
	require.NoError(t, err)
	_, err = table.Define("count", "char", Local)
	require.NoError(t, err)

	require.Equal(t, Local, table.KindOf("count"))
	require.Equal(t, "char", table.TypeOf("count"))
	require.Equal(t, 0, table.IndexOf("count"))
	require.Equal(t, 1, table.IndexOf("other"))

	require.Equal(t, None, table.KindOf("missing"))
	require.Equal(t, "", table.TypeOf("missing"))
	require.Equal(t, -1, table.IndexOf("missing"))
	_, ok := table.Resolve("missing")
	require.False(t, ok)
}

func TestDefineDuplicate(t *testing.T) {
	table := NewSymbolTable()
	_, err := table.Define("x", "int", Field)
	require.NoError(t, err)

	_, err = table.Define("x", "int", Static)
	require.True(t, errors.IsKind(err, errors.DuplicateSymbol))

	_, err = table.Define("a", "int", Argument)
	require.NoError(t, err)
	_, err = table.Define("a", "int", Local)
	require.True(t, errors.IsKind(err, errors.DuplicateSymbol))
	require.Contains(t, err.Error(), `"a" is already declared as argument int`)

	// A failed declaration does not consume an index
	require.Equal(t, 1, table.VarCount(Field))
	require.Equal(t, 0, table.VarCount(Static))
	require.Equal(t, 0, table.VarCount(Local))

	_, err = table.Define("bad", "int", None)
	require.Error(t, err)
}

func TestKindSegment(t *testing.T) {
	require.Equal(t, op.Static, Static.Segment())
	require.Equal(t, op.This, Field.Segment())
	require.Equal(t, op.Argument, Argument.Segment())
	require.Equal(t, op.Local, Local.Segment())
	require.Equal(t, op.InvalidSegment, None.Segment())
	require.Equal(t, "field", Field.String())
	require.Equal(t, "none", None.String())
}

func TestNames(t *testing.T) {
	table := NewSymbolTable()
	table.Define("b", "int", Field)
	table.Define("a", "int", Static)
	table.Define("b", "int", Local)
	table.Define("c", "int", Argument)
	require.Equal(t, []string{"a", "b", "c"}, table.Names())
}

func TestContextLabels(t *testing.T) {
	ctx := &Context{ClassName: "Main"}
	ctx.StartSubroutine("main", Function)
	require.Equal(t, "Main.main", ctx.FunctionName())

	a, b := ctx.Labels("IF_ELSE", "IF_END")
	require.Equal(t, "IF_ELSE_0", a)
	require.Equal(t, "IF_END_0", b)

	ctx.StartSubroutine("run", Method)
	a, b = ctx.Labels("WHILE_LOOP", "WHILE_END")
	require.Equal(t, "WHILE_LOOP_1", a)
	require.Equal(t, "WHILE_END_1", b)
	require.Equal(t, "method", ctx.Kind.String())
}
