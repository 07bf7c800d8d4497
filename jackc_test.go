package jackc

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/jackc/bytecode"
	"github.com/deepnoodle-ai/jackc/errors"
	"github.com/deepnoodle-ai/jackc/trace"
)

const mainSource = `
class Main {
  function void main() {
    var Point p;
    let p = Point.new(1, 2);
    do p.print();
    return;
  }
}`

const pointSource = `
class Point {
  field int x, y;
  constructor Point new(int ax, int ay) {
    let x = ax;
    let y = ay;
    return this;
  }
  method void print() {
    do Output.printInt(x);
    do Output.printInt(y);
    return;
  }
}`

func TestCompile(t *testing.T) {
	code, err := Compile(mainSource, WithFilename("Main.jack"))
	require.NoError(t, err)
	require.Equal(t, "Main", code.Name())
	require.Equal(t, `function Main.main 1
push constant 1
push constant 2
call Point.new 2
pop local 0
push local 0
call Point.print 1
pop temp 0
push constant 0
return
`, code.String())
}

func TestCompileError(t *testing.T) {
	_, err := Compile("class Main { function void main() { let x = 1; return; } }", WithFilename("Main.jack"))
	require.Error(t, err)
	require.True(t, errors.IsKind(err, errors.UnresolvedReference))
	require.Contains(t, err.Error(), "Main.jack:1:41")
}

func TestCompileWithTracer(t *testing.T) {
	var buf bytes.Buffer
	tracer := trace.NewXMLTracer(&buf)
	_, err := Compile(pointSource, WithTracer(tracer))
	require.NoError(t, err)
	require.NoError(t, tracer.Flush())
	require.True(t, strings.HasPrefix(buf.String(), "<class>\n"))
	require.Contains(t, buf.String(), "<identifier> Point </identifier>")
}

func TestCompileUnitsKeepsOrder(t *testing.T) {
	var units []Unit
	for i := 0; i < 20; i++ {
		units = append(units, Unit{
			Name:   fmt.Sprintf("C%d.jack", i),
			Source: fmt.Sprintf("class C%d { function int f() { return %d; } }", i, i),
		})
	}
	for _, n := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("concurrency %d", n), func(t *testing.T) {
			codes, err := CompileUnits(context.Background(), units, WithConcurrency(n))
			require.NoError(t, err)
			require.Len(t, codes, len(units))
			for i, code := range codes {
				require.Equal(t, fmt.Sprintf("C%d", i), code.Name())
				require.Equal(t, fmt.Sprintf("push constant %d", i), code.InstructionAt(1).String())
			}
		})
	}
}

func TestCompileUnitsMatchesCompile(t *testing.T) {
	units := []Unit{
		{Name: "Main.jack", Source: mainSource},
		{Name: "Point.jack", Source: pointSource},
	}
	codes, err := CompileUnits(context.Background(), units)
	require.NoError(t, err)

	for i, unit := range units {
		code, err := Compile(unit.Source)
		require.NoError(t, err)
		require.Equal(t, code.String(), codes[i].String())
	}

	var out bytes.Buffer
	require.NoError(t, bytecode.WriteAll(&out, codes...))
	require.True(t, strings.HasPrefix(out.String(), "function Main.main 1\n"))
	require.Contains(t, out.String(), "function Point.new 0\npush constant 2\ncall Memory.alloc 1\n")
}

func TestCompileUnitsAggregatesErrors(t *testing.T) {
	units := []Unit{
		{Name: "A.jack", Source: "class A { function void f() { return } }"},
		{Name: "B.jack", Source: "class B { }"},
		{Name: "C.jack", Source: "class C { field int x; field int x; }"},
	}
	codes, err := CompileUnits(context.Background(), units)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.True(t, errors.IsKind(merr.Errors[0], errors.SyntaxError))
	require.True(t, errors.IsKind(merr.Errors[1], errors.DuplicateSymbol))

	first, ok := errors.As(merr.Errors[0])
	require.True(t, ok)
	require.Equal(t, "A.jack", first.Location.Filename)

	require.Nil(t, codes[0])
	require.NotNil(t, codes[1])
	require.Equal(t, "B", codes[1].Name())
	require.Nil(t, codes[2])
}

func TestCompileUnitsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	codes, err := CompileUnits(ctx, []Unit{{Name: "A.jack", Source: "class A { }"}})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, codes[0])
}

func TestCompileUnitsTracerAndLogger(t *testing.T) {
	var xml, logs bytes.Buffer
	tracer := trace.NewXMLTracer(&xml)
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	_, err := CompileUnits(context.Background(), []Unit{
		{Name: "A.jack", Source: "class A { }", Tracer: tracer},
		{Name: "B.jack", Source: "class B { }"},
	}, WithLogger(logger), WithConcurrency(1))
	require.NoError(t, err)
	require.NoError(t, tracer.Flush())
	require.Contains(t, xml.String(), "<identifier> A </identifier>")
	require.NotContains(t, xml.String(), "<identifier> B </identifier>")
	require.Contains(t, logs.String(), `"unit":"B.jack"`)
}
