package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/jackc/internal/lexer"
)

func init() {
	color.NoColor = true
}

func writeSource(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		source, outDir, ext, want string
	}{
		{"Main.jack", "", ".vm", "Main.vm"},
		{filepath.Join("src", "Main.jack"), "", ".vm", filepath.Join("src", "Main.vm")},
		{filepath.Join("src", "Main.jack"), "build", ".xml", filepath.Join("build", "Main.xml")},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, outputPath(tt.source, tt.outDir, tt.ext))
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	b := writeSource(t, dir, "B.jack", "class B { }")
	a := writeSource(t, dir, "A.jack", "class A { }")
	writeSource(t, dir, "notes.txt", "")

	files, err := collectFiles([]string{dir, a})
	require.NoError(t, err)
	require.Equal(t, []string{a, b}, files)

	_, err = collectFiles([]string{filepath.Join(dir, "notes.txt")})
	require.Error(t, err)

	_, err = collectFiles([]string{filepath.Join(dir, "missing.jack")})
	require.Error(t, err)
}

func TestRunCompile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Main.jack", "class Main { function void main() { do Sys.halt(); return; } }")
	writeSource(t, dir, "Ball.jack", "class Ball { field int x; method int x() { return x; } }")
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	cfg := compileConfig{outDir: out, trace: true, jobs: 2}
	require.NoError(t, runCompile(context.Background(), []string{dir}, cfg, &stdout, &stderr))
	require.Empty(t, stderr.String())

	vm, err := os.ReadFile(filepath.Join(out, "Main.vm"))
	require.NoError(t, err)
	require.Equal(t, "function Main.main 0\ncall Sys.halt 0\npop temp 0\npush constant 0\nreturn\n", string(vm))

	xml, err := os.ReadFile(filepath.Join(out, "Ball.xml"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(xml), "<class>\n  <keyword> class </keyword>\n"))
	require.Contains(t, stdout.String(), "Ball.vm")
}

func TestRunCompileReportsErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "Good.jack", "class Good { }")
	bad := writeSource(t, dir, "Bad.jack", "class Bad {\n  function void f() {\n    let y = 1;\n    return;\n  }\n}")

	var stdout, stderr bytes.Buffer
	err := runCompile(context.Background(), []string{good, bad}, compileConfig{}, &stdout, &stderr)
	require.ErrorIs(t, err, errFailed)

	// The good unit is still written
	_, err = os.Stat(filepath.Join(dir, "Good.vm"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Bad.vm"))
	require.True(t, os.IsNotExist(err))

	require.Contains(t, stderr.String(), `unresolved reference[E3002]: undefined variable "y"`)
	require.Contains(t, stderr.String(), "Bad.jack:3:9")
	require.Contains(t, stderr.String(), "    let y = 1;")
}

func TestRunCompileNoFiles(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runCompile(context.Background(), []string{t.TempDir()}, compileConfig{}, &stdout, &stderr)
	require.ErrorContains(t, err, "no .jack files found")
}

func TestWriteTokens(t *testing.T) {
	toks, err := lexer.NewTokenizer("let s = \"a<b\";").Tokens()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTokens(&buf, toks, "xml"))
	require.Equal(t, `<tokens>
<keyword> let </keyword>
<identifier> s </identifier>
<symbol> = </symbol>
<stringConstant> a&lt;b </stringConstant>
<symbol> ; </symbol>
</tokens>
`, buf.String())

	buf.Reset()
	require.NoError(t, writeTokens(&buf, toks[:1], "json"))
	require.Equal(t, `[
  {
    "kind": "keyword",
    "literal": "let",
    "line": 1,
    "column": 1
  }
]
`, buf.String())

	buf.Reset()
	require.NoError(t, writeTokens(&buf, toks[:2], "text"))
	require.Equal(t, `+-----+------------+---------+
| POS | KIND       | LITERAL |
+-----+------------+---------+
| 1:1 | keyword    | let     |
| 1:5 | identifier | s       |
+-----+------------+---------+
`, buf.String())

	require.Error(t, writeTokens(&buf, toks, "yaml"))
}
