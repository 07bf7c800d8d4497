// Package trace records the parse of a Jack class as it happens.
//
// The compiler reports every grammar rule it enters and leaves, and every
// token it consumes, to a Tracer. XMLTracer turns these events into the
// familiar XML parse tree, one element per rule and one leaf per token.
// Tracing never changes the generated code.
package trace

import (
	"bufio"
	"io"
	"strings"

	"github.com/deepnoodle-ai/jackc/token"
)

// Grammar rules reported to a Tracer.
const (
	Class           = "class"
	ClassVarDec     = "classVarDec"
	SubroutineDec   = "subroutineDec"
	ParameterList   = "parameterList"
	SubroutineBody  = "subroutineBody"
	VarDec          = "varDec"
	Statements      = "statements"
	LetStatement    = "letStatement"
	IfStatement     = "ifStatement"
	WhileStatement  = "whileStatement"
	DoStatement     = "doStatement"
	ReturnStatement = "returnStatement"
	Expression      = "expression"
	Term            = "term"
	ExpressionList  = "expressionList"
)

// Tracer receives parse events from the compiler.
type Tracer interface {
	// Enter is called when the compiler starts a grammar rule.
	Enter(rule string)
	// Exit is called when the compiler completes a grammar rule.
	Exit(rule string)
	// Terminal is called for each token the compiler consumes.
	Terminal(tok token.Token)
}

type nop struct{}

func (nop) Enter(string)         {}
func (nop) Exit(string)          {}
func (nop) Terminal(token.Token) {}

// Nop returns a Tracer that discards all events.
func Nop() Tracer {
	return nop{}
}

// XMLTracer writes parse events as an indented XML tree.
type XMLTracer struct {
	w      *bufio.Writer
	indent string
	depth  int
	err    error
}

// NewXMLTracer returns an XMLTracer writing to w. Call Flush once the
// compilation is finished.
func NewXMLTracer(w io.Writer) *XMLTracer {
	return &XMLTracer{w: bufio.NewWriter(w), indent: "  "}
}

func (x *XMLTracer) line(s string) {
	if x.err != nil {
		return
	}
	if _, err := x.w.WriteString(strings.Repeat(x.indent, x.depth)); err != nil {
		x.err = err
		return
	}
	if _, err := x.w.WriteString(s); err != nil {
		x.err = err
		return
	}
	x.err = x.w.WriteByte('\n')
}

// Enter opens an element for the rule.
func (x *XMLTracer) Enter(rule string) {
	x.line("<" + rule + ">")
	x.depth++
}

// Exit closes the element for the rule.
func (x *XMLTracer) Exit(rule string) {
	if x.depth > 0 {
		x.depth--
	}
	x.line("</" + rule + ">")
}

// Terminal writes a leaf element for the token.
func (x *XMLTracer) Terminal(tok token.Token) {
	x.line(Element(tok))
}

// Flush writes any buffered output and returns the first write error.
func (x *XMLTracer) Flush() error {
	if x.err != nil {
		return x.err
	}
	return x.w.Flush()
}

// Element renders a token as a single XML leaf, for example
// "<symbol> &lt; </symbol>".
func Element(tok token.Token) string {
	tag := tok.Kind.String()
	return "<" + tag + "> " + Escape(tok.Literal) + " </" + tag + ">"
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// Escape replaces the characters that are special in XML text.
func Escape(s string) string {
	return escaper.Replace(s)
}

// WriteTokens writes the flat token stream of a unit, wrapped in a
// <tokens> element.
func WriteTokens(w io.Writer, toks []token.Token) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<tokens>\n")
	for _, tok := range toks {
		bw.WriteString(Element(tok))
		bw.WriteByte('\n')
	}
	bw.WriteString("</tokens>\n")
	return bw.Flush()
}
