// Package compiler translates one Jack class into stack machine code.
//
// # Single-Pass Compilation
//
// The compiler is a predictive recursive-descent parser that generates code
// while it parses. There is no syntax tree: each grammar rule consumes its
// tokens from the tokenizer, updates or queries the symbol table, and writes
// instructions in the order the stack machine must execute them. Every
// decision is made by looking at the current token only.
//
// # Function Headers
//
// A subroutine's header announces how many locals it uses, but the locals are
// declared after the point where the header is written. The header is
// written with bytecode.Placeholder as its local count and patched once the
// variable declarations of the body have been read.
//
// # Symbol Scopes
//
// The compiler tracks two scopes:
//
//   - Class: static and field variables, alive for the whole class
//   - Subroutine: arguments and locals, reset at the start of each subroutine
//
// Names are resolved in the subroutine scope first. A name that is in
// neither scope is a class name when it qualifies a call, and an error when
// it is used as a variable.
//
// # Failures
//
// Compilation stops at the first error. There is no recovery, so a class
// either compiles completely or not at all.
package compiler

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/jackc/bytecode"
	"github.com/deepnoodle-ai/jackc/errors"
	"github.com/deepnoodle-ai/jackc/internal/lexer"
	"github.com/deepnoodle-ai/jackc/op"
	"github.com/deepnoodle-ai/jackc/token"
	"github.com/deepnoodle-ai/jackc/trace"
)

// Names of the operating system routines the generated code relies on.
const (
	MemoryAlloc      = "Memory.alloc"
	MathMultiply     = "Math.multiply"
	MathDivide       = "Math.divide"
	StringNew        = "String.new"
	StringAppendChar = "String.appendChar"
)

var binaryOperators = map[string]op.Operator{
	token.PLUS:      op.Add,
	token.MINUS:     op.Sub,
	token.AMPERSAND: op.And,
	token.PIPE:      op.Or,
	token.LT:        op.Lt,
	token.GT:        op.Gt,
	token.ASSIGN:    op.Eq,
}

var binaryCalls = map[string]string{
	token.ASTERISK: MathMultiply,
	token.SLASH:    MathDivide,
}

var statementKeywords = []string{token.LET, token.IF, token.WHILE, token.DO, token.RETURN}

var memberKeywords = []string{token.STATIC, token.FIELD, token.CONSTRUCTOR, token.FUNCTION, token.METHOD}

var primitiveTypes = map[string]bool{
	token.INT:     true,
	token.CHAR:    true,
	token.BOOLEAN: true,
}

// Compiler compiles a single class. A Compiler is used once.
type Compiler struct {
	tokens   *lexer.Tokenizer
	symbols  *SymbolTable
	writer   *bytecode.Writer
	ctx      *Context
	logger   zerolog.Logger
	tracer   trace.Tracer
	filename string
	used     bool
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithFilename sets the filename used in error messages.
func WithFilename(filename string) Option {
	return func(c *Compiler) {
		c.filename = filename
	}
}

// WithLogger sets the logger that receives debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithTracer sets a tracer that is notified of each grammar rule and token.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Compiler) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// New returns a Compiler for the given source text.
func New(source string, opts ...Option) *Compiler {
	c := &Compiler{
		symbols: NewSymbolTable(),
		writer:  bytecode.NewWriter(""),
		ctx:     &Context{},
		logger:  zerolog.Nop(),
		tracer:  trace.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tokens = lexer.NewTokenizer(source, lexer.WithFile(c.filename))
	return c
}

// Compile compiles the source text of one class.
func Compile(source string, opts ...Option) (*bytecode.Code, error) {
	return New(source, opts...).Compile()
}

// Compile compiles the class and returns its code.
func (c *Compiler) Compile() (*bytecode.Code, error) {
	if c.used {
		return nil, fmt.Errorf("compiler has already compiled %q", c.ctx.ClassName)
	}
	c.used = true
	if err := c.compileClass(); err != nil {
		return nil, err
	}
	code, err := c.writer.Code()
	if err != nil {
		return nil, err
	}
	c.logger.Debug().
		Str("class", c.ctx.ClassName).
		Int("instructions", code.InstructionCount()).
		Msg("class compiled")
	return code, nil
}

// Symbols returns the symbol table. After compilation it holds the class
// scope and the scope of the last subroutine.
func (c *Compiler) Symbols() *SymbolTable {
	return c.symbols
}

// ClassName returns the name of the class, once its declaration is read.
func (c *Compiler) ClassName() string {
	return c.ctx.ClassName
}

// rule reports entry into a grammar rule and returns the matching exit.
func (c *Compiler) rule(name string) func() {
	c.tracer.Enter(name)
	return func() { c.tracer.Exit(name) }
}

func (c *Compiler) current() token.Token {
	return c.tokens.Token()
}

// advance consumes the current token and returns it.
func (c *Compiler) advance() token.Token {
	tok := c.tokens.Token()
	c.tracer.Terminal(tok)
	c.tokens.Advance()
	return tok
}

func (c *Compiler) isSymbol(sym string) bool {
	return c.current().Is(token.Symbol, sym)
}

func (c *Compiler) isKeyword(keywords ...string) bool {
	tok := c.current()
	if tok.Kind != token.Keyword {
		return false
	}
	for _, kw := range keywords {
		if tok.Literal == kw {
			return true
		}
	}
	return false
}

func (c *Compiler) expectSymbol(sym string) (token.Token, error) {
	if !c.isSymbol(sym) {
		return token.Token{}, c.unexpected(c.current(), errors.E2001, "expected '%s'", sym)
	}
	return c.advance(), nil
}

func (c *Compiler) expectKeyword(keywords ...string) (token.Token, error) {
	if !c.isKeyword(keywords...) {
		return token.Token{}, c.unexpected(c.current(), errors.E2001, "expected %s", quoteList(keywords))
	}
	return c.advance(), nil
}

func (c *Compiler) expectIdentifier(what string) (token.Token, error) {
	if c.current().Kind != token.Identifier {
		return token.Token{}, c.unexpected(c.current(), errors.E2003, "expected %s", what)
	}
	return c.advance(), nil
}

// expectType consumes a type: a primitive type, a class name, or void when
// allowVoid is set.
func (c *Compiler) expectType(allowVoid bool) (string, error) {
	tok := c.current()
	switch {
	case tok.Kind == token.Identifier:
	case tok.Kind == token.Keyword && primitiveTypes[tok.Literal]:
	case allowVoid && tok.Is(token.Keyword, token.VOID):
	default:
		return "", c.unexpected(tok, errors.E2004, "expected type")
	}
	return c.advance().Literal, nil
}

func (c *Compiler) location(tok token.Token) errors.SourceLocation {
	return c.tokens.Location(tok.Position)
}

// unexpected builds the error for a token that does not fit the grammar. At
// the end of input the lexical error that ended the scan takes precedence.
func (c *Compiler) unexpected(tok token.Token, code errors.ErrorCode, format string, args ...any) error {
	if tok.Kind == token.Invalid {
		if err := c.tokens.Err(); err != nil {
			return err
		}
		code = errors.E2002
	}
	msg := fmt.Sprintf(format, args...)
	return errors.Errorf(errors.SyntaxError, c.location(tok), "%s, got %s", msg, tok.Describe()).WithCode(code)
}

// unexpectedWithHint is like unexpected, and suggests keywords close to a
// misspelled identifier.
func (c *Compiler) unexpectedWithHint(tok token.Token, keywords []string, format string, args ...any) error {
	err := c.unexpected(tok, errors.E2001, format, args...)
	if ce, ok := errors.As(err); ok && tok.Kind == token.Identifier {
		ce.WithSuggestions(errors.SuggestSimilar(tok.Literal, keywords))
	}
	return err
}

func (c *Compiler) define(tok token.Token, typ string, kind Kind) error {
	sym, err := c.symbols.Define(tok.Literal, typ, kind)
	if err != nil {
		if ce, ok := errors.As(err); ok {
			ce.Location = c.location(tok)
		}
		return err
	}
	c.logger.Debug().
		Str("name", sym.Name).
		Stringer("kind", sym.Kind).
		Str("type", sym.Type).
		Int("index", sym.Index).
		Msg("symbol defined")
	return nil
}

// variable resolves a name used as a variable.
func (c *Compiler) variable(tok token.Token) (*Symbol, error) {
	if sym, ok := c.symbols.Resolve(tok.Literal); ok {
		return sym, nil
	}
	return nil, errors.Errorf(errors.UnresolvedReference, c.location(tok),
		"undefined variable %q", tok.Literal).
		WithCode(errors.E3002).
		WithSuggestions(errors.SuggestSimilar(tok.Literal, c.visibleNames()))
}

// visibleNames lists the names a source program can refer to as variables.
// The implicit method receiver is excluded.
func (c *Compiler) visibleNames() []string {
	names := c.symbols.Names()
	visible := names[:0]
	for _, name := range names {
		if name != token.THIS {
			visible = append(visible, name)
		}
	}
	return visible
}

func (c *Compiler) push(sym *Symbol) {
	c.writer.WritePush(sym.Kind.Segment(), sym.Index)
}

func (c *Compiler) pop(sym *Symbol) {
	c.writer.WritePop(sym.Kind.Segment(), sym.Index)
}

// class: 'class' className '{' classVarDec* subroutineDec* '}'
func (c *Compiler) compileClass() error {
	defer c.rule(trace.Class)()
	if _, err := c.expectKeyword(token.CLASS); err != nil {
		return err
	}
	name, err := c.expectIdentifier("class name")
	if err != nil {
		return err
	}
	c.ctx.ClassName = name.Literal
	c.writer.SetName(name.Literal)
	c.logger.Debug().Str("class", name.Literal).Str("file", c.filename).Msg("compiling class")

	if _, err := c.expectSymbol(token.LBRACE); err != nil {
		return err
	}
	for c.isKeyword(token.STATIC, token.FIELD) {
		if err := c.compileClassVarDec(); err != nil {
			return err
		}
	}
	for c.isKeyword(token.CONSTRUCTOR, token.FUNCTION, token.METHOD) {
		if err := c.compileSubroutine(); err != nil {
			return err
		}
	}
	if !c.isSymbol(token.RBRACE) {
		return c.unexpectedWithHint(c.current(), memberKeywords, "expected subroutine declaration or '}'")
	}
	c.advance()

	if c.tokens.HasMore() {
		return c.unexpected(c.current(), errors.E2001, "expected end of input after class %s", name.Literal)
	}
	if err := c.tokens.Err(); err != nil {
		return err
	}
	return nil
}

// classVarDec: ('static' | 'field') type varName (',' varName)* ';'
func (c *Compiler) compileClassVarDec() error {
	defer c.rule(trace.ClassVarDec)()
	kw := c.advance()
	kind := Field
	if kw.Literal == token.STATIC {
		kind = Static
	}
	return c.compileVarNames(kind)
}

// varDec: 'var' type varName (',' varName)* ';'
func (c *Compiler) compileVarDec() error {
	defer c.rule(trace.VarDec)()
	if _, err := c.expectKeyword(token.VAR); err != nil {
		return err
	}
	return c.compileVarNames(Local)
}

func (c *Compiler) compileVarNames(kind Kind) error {
	typ, err := c.expectType(false)
	if err != nil {
		return err
	}
	for {
		name, err := c.expectIdentifier("variable name")
		if err != nil {
			return err
		}
		if err := c.define(name, typ, kind); err != nil {
			return err
		}
		if !c.isSymbol(token.COMMA) {
			break
		}
		c.advance()
	}
	_, err = c.expectSymbol(token.SEMICOLON)
	return err
}

// subroutineDec: ('constructor' | 'function' | 'method') ('void' | type)
// subroutineName '(' parameterList ')' subroutineBody
func (c *Compiler) compileSubroutine() error {
	defer c.rule(trace.SubroutineDec)()
	kw := c.advance()
	kind := subroutineKinds[kw.Literal]
	if _, err := c.expectType(true); err != nil {
		return err
	}
	name, err := c.expectIdentifier("subroutine name")
	if err != nil {
		return err
	}
	c.symbols.StartSubroutine()
	c.ctx.StartSubroutine(name.Literal, kind)
	if kind == Method {
		// The receiver is passed as the first argument
		if _, err := c.symbols.Define(token.THIS, c.ctx.ClassName, Argument); err != nil {
			return err
		}
	}
	if _, err := c.expectSymbol(token.LPAREN); err != nil {
		return err
	}
	if err := c.compileParameterList(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(token.RPAREN); err != nil {
		return err
	}
	return c.compileSubroutineBody()
}

// parameterList: ((type varName) (',' type varName)*)?
func (c *Compiler) compileParameterList() error {
	defer c.rule(trace.ParameterList)()
	if c.isSymbol(token.RPAREN) {
		return nil
	}
	for {
		typ, err := c.expectType(false)
		if err != nil {
			return err
		}
		name, err := c.expectIdentifier("parameter name")
		if err != nil {
			return err
		}
		if err := c.define(name, typ, Argument); err != nil {
			return err
		}
		if !c.isSymbol(token.COMMA) {
			return nil
		}
		c.advance()
	}
}

// subroutineBody: '{' varDec* statements '}'
func (c *Compiler) compileSubroutineBody() error {
	defer c.rule(trace.SubroutineBody)()
	if _, err := c.expectSymbol(token.LBRACE); err != nil {
		return err
	}
	header := c.writer.WriteFunction(c.ctx.FunctionName(), bytecode.Placeholder)
	for c.isKeyword(token.VAR) {
		if err := c.compileVarDec(); err != nil {
			return err
		}
	}
	locals := c.symbols.VarCount(Local)
	if err := c.writer.PatchLocals(header, locals); err != nil {
		return err
	}

	switch c.ctx.Kind {
	case Constructor:
		c.writer.WritePush(op.Constant, c.symbols.VarCount(Field))
		c.writer.WriteCall(MemoryAlloc, 1)
		c.writer.WritePop(op.Pointer, 0)
	case Method:
		c.writer.WritePush(op.Argument, 0)
		c.writer.WritePop(op.Pointer, 0)
	}

	if err := c.compileStatements(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(token.RBRACE); err != nil {
		return err
	}
	c.logger.Debug().
		Str("function", c.ctx.FunctionName()).
		Stringer("kind", c.ctx.Kind).
		Int("locals", locals).
		Msg("subroutine compiled")
	return nil
}

// statements: statement*
//
// The closing brace of the enclosing block must follow.
func (c *Compiler) compileStatements() error {
	defer c.rule(trace.Statements)()
	for {
		var err error
		switch {
		case c.isKeyword(token.LET):
			err = c.compileLet()
		case c.isKeyword(token.IF):
			err = c.compileIf()
		case c.isKeyword(token.WHILE):
			err = c.compileWhile()
		case c.isKeyword(token.DO):
			err = c.compileDo()
		case c.isKeyword(token.RETURN):
			err = c.compileReturn()
		case c.isSymbol(token.RBRACE):
			return nil
		default:
			return c.unexpectedWithHint(c.current(), statementKeywords, "expected statement or '}'")
		}
		if err != nil {
			return err
		}
	}
}

// letStatement: 'let' varName ('[' expression ']')? '=' expression ';'
func (c *Compiler) compileLet() error {
	defer c.rule(trace.LetStatement)()
	c.advance()
	name, err := c.expectIdentifier("variable name")
	if err != nil {
		return err
	}
	sym, err := c.variable(name)
	if err != nil {
		return err
	}

	indexed := c.isSymbol(token.LBRACKET)
	if indexed {
		c.push(sym)
		c.advance()
		if err := c.compileExpression(); err != nil {
			return err
		}
		if _, err := c.expectSymbol(token.RBRACKET); err != nil {
			return err
		}
		c.writer.WriteArithmetic(op.Add)
	}
	if _, err := c.expectSymbol(token.ASSIGN); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(token.SEMICOLON); err != nil {
		return err
	}

	if !indexed {
		c.pop(sym)
		return nil
	}
	// The value is on top of the address. Stash it while the address is
	// moved into the that pointer.
	c.writer.WritePop(op.Temp, 0)
	c.writer.WritePop(op.Pointer, 1)
	c.writer.WritePush(op.Temp, 0)
	c.writer.WritePop(op.That, 0)
	return nil
}

// ifStatement: 'if' '(' expression ')' '{' statements '}'
// ('else' '{' statements '}')?
func (c *Compiler) compileIf() error {
	defer c.rule(trace.IfStatement)()
	c.advance()
	elseLabel, endLabel := c.ctx.Labels("IF_ELSE", "IF_END")
	if err := c.compileCondition(); err != nil {
		return err
	}
	c.writer.WriteArithmetic(op.Not)
	c.writer.WriteIf(elseLabel)
	if err := c.compileBlock(); err != nil {
		return err
	}
	c.writer.WriteGoto(endLabel)
	c.writer.WriteLabel(elseLabel)
	if c.isKeyword(token.ELSE) {
		c.advance()
		if err := c.compileBlock(); err != nil {
			return err
		}
	}
	c.writer.WriteLabel(endLabel)
	return nil
}

// whileStatement: 'while' '(' expression ')' '{' statements '}'
func (c *Compiler) compileWhile() error {
	defer c.rule(trace.WhileStatement)()
	c.advance()
	loopLabel, endLabel := c.ctx.Labels("WHILE_LOOP", "WHILE_END")
	c.writer.WriteLabel(loopLabel)
	if err := c.compileCondition(); err != nil {
		return err
	}
	c.writer.WriteArithmetic(op.Not)
	c.writer.WriteIf(endLabel)
	if err := c.compileBlock(); err != nil {
		return err
	}
	c.writer.WriteGoto(loopLabel)
	c.writer.WriteLabel(endLabel)
	return nil
}

func (c *Compiler) compileCondition() error {
	if _, err := c.expectSymbol(token.LPAREN); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	_, err := c.expectSymbol(token.RPAREN)
	return err
}

func (c *Compiler) compileBlock() error {
	if _, err := c.expectSymbol(token.LBRACE); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	_, err := c.expectSymbol(token.RBRACE)
	return err
}

// doStatement: 'do' subroutineCall ';'
func (c *Compiler) compileDo() error {
	defer c.rule(trace.DoStatement)()
	c.advance()
	name, err := c.expectIdentifier("subroutine or variable name")
	if err != nil {
		return err
	}
	if err := c.compileCall(name); err != nil {
		return err
	}
	if _, err := c.expectSymbol(token.SEMICOLON); err != nil {
		return err
	}
	// Every call leaves a value, even a void one
	c.writer.WritePop(op.Temp, 0)
	return nil
}

// returnStatement: 'return' expression? ';'
func (c *Compiler) compileReturn() error {
	defer c.rule(trace.ReturnStatement)()
	c.advance()
	if c.isSymbol(token.SEMICOLON) {
		c.writer.WritePush(op.Constant, 0)
	} else if err := c.compileExpression(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(token.SEMICOLON); err != nil {
		return err
	}
	c.writer.WriteReturn()
	return nil
}

// expression: term (op term)*
//
// Operators have no precedence and associate to the left.
func (c *Compiler) compileExpression() error {
	defer c.rule(trace.Expression)()
	if err := c.compileTerm(); err != nil {
		return err
	}
	for {
		tok := c.current()
		if tok.Kind != token.Symbol {
			return nil
		}
		operator, isOp := binaryOperators[tok.Literal]
		routine, isCall := binaryCalls[tok.Literal]
		if !isOp && !isCall {
			return nil
		}
		c.advance()
		if err := c.compileTerm(); err != nil {
			return err
		}
		if isCall {
			c.writer.WriteCall(routine, 2)
		} else {
			c.writer.WriteArithmetic(operator)
		}
	}
}

// term: integerConstant | stringConstant | keywordConstant | varName |
// varName '[' expression ']' | subroutineCall | '(' expression ')' |
// unaryOp term
func (c *Compiler) compileTerm() error {
	defer c.rule(trace.Term)()
	tok := c.current()
	switch tok.Kind {
	case token.IntegerConstant:
		n, err := c.tokens.IntVal()
		if err != nil {
			return err
		}
		c.advance()
		c.writer.WritePush(op.Constant, n)
		return nil

	case token.StringConstant:
		c.advance()
		c.compileString(tok.Literal)
		return nil

	case token.Keyword:
		switch tok.Literal {
		case token.TRUE:
			c.writer.WritePush(op.Constant, 0)
			c.writer.WriteArithmetic(op.Not)
		case token.FALSE, token.NULL:
			c.writer.WritePush(op.Constant, 0)
		case token.THIS:
			c.writer.WritePush(op.Pointer, 0)
		default:
			return c.unexpected(tok, errors.E2001, "expected expression")
		}
		c.advance()
		return nil

	case token.Symbol:
		switch tok.Literal {
		case token.LPAREN:
			c.advance()
			if err := c.compileExpression(); err != nil {
				return err
			}
			_, err := c.expectSymbol(token.RPAREN)
			return err
		case token.MINUS, token.TILDE:
			c.advance()
			if err := c.compileTerm(); err != nil {
				return err
			}
			if tok.Literal == token.MINUS {
				c.writer.WriteArithmetic(op.Neg)
			} else {
				c.writer.WriteArithmetic(op.Not)
			}
			return nil
		default:
			return c.unexpected(tok, errors.E2001, "expected expression")
		}

	case token.Identifier:
		c.advance()
		switch {
		case c.isSymbol(token.LPAREN), c.isSymbol(token.PERIOD):
			return c.compileCall(tok)
		case c.isSymbol(token.LBRACKET):
			return c.compileArrayRead(tok)
		}
		sym, err := c.variable(tok)
		if err != nil {
			return err
		}
		c.push(sym)
		return nil

	default:
		return c.unexpected(tok, errors.E2001, "expected expression")
	}
}

// compileArrayRead compiles name '[' expression ']' with the name already
// consumed.
func (c *Compiler) compileArrayRead(name token.Token) error {
	sym, err := c.variable(name)
	if err != nil {
		return err
	}
	c.push(sym)
	c.advance()
	if err := c.compileExpression(); err != nil {
		return err
	}
	if _, err := c.expectSymbol(token.RBRACKET); err != nil {
		return err
	}
	c.writer.WriteArithmetic(op.Add)
	c.writer.WritePop(op.Pointer, 1)
	c.writer.WritePush(op.That, 0)
	return nil
}

// compileString lowers a string constant to calls that build a String object
// one character at a time.
func (c *Compiler) compileString(s string) {
	chars := []rune(s)
	c.writer.WritePush(op.Constant, len(chars))
	c.writer.WriteCall(StringNew, 1)
	for _, ch := range chars {
		c.writer.WritePush(op.Constant, int(ch))
		c.writer.WriteCall(StringAppendChar, 2)
	}
}

// compileCall compiles a subroutine call whose leading name is already
// consumed:
//
//	subroutineName '(' expressionList ')'
//	(className | varName) '.' subroutineName '(' expressionList ')'
func (c *Compiler) compileCall(name token.Token) error {
	var function string
	args := 0
	switch {
	case c.isSymbol(token.PERIOD):
		c.advance()
		member, err := c.expectIdentifier("subroutine name")
		if err != nil {
			return err
		}
		sym, ok := c.symbols.Resolve(name.Literal)
		if !ok {
			function = name.Literal + "." + member.Literal
			break
		}
		c.checkReceiver(name, sym)
		c.push(sym)
		args++
		function = sym.Type + "." + member.Literal
	case c.isSymbol(token.LPAREN):
		c.writer.WritePush(op.Pointer, 0)
		args++
		function = c.ctx.ClassName + "." + name.Literal
	default:
		return c.unexpected(c.current(), errors.E2001, "expected '(' or '.' after %s", name.Literal)
	}

	if _, err := c.expectSymbol(token.LPAREN); err != nil {
		return err
	}
	n, err := c.compileExpressionList()
	if err != nil {
		return err
	}
	if _, err := c.expectSymbol(token.RPAREN); err != nil {
		return err
	}
	c.writer.WriteCall(function, args+n)
	return nil
}

// checkReceiver logs receivers whose declared type is not a class. The call
// is still compiled against the declared type.
func (c *Compiler) checkReceiver(name token.Token, sym *Symbol) {
	if !primitiveTypes[sym.Type] {
		return
	}
	c.logger.Debug().
		Str("code", string(errors.E3003)).
		Stringer("kind", errors.UnresolvedReference).
		Str("receiver", sym.Name).
		Str("type", sym.Type).
		Str("location", c.location(name).String()).
		Msg("receiver has no class type")
}

// expressionList: (expression (',' expression)*)?
func (c *Compiler) compileExpressionList() (int, error) {
	defer c.rule(trace.ExpressionList)()
	if c.isSymbol(token.RPAREN) {
		return 0, nil
	}
	count := 0
	for {
		if err := c.compileExpression(); err != nil {
			return 0, err
		}
		count++
		if !c.isSymbol(token.COMMA) {
			return count, nil
		}
		c.advance()
	}
}

func quoteList(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return "'" + words[0] + "'"
	}
	s := ""
	for i, w := range words {
		switch {
		case i == len(words)-1:
			s += " or "
		case i > 0:
			s += ", "
		}
		s += "'" + w + "'"
	}
	return s
}
