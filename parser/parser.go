package parser

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// Parser turns the source of a single expression into an ast.Expression.
// A Parser is used for one parse and is not safe for concurrent use.
type Parser struct {
	cursor *Cursor
	syms   *interner.Interner
	opts   Options
	log    *zap.Logger

	depth  int
	indent int

	bareNew *ast.New // latest new expression parsed without arguments
}

func New(source string, syms *interner.Interner, opts Options) *Parser {
	opts = opts.withDefaults()
	return &Parser{
		cursor: NewCursor(source, syms, opts),
		syms:   syms,
		opts:   opts,
		log:    opts.Logger,
	}
}

// ParseExpression parses source as one complete expression.
func ParseExpression(source string, syms *interner.Interner, opts Options) (ast.Expression, error) {
	return New(source, syms, opts).ParseExpression()
}

// ParseExpression parses a full expression, comma sequences included, and
// requires it to span the whole input.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	expr, err := p.parseExpression(nil, true, p.opts.AllowYield, p.opts.AllowAwait)
	if err == nil {
		err = p.expectEnd()
	}
	return p.finish(expr, err)
}

// ParseMemberExpression parses a member expression starting at the current
// token: new and super forms, primary expressions and their property and
// template suffixes. name is the binding the expression is assigned to, if
// the caller already knows it. Input after the expression is left unread.
func (p *Parser) ParseMemberExpression(name *interner.Sym) (ast.Expression, error) {
	expr, err := p.parseMemberExpression(name, p.opts.AllowYield, p.opts.AllowAwait)
	return p.finish(expr, err)
}

// ParseLeftHandSideExpression is ParseMemberExpression extended with calls,
// super calls and optional chains.
func (p *Parser) ParseLeftHandSideExpression(name *interner.Sym) (ast.Expression, error) {
	expr, err := p.parseLeftHandSide(name, p.opts.AllowYield, p.opts.AllowAwait)
	return p.finish(expr, err)
}

// Cursor exposes the token cursor, for callers that manage class-body
// private environments around a parse.
func (p *Parser) Cursor() *Cursor {
	return p.cursor
}

func (p *Parser) finish(expr ast.Expression, err error) (ast.Expression, error) {
	if err != nil {
		p.log.Debug("parse failed", zap.Error(err), zap.Int("consumed", p.cursor.Consumed()))
		return nil, errors.WithStack(err)
	}
	return expr, nil
}

func (p *Parser) expectEnd() error {
	tok, err := p.cursor.Peek(0)
	if err != nil {
		return err
	}
	if tok.Kind != token.EOF {
		return errUnexpected(p.syms, tok, []string{"end of input"}, "expression")
	}
	return nil
}

// ---------- Tracing and depth ----------

func (p *Parser) position() token.Position {
	tok, err := p.cursor.Peek(0)
	if err != nil {
		return p.cursor.Last().Span.End
	}
	return tok.Span.Start
}

func (p *Parser) printTrace(a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	fmt.Fprintf(p.opts.TraceWriter, "%9s: ", p.position())
	i := 2 * p.indent
	for i > len(dots) {
		fmt.Fprint(p.opts.TraceWriter, dots)
		i -= len(dots)
	}
	fmt.Fprint(p.opts.TraceWriter, dots[:i])
	fmt.Fprintln(p.opts.TraceWriter, a...)
}

// enter marks the start of a recursive production. Every successful enter
// must be paired with a deferred leave.
func (p *Parser) enter(production string) error {
	if p.opts.MaxDepth > 0 && p.depth >= p.opts.MaxDepth {
		pos := p.position()
		p.log.Debug("maximum depth exceeded",
			zap.String("production", production),
			zap.Int("max_depth", p.opts.MaxDepth),
			zap.Stringer("pos", pos))
		return &Error{Kind: DepthExceeded, Position: pos}
	}
	p.depth++
	if p.opts.Trace {
		p.printTrace(production, "(")
		p.indent++
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
	if p.opts.Trace {
		p.indent--
		p.printTrace(")")
	}
}

// ---------- Helpers ----------

func (p *Parser) spanFrom(start token.Position) token.Span {
	return token.Span{Start: start, End: p.cursor.Last().Span.End}
}

func (p *Parser) unexpected(tok token.Token, context string, expected ...string) error {
	return errUnexpected(p.syms, tok, expected, context)
}

// propertyName maps a token used as a property key after '.' to its symbol.
// Reserved words are valid names, as are the literals true, false and null.
func (p *Parser) propertyName(tok token.Token) (interner.Sym, bool) {
	switch tok.Kind {
	case token.Identifier:
		return tok.Sym, true
	case token.Keyword:
		return p.syms.Intern(tok.Keyword.String()), true
	case token.BooleanLiteral:
		if tok.Bool {
			return interner.True, true
		}
		return interner.False, true
	case token.NullLiteral:
		return interner.Null, true
	}
	return interner.Empty, false
}

// identifierReference reports whether tok can name a binding in the given
// context, returning its symbol.
func (p *Parser) identifierReference(tok token.Token, allowYield, allowAwait bool) (interner.Sym, bool) {
	switch {
	case tok.Kind == token.Identifier:
		return tok.Sym, true
	case tok.IsKeyword(token.Yield) && !allowYield:
		return p.syms.Intern("yield"), true
	case tok.IsKeyword(token.Await) && !allowAwait:
		return p.syms.Intern("await"), true
	}
	return interner.Empty, false
}
