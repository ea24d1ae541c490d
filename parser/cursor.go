package parser

import (
	"go.uber.org/zap"

	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/lexer"
	"github.com/example/jsfront/token"
)

// Cursor buffers tokens from a lexer and hands them to the parser with
// bounded lookahead. It never rewinds: Consumed only grows.
type Cursor struct {
	lex  *lexer.Lexer
	syms *interner.Interner
	log  *zap.Logger

	buf      []token.Token
	last     token.Token
	consumed int

	// private names used per enclosing class body, innermost last
	privateEnvs       []map[interner.Sym]token.Position
	privateRoot       map[interner.Sym]token.Position
	requireClassScope bool
}

func NewCursor(source string, syms *interner.Interner, opts Options) *Cursor {
	opts = opts.withDefaults()
	return &Cursor{
		lex:               lexer.New(source, syms),
		syms:              syms,
		log:               opts.Logger,
		privateRoot:       make(map[interner.Sym]token.Position),
		requireClassScope: opts.RequireClassScope,
	}
}

func (c *Cursor) fill(n int) error {
	for len(c.buf) <= n {
		tok := c.lex.NextToken()
		if tok.Kind == token.Illegal {
			return errGeneral(tok.Literal, tok.Span.Start)
		}
		c.buf = append(c.buf, tok)
	}
	return nil
}

// Peek returns the token skip positions ahead without consuming anything.
// The end of input is an EOF token, not an error.
func (c *Cursor) Peek(skip int) (token.Token, error) {
	if err := c.fill(skip); err != nil {
		return token.Token{}, err
	}
	return c.buf[skip], nil
}

// Next consumes one token. Reaching the end of input is an AbruptEnd error.
func (c *Cursor) Next() (token.Token, error) {
	tok, err := c.Peek(0)
	if err != nil {
		return tok, err
	}
	if tok.Kind == token.EOF {
		return tok, errAbruptEnd(tok.Span.Start)
	}
	c.buf = c.buf[1:]
	c.last = tok
	c.consumed++
	return tok, nil
}

// Expect consumes the punctuator p or fails with an error naming context.
func (c *Cursor) Expect(p token.PunctuatorType, context string) (token.Token, error) {
	tok, err := c.Peek(0)
	if err != nil {
		return tok, err
	}
	if !tok.Is(p) {
		return tok, errUnexpected(c.syms, tok, []string{p.String()}, context)
	}
	return c.Next()
}

// Consumed is the number of tokens taken from the stream so far.
func (c *Cursor) Consumed() int {
	return c.consumed
}

// Last is the most recently consumed token.
func (c *Cursor) Last() token.Token {
	return c.last
}

// PushPrivateEnvironment opens a class body: private names used until the
// matching pop are collected separately.
func (c *Cursor) PushPrivateEnvironment() {
	c.privateEnvs = append(c.privateEnvs, make(map[interner.Sym]token.Position))
}

// PopPrivateEnvironment closes the innermost class body and returns the
// private names used inside it with the position of their first use.
func (c *Cursor) PopPrivateEnvironment() map[interner.Sym]token.Position {
	n := len(c.privateEnvs)
	if n == 0 {
		return nil
	}
	env := c.privateEnvs[n-1]
	c.privateEnvs = c.privateEnvs[:n-1]
	return env
}

// PushUsedPrivateIdentifier records a use of #sym so a later pass can check
// it against the declarations of the enclosing class.
func (c *Cursor) PushUsedPrivateIdentifier(sym interner.Sym, pos token.Position) error {
	env := c.privateRoot
	if n := len(c.privateEnvs); n > 0 {
		env = c.privateEnvs[n-1]
	} else if c.requireClassScope {
		return errGeneral("found private identifier outside of class", pos)
	}
	if _, ok := env[sym]; !ok {
		env[sym] = pos
	}
	c.log.Debug("private identifier used",
		zap.String("name", "#"+c.syms.Resolve(sym)),
		zap.Stringer("pos", pos),
		zap.Int("class_depth", len(c.privateEnvs)))
	return nil
}

// UsedPrivateIdentifiers returns the names recorded in the innermost open
// class body, or outside any class body when none is open.
func (c *Cursor) UsedPrivateIdentifiers() map[interner.Sym]token.Position {
	if n := len(c.privateEnvs); n > 0 {
		return c.privateEnvs[n-1]
	}
	return c.privateRoot
}
