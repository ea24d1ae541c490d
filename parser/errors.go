package parser

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// AbruptEnd means the input ended where a token was required.
	AbruptEnd ErrorKind = iota
	// Unexpected means a token was present but not one the grammar allows.
	Unexpected
	// General is any other syntax error, described by Message.
	General
	// DepthExceeded means the input nests deeper than Options.MaxDepth.
	DepthExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case AbruptEnd:
		return "abrupt end"
	case Unexpected:
		return "unexpected token"
	case General:
		return "syntax error"
	case DepthExceeded:
		return "depth exceeded"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a syntax error. Which fields are set depends on Kind:
//
//	AbruptEnd      Position
//	Unexpected     Expected, Found, Span, Context
//	General        Message, Position
//	DepthExceeded  Position
type Error struct {
	Kind     ErrorKind
	Expected []string
	Found    string
	Context  string
	Span     token.Span
	Message  string
	Position token.Position
}

func (e *Error) Error() string {
	pos := e.Position
	if e.Kind == Unexpected {
		pos = e.Span.Start
	}
	var msg string
	switch e.Kind {
	case AbruptEnd:
		msg = "unexpected end of input"
	case Unexpected:
		if len(e.Expected) > 0 {
			msg = fmt.Sprintf("expected %s, got '%s'", strings.Join(e.Expected, " or "), e.Found)
		} else {
			msg = fmt.Sprintf("unexpected token '%s'", e.Found)
		}
		if e.Context != "" {
			msg += " in " + e.Context
		}
	case DepthExceeded:
		msg = "maximum depth exceeded"
	default:
		msg = e.Message
	}
	return fmt.Sprintf("parse error at %d:%d: %s", pos.Line, pos.Column, msg)
}

// AsError returns the *Error behind err, looking through wrapping.
func AsError(err error) (*Error, bool) {
	perr, ok := errors.Cause(err).(*Error)
	return perr, ok
}

func errAbruptEnd(pos token.Position) *Error {
	return &Error{Kind: AbruptEnd, Position: pos}
}

func errGeneral(msg string, pos token.Position) *Error {
	return &Error{Kind: General, Message: msg, Position: pos}
}

// errUnexpected reports tok as out of place. Running into the end of input
// is always reported as AbruptEnd.
func errUnexpected(syms *interner.Interner, tok token.Token, expected []string, context string) *Error {
	if tok.Kind == token.EOF {
		return errAbruptEnd(tok.Span.Start)
	}
	return &Error{
		Kind:     Unexpected,
		Expected: expected,
		Found:    tok.Render(syms),
		Context:  context,
		Span:     tok.Span,
	}
}
