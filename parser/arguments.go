package parser

import (
	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/token"
)

// parseArguments parses a parenthesized argument list. A trailing comma is
// allowed. The result is nil for ().
func (p *Parser) parseArguments(allowYield, allowAwait bool) ([]ast.Expression, error) {
	if _, err := p.cursor.Expect(token.LeftParen, "arguments"); err != nil {
		return nil, err
	}

	var args []ast.Expression
	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		if tok.Is(token.RightParen) {
			_, err := p.cursor.Next()
			return args, err
		}

		var arg ast.Expression
		if tok.Is(token.Spread) {
			arg, err = p.parseSpread(allowYield, allowAwait)
		} else {
			arg, err = p.parseAssignment(nil, true, allowYield, allowAwait)
		}
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		next, err := p.cursor.Next()
		if err != nil {
			return nil, err
		}
		if next.Is(token.RightParen) {
			return args, nil
		}
		if !next.Is(token.Comma) {
			return nil, p.unexpected(next, "arguments", ",", ")")
		}
	}
}

func (p *Parser) parseSpread(allowYield, allowAwait bool) (ast.Expression, error) {
	tok, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}
	arg, err := p.parseAssignment(nil, true, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	return &ast.Spread{Span: p.spanFrom(tok.Span.Start), Argument: arg}, nil
}
