package parser

import (
	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// parseLeftHandSide parses
//
//	LeftHandSideExpression :
//	    NewExpression
//	    CallExpression
//	    OptionalExpression
func (p *Parser) parseLeftHandSide(name *interner.Sym, allowYield, allowAwait bool) (ast.Expression, error) {
	if err := p.enter("LeftHandSideExpression"); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}

	var lhs ast.Expression
	if tok.IsKeyword(token.Super) && !tok.Escaped {
		next, err := p.cursor.Peek(1)
		if err != nil {
			return nil, err
		}
		if next.Is(token.LeftParen) {
			if _, err := p.cursor.Next(); err != nil {
				return nil, err
			}
			args, err := p.parseArguments(allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			lhs = &ast.SuperCall{Span: p.spanFrom(tok.Span.Start), Args: args}
		}
	}
	if lhs == nil {
		if lhs, err = p.parseMemberExpression(name, allowYield, allowAwait); err != nil {
			return nil, err
		}
	}

	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Is(token.LeftParen):
			args, err := p.parseArguments(allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			lhs = &ast.Call{Span: p.spanFrom(lhs.Location().Start), Callee: lhs, Args: args}
			continue
		case tok.Is(token.Dot):
			lhs, err = p.parseDotMember(lhs)
		case tok.Is(token.LeftBracket):
			lhs, err = p.parseBracketMember(lhs, allowYield, allowAwait)
		case tok.Kind == token.TemplateNoSubstitution || tok.Kind == token.TemplateHead:
			lhs, err = p.parseTaggedTemplate(allowYield, allowAwait, tok.Span.Start, lhs)
		case tok.Is(token.OptionalChain):
			if n, ok := lhs.(*ast.New); ok && n == p.bareNew && p.cursor.Last().Span.End == n.Span.End {
				return nil, errGeneral("optional chain cannot follow new without arguments", tok.Span.Start)
			}
			lhs, err = p.parseOptionalChain(lhs, allowYield, allowAwait)
		default:
			return lhs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseOptionalChain parses the links following target, starting at the
// first ?. token. The chain ends at the first token that cannot extend it.
func (p *Parser) parseOptionalChain(target ast.Expression, allowYield, allowAwait bool) (ast.Expression, error) {
	var chain []ast.OptionalOperation
	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}

		shorted := false
		switch {
		case tok.Is(token.OptionalChain):
			shorted = true
			if _, err := p.cursor.Next(); err != nil {
				return nil, err
			}
			if tok, err = p.cursor.Peek(0); err != nil {
				return nil, err
			}
		case tok.Is(token.Dot):
			if _, err := p.cursor.Next(); err != nil {
				return nil, err
			}
			if tok, err = p.cursor.Peek(0); err != nil {
				return nil, err
			}
			if tok.Is(token.LeftParen) || tok.Is(token.LeftBracket) {
				return nil, p.unexpected(tok, "optional chain", "identifier")
			}
		case tok.Is(token.LeftParen), tok.Is(token.LeftBracket):
		case tok.Kind == token.TemplateNoSubstitution || tok.Kind == token.TemplateHead:
			return nil, errGeneral("tagged template cannot be used in optional chain", tok.Span.Start)
		default:
			return &ast.Optional{Span: p.spanFrom(target.Location().Start), Target: target, Chain: chain}, nil
		}

		op := ast.OptionalOperation{Shorted: shorted}
		switch {
		case tok.Is(token.LeftParen):
			args, err := p.parseArguments(allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			op.Kind, op.Args = ast.OptionalCall, args
		case tok.Is(token.LeftBracket):
			if _, err := p.cursor.Next(); err != nil {
				return nil, err
			}
			key, err := p.parseExpression(nil, true, allowYield, allowAwait)
			if err != nil {
				return nil, err
			}
			if _, err := p.cursor.Expect(token.RightBracket, "optional chain"); err != nil {
				return nil, err
			}
			op.Kind, op.Field = ast.OptionalComputed, key
		case tok.Kind == token.TemplateNoSubstitution || tok.Kind == token.TemplateHead:
			return nil, errGeneral("tagged template cannot be used in optional chain", tok.Span.Start)
		default:
			field, err := p.cursor.Next()
			if err != nil {
				return nil, err
			}
			if field.Kind == token.PrivateIdentifier {
				if err := p.cursor.PushUsedPrivateIdentifier(field.Sym, field.Span.Start); err != nil {
					return nil, err
				}
				op.Kind, op.Name = ast.OptionalPrivate, field.Sym
				break
			}
			sym, ok := p.propertyName(field)
			if !ok {
				return nil, p.unexpected(field, "optional chain", "identifier")
			}
			op.Kind, op.Name = ast.OptionalConst, sym
		}
		chain = append(chain, op)
	}
}
