package parser

import (
	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// parseMemberExpression parses
//
//	MemberExpression :
//	    PrimaryExpression
//	    MemberExpression [ Expression ]
//	    MemberExpression . IdentifierName
//	    MemberExpression . PrivateIdentifier
//	    MemberExpression TemplateLiteral
//	    SuperProperty
//	    new MemberExpression Arguments
//
// new without arguments is folded in here as well, producing a call with an
// empty argument list.
func (p *Parser) parseMemberExpression(name *interner.Sym, allowYield, allowAwait bool) (ast.Expression, error) {
	if err := p.enter("MemberExpression"); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}

	var lhs ast.Expression
	switch {
	case tok.Escaped && (tok.IsKeyword(token.New) || tok.IsKeyword(token.Super)):
		return nil, errGeneral("keyword must not contain escaped characters", tok.Span.Start)
	case tok.IsKeyword(token.New):
		lhs, err = p.parseNew(allowYield, allowAwait)
	case tok.IsKeyword(token.Super):
		lhs, err = p.parseSuperProperty(allowYield, allowAwait)
	default:
		lhs, err = p.parsePrimary(name, allowYield, allowAwait)
	}
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Is(token.Dot):
			lhs, err = p.parseDotMember(lhs)
		case tok.Is(token.LeftBracket):
			lhs, err = p.parseBracketMember(lhs, allowYield, allowAwait)
		case tok.Kind == token.TemplateNoSubstitution || tok.Kind == token.TemplateHead:
			lhs, err = p.parseTaggedTemplate(allowYield, allowAwait, tok.Span.Start, lhs)
		default:
			return lhs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseNew(allowYield, allowAwait bool) (ast.Expression, error) {
	newTok, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}

	callee, err := p.parseMemberExpression(nil, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}

	var args []ast.Expression
	next, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	if next.Is(token.LeftParen) {
		if args, err = p.parseArguments(allowYield, allowAwait); err != nil {
			return nil, err
		}
	}

	call := &ast.Call{Span: p.spanFrom(callee.Location().Start), Callee: callee, Args: args}
	n := &ast.New{Span: p.spanFrom(newTok.Span.Start), Call: call}
	if !next.Is(token.LeftParen) {
		p.bareNew = n
	}
	return n, nil
}

func (p *Parser) parseSuperProperty(allowYield, allowAwait bool) (ast.Expression, error) {
	superTok, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}

	tok, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Is(token.Dot):
		field, err := p.cursor.Next()
		if err != nil {
			return nil, err
		}
		if field.Kind == token.PrivateIdentifier {
			return nil, errGeneral("unexpected private identifier", field.Span.Start)
		}
		sym, ok := p.propertyName(field)
		if !ok {
			return nil, p.unexpected(field, "super property", "identifier")
		}
		return &ast.GetSuperField{Span: p.spanFrom(superTok.Span.Start), Name: sym}, nil

	case tok.Is(token.LeftBracket):
		key, err := p.parseExpression(nil, true, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		if _, err := p.cursor.Expect(token.RightBracket, "super property"); err != nil {
			return nil, err
		}
		return &ast.GetSuperField{Span: p.spanFrom(superTok.Span.Start), Key: key}, nil
	}
	return nil, p.unexpected(tok, "super property", ".", "[")
}

// parseDotMember parses '.' followed by a property name or a private name.
func (p *Parser) parseDotMember(object ast.Expression) (ast.Expression, error) {
	if _, err := p.cursor.Next(); err != nil {
		return nil, err
	}
	field, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}
	start := object.Location().Start

	if field.Kind == token.PrivateIdentifier {
		if err := p.cursor.PushUsedPrivateIdentifier(field.Sym, field.Span.Start); err != nil {
			return nil, err
		}
		return &ast.GetPrivateField{Span: p.spanFrom(start), Object: object, Field: field.Sym}, nil
	}

	sym, ok := p.propertyName(field)
	if !ok {
		return nil, p.unexpected(field, "member expression", "identifier")
	}
	return &ast.GetConstField{Span: p.spanFrom(start), Object: object, Field: sym}, nil
}

// parseBracketMember parses '[' Expression ']'.
func (p *Parser) parseBracketMember(object ast.Expression, allowYield, allowAwait bool) (ast.Expression, error) {
	if _, err := p.cursor.Next(); err != nil {
		return nil, err
	}
	key, err := p.parseExpression(nil, true, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.Expect(token.RightBracket, "member expression"); err != nil {
		return nil, err
	}
	return &ast.GetField{Span: p.spanFrom(object.Location().Start), Object: object, Field: key}, nil
}
