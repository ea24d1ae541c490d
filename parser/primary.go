package parser

import (
	"strconv"
	"strings"

	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// parsePrimary parses PrimaryExpression. name, when set, is forwarded into
// parenthesized expressions so that (x => x) still learns the binding it is
// assigned to.
func (p *Parser) parsePrimary(name *interner.Sym, allowYield, allowAwait bool) (ast.Expression, error) {
	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.Identifier:
		p.cursor.Next()
		return &ast.Identifier{Span: tok.Span, Name: tok.Sym}, nil

	case token.Keyword:
		if tok.IsKeyword(token.This) {
			if tok.Escaped {
				return nil, errGeneral("keyword must not contain escaped characters", tok.Span.Start)
			}
			p.cursor.Next()
			return &ast.This{Span: tok.Span}, nil
		}
		if sym, ok := p.identifierReference(tok, allowYield, allowAwait); ok {
			p.cursor.Next()
			return &ast.Identifier{Span: tok.Span, Name: sym}, nil
		}

	case token.NumericLiteral:
		p.cursor.Next()
		val, err := parseJSNumber(tok.Literal)
		if err != nil {
			return nil, errGeneral("invalid number: "+tok.Literal, tok.Span.Start)
		}
		return &ast.NumericLiteral{Span: tok.Span, Raw: tok.Literal, Value: val}, nil

	case token.StringLiteral:
		p.cursor.Next()
		return &ast.StringLiteral{Span: tok.Span, Value: tok.Literal}, nil

	case token.BooleanLiteral:
		if tok.Escaped {
			return nil, errGeneral("keyword must not contain escaped characters", tok.Span.Start)
		}
		p.cursor.Next()
		return &ast.BooleanLiteral{Span: tok.Span, Value: tok.Bool}, nil

	case token.NullLiteral:
		if tok.Escaped {
			return nil, errGeneral("keyword must not contain escaped characters", tok.Span.Start)
		}
		p.cursor.Next()
		return &ast.NullLiteral{Span: tok.Span}, nil

	case token.RegularExpression:
		p.cursor.Next()
		raw := tok.Literal
		lastSlash := strings.LastIndex(raw, "/")
		return &ast.RegExpLiteral{Span: tok.Span, Pattern: raw[1:lastSlash], Flags: raw[lastSlash+1:]}, nil

	case token.TemplateNoSubstitution, token.TemplateHead:
		return p.parseTemplateLiteral(allowYield, allowAwait)

	case token.Punctuator:
		switch tok.Punct {
		case token.LeftParen:
			return p.parseParenthesized(name, allowYield, allowAwait)
		case token.LeftBracket:
			return p.parseArrayLiteral(allowYield, allowAwait)
		case token.LeftBrace:
			return p.parseObjectLiteral(allowYield, allowAwait)
		}
	}
	return nil, p.unexpected(tok, "primary expression")
}

// parseJSNumber converts a numeric literal to its value. Literals too large
// to represent saturate instead of failing.
func parseJSNumber(s string) (float64, error) {
	s = strings.TrimSuffix(s, "n")
	cleaned := strings.ReplaceAll(s, "_", "")

	var val float64
	var err error
	base := 0
	if len(cleaned) > 2 {
		switch cleaned[:2] {
		case "0x", "0X":
			base = 16
		case "0o", "0O":
			base = 8
		case "0b", "0B":
			base = 2
		}
	}
	if base != 0 {
		var u uint64
		u, err = strconv.ParseUint(cleaned[2:], base, 64)
		val = float64(u)
	} else {
		val, err = strconv.ParseFloat(cleaned, 64)
	}
	if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
		err = nil
	}
	return val, err
}

// parseParenthesized parses ( Expression ). The parentheses leave no node
// behind.
func (p *Parser) parseParenthesized(name *interner.Sym, allowYield, allowAwait bool) (ast.Expression, error) {
	if _, err := p.cursor.Next(); err != nil {
		return nil, err
	}
	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Is(token.RightParen) {
		return nil, p.unexpected(tok, "parenthesized expression", "expression")
	}
	expr, err := p.parseExpression(name, true, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.Expect(token.RightParen, "parenthesized expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseArrayLiteral parses [ a, , ...b, ]. Holes are nil elements.
func (p *Parser) parseArrayLiteral(allowYield, allowAwait bool) (ast.Expression, error) {
	open, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}

	arr := &ast.ArrayLiteral{}
	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		if tok.Is(token.RightBracket) {
			p.cursor.Next()
			break
		}
		if tok.Is(token.Comma) {
			p.cursor.Next()
			arr.Elements = append(arr.Elements, nil)
			continue
		}

		var el ast.Expression
		if tok.Is(token.Spread) {
			el, err = p.parseSpread(allowYield, allowAwait)
		} else {
			el, err = p.parseAssignment(nil, true, allowYield, allowAwait)
		}
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, el)

		next, err := p.cursor.Next()
		if err != nil {
			return nil, err
		}
		if next.Is(token.RightBracket) {
			break
		}
		if !next.Is(token.Comma) {
			return nil, p.unexpected(next, "array literal", ",", "]")
		}
	}
	arr.Span = p.spanFrom(open.Span.Start)
	return arr, nil
}

func (p *Parser) parseObjectLiteral(allowYield, allowAwait bool) (ast.Expression, error) {
	open, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}

	obj := &ast.ObjectLiteral{}
	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		if tok.Is(token.RightBrace) {
			p.cursor.Next()
			break
		}

		prop, err := p.parseProperty(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, prop)

		next, err := p.cursor.Next()
		if err != nil {
			return nil, err
		}
		if next.Is(token.RightBrace) {
			break
		}
		if !next.Is(token.Comma) {
			return nil, p.unexpected(next, "object literal", ",", "}")
		}
	}
	obj.Span = p.spanFrom(open.Span.Start)
	return obj, nil
}

// parseProperty parses one object literal member: name: value, "str": value,
// 1: value, [key]: value, shorthand name, or ...spread.
func (p *Parser) parseProperty(allowYield, allowAwait bool) (*ast.Property, error) {
	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	start := tok.Span.Start

	if tok.Is(token.Spread) {
		spread, err := p.parseSpread(allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		return &ast.Property{
			Span:  spread.Location(),
			Kind:  ast.PropertySpread,
			Value: spread.(*ast.Spread).Argument,
		}, nil
	}

	prop := &ast.Property{Kind: ast.PropertyInit}
	var hint *interner.Sym
	switch {
	case tok.Is(token.LeftBracket):
		p.cursor.Next()
		if prop.Key, err = p.parseAssignment(nil, true, allowYield, allowAwait); err != nil {
			return nil, err
		}
		if _, err := p.cursor.Expect(token.RightBracket, "computed property name"); err != nil {
			return nil, err
		}
		prop.Computed = true

	case tok.Kind == token.StringLiteral:
		p.cursor.Next()
		prop.Key = &ast.StringLiteral{Span: tok.Span, Value: tok.Literal}

	case tok.Kind == token.NumericLiteral:
		p.cursor.Next()
		val, err := parseJSNumber(tok.Literal)
		if err != nil {
			return nil, errGeneral("invalid number: "+tok.Literal, tok.Span.Start)
		}
		prop.Key = &ast.NumericLiteral{Span: tok.Span, Raw: tok.Literal, Value: val}

	default:
		sym, ok := p.propertyName(tok)
		if !ok {
			return nil, p.unexpected(tok, "object literal", "property name")
		}
		p.cursor.Next()
		key := &ast.Identifier{Span: tok.Span, Name: sym}
		prop.Key = key
		hint = &key.Name

		next, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		if next.Is(token.Comma) || next.Is(token.RightBrace) {
			ref, ok := p.identifierReference(tok, allowYield, allowAwait)
			if !ok {
				return nil, p.unexpected(next, "object literal", ":")
			}
			prop.Kind = ast.PropertyShorthand
			prop.Value = &ast.Identifier{Span: tok.Span, Name: ref}
			prop.Span = tok.Span
			return prop, nil
		}
	}

	if _, err := p.cursor.Expect(token.Colon, "object literal"); err != nil {
		return nil, err
	}
	if prop.Value, err = p.parseAssignment(hint, true, allowYield, allowAwait); err != nil {
		return nil, err
	}
	prop.Span = p.spanFrom(start)
	return prop, nil
}
