package parser

import (
	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/token"
)

type templateParts struct {
	raws    []string
	cookeds []string
	exprs   []ast.Expression
}

// parseTemplateParts consumes a template literal, either a single
// no-substitution piece or a head followed by substitutions separated by
// middles and closed by a tail.
func (p *Parser) parseTemplateParts(allowYield, allowAwait bool, start token.Position) (templateParts, error) {
	var parts templateParts
	tok, err := p.cursor.Next()
	if err != nil {
		return parts, err
	}
	parts.raws = append(parts.raws, tok.Raw)
	parts.cookeds = append(parts.cookeds, tok.Literal)

	switch tok.Kind {
	case token.TemplateNoSubstitution:
		return parts, nil
	case token.TemplateHead:
	default:
		return parts, p.unexpected(tok, "template literal", "template literal")
	}

	for {
		expr, err := p.parseExpression(nil, true, allowYield, allowAwait)
		if err != nil {
			return parts, err
		}
		parts.exprs = append(parts.exprs, expr)

		tok, err := p.cursor.Next()
		if err != nil {
			return parts, err
		}
		switch tok.Kind {
		case token.TemplateMiddle:
		case token.TemplateTail:
			parts.raws = append(parts.raws, tok.Raw)
			parts.cookeds = append(parts.cookeds, tok.Literal)
			return parts, nil
		default:
			return parts, p.unexpected(tok, "template literal started at "+start.String(), "template continuation")
		}
		parts.raws = append(parts.raws, tok.Raw)
		parts.cookeds = append(parts.cookeds, tok.Literal)
	}
}

// parseTaggedTemplate binds the template at the cursor to tag. start is the
// position of the template's first token.
func (p *Parser) parseTaggedTemplate(allowYield, allowAwait bool, start token.Position, tag ast.Expression) (ast.Expression, error) {
	parts, err := p.parseTemplateParts(allowYield, allowAwait, start)
	if err != nil {
		return nil, err
	}
	return &ast.TaggedTemplate{
		Span:    p.spanFrom(tag.Location().Start),
		Tag:     tag,
		Raws:    parts.raws,
		Cookeds: parts.cookeds,
		Exprs:   parts.exprs,
	}, nil
}

func (p *Parser) parseTemplateLiteral(allowYield, allowAwait bool) (ast.Expression, error) {
	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	parts, err := p.parseTemplateParts(allowYield, allowAwait, tok.Span.Start)
	if err != nil {
		return nil, err
	}
	return &ast.TemplateLiteral{
		Span:    p.spanFrom(tok.Span.Start),
		Raws:    parts.raws,
		Cookeds: parts.cookeds,
		Exprs:   parts.exprs,
	}, nil
}
