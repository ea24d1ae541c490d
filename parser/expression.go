package parser

import (
	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// Binary precedence levels for precedence climbing.
const (
	_ int = iota
	precNullishCoalesce
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
)

// parseExpression parses Expression, a comma-separated sequence of
// assignment expressions. allowIn controls whether 'in' is a binary
// operator at the top level.
func (p *Parser) parseExpression(name *interner.Sym, allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	if err := p.enter("Expression"); err != nil {
		return nil, err
	}
	defer p.leave()

	first, err := p.parseAssignment(name, allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}

	exprs := []ast.Expression{first}
	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		if !tok.Is(token.Comma) {
			break
		}
		if _, err := p.cursor.Next(); err != nil {
			return nil, err
		}
		next, err := p.parseAssignment(nil, allowIn, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	if len(exprs) == 1 {
		return first, nil
	}
	return &ast.Sequence{Span: p.spanFrom(first.Location().Start), Expressions: exprs}, nil
}

// parseAssignment parses AssignmentExpression: yield, single-parameter
// arrow functions, conditional expressions and assignments.
func (p *Parser) parseAssignment(name *interner.Sym, allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	if err := p.enter("AssignmentExpression"); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}

	if allowYield && tok.IsKeyword(token.Yield) {
		if tok.Escaped {
			return nil, errGeneral("keyword must not contain escaped characters", tok.Span.Start)
		}
		return p.parseYield(allowIn, allowAwait)
	}

	if param, ok := p.identifierReference(tok, allowYield, allowAwait); ok {
		next, err := p.cursor.Peek(1)
		if err != nil {
			return nil, err
		}
		if next.Is(token.Arrow) {
			return p.parseArrow(name, param, allowIn, allowAwait)
		}
	}

	lhs, err := p.parseConditional(name, allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}

	tok, err = p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Punctuator || !tok.Punct.IsAssignment() {
		return lhs, nil
	}
	if !isSimpleTarget(lhs) {
		return nil, errGeneral("invalid assignment target", lhs.Location().Start)
	}
	if _, err := p.cursor.Next(); err != nil {
		return nil, err
	}

	var hint *interner.Sym
	if ident, ok := lhs.(*ast.Identifier); ok {
		hint = &ident.Name
	}
	value, err := p.parseAssignment(hint, allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	return &ast.Assign{
		Span:     p.spanFrom(lhs.Location().Start),
		Operator: tok.Punct.String(),
		Target:   lhs,
		Value:    value,
	}, nil
}

// isSimpleTarget reports whether e may be assigned to or updated.
func isSimpleTarget(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.GetConstField, *ast.GetField, *ast.GetPrivateField, *ast.GetSuperField:
		return true
	}
	return false
}

func (p *Parser) parseYield(allowIn, allowAwait bool) (ast.Expression, error) {
	tok, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}
	y := &ast.Yield{}

	next, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	if next.Is(token.Asterisk) {
		y.Delegate = true
		if _, err := p.cursor.Next(); err != nil {
			return nil, err
		}
	} else if !startsYieldOperand(next) {
		y.Span = p.spanFrom(tok.Span.Start)
		return y, nil
	}

	if y.Argument, err = p.parseAssignment(nil, allowIn, true, allowAwait); err != nil {
		return nil, err
	}
	y.Span = p.spanFrom(tok.Span.Start)
	return y, nil
}

// startsYieldOperand reports whether tok can begin the operand of a yield
// without a '*'.
func startsYieldOperand(tok token.Token) bool {
	switch tok.Kind {
	case token.EOF, token.TemplateMiddle, token.TemplateTail:
		return false
	case token.Keyword:
		return tok.Keyword != token.In && tok.Keyword != token.Instanceof
	case token.Punctuator:
		switch tok.Punct {
		case token.LeftParen, token.LeftBracket, token.LeftBrace, token.Plus, token.Minus,
			token.Not, token.BitwiseNot, token.Increment, token.Decrement:
			return true
		}
		return false
	}
	return true
}

// parseArrow parses param => body where body is an assignment expression.
func (p *Parser) parseArrow(name *interner.Sym, param interner.Sym, allowIn, allowAwait bool) (ast.Expression, error) {
	paramTok, err := p.cursor.Next()
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.Next(); err != nil {
		return nil, err
	}

	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	if tok.Is(token.LeftBrace) {
		return nil, errGeneral("arrow function body must be an expression", tok.Span.Start)
	}

	body, err := p.parseAssignment(nil, allowIn, false, allowAwait)
	if err != nil {
		return nil, err
	}
	arrow := &ast.Arrow{Span: p.spanFrom(paramTok.Span.Start), Param: param, Body: body}
	if name != nil {
		arrow.Name = *name
	}
	return arrow, nil
}

func (p *Parser) parseConditional(name *interner.Sym, allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	test, err := p.parseBinary(name, 0, allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	if !tok.Is(token.QuestionMark) {
		return test, nil
	}
	if _, err := p.cursor.Next(); err != nil {
		return nil, err
	}

	consequent, err := p.parseAssignment(nil, true, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	if _, err := p.cursor.Expect(token.Colon, "conditional expression"); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssignment(nil, allowIn, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	return &ast.Conditional{
		Span:       p.spanFrom(test.Location().Start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}, nil
}

// binaryPrecedence returns the operator at tok and its precedence, or 0.
func binaryPrecedence(tok token.Token, allowIn bool) (string, int) {
	switch tok.Kind {
	case token.Keyword:
		switch {
		case tok.Keyword == token.Instanceof && !tok.Escaped:
			return "instanceof", precRelational
		case tok.Keyword == token.In && !tok.Escaped && allowIn:
			return "in", precRelational
		}
		return "", 0
	case token.Punctuator:
	default:
		return "", 0
	}

	switch tok.Punct {
	case token.NullishCoalesce:
		return "??", precNullishCoalesce
	case token.Or:
		return "||", precLogicalOr
	case token.And:
		return "&&", precLogicalAnd
	case token.BitwiseOr:
		return "|", precBitwiseOr
	case token.BitwiseXor:
		return "^", precBitwiseXor
	case token.BitwiseAnd:
		return "&", precBitwiseAnd
	case token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual:
		return tok.Punct.String(), precEquality
	case token.LessThan, token.GreaterThan, token.LessThanOrEqual, token.GreaterThanOrEqual:
		return tok.Punct.String(), precRelational
	case token.LeftShift, token.RightShift, token.UnsignedRightShift:
		return tok.Punct.String(), precShift
	case token.Plus, token.Minus:
		return tok.Punct.String(), precAdditive
	case token.Asterisk, token.Slash, token.Percent:
		return tok.Punct.String(), precMultiplicative
	case token.Exponent:
		return "**", precExponent
	}
	return "", 0
}

// parseBinary parses operators binding tighter than minPrec by precedence
// climbing. ** is right-associative; the others associate left.
func (p *Parser) parseBinary(name *interner.Sym, minPrec int, allowIn, allowYield, allowAwait bool) (ast.Expression, error) {
	first, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	left, err := p.parseUnary(name, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	unaryLeft := startsUnary(first, allowAwait)

	for {
		tok, err := p.cursor.Peek(0)
		if err != nil {
			return nil, err
		}
		op, prec := binaryPrecedence(tok, allowIn)
		if prec <= minPrec {
			return left, nil
		}
		if prec == precExponent && unaryLeft {
			return nil, errGeneral("unary operator used immediately before exponentiation expression", tok.Span.Start)
		}
		if _, err := p.cursor.Next(); err != nil {
			return nil, err
		}

		rightMin := prec
		if prec == precExponent {
			rightMin = prec - 1
		}
		right, err := p.parseBinary(nil, rightMin, allowIn, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}

		span := p.spanFrom(left.Location().Start)
		switch op {
		case "&&", "||", "??":
			left = &ast.Logical{Span: span, Operator: op, Left: left, Right: right}
		default:
			left = &ast.Binary{Span: span, Operator: op, Left: left, Right: right}
		}
		unaryLeft = false
	}
}

// startsUnary reports whether tok begins a unary or await expression.
func startsUnary(tok token.Token, allowAwait bool) bool {
	switch tok.Kind {
	case token.Punctuator:
		switch tok.Punct {
		case token.Plus, token.Minus, token.Not, token.BitwiseNot:
			return true
		}
	case token.Keyword:
		switch tok.Keyword {
		case token.Typeof, token.Void, token.Delete:
			return true
		case token.Await:
			return allowAwait
		}
	}
	return false
}

// parseUnary parses UnaryExpression, including await and prefix and postfix
// update expressions.
func (p *Parser) parseUnary(name *interner.Sym, allowYield, allowAwait bool) (ast.Expression, error) {
	if err := p.enter("UnaryExpression"); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}

	if startsUnary(tok, allowAwait) {
		if tok.Kind == token.Keyword && tok.Escaped {
			return nil, errGeneral("keyword must not contain escaped characters", tok.Span.Start)
		}
		if _, err := p.cursor.Next(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary(nil, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		span := p.spanFrom(tok.Span.Start)
		if tok.IsKeyword(token.Await) {
			return &ast.Await{Span: span, Argument: operand}, nil
		}
		op := tok.Render(p.syms)
		return &ast.Unary{Span: span, Operator: op, Operand: operand}, nil
	}

	if tok.Is(token.Increment) || tok.Is(token.Decrement) {
		if _, err := p.cursor.Next(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary(nil, allowYield, allowAwait)
		if err != nil {
			return nil, err
		}
		if !isSimpleTarget(operand) {
			return nil, errGeneral("invalid update target", operand.Location().Start)
		}
		return &ast.Update{
			Span:     p.spanFrom(tok.Span.Start),
			Operator: tok.Punct.String(),
			Prefix:   true,
			Operand:  operand,
		}, nil
	}

	lhs, err := p.parseLeftHandSide(name, allowYield, allowAwait)
	if err != nil {
		return nil, err
	}
	next, err := p.cursor.Peek(0)
	if err != nil {
		return nil, err
	}
	// no line terminator is allowed before a postfix operator
	if !(next.Is(token.Increment) || next.Is(token.Decrement)) || next.Span.Start.Line != p.cursor.Last().Span.End.Line {
		return lhs, nil
	}
	if !isSimpleTarget(lhs) {
		return nil, errGeneral("invalid update target", lhs.Location().Start)
	}
	if _, err := p.cursor.Next(); err != nil {
		return nil, err
	}
	return &ast.Update{
		Span:     p.spanFrom(lhs.Location().Start),
		Operator: next.Punct.String(),
		Operand:  lhs,
	}, nil
}
