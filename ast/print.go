package ast

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/example/jsfront/interner"
)

// Printing precedence, lowest first.
const (
	_ int = iota
	precSequence
	precAssign
	precConditional
	precNullish
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
	precUnary
	precUpdate
	precCall
	precMember
	precPrimary
)

// Print renders e as source text. Parentheses are added wherever the tree
// would otherwise re-parse into a different shape.
func Print(e Expression, syms *interner.Interner) string {
	p := &printer{syms: syms}
	p.expr(e, precSequence)
	return p.buf.String()
}

type printer struct {
	buf  strings.Builder
	syms *interner.Interner
}

func (p *printer) write(s string) {
	p.buf.WriteString(s)
}

func (p *printer) name(sym interner.Sym) {
	p.write(p.syms.Resolve(sym))
}

func (p *printer) sub(e Expression, min int) string {
	s := &printer{syms: p.syms}
	s.expr(e, min)
	return s.buf.String()
}

func (p *printer) parens(e Expression) {
	p.write("(")
	p.node(e)
	p.write(")")
}

func (p *printer) expr(e Expression, min int) {
	if precedence(e) < min {
		p.parens(e)
		return
	}
	p.node(e)
}

// object prints the left side of a member access, tag or optional chain.
func (p *printer) object(e Expression) {
	switch e.(type) {
	case *NumericLiteral, *Optional:
		p.parens(e)
		return
	}
	p.expr(e, precCall)
}

func (p *printer) callee(e Expression) {
	if _, ok := e.(*Optional); ok {
		p.parens(e)
		return
	}
	p.expr(e, precCall)
}

func (p *printer) newCallee(e Expression) {
	if newCalleeNeedsParens(e) {
		p.parens(e)
		return
	}
	p.node(e)
}

// newCalleeNeedsParens reports whether a call inside the callee's object
// chain would otherwise bind the arguments of new.
func newCalleeNeedsParens(e Expression) bool {
	if precedence(e) < precMember {
		return true
	}
	for {
		switch n := e.(type) {
		case *GetField:
			e = n.Object
		case *GetConstField:
			e = n.Object
		case *GetPrivateField:
			e = n.Object
		case *TaggedTemplate:
			e = n.Tag
		case *Call, *SuperCall:
			return true
		default:
			return false
		}
	}
}

func (p *printer) args(args []Expression) {
	p.write("(")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		p.expr(a, precAssign)
	}
	p.write(")")
}

func (p *printer) template(raws []string, exprs []Expression) {
	p.write("`")
	for i, raw := range raws {
		p.write(raw)
		if i < len(exprs) {
			p.write("${")
			p.expr(exprs[i], precSequence)
			p.write("}")
		}
	}
	p.write("`")
}

func (p *printer) node(e Expression) {
	switch e := e.(type) {
	case *Identifier:
		p.name(e.Name)
	case *This:
		p.write("this")
	case *NumericLiteral:
		p.write(e.Raw)
	case *StringLiteral:
		p.write(Quote(e.Value))
	case *BooleanLiteral:
		if e.Value {
			p.write("true")
		} else {
			p.write("false")
		}
	case *NullLiteral:
		p.write("null")
	case *RegExpLiteral:
		p.write("/" + e.Pattern + "/" + e.Flags)
	case *TemplateLiteral:
		p.template(e.Raws, e.Exprs)

	case *ArrayLiteral:
		p.write("[")
		for i, el := range e.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el != nil {
				p.expr(el, precAssign)
			}
		}
		if n := len(e.Elements); n > 0 && e.Elements[n-1] == nil {
			p.write(",")
		}
		p.write("]")

	case *ObjectLiteral:
		p.write("{")
		for i, prop := range e.Properties {
			if i > 0 {
				p.write(", ")
			}
			p.property(prop)
		}
		p.write("}")

	case *Spread:
		p.write("...")
		p.expr(e.Argument, precAssign)

	case *New:
		p.write("new ")
		p.newCallee(e.Call.Callee)
		p.args(e.Call.Args)
	case *Call:
		p.callee(e.Callee)
		p.args(e.Args)
	case *SuperCall:
		p.write("super")
		p.args(e.Args)
	case *GetField:
		p.object(e.Object)
		p.write("[")
		p.expr(e.Field, precSequence)
		p.write("]")
	case *GetConstField:
		p.object(e.Object)
		p.write(".")
		p.name(e.Field)
	case *GetPrivateField:
		p.object(e.Object)
		p.write(".#")
		p.name(e.Field)
	case *GetSuperField:
		if e.Key != nil {
			p.write("super[")
			p.expr(e.Key, precSequence)
			p.write("]")
		} else {
			p.write("super.")
			p.name(e.Name)
		}
	case *TaggedTemplate:
		p.object(e.Tag)
		p.template(e.Raws, e.Exprs)
	case *Optional:
		p.object(e.Target)
		for _, op := range e.Chain {
			p.optional(op)
		}

	case *Unary:
		p.write(e.Operator)
		operand := p.sub(e.Operand, precUnary)
		switch e.Operator {
		case "+", "-":
			if strings.HasPrefix(operand, "+") || strings.HasPrefix(operand, "-") {
				operand = "(" + operand + ")"
			}
		case "!", "~":
		default:
			p.write(" ")
		}
		p.write(operand)
	case *Await:
		p.write("await ")
		p.expr(e.Argument, precUnary)
	case *Update:
		if e.Prefix {
			p.write(e.Operator)
			p.expr(e.Operand, precCall)
		} else {
			p.expr(e.Operand, precCall)
			p.write(e.Operator)
		}
	case *Binary:
		prec := BinaryPrecedence(e.Operator)
		left, right := prec, prec+1
		if e.Operator == "**" {
			left, right = precUpdate, prec
		}
		p.expr(e.Left, left)
		p.write(" " + e.Operator + " ")
		p.expr(e.Right, right)
	case *Logical:
		prec := BinaryPrecedence(e.Operator)
		p.logicalOperand(e.Operator, e.Left, prec)
		p.write(" " + e.Operator + " ")
		p.logicalOperand(e.Operator, e.Right, prec+1)
	case *Assign:
		p.expr(e.Target, precCall)
		p.write(" " + e.Operator + " ")
		p.expr(e.Value, precAssign)
	case *Conditional:
		p.expr(e.Test, precConditional+1)
		p.write(" ? ")
		p.expr(e.Consequent, precAssign)
		p.write(" : ")
		p.expr(e.Alternate, precAssign)
	case *Sequence:
		for i, x := range e.Expressions {
			if i > 0 {
				p.write(", ")
			}
			p.expr(x, precAssign)
		}
	case *Arrow:
		p.name(e.Param)
		p.write(" => ")
		if _, ok := e.Body.(*ObjectLiteral); ok {
			p.parens(e.Body)
		} else {
			p.expr(e.Body, precAssign)
		}
	case *Yield:
		p.write("yield")
		if e.Delegate {
			p.write("*")
		}
		if e.Argument != nil {
			p.write(" ")
			p.expr(e.Argument, precAssign)
		}
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", e))
	}
}

// logicalOperand keeps ?? from sharing an unparenthesized operand with
// && or ||.
func (p *printer) logicalOperand(op string, e Expression, min int) {
	if l, ok := e.(*Logical); ok && (op == "??") != (l.Operator == "??") {
		p.parens(e)
		return
	}
	p.expr(e, min)
}

func (p *printer) property(prop *Property) {
	switch prop.Kind {
	case PropertySpread:
		p.write("...")
		p.expr(prop.Value, precAssign)
		return
	case PropertyShorthand:
		p.node(prop.Key)
		return
	}
	if prop.Computed {
		p.write("[")
		p.expr(prop.Key, precAssign)
		p.write("]")
	} else {
		p.node(prop.Key)
	}
	p.write(": ")
	p.expr(prop.Value, precAssign)
}

func (p *printer) optional(op OptionalOperation) {
	if op.Shorted {
		p.write("?.")
	}
	switch op.Kind {
	case OptionalConst:
		if !op.Shorted {
			p.write(".")
		}
		p.name(op.Name)
	case OptionalPrivate:
		if !op.Shorted {
			p.write(".")
		}
		p.write("#")
		p.name(op.Name)
	case OptionalComputed:
		p.write("[")
		p.expr(op.Field, precSequence)
		p.write("]")
	case OptionalCall:
		p.args(op.Args)
	}
}

func precedence(e Expression) int {
	switch e := e.(type) {
	case *Sequence:
		return precSequence
	case *Assign, *Arrow, *Yield:
		return precAssign
	case *Conditional:
		return precConditional
	case *Binary:
		return BinaryPrecedence(e.Operator)
	case *Logical:
		return BinaryPrecedence(e.Operator)
	case *Unary, *Await:
		return precUnary
	case *Update:
		return precUpdate
	case *Call, *SuperCall, *Optional:
		return precCall
	case *New, *GetField, *GetConstField, *GetPrivateField, *GetSuperField, *TaggedTemplate:
		return precMember
	default:
		return precPrimary
	}
}

// BinaryPrecedence returns the binding power of a binary or logical
// operator, or 0 if op is not one.
func BinaryPrecedence(op string) int {
	switch op {
	case "??":
		return precNullish
	case "||":
		return precLogicalOr
	case "&&":
		return precLogicalAnd
	case "|":
		return precBitwiseOr
	case "^":
		return precBitwiseXor
	case "&":
		return precBitwiseAnd
	case "==", "!=", "===", "!==":
		return precEquality
	case "<", ">", "<=", ">=", "instanceof", "in":
		return precRelational
	case "<<", ">>", ">>>":
		return precShift
	case "+", "-":
		return precAdditive
	case "*", "/", "%":
		return precMultiplicative
	case "**":
		return precExponent
	}
	return 0
}

// Quote renders s as a double-quoted string literal. Lone surrogates, which
// the lexer stores as 3-byte WTF-8 sequences, are written back as \u
// escapes.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if i+2 < len(s) && s[i] == 0xED && s[i+1] >= 0xA0 {
				cu := rune(s[i]&0x0F)<<12 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F)
				fmt.Fprintf(&b, `\u%04X`, cu)
				i += 3
				continue
			}
			b.WriteString(`\uFFFD`)
			i++
			continue
		}
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			if r < 0x20 || r == 0x7F {
				fmt.Fprintf(&b, `\x%02X`, r)
			} else {
				b.WriteRune(r)
			}
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}
