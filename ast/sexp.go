package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/jsfront/interner"
)

// Sexp renders e in constructor notation, e.g.
//
//	GetConstField(GetConstField(a, b), c)
//	New(Call(Foo, []))
//
// It is meant for tests and debugging output, not for re-parsing.
func Sexp(e Expression, syms *interner.Interner) string {
	s := &sexp{syms: syms}
	return s.expr(e)
}

type sexp struct {
	syms *interner.Interner
}

func (s *sexp) list(es []Expression) string {
	parts := make([]string, len(es))
	for i, e := range es {
		if e == nil {
			parts[i] = "<hole>"
			continue
		}
		parts[i] = s.expr(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func quoteAll(ss []string) string {
	parts := make([]string, len(ss))
	for i, str := range ss {
		parts[i] = strconv.Quote(str)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (s *sexp) expr(e Expression) string {
	name := s.syms.Resolve
	switch e := e.(type) {
	case *New:
		return "New(" + s.expr(e.Call) + ")"
	case *Call:
		return fmt.Sprintf("Call(%s, %s)", s.expr(e.Callee), s.list(e.Args))
	case *SuperCall:
		return fmt.Sprintf("SuperCall(%s)", s.list(e.Args))
	case *GetField:
		return fmt.Sprintf("GetField(%s, %s)", s.expr(e.Object), s.expr(e.Field))
	case *GetConstField:
		return fmt.Sprintf("GetConstField(%s, %s)", s.expr(e.Object), name(e.Field))
	case *GetPrivateField:
		return fmt.Sprintf("GetPrivateField(%s, #%s)", s.expr(e.Object), name(e.Field))
	case *GetSuperField:
		if e.Key != nil {
			return fmt.Sprintf("GetSuperField([%s])", s.expr(e.Key))
		}
		return fmt.Sprintf("GetSuperField(%s)", name(e.Name))
	case *TaggedTemplate:
		return fmt.Sprintf("TaggedTemplate(%s, %s, %s)", s.expr(e.Tag), quoteAll(e.Raws), s.list(e.Exprs))
	case *Optional:
		ops := make([]string, len(e.Chain))
		for i, op := range e.Chain {
			ops[i] = s.optional(op)
		}
		return fmt.Sprintf("Optional(%s, [%s])", s.expr(e.Target), strings.Join(ops, ", "))

	case *Identifier:
		return name(e.Name)
	case *This:
		return "this"
	case *NumericLiteral:
		return e.Raw
	case *StringLiteral:
		return strconv.Quote(e.Value)
	case *BooleanLiteral:
		return strconv.FormatBool(e.Value)
	case *NullLiteral:
		return "null"
	case *RegExpLiteral:
		return "/" + e.Pattern + "/" + e.Flags
	case *TemplateLiteral:
		return fmt.Sprintf("Template(%s, %s)", quoteAll(e.Cookeds), s.list(e.Exprs))
	case *ArrayLiteral:
		return "Array(" + s.list(e.Elements) + ")"
	case *ObjectLiteral:
		props := make([]string, len(e.Properties))
		for i, p := range e.Properties {
			props[i] = s.property(p)
		}
		return "Object([" + strings.Join(props, ", ") + "])"
	case *Spread:
		return "Spread(" + s.expr(e.Argument) + ")"

	case *Unary:
		return fmt.Sprintf("Unary(%s, %s)", e.Operator, s.expr(e.Operand))
	case *Update:
		fix := "postfix"
		if e.Prefix {
			fix = "prefix"
		}
		return fmt.Sprintf("Update(%s, %s, %s)", e.Operator, fix, s.expr(e.Operand))
	case *Binary:
		return fmt.Sprintf("Binary(%s, %s, %s)", e.Operator, s.expr(e.Left), s.expr(e.Right))
	case *Logical:
		return fmt.Sprintf("Logical(%s, %s, %s)", e.Operator, s.expr(e.Left), s.expr(e.Right))
	case *Assign:
		return fmt.Sprintf("Assign(%s, %s, %s)", e.Operator, s.expr(e.Target), s.expr(e.Value))
	case *Conditional:
		return fmt.Sprintf("Conditional(%s, %s, %s)", s.expr(e.Test), s.expr(e.Consequent), s.expr(e.Alternate))
	case *Sequence:
		return "Sequence(" + s.list(e.Expressions) + ")"
	case *Arrow:
		if e.Name != interner.Empty {
			return fmt.Sprintf("Arrow[%s](%s, %s)", name(e.Name), name(e.Param), s.expr(e.Body))
		}
		return fmt.Sprintf("Arrow(%s, %s)", name(e.Param), s.expr(e.Body))
	case *Yield:
		kw := "Yield"
		if e.Delegate {
			kw = "YieldDelegate"
		}
		if e.Argument == nil {
			return kw + "()"
		}
		return kw + "(" + s.expr(e.Argument) + ")"
	case *Await:
		return "Await(" + s.expr(e.Argument) + ")"
	}
	return fmt.Sprintf("<%T>", e)
}

func (s *sexp) property(p *Property) string {
	switch p.Kind {
	case PropertySpread:
		return "Spread(" + s.expr(p.Value) + ")"
	case PropertyShorthand:
		return "Shorthand(" + s.expr(p.Key) + ")"
	}
	if p.Computed {
		return fmt.Sprintf("Computed(%s, %s)", s.expr(p.Key), s.expr(p.Value))
	}
	return fmt.Sprintf("Property(%s, %s)", s.expr(p.Key), s.expr(p.Value))
}

func (s *sexp) optional(op OptionalOperation) string {
	prefix := ""
	if op.Shorted {
		prefix = "?."
	}
	switch op.Kind {
	case OptionalConst:
		if !op.Shorted {
			prefix = "."
		}
		return prefix + s.syms.Resolve(op.Name)
	case OptionalPrivate:
		if !op.Shorted {
			prefix = "."
		}
		return prefix + "#" + s.syms.Resolve(op.Name)
	case OptionalComputed:
		return prefix + "[" + s.expr(op.Field) + "]"
	default:
		list := s.list(op.Args)
		return prefix + "(" + list[1:len(list)-1] + ")"
	}
}
