package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

var roundTripInputs = []string{
	// member expressions
	"a.b.c", "a[b]", "a[b, c]", "a.if.true.null", "this.x", "obj.#priv",
	"a`tpl`", "a.b`x${c}y${d}z`", "a`\\n${b}`", "f(a)(b).c[d]",
	"new Foo()", "new Foo", "new new Foo()()", "new Foo.Bar(1, 2)",
	"new (f())()", "new (f().b)", "new (a.b().c)()", "(new a).b", "new a.b`t`",
	"new (x => x)()", "new (a ? b : c)",
	"super.x", "super[x + 1]", "super.x.y", "super(a, ...b)", "new super.x()",
	"a?.b.c", "a?.[b]?.(c).d", "(a?.b).c", "(a?.b)()", "a.b?.#c",
	"(1).toString()", "1.5.toFixed(1)",
	"a.if / 2", "(a.if) / 2", "super.new / 2", "a?.in / 2", "a.new / b / c", "a.tru\\u0065",
	"(new a)?.b", "new a()?.b",

	// operators
	"a = b = c", "a += b", "a.b.c = d", "a ? b : c ? d : e", "(a ? b : c) ? d : e",
	"a || b && c", "(a || b) && c", "a ?? (b || c)", "(a ?? b) || c",
	"a ** b ** c", "(a ** b) ** c", "(-a) ** b", "- -a", "-(-a)", "+ +a", "+ ++a",
	"typeof typeof a", "!a.b", "a++ + ++b", "delete a[b]", "void 0",
	"a - (b - c)", "a - b - c", "a * (b + c)", "a < b == c > d", "a in b", "a instanceof b",
	"a, b, c", "(a, b), c", "f((a, b))",

	// arrows and literals
	"x => x + 1", "f = x => x", "x => ({a: 1})", "(x => x)(1)", "x => y => x",
	"[a, , ...b, ]", "[,]", "[a, ,]", "[]",
	"{a, b: 1, [c]: d, 'e': f, 1: g, ...h}", "{new: 1, true: 2}", "({}).x",
	"`a${b}c`", "/ab+c/gi.test(s)", "\"a\\\"b\\n\\u2028\"", "'\\x00'",
}

func TestPrintRoundTrip(t *testing.T) {
	opts := []cmp.Option{
		cmpopts.IgnoreTypes(token.Span{}),
		cmpopts.EquateEmpty(),
	}

	for _, input := range roundTripInputs {
		syms := interner.New()
		first, err := ParseExpression(input, syms, Options{})
		require.NoError(t, err, "input: %s", input)

		printed := ast.Print(first, syms)
		second, err := ParseExpression(printed, syms, Options{})
		require.NoError(t, err, "input: %s, printed: %s", input, printed)

		if diff := cmp.Diff(first, second, opts...); diff != "" {
			t.Errorf("round trip of %q through %q changed the tree (-first +second):\n%s", input, printed, diff)
			t.Logf("first: %# v", pretty.Formatter(first))
		}
		assert.Equal(t, printed, ast.Print(second, syms), "printing is not stable for %q", input)
	}
}

func TestPrintCanonicalForm(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"new Foo", "new Foo()"},
		{"( a . b )", "a.b"},
		{"a [ b ]", "a[b]"},
		{"new (a().b)", "new (a().b)()"},
		{"(new a).b", "new a().b"},
		{"- -a", "-(-a)"},
		{"x => ({a: 1})", "x => ({a: 1})"},
		{"a?.b", "a?.b"},
		{"1.5.toFixed(1)", "(1.5).toFixed(1)"},
		{"[a, , ...b, ]", "[a, , ...b]"},
		{"{'e': f}", `{"e": f}`},
		{"super [ x ]", "super[x]"},
		{"a\n.b\n.c", "a.b.c"},
		{"(a.if) / 2", "a.if / 2"},
		{"(new a)?.b", "new a()?.b"},
	}
	for _, tt := range tests {
		expr, syms := parse(t, tt.input)
		assert.Equal(t, tt.expected, ast.Print(expr, syms), "input: %q", tt.input)
	}
}
