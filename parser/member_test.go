package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jsfront/ast"
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// ---------- Member Expressions ----------

func TestMemberExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a.b.c", "GetConstField(GetConstField(a, b), c)"},
		{"a[b]", "GetField(a, b)"},
		{"a[b, c]", "GetField(a, Sequence([b, c]))"},
		{"a[b in c]", "GetField(a, Binary(in, b, c))"},
		{"this.x", "GetConstField(this, x)"},
		{"a.if.true.null", "GetConstField(GetConstField(GetConstField(a, if), true), null)"},
		{"a.n\\u0065w", "GetConstField(a, new)"},
		{"obj.#priv", "GetPrivateField(obj, #priv)"},
		{"a`tpl`", `TaggedTemplate(a, ["tpl"], [])`},
		{"a.b`x${c}y`[d]", `GetField(TaggedTemplate(GetConstField(a, b), ["x", "y"], [c]), d)`},
		{"f(a)(b).c[d]", "GetField(GetConstField(Call(Call(f, [a]), [b]), c), d)"},
		{"f(a, ...b,)", "Call(f, [a, Spread(b)])"},
		{"a.if / 2", "Binary(/, GetConstField(a, if), 2)"},
		{"x.yield/2", "Binary(/, GetConstField(x, yield), 2)"},
		{"a.new / b / c", "Binary(/, Binary(/, GetConstField(a, new), b), c)"},
		{"a.null / 2", "Binary(/, GetConstField(a, null), 2)"},
		{"super.new / 2", "Binary(/, GetSuperField(new), 2)"},
		{"a?.in / 2", "Binary(/, Optional(a, [?.in]), 2)"},
		{"a.tru\\u0065", "GetConstField(a, true)"},
		{"super.nul\\u006c", "GetSuperField(null)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sexp(t, tt.input), "input: %s", tt.input)
	}
}

func TestNewExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"new Foo()", "New(Call(Foo, []))"},
		{"new Foo", "New(Call(Foo, []))"},
		{"new Foo(1, 2)", "New(Call(Foo, [1, 2]))"},
		{"new new Foo()()", "New(Call(New(Call(Foo, [])), []))"},
		{"new new Foo", "New(Call(New(Call(Foo, [])), []))"},
		{"new Foo.Bar.Baz(a)", "New(Call(GetConstField(GetConstField(Foo, Bar), Baz), [a]))"},
		{"new Foo[a]()", "New(Call(GetField(Foo, a), []))"},
		{"new Foo().bar", "GetConstField(New(Call(Foo, [])), bar)"},
		{"new Foo()()", "Call(New(Call(Foo, [])), [])"},
		{"new a.b`t`", `New(Call(TaggedTemplate(GetConstField(a, b), ["t"], []), []))`},
		{"new (f())()", "New(Call(Call(f, []), []))"},
		{"new super.x()", "New(Call(GetSuperField(x), []))"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sexp(t, tt.input), "input: %s", tt.input)
	}
}

func TestSuperExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"super.x", "GetSuperField(x)"},
		{"super[x]", "GetSuperField([x])"},
		{"super[a + 1]", "GetSuperField([Binary(+, a, 1)])"},
		{"super.new", "GetSuperField(new)"},
		{"super.x.y", "GetConstField(GetSuperField(x), y)"},
		{"super.x()", "Call(GetSuperField(x), [])"},
		{"super(a, ...b)", "SuperCall([a, Spread(b)])"},
		{"super.x = 1", "Assign(=, GetSuperField(x), 1)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sexp(t, tt.input), "input: %s", tt.input)
	}
}

func TestOptionalChains(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a?.b", "Optional(a, [?.b])"},
		{"a?.b.c", "Optional(a, [?.b, .c])"},
		{"a?.[b]?.(c)", "Optional(a, [?.[b], ?.(c)])"},
		{"a?.b[c](d)", "Optional(a, [?.b, [c], (d)])"},
		{"a.b?.#c", "Optional(GetConstField(a, b), [?.#c])"},
		{"a?.b?.c", "Optional(a, [?.b, ?.c])"},
		{"new a()?.b", "Optional(New(Call(a, [])), [?.b])"},
		{"(new a)?.b", "Optional(New(Call(a, [])), [?.b])"},
		{"new a.b()?.[c]", "Optional(New(Call(GetConstField(a, b), [])), [?.[c]])"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, sexp(t, tt.input), "input: %s", tt.input)
	}
}

func TestMemberErrors(t *testing.T) {
	tests := []struct {
		input   string
		kind    ErrorKind
		message string
	}{
		{"super.#x", General, "parse error at 1:7: unexpected private identifier"},
		{"n\\u0065w Foo", General, "parse error at 1:1: keyword must not contain escaped characters"},
		{"\\u0073uper.x", General, "parse error at 1:1: keyword must not contain escaped characters"},
		{"new \\u0073uper.x", General, "parse error at 1:5: keyword must not contain escaped characters"},
		{"a.(", Unexpected, "parse error at 1:3: expected identifier, got '(' in member expression"},
		{"a[b)", Unexpected, "parse error at 1:4: expected ], got ')' in member expression"},
		{"super.(", Unexpected, "parse error at 1:7: expected identifier, got '(' in super property"},
		{"super[x)", Unexpected, "parse error at 1:8: expected ], got ')' in super property"},
		{"a?.b`t`", General, "parse error at 1:5: tagged template cannot be used in optional chain"},
		{"a?.b.(c)", Unexpected, "parse error at 1:6: expected identifier, got '(' in optional chain"},
		{"tru\\u0065", General, "parse error at 1:1: keyword must not contain escaped characters"},
		{"a + nul\\u006c", General, "parse error at 1:5: keyword must not contain escaped characters"},
		{"new a?.b", General, "parse error at 1:6: optional chain cannot follow new without arguments"},
		{"new (a)?.b", General, "parse error at 1:8: optional chain cannot follow new without arguments"},
		{"new a`t`?.b", General, "parse error at 1:9: optional chain cannot follow new without arguments"},
		{"new new a()?.()", General, "parse error at 1:12: optional chain cannot follow new without arguments"},
	}
	for _, tt := range tests {
		perr := parseError(t, tt.input, Options{})
		assert.Equal(t, tt.kind, perr.Kind, "input: %s", tt.input)
		assert.Equal(t, tt.message, perr.Error(), "input: %s", tt.input)
	}
}

func TestMemberAbruptEnd(t *testing.T) {
	for _, input := range []string{"a.", "a[", "a[b", "new", "new Foo(", "super", "super.", "super[x", "a?."} {
		perr := parseError(t, input, Options{})
		assert.Equal(t, AbruptEnd, perr.Kind, "input: %s", input)
	}
}

func TestSuperCallIsNotAMemberExpression(t *testing.T) {
	syms := interner.New()
	_, err := New("super()", syms, Options{}).ParseMemberExpression(nil)
	require.Error(t, err)

	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, Unexpected, perr.Kind)
	assert.Equal(t, []string{".", "["}, perr.Expected)
	assert.Equal(t, "(", perr.Found)
	assert.Equal(t, "super property", perr.Context)
}

// ---------- Partial Parses ----------

func TestParseMemberExpressionStopsAtCall(t *testing.T) {
	syms := interner.New()
	p := New("a.b(c)", syms, Options{})

	expr, err := p.ParseMemberExpression(nil)
	require.NoError(t, err)
	assert.Equal(t, "GetConstField(a, b)", ast.Sexp(expr, syms))
	assert.Equal(t, 3, p.Cursor().Consumed())

	next, err := p.Cursor().Peek(0)
	require.NoError(t, err)
	assert.True(t, next.Is(token.LeftParen))
}

func TestParseLeftHandSideExpressionStopsAtOperator(t *testing.T) {
	syms := interner.New()
	p := New("a.b(c) + 1", syms, Options{})

	expr, err := p.ParseLeftHandSideExpression(nil)
	require.NoError(t, err)
	assert.Equal(t, "Call(GetConstField(a, b), [c])", ast.Sexp(expr, syms))
	assert.Equal(t, 6, p.Cursor().Consumed())
}

func TestParseMemberExpressionNameHint(t *testing.T) {
	syms := interner.New()
	name := syms.Intern("handler")

	expr, err := New("(x => x)", syms, Options{}).ParseMemberExpression(&name)
	require.NoError(t, err)
	assert.Equal(t, "Arrow[handler](x, x)", ast.Sexp(expr, syms))
}

func TestConsumedCountsEveryToken(t *testing.T) {
	syms := interner.New()
	p := New("new Foo(a, b).c", syms, Options{})
	_, err := p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, 9, p.Cursor().Consumed())
}

// ---------- Private Names ----------

func TestPrivateNamesAreRecorded(t *testing.T) {
	syms := interner.New()
	p := New("obj.#priv + other.#priv + x?.#y", syms, Options{})
	_, err := p.ParseExpression()
	require.NoError(t, err)

	used := p.Cursor().UsedPrivateIdentifiers()
	assert.Len(t, used, 2)
	assert.Equal(t, token.Position{Line: 1, Column: 5}, used[syms.Intern("priv")])
	assert.Contains(t, used, syms.Intern("y"))
}

func TestPrivateNamesInsideClassScope(t *testing.T) {
	syms := interner.New()

	_, err := ParseExpression("this.#x", syms, Options{RequireClassScope: true})
	require.Error(t, err)
	perr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, General, perr.Kind)
	assert.Equal(t, "parse error at 1:6: found private identifier outside of class", perr.Error())

	p := New("this.#x", syms, Options{RequireClassScope: true})
	p.Cursor().PushPrivateEnvironment()
	_, err = p.ParseExpression()
	require.NoError(t, err)

	env := p.Cursor().PopPrivateEnvironment()
	assert.Equal(t, map[interner.Sym]token.Position{
		syms.Intern("x"): {Line: 1, Column: 6},
	}, env)
	assert.Empty(t, p.Cursor().UsedPrivateIdentifiers())
}

// ---------- Templates and Spans ----------

func TestTaggedTemplateKeepsRawAndCooked(t *testing.T) {
	expr, syms := parse(t, "tag`a\\n${x}b`")
	tpl, ok := expr.(*ast.TaggedTemplate)
	require.True(t, ok, "expected TaggedTemplate, got %T", expr)

	assert.Equal(t, "tag", syms.Resolve(tpl.Tag.(*ast.Identifier).Name))
	assert.Equal(t, []string{`a\n`, "b"}, tpl.Raws)
	assert.Equal(t, []string{"a\n", "b"}, tpl.Cookeds)
	require.Len(t, tpl.Exprs, 1)
	assert.Equal(t, "x", syms.Resolve(tpl.Exprs[0].(*ast.Identifier).Name))
}

func TestMemberSpans(t *testing.T) {
	expr, _ := parse(t, "a.b.c")
	assert.Equal(t, token.Span{
		Start: token.Position{Line: 1, Column: 1},
		End:   token.Position{Line: 1, Column: 6},
	}, expr.Location())

	expr, _ = parse(t, "new Foo()")
	n, ok := expr.(*ast.New)
	require.True(t, ok)
	assert.Equal(t, token.Position{Line: 1, Column: 1}, n.Span.Start)
	assert.Equal(t, token.Position{Line: 1, Column: 10}, n.Span.End)
	assert.Equal(t, token.Position{Line: 1, Column: 5}, n.Call.Span.Start)
}
