package ast

import (
	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

// Expression is the closed set of expression nodes. Every node owns its
// children; no node appears under two parents.
type Expression interface {
	Location() token.Span
	expressionNode()
}

// ---------- Member expressions ----------

// New is a construct expression. Call holds the callee and the argument
// list, which is empty when the source omitted the parentheses.
type New struct {
	Span token.Span
	Call *Call
}

type Call struct {
	Span   token.Span
	Callee Expression
	Args   []Expression
}

// GetField is a computed property access, obj[key].
type GetField struct {
	Span   token.Span
	Object Expression
	Field  Expression
}

// GetConstField is a named property access, obj.name.
type GetConstField struct {
	Span   token.Span
	Object Expression
	Field  interner.Sym
}

// GetPrivateField is obj.#name. Field does not include the '#'.
type GetPrivateField struct {
	Span   token.Span
	Object Expression
	Field  interner.Sym
}

// GetSuperField is super.name when Key is nil, super[Key] otherwise.
type GetSuperField struct {
	Span token.Span
	Name interner.Sym
	Key  Expression
}

type SuperCall struct {
	Span token.Span
	Args []Expression
}

// TaggedTemplate binds a template literal to Tag. Raws, Cookeds and Exprs
// follow the template layout: len(Raws) == len(Cookeds) == len(Exprs)+1.
type TaggedTemplate struct {
	Span    token.Span
	Tag     Expression
	Raws    []string
	Cookeds []string
	Exprs   []Expression
}

type OptionalKind int

const (
	OptionalConst OptionalKind = iota
	OptionalPrivate
	OptionalComputed
	OptionalCall
)

// OptionalOperation is one link of an optional chain. Shorted is set when
// the link was written with ?. and short-circuits on a nullish target.
type OptionalOperation struct {
	Shorted bool
	Kind    OptionalKind
	Name    interner.Sym // OptionalConst, OptionalPrivate
	Field   Expression   // OptionalComputed
	Args    []Expression // OptionalCall
}

// Optional is an optional chain such as a?.b.c(d).
type Optional struct {
	Span   token.Span
	Target Expression
	Chain  []OptionalOperation
}

// ---------- Primary expressions ----------

type Identifier struct {
	Span token.Span
	Name interner.Sym
}

type This struct {
	Span token.Span
}

type NumericLiteral struct {
	Span  token.Span
	Raw   string
	Value float64
}

type StringLiteral struct {
	Span  token.Span
	Value string
}

type BooleanLiteral struct {
	Span  token.Span
	Value bool
}

type NullLiteral struct {
	Span token.Span
}

type RegExpLiteral struct {
	Span    token.Span
	Pattern string
	Flags   string
}

// TemplateLiteral is an untagged template. len(Raws) == len(Exprs)+1.
type TemplateLiteral struct {
	Span    token.Span
	Raws    []string
	Cookeds []string
	Exprs   []Expression
}

// ArrayLiteral elements are nil for holes.
type ArrayLiteral struct {
	Span     token.Span
	Elements []Expression
}

type ObjectLiteral struct {
	Span       token.Span
	Properties []*Property
}

type PropertyKind int

const (
	PropertyInit      PropertyKind = iota // key: value
	PropertyShorthand                     // name
	PropertySpread                        // ...value
)

// Property is an object literal member. Key is an *Identifier for plain
// names, a string or numeric literal, or any expression when Computed.
// Key is nil for PropertySpread.
type Property struct {
	Span     token.Span
	Kind     PropertyKind
	Key      Expression
	Computed bool
	Value    Expression
}

type Spread struct {
	Span     token.Span
	Argument Expression
}

// ---------- Operators ----------

type Unary struct {
	Span     token.Span
	Operator string // + - ! ~ typeof void delete
	Operand  Expression
}

type Update struct {
	Span     token.Span
	Operator string // ++ --
	Prefix   bool
	Operand  Expression
}

type Binary struct {
	Span     token.Span
	Operator string
	Left     Expression
	Right    Expression
}

type Logical struct {
	Span     token.Span
	Operator string // && || ??
	Left     Expression
	Right    Expression
}

type Assign struct {
	Span     token.Span
	Operator string
	Target   Expression
	Value    Expression
}

type Conditional struct {
	Span       token.Span
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type Sequence struct {
	Span        token.Span
	Expressions []Expression
}

// Arrow is a single-parameter arrow function with an expression body.
// Name is the binding it was assigned to, or interner.Empty.
type Arrow struct {
	Span  token.Span
	Name  interner.Sym
	Param interner.Sym
	Body  Expression
}

type Yield struct {
	Span     token.Span
	Delegate bool
	Argument Expression // may be nil
}

type Await struct {
	Span     token.Span
	Argument Expression
}

func (e *New) Location() token.Span             { return e.Span }
func (e *Call) Location() token.Span            { return e.Span }
func (e *GetField) Location() token.Span        { return e.Span }
func (e *GetConstField) Location() token.Span   { return e.Span }
func (e *GetPrivateField) Location() token.Span { return e.Span }
func (e *GetSuperField) Location() token.Span   { return e.Span }
func (e *SuperCall) Location() token.Span       { return e.Span }
func (e *TaggedTemplate) Location() token.Span  { return e.Span }
func (e *Optional) Location() token.Span        { return e.Span }
func (e *Identifier) Location() token.Span      { return e.Span }
func (e *This) Location() token.Span            { return e.Span }
func (e *NumericLiteral) Location() token.Span  { return e.Span }
func (e *StringLiteral) Location() token.Span   { return e.Span }
func (e *BooleanLiteral) Location() token.Span  { return e.Span }
func (e *NullLiteral) Location() token.Span     { return e.Span }
func (e *RegExpLiteral) Location() token.Span   { return e.Span }
func (e *TemplateLiteral) Location() token.Span { return e.Span }
func (e *ArrayLiteral) Location() token.Span    { return e.Span }
func (e *ObjectLiteral) Location() token.Span   { return e.Span }
func (e *Spread) Location() token.Span          { return e.Span }
func (e *Unary) Location() token.Span           { return e.Span }
func (e *Update) Location() token.Span          { return e.Span }
func (e *Binary) Location() token.Span          { return e.Span }
func (e *Logical) Location() token.Span         { return e.Span }
func (e *Assign) Location() token.Span          { return e.Span }
func (e *Conditional) Location() token.Span     { return e.Span }
func (e *Sequence) Location() token.Span        { return e.Span }
func (e *Arrow) Location() token.Span           { return e.Span }
func (e *Yield) Location() token.Span           { return e.Span }
func (e *Await) Location() token.Span           { return e.Span }

func (e *New) expressionNode()             {}
func (e *Call) expressionNode()            {}
func (e *GetField) expressionNode()        {}
func (e *GetConstField) expressionNode()   {}
func (e *GetPrivateField) expressionNode() {}
func (e *GetSuperField) expressionNode()   {}
func (e *SuperCall) expressionNode()       {}
func (e *TaggedTemplate) expressionNode()  {}
func (e *Optional) expressionNode()        {}
func (e *Identifier) expressionNode()      {}
func (e *This) expressionNode()            {}
func (e *NumericLiteral) expressionNode()  {}
func (e *StringLiteral) expressionNode()   {}
func (e *BooleanLiteral) expressionNode()  {}
func (e *NullLiteral) expressionNode()     {}
func (e *RegExpLiteral) expressionNode()   {}
func (e *TemplateLiteral) expressionNode() {}
func (e *ArrayLiteral) expressionNode()    {}
func (e *ObjectLiteral) expressionNode()   {}
func (e *Spread) expressionNode()          {}
func (e *Unary) expressionNode()           {}
func (e *Update) expressionNode()          {}
func (e *Binary) expressionNode()          {}
func (e *Logical) expressionNode()         {}
func (e *Assign) expressionNode()          {}
func (e *Conditional) expressionNode()     {}
func (e *Sequence) expressionNode()        {}
func (e *Arrow) expressionNode()           {}
func (e *Yield) expressionNode()           {}
func (e *Await) expressionNode()           {}
