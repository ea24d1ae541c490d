package token

import (
	"fmt"

	"github.com/example/jsfront/interner"
)

// Kind is the closed set of token shapes the lexer produces.
type Kind int

const (
	EOF Kind = iota
	Illegal
	Identifier
	Keyword
	Punctuator
	BooleanLiteral
	NullLiteral
	PrivateIdentifier
	NumericLiteral
	StringLiteral
	RegularExpression

	// Template literal parts
	TemplateNoSubstitution // `abc`
	TemplateHead           // `abc${
	TemplateMiddle         // }abc${
	TemplateTail           // }abc`
)

var kindNames = [...]string{
	EOF:                    "end of input",
	Illegal:                "illegal token",
	Identifier:             "identifier",
	Keyword:                "keyword",
	Punctuator:             "punctuator",
	BooleanLiteral:         "boolean literal",
	NullLiteral:            "null literal",
	PrivateIdentifier:      "private identifier",
	NumericLiteral:         "numeric literal",
	StringLiteral:          "string literal",
	RegularExpression:      "regular expression",
	TemplateNoSubstitution: "template literal",
	TemplateHead:           "template head",
	TemplateMiddle:         "template middle",
	TemplateTail:           "template tail",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position is a 1-based line and column in the source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a token from its first character up to, not including, End.
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Token is a single lexical token. Which payload fields are meaningful
// depends on Kind:
//
//	Identifier, PrivateIdentifier  Sym (the '#' is not part of the name)
//	Keyword                        Keyword, Escaped
//	Punctuator                     Punct
//	BooleanLiteral                 Bool, Escaped
//	NullLiteral                    Escaped
//	Numeric/String/RegExp/Illegal  Literal
//	Template*                      Literal (cooked), Raw
type Token struct {
	Kind    Kind
	Keyword KeywordType
	Escaped bool
	Punct   PunctuatorType
	Sym     interner.Sym
	Bool    bool
	Literal string
	Raw     string
	Span    Span
}

// Is reports whether t is the punctuator p.
func (t Token) Is(p PunctuatorType) bool {
	return t.Kind == Punctuator && t.Punct == p
}

// IsKeyword reports whether t is the keyword kw, spelled with or without escapes.
func (t Token) IsKeyword(kw KeywordType) bool {
	return t.Kind == Keyword && t.Keyword == kw
}

// Render formats the token the way it is shown in diagnostics.
func (t Token) Render(syms *interner.Interner) string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Identifier:
		return syms.Resolve(t.Sym)
	case PrivateIdentifier:
		return "#" + syms.Resolve(t.Sym)
	case Keyword:
		return t.Keyword.String()
	case Punctuator:
		return t.Punct.String()
	case BooleanLiteral:
		if t.Bool {
			return "true"
		}
		return "false"
	case NullLiteral:
		return "null"
	case StringLiteral:
		return fmt.Sprintf("%q", t.Literal)
	case TemplateNoSubstitution:
		return "`" + t.Raw + "`"
	case TemplateHead:
		return "`" + t.Raw + "${"
	case TemplateMiddle:
		return "}" + t.Raw + "${"
	case TemplateTail:
		return "}" + t.Raw + "`"
	default:
		return t.Literal
	}
}
