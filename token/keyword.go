package token

import "fmt"

// KeywordType enumerates reserved words. true, false and null are lexed as
// literals, not keywords.
type KeywordType int

const (
	Await KeywordType = iota
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	Export
	Extends
	Finally
	For
	Function
	If
	Import
	In
	Instanceof
	New
	Return
	Super
	Switch
	This
	Throw
	Try
	Typeof
	Var
	Void
	While
	With
	Yield
)

var keywordNames = [...]string{
	Await:      "await",
	Break:      "break",
	Case:       "case",
	Catch:      "catch",
	Class:      "class",
	Const:      "const",
	Continue:   "continue",
	Debugger:   "debugger",
	Default:    "default",
	Delete:     "delete",
	Do:         "do",
	Else:       "else",
	Enum:       "enum",
	Export:     "export",
	Extends:    "extends",
	Finally:    "finally",
	For:        "for",
	Function:   "function",
	If:         "if",
	Import:     "import",
	In:         "in",
	Instanceof: "instanceof",
	New:        "new",
	Return:     "return",
	Super:      "super",
	Switch:     "switch",
	This:       "this",
	Throw:      "throw",
	Try:        "try",
	Typeof:     "typeof",
	Var:        "var",
	Void:       "void",
	While:      "while",
	With:       "with",
	Yield:      "yield",
}

func (k KeywordType) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

var Keywords = func() map[string]KeywordType {
	m := make(map[string]KeywordType, len(keywordNames))
	for kw, name := range keywordNames {
		m[name] = KeywordType(kw)
	}
	return m
}()

// LookupKeyword reports whether ident spells a reserved word.
func LookupKeyword(ident string) (KeywordType, bool) {
	kw, ok := Keywords[ident]
	return kw, ok
}
