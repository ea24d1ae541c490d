package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/jsfront/interner"
	"github.com/example/jsfront/token"
)

type Lexer struct {
	input   string
	pos     int // current position in input (points to current char)
	readPos int // current reading position (after current char)
	ch      rune
	line    int
	col     int

	syms   *interner.Interner
	prev   token.Token // last token returned, for regex detection
	before token.Token // token returned before prev

	// For template literal interpolation tracking
	braceDepth    int
	templateStack []int // stack of brace depths where template interpolations started
}

func New(input string, syms *interner.Interner) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		col:    0,
		syms:   syms,
		prev:   token.Token{Kind: token.EOF},
		before: token.Token{Kind: token.EOF},
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
		l.readPos++
		l.col++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
	l.col++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) peekCharAt(offset int) rune {
	pos := l.readPos + offset
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) atEnd() bool {
	return l.ch == 0 && l.pos >= len(l.input)
}

func (l *Lexer) here() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

func (l *Lexer) newline() {
	l.line++
	l.col = 0
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' || l.ch == '\v' || l.ch == '\f' ||
		l.ch == '\u00A0' || l.ch == '\uFEFF' || l.ch == '\u2028' || l.ch == '\u2029' {
		if l.ch == '\n' || l.ch == '\u2028' || l.ch == '\u2029' {
			l.newline()
		}
		l.readChar()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && !l.atEnd() {
		l.readChar()
	}
}

// skipBlockComment reports false if the comment is not terminated.
func (l *Lexer) skipBlockComment() bool {
	// skip past /*
	l.readChar()
	l.readChar()
	for {
		if l.atEnd() {
			return false
		}
		if l.ch == '\n' {
			l.newline()
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return true
		}
		l.readChar()
	}
}

func (l *Lexer) skipWhitespaceAndComments() bool {
	for {
		l.skipWhitespace()
		if l.ch == '/' && l.peekChar() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			if !l.skipBlockComment() {
				return false
			}
			continue
		}
		return true
	}
}

// canPrecedeRegex reports whether a '/' after prev starts a regular
// expression rather than a division. before is the token ahead of prev; a
// reserved word following '.' or '?.' is a property name and ends an operand.
// A '}' outside a template substitution always closes an object literal.
func canPrecedeRegex(before, prev token.Token) bool {
	if before.Is(token.Dot) || before.Is(token.OptionalChain) {
		switch prev.Kind {
		case token.Keyword, token.BooleanLiteral, token.NullLiteral:
			return false
		}
	}
	switch prev.Kind {
	case token.Identifier, token.PrivateIdentifier, token.NumericLiteral, token.StringLiteral,
		token.BooleanLiteral, token.NullLiteral, token.RegularExpression,
		token.TemplateNoSubstitution, token.TemplateTail:
		return false
	case token.Keyword:
		return prev.Keyword != token.This && prev.Keyword != token.Super
	case token.Punctuator:
		switch prev.Punct {
		case token.RightParen, token.RightBracket, token.RightBrace, token.Increment, token.Decrement:
			return false
		}
	}
	return true
}

// NextToken returns the next token. Lexical errors are reported as Illegal
// tokens whose Literal holds the message; the end of input is an EOF token
// and is returned again on every further call.
func (l *Lexer) NextToken() token.Token {
	tok := l.scan()
	l.before = l.prev
	l.prev = tok
	return tok
}

func (l *Lexer) scan() token.Token {
	start := l.here()
	if !l.skipWhitespaceAndComments() {
		return token.Token{Kind: token.Illegal, Literal: "unterminated comment", Span: token.Span{Start: start, End: l.here()}}
	}
	start = l.here()

	punct := func(p token.PunctuatorType, width int) token.Token {
		for i := 0; i < width; i++ {
			l.readChar()
		}
		return token.Token{Kind: token.Punctuator, Punct: p, Span: token.Span{Start: start, End: l.here()}}
	}

	// Check for template middle/tail when closing a template interpolation
	if l.ch == '}' && len(l.templateStack) > 0 && l.braceDepth-1 == l.templateStack[len(l.templateStack)-1] {
		l.templateStack = l.templateStack[:len(l.templateStack)-1]
		return l.readTemplateContinuation(start)
	}

	if l.ch == '/' && canPrecedeRegex(l.before, l.prev) {
		return l.readRegExp(start)
	}

	switch {
	case l.atEnd():
		return token.Token{Kind: token.EOF, Span: token.Span{Start: start, End: start}}

	case l.ch == '(':
		return punct(token.LeftParen, 1)
	case l.ch == ')':
		return punct(token.RightParen, 1)
	case l.ch == '{':
		l.braceDepth++
		return punct(token.LeftBrace, 1)
	case l.ch == '}':
		l.braceDepth--
		return punct(token.RightBrace, 1)
	case l.ch == '[':
		return punct(token.LeftBracket, 1)
	case l.ch == ']':
		return punct(token.RightBracket, 1)
	case l.ch == ';':
		return punct(token.Semicolon, 1)
	case l.ch == ':':
		return punct(token.Colon, 1)
	case l.ch == ',':
		return punct(token.Comma, 1)
	case l.ch == '~':
		return punct(token.BitwiseNot, 1)

	case l.ch == '.':
		if l.peekChar() == '.' && l.peekCharAt(1) == '.' {
			return punct(token.Spread, 3)
		}
		if isDigit(l.peekChar()) {
			return l.readNumber(start)
		}
		return punct(token.Dot, 1)

	case l.ch == '+':
		switch l.peekChar() {
		case '+':
			return punct(token.Increment, 2)
		case '=':
			return punct(token.PlusAssign, 2)
		}
		return punct(token.Plus, 1)

	case l.ch == '-':
		switch l.peekChar() {
		case '-':
			return punct(token.Decrement, 2)
		case '=':
			return punct(token.MinusAssign, 2)
		}
		return punct(token.Minus, 1)

	case l.ch == '*':
		if l.peekChar() == '*' {
			if l.peekCharAt(1) == '=' {
				return punct(token.ExponentAssign, 3)
			}
			return punct(token.Exponent, 2)
		}
		if l.peekChar() == '=' {
			return punct(token.AsteriskAssign, 2)
		}
		return punct(token.Asterisk, 1)

	case l.ch == '/':
		if l.peekChar() == '=' {
			return punct(token.SlashAssign, 2)
		}
		return punct(token.Slash, 1)

	case l.ch == '%':
		if l.peekChar() == '=' {
			return punct(token.PercentAssign, 2)
		}
		return punct(token.Percent, 1)

	case l.ch == '=':
		switch l.peekChar() {
		case '>':
			return punct(token.Arrow, 2)
		case '=':
			if l.peekCharAt(1) == '=' {
				return punct(token.StrictEqual, 3)
			}
			return punct(token.Equal, 2)
		}
		return punct(token.Assign, 1)

	case l.ch == '!':
		if l.peekChar() == '=' {
			if l.peekCharAt(1) == '=' {
				return punct(token.StrictNotEqual, 3)
			}
			return punct(token.NotEqual, 2)
		}
		return punct(token.Not, 1)

	case l.ch == '<':
		switch l.peekChar() {
		case '<':
			if l.peekCharAt(1) == '=' {
				return punct(token.LeftShiftAssign, 3)
			}
			return punct(token.LeftShift, 2)
		case '=':
			return punct(token.LessThanOrEqual, 2)
		}
		return punct(token.LessThan, 1)

	case l.ch == '>':
		if l.peekChar() == '>' {
			if l.peekCharAt(1) == '>' {
				if l.peekCharAt(2) == '=' {
					return punct(token.UnsignedRightShiftAssign, 4)
				}
				return punct(token.UnsignedRightShift, 3)
			}
			if l.peekCharAt(1) == '=' {
				return punct(token.RightShiftAssign, 3)
			}
			return punct(token.RightShift, 2)
		}
		if l.peekChar() == '=' {
			return punct(token.GreaterThanOrEqual, 2)
		}
		return punct(token.GreaterThan, 1)

	case l.ch == '&':
		if l.peekChar() == '&' {
			if l.peekCharAt(1) == '=' {
				return punct(token.AndAssign, 3)
			}
			return punct(token.And, 2)
		}
		if l.peekChar() == '=' {
			return punct(token.AmpersandAssign, 2)
		}
		return punct(token.BitwiseAnd, 1)

	case l.ch == '|':
		if l.peekChar() == '|' {
			if l.peekCharAt(1) == '=' {
				return punct(token.OrAssign, 3)
			}
			return punct(token.Or, 2)
		}
		if l.peekChar() == '=' {
			return punct(token.PipeAssign, 2)
		}
		return punct(token.BitwiseOr, 1)

	case l.ch == '^':
		if l.peekChar() == '=' {
			return punct(token.CaretAssign, 2)
		}
		return punct(token.BitwiseXor, 1)

	case l.ch == '?':
		if l.peekChar() == '.' && !isDigit(l.peekCharAt(1)) {
			return punct(token.OptionalChain, 2)
		}
		if l.peekChar() == '?' {
			if l.peekCharAt(1) == '=' {
				return punct(token.NullishAssign, 3)
			}
			return punct(token.NullishCoalesce, 2)
		}
		return punct(token.QuestionMark, 1)

	case l.ch == '`':
		return l.readTemplateLiteral(start)

	case l.ch == '"' || l.ch == '\'':
		return l.readString(start)

	case isDigit(l.ch):
		return l.readNumber(start)

	case l.ch == '#':
		return l.readPrivateIdentifier(start)

	case isIdentStart(l.ch) || l.ch == '\\':
		return l.readIdentifier(start)

	default:
		ch := l.ch
		l.readChar()
		return l.illegal(start, "unexpected character "+string(ch))
	}
}

func (l *Lexer) illegal(start token.Position, msg string) token.Token {
	return token.Token{Kind: token.Illegal, Literal: msg, Span: token.Span{Start: start, End: l.here()}}
}

// readIdentifierName reads an IdentifierName, decoding \u escapes.
func (l *Lexer) readIdentifierName() (name string, escaped bool, errMsg string) {
	start := l.pos
	var buf strings.Builder

	for isIdentPart(l.ch) || l.ch == '\\' {
		if l.ch == '\\' {
			escaped = true
			l.readChar() // consume backslash
			if l.ch != 'u' {
				return "", escaped, "invalid escape in identifier"
			}
			l.readChar() // consume 'u'
			r := l.readUnicodeEscape()
			if r < 0 || !isIdentPart(rune(r)) {
				return "", escaped, "invalid unicode escape"
			}
			buf.WriteRune(rune(r))
		} else {
			buf.WriteRune(l.ch)
			l.readChar()
		}
	}

	if escaped {
		return buf.String(), true, ""
	}
	return l.input[start:l.pos], false, ""
}

func (l *Lexer) readIdentifier(start token.Position) token.Token {
	name, escaped, errMsg := l.readIdentifierName()
	if errMsg != "" {
		return l.illegal(start, errMsg)
	}
	span := token.Span{Start: start, End: l.here()}

	switch name {
	case "true", "false":
		return token.Token{Kind: token.BooleanLiteral, Bool: name == "true", Escaped: escaped, Span: span}
	case "null":
		return token.Token{Kind: token.NullLiteral, Escaped: escaped, Span: span}
	}

	if kw, ok := token.LookupKeyword(name); ok {
		return token.Token{Kind: token.Keyword, Keyword: kw, Escaped: escaped, Span: span}
	}
	return token.Token{Kind: token.Identifier, Sym: l.syms.Intern(name), Escaped: escaped, Span: span}
}

func (l *Lexer) readPrivateIdentifier(start token.Position) token.Token {
	l.readChar() // consume '#'
	if !isIdentStart(l.ch) && l.ch != '\\' {
		return l.illegal(start, "invalid private identifier")
	}
	name, _, errMsg := l.readIdentifierName()
	if errMsg != "" {
		return l.illegal(start, errMsg)
	}
	return token.Token{
		Kind:    token.PrivateIdentifier,
		Sym:     l.syms.Intern(name),
		Literal: "#" + name,
		Span:    token.Span{Start: start, End: l.here()},
	}
}

// writeUTF16CodeUnit writes a UTF-16 code unit (including surrogates) to a string builder.
// For surrogates, it uses WTF-8 encoding (3-byte sequences like regular code points)
// rather than the replacement character that Go's WriteRune would produce.
func writeUTF16CodeUnit(buf *strings.Builder, cu uint16) {
	if cu < 0x80 {
		buf.WriteByte(byte(cu))
	} else if cu < 0x800 {
		buf.WriteByte(byte(0xC0 | (cu >> 6)))
		buf.WriteByte(byte(0x80 | (cu & 0x3F)))
	} else {
		buf.WriteByte(byte(0xE0 | (cu >> 12)))
		buf.WriteByte(byte(0x80 | ((cu >> 6) & 0x3F)))
		buf.WriteByte(byte(0x80 | (cu & 0x3F)))
	}
}

func (l *Lexer) readUnicodeEscape() int {
	if l.ch == '{' {
		// \u{XXXX} form
		l.readChar()
		val := 0
		digits := 0
		for l.ch != '}' && !l.atEnd() {
			d := hexVal(l.ch)
			if d < 0 {
				return -1
			}
			val = val*16 + d
			digits++
			if val > 0x10FFFF {
				return -1
			}
			l.readChar()
		}
		if l.ch != '}' || digits == 0 {
			return -1
		}
		l.readChar() // consume '}'
		return val
	}
	// \uXXXX form (exactly 4 hex digits)
	val := 0
	for i := 0; i < 4; i++ {
		d := hexVal(l.ch)
		if d < 0 {
			return -1
		}
		val = val*16 + d
		l.readChar()
	}
	return val
}

// readEscape decodes the escape sequence after a backslash into buf. The
// current char is the one following the backslash.
func (l *Lexer) readEscape(buf *strings.Builder) string {
	switch l.ch {
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case 'v':
		buf.WriteByte('\v')
	case '0', '1', '2', '3', '4', '5', '6', '7':
		// Octal escape sequence (Annex B, non-strict mode)
		val := int(l.ch - '0')
		l.readChar()
		if l.ch >= '0' && l.ch <= '7' {
			val = val*8 + int(l.ch-'0')
			l.readChar()
			if val <= 037 && l.ch >= '0' && l.ch <= '7' {
				val = val*8 + int(l.ch-'0')
				l.readChar()
			}
		}
		buf.WriteRune(rune(val))
		return ""
	case 'x':
		l.readChar()
		d1 := hexVal(l.ch)
		l.readChar()
		d2 := hexVal(l.ch)
		if d1 < 0 || d2 < 0 {
			return "invalid hex escape"
		}
		buf.WriteRune(rune(d1*16 + d2))
	case 'u':
		l.readChar()
		r := l.readUnicodeEscape()
		if r < 0 {
			return "invalid unicode escape"
		}
		if r >= 0xD800 && r <= 0xDBFF && l.ch == '\\' && l.peekChar() == 'u' {
			savedPos, savedReadPos, savedCh, savedCol := l.pos, l.readPos, l.ch, l.col
			l.readChar() // skip '\'
			l.readChar() // skip 'u'
			r2 := l.readUnicodeEscape()
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				buf.WriteRune(rune(0x10000 + (r-0xD800)*0x400 + (r2 - 0xDC00)))
			} else {
				writeUTF16CodeUnit(buf, uint16(r))
				l.pos, l.readPos, l.ch, l.col = savedPos, savedReadPos, savedCh, savedCol
			}
		} else if r >= 0xD800 && r <= 0xDFFF {
			writeUTF16CodeUnit(buf, uint16(r))
		} else {
			buf.WriteRune(rune(r))
		}
		return "" // readUnicodeEscape already advanced past the escape
	case '\r':
		// line continuation
		if l.peekChar() == '\n' {
			l.readChar()
		}
		l.newline()
	case '\n', '\u2028', '\u2029':
		l.newline()
	default:
		buf.WriteRune(l.ch)
	}
	l.readChar()
	return ""
}

func (l *Lexer) readString(start token.Position) token.Token {
	quote := l.ch
	l.readChar() // skip opening quote
	var buf strings.Builder

	for l.ch != quote && !l.atEnd() && l.ch != '\n' && l.ch != '\r' {
		if l.ch == '\\' {
			l.readChar()
			if msg := l.readEscape(&buf); msg != "" {
				return l.illegal(start, msg)
			}
			continue
		}
		buf.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch != quote {
		return l.illegal(start, "unterminated string")
	}
	l.readChar() // skip closing quote
	return token.Token{Kind: token.StringLiteral, Literal: buf.String(), Span: token.Span{Start: start, End: l.here()}}
}

func (l *Lexer) readNumber(start token.Position) token.Token {
	begin := l.pos
	numeric := func() token.Token {
		if isIdentStart(l.ch) {
			return l.illegal(start, "identifier starts immediately after numeric literal")
		}
		return token.Token{Kind: token.NumericLiteral, Literal: l.input[begin:l.pos], Span: token.Span{Start: start, End: l.here()}}
	}

	if l.ch == '0' {
		next := l.peekChar()
		switch {
		case next == 'x' || next == 'X':
			l.readChar() // 0
			l.readChar() // x
			if !isHexDigit(l.ch) {
				return l.illegal(start, "invalid hex literal")
			}
			for isHexDigit(l.ch) || l.ch == '_' {
				l.readChar()
			}
			return numeric()

		case next == 'o' || next == 'O':
			l.readChar() // 0
			l.readChar() // o
			if !isOctalDigit(l.ch) {
				return l.illegal(start, "invalid octal literal")
			}
			for isOctalDigit(l.ch) || l.ch == '_' {
				l.readChar()
			}
			return numeric()

		case next == 'b' || next == 'B':
			l.readChar() // 0
			l.readChar() // b
			if l.ch != '0' && l.ch != '1' {
				return l.illegal(start, "invalid binary literal")
			}
			for l.ch == '0' || l.ch == '1' || l.ch == '_' {
				l.readChar()
			}
			return numeric()
		}
	}

	// Decimal: integer part
	l.readDecimalDigits()

	// Fractional part
	if l.ch == '.' {
		l.readChar()
		l.readDecimalDigits()
	}

	// Exponent
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			return l.illegal(start, "invalid exponent")
		}
		l.readDecimalDigits()
	}

	// BigInt suffix
	if l.ch == 'n' {
		l.readChar()
	}

	return numeric()
}

func (l *Lexer) readDecimalDigits() {
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
}

func (l *Lexer) readTemplateLiteral(start token.Position) token.Token {
	l.readChar() // skip opening backtick
	return l.readTemplateChars(start, token.TemplateNoSubstitution, token.TemplateHead)
}

func (l *Lexer) readTemplateContinuation(start token.Position) token.Token {
	l.readChar() // skip closing }
	l.braceDepth--
	return l.readTemplateChars(start, token.TemplateTail, token.TemplateMiddle)
}

// readTemplateChars reads template characters up to the closing backtick
// (producing a token of kind closed) or up to "${" (kind open).
func (l *Lexer) readTemplateChars(start token.Position, closed, open token.Kind) token.Token {
	var buf strings.Builder
	rawStart := l.pos

	for {
		if l.atEnd() {
			return l.illegal(start, "unterminated template literal")
		}
		if l.ch == '`' {
			raw := l.input[rawStart:l.pos]
			l.readChar()
			return token.Token{Kind: closed, Literal: buf.String(), Raw: raw, Span: token.Span{Start: start, End: l.here()}}
		}
		if l.ch == '$' && l.peekChar() == '{' {
			raw := l.input[rawStart:l.pos]
			l.readChar() // skip $
			l.readChar() // skip {
			l.templateStack = append(l.templateStack, l.braceDepth)
			l.braceDepth++
			return token.Token{Kind: open, Literal: buf.String(), Raw: raw, Span: token.Span{Start: start, End: l.here()}}
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == '`' || l.ch == '$' || l.ch == '\\' {
				buf.WriteRune(l.ch)
				l.readChar()
				continue
			}
			if msg := l.readEscape(&buf); msg != "" {
				return l.illegal(start, msg)
			}
			continue
		}
		if l.ch == '\n' {
			l.newline()
		}
		buf.WriteRune(l.ch)
		l.readChar()
	}
}

func (l *Lexer) readRegExp(start token.Position) token.Token {
	var buf strings.Builder
	buf.WriteByte('/')
	l.readChar() // skip opening /

	inCharClass := false
	for {
		if l.atEnd() || l.ch == '\n' || l.ch == '\r' {
			return l.illegal(start, "unterminated regexp")
		}
		if l.ch == '\\' {
			buf.WriteRune(l.ch)
			l.readChar()
			if l.atEnd() || l.ch == '\n' || l.ch == '\r' {
				return l.illegal(start, "unterminated regexp")
			}
			buf.WriteRune(l.ch)
			l.readChar()
			continue
		}
		if l.ch == '[' {
			inCharClass = true
		} else if l.ch == ']' {
			inCharClass = false
		}
		if l.ch == '/' && !inCharClass {
			buf.WriteByte('/')
			l.readChar()
			break
		}
		buf.WriteRune(l.ch)
		l.readChar()
	}

	// Read flags
	for isIdentPart(l.ch) {
		buf.WriteRune(l.ch)
		l.readChar()
	}

	return token.Token{Kind: token.RegularExpression, Literal: buf.String(), Span: token.Span{Start: start, End: l.here()}}
}

// Tokenize returns all tokens from the input, up to and including the
// first EOF or Illegal token.
func Tokenize(input string, syms *interner.Interner) []token.Token {
	l := New(input, syms)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Illegal {
			return tokens
		}
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch > 127 && unicode.IsLetter(ch))
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '\u200C' || ch == '\u200D' ||
		(ch > 127 && (unicode.IsDigit(ch) || unicode.Is(unicode.Mn, ch) || unicode.Is(unicode.Mc, ch) || unicode.Is(unicode.Pc, ch)))
}

func hexVal(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
