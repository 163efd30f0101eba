package parser

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/benoitkugler/svgstyle/utils"
	"github.com/benoitkugler/svgstyle/utils/parsing"
)

var preprocessor = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "\n", "\x00", "�")

// Tokenizer splits a stylesheet into a flat list of tokens,
// following https://www.w3.org/TR/css-syntax-3/#tokenization.
//
// The Data of the returned tokens either points into the source text
// or, when escapes had to be decoded, into strings owned by the tokenizer,
// which are shared between identical values.
type Tokenizer struct {
	input parsing.Input
	arena map[string]string
	buf   []byte

	// KeepComments adds Comment tokens to the output,
	// which are otherwise dropped.
	KeepComments bool
}

// NewTokenizer returns a tokenizer for `css`, normalizing
// its newlines and NUL characters.
func NewTokenizer(css string) *Tokenizer {
	if strings.ContainsAny(css, "\r\f\x00") {
		css = preprocessor.Replace(css)
	}
	return &Tokenizer{input: parsing.NewInput(css), arena: make(map[string]string)}
}

// Tokenize is a convenience wrapper splitting `css` into tokens,
// comments excluded.
func Tokenize(css string) []Token {
	return NewTokenizer(css).Tokenize()
}

// Tokenize consumes the whole input. The final EndOfFile token is not included.
func (z *Tokenizer) Tokenize() []Token {
	var out []Token
	for !z.input.Empty() {
		t := z.next()
		if t.Kind == KComment && !z.KeepComments {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (z *Tokenizer) intern(b []byte) string {
	if s, ok := z.arena[string(b)]; ok {
		return s
	}
	s := string(b)
	z.arena[s] = s
	return s
}

func isNameStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c >= 0x80
}

func isNameChar(c byte) bool { return isNameStart(c) || parsing.IsDigit(c) || c == '-' }

func isHexDigit(c byte) bool {
	return parsing.IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexValue(c byte) int {
	switch {
	case c <= '9':
		return int(c - '0')
	case c <= 'F':
		return int(c-'A') + 10
	default:
		return int(c-'a') + 10
	}
}

// newlines have been normalized in NewTokenizer
func isWhitespace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }

func isNonPrintable(c byte) bool {
	return c <= 0x08 || c == 0x0B || (0x0E <= c && c <= 0x1F) || c == 0x7F
}

// https://www.w3.org/TR/css-syntax-3/#starts-with-a-valid-escape
func isValidEscape(first, second byte) bool { return first == '\\' && second != '\n' }

// https://www.w3.org/TR/css-syntax-3/#would-start-an-identifier
func (z *Tokenizer) startsIdent(offset int) bool {
	c := z.input.Peek(offset)
	if c == '-' {
		next := z.input.Peek(offset + 1)
		return isNameStart(next) || next == '-' || isValidEscape(next, z.input.Peek(offset+2))
	}
	if c == '\\' && z.input.Len() > offset {
		return isValidEscape(c, z.input.Peek(offset+1))
	}
	return isNameStart(c)
}

// https://www.w3.org/TR/css-syntax-3/#starts-with-a-number
func (z *Tokenizer) startsNumber() bool {
	c := z.input.Peek(0)
	if c == '+' || c == '-' {
		next := z.input.Peek(1)
		return parsing.IsDigit(next) || (next == '.' && parsing.IsDigit(z.input.Peek(2)))
	}
	if c == '.' {
		return parsing.IsDigit(z.input.Peek(1))
	}
	return parsing.IsDigit(c)
}

func (z *Tokenizer) delim(c byte) Token {
	z.input.Advance(1)
	return Token{Kind: KDelim, Delim: rune(c)}
}

func (z *Tokenizer) single(k Kind) Token {
	z.input.Advance(1)
	return Token{Kind: k}
}

// next consumes one token. The input must not be empty.
func (z *Tokenizer) next() Token {
	in := &z.input
	c := in.Peek(0)
	switch c {
	case ' ', '\t', '\n':
		for isWhitespace(in.Peek(0)) {
			in.Advance(1)
		}
		return Token{Kind: KWhitespace}
	case '"', '\'':
		return z.consumeString(c)
	case '#':
		if isNameChar(in.Peek(1)) || isValidEscape(in.Peek(1), in.Peek(2)) {
			in.Advance(1)
			t := Token{Kind: KHash}
			if z.startsIdent(0) {
				t.HashType = HashIdentifier
			}
			t.Data = z.consumeName()
			return t
		}
		return z.delim(c)
	case '(':
		return z.single(KLeftParenthesis)
	case ')':
		return z.single(KRightParenthesis)
	case '[':
		return z.single(KLeftSquareBracket)
	case ']':
		return z.single(KRightSquareBracket)
	case '{':
		return z.single(KLeftCurlyBracket)
	case '}':
		return z.single(KRightCurlyBracket)
	case ',':
		return z.single(KComma)
	case ':':
		return z.single(KColon)
	case ';':
		return z.single(KSemicolon)
	case '+', '.':
		if z.startsNumber() {
			return z.consumeNumeric()
		}
		return z.delim(c)
	case '-':
		if z.startsNumber() {
			return z.consumeNumeric()
		}
		if in.Peek(1) == '-' && in.Peek(2) == '>' {
			in.Advance(3)
			return Token{Kind: KCDC}
		}
		if z.startsIdent(0) {
			return z.consumeIdentLike()
		}
		return z.delim(c)
	case '/':
		if in.Peek(1) == '*' {
			z.consumeComment()
			return Token{Kind: KComment}
		}
		return z.delim(c)
	case '<':
		if in.Peek(1) == '!' && in.Peek(2) == '-' && in.Peek(3) == '-' {
			in.Advance(4)
			return Token{Kind: KCDO}
		}
		return z.delim(c)
	case '@':
		if z.startsIdent(1) {
			in.Advance(1)
			return Token{Kind: KAtKeyword, Data: z.consumeName()}
		}
		return z.delim(c)
	case '\\':
		if z.startsIdent(0) {
			return z.consumeIdentLike()
		}
		return z.delim(c)
	}
	if parsing.IsDigit(c) {
		return z.consumeNumeric()
	}
	if isNameStart(c) {
		return z.consumeIdentLike()
	}
	return z.delim(c)
}

func (z *Tokenizer) consumeComment() {
	in := &z.input
	in.Advance(2)
	for !in.Empty() {
		if in.Peek(0) == '*' && in.Peek(1) == '/' {
			in.Advance(2)
			return
		}
		in.Advance(1)
	}
}

// consumeName returns a view of the source when no escape is found,
// and an interned decoded string otherwise.
// https://www.w3.org/TR/css-syntax-3/#consume-name
func (z *Tokenizer) consumeName() string {
	in := &z.input
	start := in.Pos()
	for isNameChar(in.Peek(0)) {
		in.Advance(1)
	}
	if !(in.Peek(0) == '\\' && z.startsIdent(0)) {
		return in.Since(start)
	}
	z.buf = append(z.buf[:0], in.Since(start)...)
	for {
		c := in.Peek(0)
		if isNameChar(c) {
			z.buf = append(z.buf, c)
			in.Advance(1)
		} else if c == '\\' && !in.Empty() && isValidEscape(c, in.Peek(1)) {
			in.Advance(1)
			z.buf = z.consumeEscape(z.buf)
		} else {
			break
		}
	}
	return z.intern(z.buf)
}

// consumeEscape decodes the escape following a backslash,
// appending it to buf.
// https://www.w3.org/TR/css-syntax-3/#consume-escaped-code-point
func (z *Tokenizer) consumeEscape(buf []byte) []byte {
	in := &z.input
	if in.Empty() {
		return utf8.AppendRune(buf, utf8.RuneError)
	}
	if !isHexDigit(in.Peek(0)) {
		r, w := in.PeekRune()
		in.Advance(w)
		return utf8.AppendRune(buf, r)
	}
	cp := 0
	for n := 0; n < 6 && isHexDigit(in.Peek(0)); n++ {
		cp = cp*16 + hexValue(in.Peek(0))
		in.Advance(1)
	}
	if isWhitespace(in.Peek(0)) {
		in.Advance(1)
	}
	if cp == 0 || (0xD800 <= cp && cp <= 0xDFFF) || cp > utf8.MaxRune {
		cp = utf8.RuneError
	}
	return utf8.AppendRune(buf, rune(cp))
}

// https://www.w3.org/TR/css-syntax-3/#consume-an-ident-like-token
func (z *Tokenizer) consumeIdentLike() Token {
	in := &z.input
	name := z.consumeName()
	if in.Peek(0) != '(' {
		return Token{Kind: KIdent, Data: name}
	}
	in.Advance(1)
	if utils.EqualFold(name, "url") {
		lookahead := *in
		parsing.SkipWhitespace(&lookahead)
		if c := lookahead.Peek(0); c != '"' && c != '\'' {
			return z.consumeURL()
		}
		// url("...") is a regular function, the whitespace is tokenized as usual
	}
	return Token{Kind: KFunction, Data: name}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-url-token
func (z *Tokenizer) consumeURL() Token {
	in := &z.input
	for isWhitespace(in.Peek(0)) {
		in.Advance(1)
	}
	start := in.Pos()
	escaped := false
	value := func() string {
		if escaped {
			return z.intern(z.buf)
		}
		return in.Since(start)
	}
	for {
		if in.Empty() { // parse error, but the url is kept
			return Token{Kind: KURL, Data: value()}
		}
		c := in.Peek(0)
		switch {
		case c == ')':
			t := Token{Kind: KURL, Data: value()}
			in.Advance(1)
			return t
		case isWhitespace(c):
			t := Token{Kind: KURL, Data: value()}
			for isWhitespace(in.Peek(0)) {
				in.Advance(1)
			}
			if in.Empty() {
				return t
			}
			if in.Peek(0) == ')' {
				in.Advance(1)
				return t
			}
			z.consumeBadURL()
			return Token{Kind: KBadURL}
		case c == '"' || c == '\'' || c == '(' || isNonPrintable(c):
			z.consumeBadURL()
			return Token{Kind: KBadURL}
		case c == '\\':
			if !isValidEscape(c, in.Peek(1)) {
				z.consumeBadURL()
				return Token{Kind: KBadURL}
			}
			if !escaped {
				z.buf = append(z.buf[:0], in.Since(start)...)
				escaped = true
			}
			in.Advance(1)
			z.buf = z.consumeEscape(z.buf)
		default:
			if escaped {
				z.buf = append(z.buf, c)
			}
			in.Advance(1)
		}
	}
}

// consumeBadURL skips the remnants of a bad url, up to and including
// the closing parenthesis.
func (z *Tokenizer) consumeBadURL() {
	in := &z.input
	for !in.Empty() {
		c := in.Peek(0)
		if c == ')' {
			in.Advance(1)
			return
		}
		if isValidEscape(c, in.Peek(1)) {
			in.Advance(2)
		} else {
			in.Advance(1)
		}
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-string-token
func (z *Tokenizer) consumeString(quote byte) Token {
	in := &z.input
	in.Advance(1)
	start := in.Pos()
	// fast path: no escape
	for {
		if in.Empty() {
			return Token{Kind: KString, Data: in.Since(start)}
		}
		c := in.Peek(0)
		if c == quote {
			t := Token{Kind: KString, Data: in.Since(start)}
			in.Advance(1)
			return t
		}
		if c == '\n' {
			return Token{Kind: KBadString}
		}
		if c == '\\' {
			break
		}
		in.Advance(1)
	}

	z.buf = append(z.buf[:0], in.Since(start)...)
	for {
		if in.Empty() {
			return Token{Kind: KString, Data: z.intern(z.buf)}
		}
		switch c := in.Peek(0); c {
		case quote:
			in.Advance(1)
			return Token{Kind: KString, Data: z.intern(z.buf)}
		case '\n':
			return Token{Kind: KBadString}
		case '\\':
			if in.Len() == 1 {
				in.Advance(1)
			} else if in.Peek(1) == '\n' { // escaped newline: line continuation
				in.Advance(2)
			} else {
				in.Advance(1)
				z.buf = z.consumeEscape(z.buf)
			}
		default:
			z.buf = append(z.buf, c)
			in.Advance(1)
		}
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-numeric-token
func (z *Tokenizer) consumeNumeric() Token {
	t := z.consumeNumber()
	if z.startsIdent(0) {
		t.Kind = KDimension
		t.Data = z.consumeName()
	} else if z.input.Peek(0) == '%' {
		z.input.Advance(1)
		t.Kind = KPercentage
	} else {
		t.Kind = KNumber
	}
	return t
}

// https://www.w3.org/TR/css-syntax-3/#consume-number
func (z *Tokenizer) consumeNumber() Token {
	in := &z.input
	t := Token{NumberType: Integer}
	switch in.Peek(0) {
	case '+':
		t.Sign = SignPlus
		in.Advance(1)
	case '-':
		t.Sign = SignMinus
		in.Advance(1)
	}

	var integer float64
	for c := in.Peek(0); parsing.IsDigit(c); c = in.Peek(0) {
		integer = integer*10 + float64(c-'0')
		in.Advance(1)
	}

	var fraction float64
	if in.Peek(0) == '.' && parsing.IsDigit(in.Peek(1)) {
		t.NumberType = Number
		in.Advance(1)
		divisor := 1.
		for c := in.Peek(0); parsing.IsDigit(c); c = in.Peek(0) {
			fraction = fraction*10 + float64(c-'0')
			divisor *= 10
			in.Advance(1)
		}
		fraction /= divisor
	}

	// the exponent is only read when digits follow, so that 1em stays a dimension
	var exponent float64
	if c := in.Peek(0); c == 'e' || c == 'E' {
		next := in.Peek(1)
		if parsing.IsDigit(next) || ((next == '+' || next == '-') && parsing.IsDigit(in.Peek(2))) {
			t.NumberType = Number
			in.Advance(1)
			sign := 1.
			if next == '-' {
				sign = -1
				in.Advance(1)
			} else if next == '+' {
				in.Advance(1)
			}
			for c := in.Peek(0); parsing.IsDigit(c); c = in.Peek(0) {
				exponent = exponent*10 + float64(c-'0')
				in.Advance(1)
			}
			exponent *= sign
		}
	}

	t.Number = integer + fraction
	if exponent != 0 {
		t.Number *= math.Pow(10, exponent)
	}
	if t.Sign == SignMinus {
		t.Number = -t.Number
	}
	return t
}
