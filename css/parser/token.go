package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/benoitkugler/svgstyle/utils"
)

// Kind identifies the type of a token.
type Kind uint8

const (
	KEndOfFile Kind = iota
	KIdent
	KFunction
	KAtKeyword
	KHash
	KString
	KBadString
	KURL
	KBadURL
	KDelim
	KNumber
	KPercentage
	KDimension
	KWhitespace
	KComment
	KCDO
	KCDC
	KColon
	KSemicolon
	KComma
	KLeftSquareBracket
	KRightSquareBracket
	KLeftParenthesis
	KRightParenthesis
	KLeftCurlyBracket
	KRightCurlyBracket
)

var kindNames = [...]string{
	KEndOfFile:          "end-of-file",
	KIdent:              "ident",
	KFunction:           "function",
	KAtKeyword:          "at-keyword",
	KHash:               "hash",
	KString:             "string",
	KBadString:          "bad-string",
	KURL:                "url",
	KBadURL:             "bad-url",
	KDelim:              "delim",
	KNumber:             "number",
	KPercentage:         "percentage",
	KDimension:          "dimension",
	KWhitespace:         "whitespace",
	KComment:            "comment",
	KCDO:                "<!--",
	KCDC:                "-->",
	KColon:              ":",
	KSemicolon:          ";",
	KComma:              ",",
	KLeftSquareBracket:  "[",
	KRightSquareBracket: "]",
	KLeftParenthesis:    "(",
	KRightParenthesis:   ")",
	KLeftCurlyBracket:   "{",
	KRightCurlyBracket:  "}",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("<kind %d>", k)
}

// closing returns the kind ending a block opened by `k`,
// or KEndOfFile if `k` does not open a block.
func (k Kind) closing() Kind {
	switch k {
	case KFunction, KLeftParenthesis:
		return KRightParenthesis
	case KLeftSquareBracket:
		return KRightSquareBracket
	case KLeftCurlyBracket:
		return KRightCurlyBracket
	default:
		return KEndOfFile
	}
}

// HashType distinguishes hashes which would be valid identifiers.
type HashType uint8

const (
	HashUnrestricted HashType = iota
	HashIdentifier
)

// NumberType records whether a numeric token was written as an integer.
type NumberType uint8

const (
	Integer NumberType = iota
	Number
)

// NumberSign records the explicit sign of a numeric token.
type NumberSign uint8

const (
	SignNone NumberSign = iota
	SignPlus
	SignMinus
)

// Token is a CSS token. Which fields are meaningful depends on Kind:
//   - Data is the name of idents, functions and at-keywords, the value of hashes,
//     strings and urls, and the unit of dimensions
//   - Number, NumberType and Sign are set for numbers, percentages and dimensions
//   - HashType is set for hashes
//   - Delim is set for delimiters
type Token struct {
	Data       string
	Number     float64
	Delim      rune
	Kind       Kind
	HashType   HashType
	NumberType NumberType
	Sign       NumberSign
}

// IsDelim returns true for the delimiter `r`.
func (t Token) IsDelim(r rune) bool { return t.Kind == KDelim && t.Delim == r }

// IsIdent returns true for an ident matching the lower case `name`, ignoring ASCII case.
func (t Token) IsIdent(name string) bool { return t.Kind == KIdent && utils.EqualFold(t.Data, name) }

// IsInt returns true for numeric tokens written as integers.
func (t Token) IsInt() bool {
	return (t.Kind == KNumber || t.Kind == KPercentage || t.Kind == KDimension) && t.NumberType == Integer
}

// Int returns the numeric value, truncated.
func (t Token) Int() int {
	if t.Number > math.MaxInt32 {
		return math.MaxInt32
	} else if t.Number < math.MinInt32 {
		return math.MinInt32
	}
	return int(t.Number)
}

func formatNumber(t Token) string {
	s := strconv.FormatFloat(t.Number, 'g', -1, 64)
	if t.Sign == SignPlus {
		s = "+" + s
	}
	return s
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case KIdent, KAtKeyword, KURL:
		return fmt.Sprintf("<%s %q>", t.Kind, t.Data)
	case KFunction:
		return fmt.Sprintf("<function %q>", t.Data)
	case KHash:
		if t.HashType == HashIdentifier {
			return fmt.Sprintf("<hash id %q>", t.Data)
		}
		return fmt.Sprintf("<hash %q>", t.Data)
	case KString:
		return fmt.Sprintf("<string %q>", t.Data)
	case KDelim:
		return fmt.Sprintf("<delim %q>", t.Delim)
	case KNumber:
		return fmt.Sprintf("<number %s>", formatNumber(t))
	case KPercentage:
		return fmt.Sprintf("<percentage %s%%>", formatNumber(t))
	case KDimension:
		return fmt.Sprintf("<dimension %s %q>", formatNumber(t), t.Data)
	default:
		return "<" + t.Kind.String() + ">"
	}
}
