package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// serialization type used to detect token pairs which would
// merge when written next to each other
func serializationType(t Token) string {
	switch t.Kind {
	case KDelim:
		return string(t.Delim)
	default:
		return t.Kind.String()
	}
}

var badPairs = map[[2]string]bool{}

func init() {
	for _, a := range []string{"ident", "at-keyword", "hash", "dimension", "#", "-", "number"} {
		for _, b := range []string{"ident", "function", "url", "number", "percentage", "dimension"} {
			badPairs[[2]string{a, b}] = true
		}
	}
	for _, a := range []string{"ident", "at-keyword", "hash", "dimension"} {
		for _, b := range []string{"-", "-->"} {
			badPairs[[2]string{a, b}] = true
		}
	}
	for _, a := range []string{"#", "-", "number", "@"} {
		for _, b := range []string{"ident", "function", "url"} {
			badPairs[[2]string{a, b}] = true
		}
	}
	for _, a := range []string{".", "+"} {
		for _, b := range []string{"number", "percentage", "dimension"} {
			badPairs[[2]string{a, b}] = true
		}
	}
	for _, b := range []string{"ident", "function", "url", "-"} {
		badPairs[[2]string{"@", b}] = true
	}
	for _, a := range []string{"$", "*", "^", "~", "|"} {
		badPairs[[2]string{a, "="}] = true
	}
	badPairs[[2]string{"ident", "("}] = true
	badPairs[[2]string{"|", "|"}] = true
	badPairs[[2]string{"/", "*"}] = true
}

// Serialize writes back tokens as CSS text, which tokenizes
// to the same tokens (comments aside).
// http://drafts.csswg.org/csswg/css-syntax/#serialization
func Serialize(tokens []Token) string {
	var w strings.Builder
	var previousType string
	for _, t := range tokens {
		typ := serializationType(t)
		if badPairs[[2]string{previousType, typ}] {
			w.WriteString("/**/")
		}
		serializeToken(t, &w)
		previousType = typ
	}
	return w.String()
}

func serializeToken(t Token, w *strings.Builder) {
	switch t.Kind {
	case KEndOfFile:
	case KIdent:
		w.WriteString(serializeIdentifier(t.Data))
	case KFunction:
		w.WriteString(serializeIdentifier(t.Data))
		w.WriteByte('(')
	case KAtKeyword:
		w.WriteByte('@')
		w.WriteString(serializeIdentifier(t.Data))
	case KHash:
		w.WriteByte('#')
		if t.HashType == HashIdentifier {
			w.WriteString(serializeIdentifier(t.Data))
		} else {
			w.WriteString(serializeName(t.Data))
		}
	case KString:
		w.WriteByte('"')
		w.WriteString(serializeStringValue(t.Data))
		w.WriteByte('"')
	case KBadString:
		w.WriteString("\"[bad string]\n")
	case KURL:
		w.WriteString("url(")
		w.WriteString(serializeURL(t.Data))
		w.WriteByte(')')
	case KBadURL:
		w.WriteString("url([bad url])")
	case KDelim:
		if t.Delim == '\\' {
			w.WriteString("\\\n")
		} else {
			w.WriteRune(t.Delim)
		}
	case KNumber:
		w.WriteString(serializeNumber(t))
	case KPercentage:
		w.WriteString(serializeNumber(t))
		w.WriteByte('%')
	case KDimension:
		w.WriteString(serializeNumber(t))
		// disambiguate with scientific notation
		if unit := t.Data; unit == "e" || unit == "E" || strings.HasPrefix(unit, "e-") || strings.HasPrefix(unit, "E-") {
			w.WriteString("\\65 ")
			w.WriteString(serializeName(unit[1:]))
		} else {
			w.WriteString(serializeIdentifier(unit))
		}
	case KWhitespace:
		w.WriteByte(' ')
	case KComment:
		w.WriteString("/**/")
	default:
		w.WriteString(t.Kind.String())
	}
}

func serializeNumber(t Token) string {
	s := strconv.FormatFloat(t.Number, 'f', -1, 64)
	if t.NumberType == Number && !strings.Contains(s, ".") {
		s += ".0"
	}
	if t.Sign == SignPlus {
		s = "+" + s
	}
	return s
}

// serializeIdentifier returns a string which would tokenize
// as an ident with the given value.
func serializeIdentifier(value string) string {
	if value == "" {
		return ""
	}
	if value == "-" {
		return `\-`
	}
	if strings.HasPrefix(value, "--") {
		return "--" + serializeName(value[2:])
	}
	var result string
	if value[0] == '-' {
		result = "-"
		value = value[1:]
		if value == "" {
			return `\-`
		}
	}
	c, w := utf8.DecodeRuneInString(value)
	var first string
	switch {
	case c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		first = string(c)
	case '0' <= c && c <= '9':
		first = fmt.Sprintf("\\%X ", c)
	default:
		first = escapeRune(c)
	}
	return result + first + serializeName(value[w:])
}

func escapeRune(c rune) string {
	switch c {
	case '\n':
		return `\A `
	case '\r':
		return `\D `
	case '\f':
		return `\C `
	}
	if c > 0x7F {
		return string(c)
	}
	return "\\" + string(c)
}

func serializeName(value string) string {
	var out strings.Builder
	for _, c := range value {
		if c == '-' || c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			out.WriteRune(c)
		} else {
			out.WriteString(escapeRune(c))
		}
	}
	return out.String()
}

func serializeStringValue(value string) string {
	var out strings.Builder
	for _, c := range value {
		switch c {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\A `)
		case '\r':
			out.WriteString(`\D `)
		case '\f':
			out.WriteString(`\C `)
		default:
			out.WriteRune(c)
		}
	}
	return out.String()
}

func serializeURL(value string) string {
	var out strings.Builder
	for _, c := range value {
		switch c {
		case '\'', '"', '\\', '(', ')', ' ':
			out.WriteByte('\\')
			out.WriteRune(c)
		case '\t':
			out.WriteString(`\9 `)
		case '\n':
			out.WriteString(`\A `)
		case '\r':
			out.WriteString(`\D `)
		case '\f':
			out.WriteString(`\C `)
		default:
			out.WriteRune(c)
		}
	}
	return out.String()
}
