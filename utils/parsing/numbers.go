package parsing

import (
	"github.com/tdewolff/parse/v2/strconv"
)

func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsWhitespace matches the SVG/CSS whitespace characters.
func IsWhitespace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' }

// SkipWhitespace advances past whitespace, returning false at the end of input.
func SkipWhitespace(in *Input) bool {
	for IsWhitespace(in.Peek(0)) {
		in.Advance(1)
	}
	return !in.Empty()
}

// SkipWhitespaceAndDelimiter skips whitespace, at most one `delim`, then whitespace again,
// as found between the items of an SVG list.
func SkipWhitespaceAndDelimiter(in *Input, delim byte) bool {
	if SkipWhitespace(in) && in.Peek(0) == delim {
		in.Advance(1)
		SkipWhitespace(in)
	}
	return !in.Empty()
}

// ParseNumber reads a floating point number (with optional sign, fraction and exponent).
func ParseNumber(in *Input) (float64, bool) {
	if in.Empty() {
		return 0, false
	}
	v, n := strconv.ParseFloat([]byte(in.Remaining()))
	if n == 0 {
		return 0, false
	}
	in.Advance(n)
	return v, true
}

// ParseInteger reads an optionally signed decimal integer.
func ParseInteger(in *Input) (int, bool) {
	saved := *in
	sign := 1
	switch in.Peek(0) {
	case '-':
		sign = -1
		in.Advance(1)
	case '+':
		in.Advance(1)
	}
	if !IsDigit(in.Peek(0)) {
		*in = saved
		return 0, false
	}
	v := 0
	for IsDigit(in.Peek(0)) {
		v = v*10 + int(in.Peek(0)-'0')
		in.Advance(1)
	}
	return sign * v, true
}

// ParseNumberList reads numbers separated by whitespace and/or commas.
// It returns false if anything else is found.
func ParseNumberList(s string) ([]float64, bool) {
	in := NewInput(s)
	var out []float64
	SkipWhitespace(&in)
	for !in.Empty() {
		v, ok := ParseNumber(&in)
		if !ok {
			return nil, false
		}
		out = append(out, v)
		SkipWhitespaceAndDelimiter(&in, ',')
	}
	return out, true
}
