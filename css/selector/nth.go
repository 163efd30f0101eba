package selector

import (
	pa "github.com/benoitkugler/svgstyle/css/parser"
	"github.com/benoitkugler/svgstyle/utils"
	"github.com/benoitkugler/svgstyle/utils/parsing"
)

// parseNth parses <An+B> (see https://www.w3.org/TR/css-syntax-3/#anb-microsyntax),
// as found in `:nth-child()` and related pseudo-classes.
func parseNth(tokens pa.TokenStream) (a, b int, ok bool) {
	tokens.ConsumeWhitespace()
	token := tokens.Peek()
	tokens.Consume()
	switch token.Kind {
	case pa.KNumber:
		if token.IsInt() {
			return parseEnd(tokens, 0, token.Int())
		}
	case pa.KDimension:
		if token.IsInt() {
			unit := utils.AsciiLower(token.Data)
			switch unit {
			case "n":
				return parseB(tokens, token.Int())
			case "n-":
				return parseSignlessB(tokens, token.Int(), -1)
			default:
				if b, ok := matchDashDigits(unit); ok {
					return parseEnd(tokens, token.Int(), b)
				}
			}
		}
	case pa.KIdent:
		ident := utils.AsciiLower(token.Data)
		switch ident {
		case "even":
			return parseEnd(tokens, 2, 0)
		case "odd":
			return parseEnd(tokens, 2, 1)
		case "n":
			return parseB(tokens, 1)
		case "-n":
			return parseB(tokens, -1)
		case "n-":
			return parseSignlessB(tokens, 1, -1)
		case "-n-":
			return parseSignlessB(tokens, -1, -1)
		default:
			if ident[0] == '-' {
				if b, ok := matchDashDigits(ident[1:]); ok {
					return parseEnd(tokens, -1, b)
				}
			} else if b, ok := matchDashDigits(ident); ok {
				return parseEnd(tokens, 1, b)
			}
		}
	case pa.KDelim:
		if token.Delim == '+' {
			// whitespace after an initial "+" is invalid
			next := tokens.Peek()
			tokens.Consume()
			if next.Kind == pa.KIdent {
				switch ident := utils.AsciiLower(next.Data); ident {
				case "n":
					return parseB(tokens, 1)
				case "n-":
					return parseSignlessB(tokens, 1, -1)
				default:
					if b, ok := matchDashDigits(ident); ok {
						return parseEnd(tokens, 1, b)
					}
				}
			}
		}
	}
	return 0, 0, false
}

// matchDashDigits matches 'n-<digits>', returning -<digits>.
func matchDashDigits(s string) (int, bool) {
	in := parsing.NewInput(s)
	if !in.SkipString("n-") || !parsing.IsDigit(in.Peek(0)) {
		return 0, false
	}
	v, _ := parsing.ParseInteger(&in)
	return -v, in.Empty()
}

func parseB(tokens pa.TokenStream, a int) (int, int, bool) {
	tokens.ConsumeWhitespace()
	if tokens.Empty() {
		return a, 0, true
	}
	token := tokens.Peek()
	tokens.Consume()
	if token.IsDelim('+') {
		return parseSignlessB(tokens, a, 1)
	} else if token.IsDelim('-') {
		return parseSignlessB(tokens, a, -1)
	}
	if token.Kind == pa.KNumber && token.IsInt() && token.Sign != pa.SignNone {
		return parseEnd(tokens, a, token.Int())
	}
	return 0, 0, false
}

func parseSignlessB(tokens pa.TokenStream, a, bSign int) (int, int, bool) {
	tokens.ConsumeWhitespace()
	token := tokens.Peek()
	tokens.Consume()
	if token.Kind == pa.KNumber && token.IsInt() && token.Sign == pa.SignNone {
		return parseEnd(tokens, a, bSign*token.Int())
	}
	return 0, 0, false
}

func parseEnd(tokens pa.TokenStream, a, b int) (int, int, bool) {
	tokens.ConsumeWhitespace()
	if tokens.Empty() {
		return a, b, true
	}
	return 0, 0, false
}

// matchNth returns true if index (starting at 1) is A*n+B for some n >= 0.
func matchNth(a, b, index int) bool {
	index -= b
	if a == 0 {
		return index == 0
	}
	return index%a == 0 && index/a >= 0
}
