package validation

import (
	"math"

	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
	"github.com/benoitkugler/svgstyle/utils"
)

// parseColor parses a <color>, returning a *pr.Color,
// the 'currentcolor' keyword, or nil.
func parseColor(input *pa.TokenStream) pr.Value {
	token := input.Peek()
	switch token.Kind {
	case pa.KHash:
		argb, ok := parseHexColor(token.Data)
		if !ok {
			return nil
		}
		input.ConsumeIncludingWhitespace()
		return pr.NewColor(argb)
	case pa.KFunction:
		if utils.EqualFold(token.Data, "rgb") || utils.EqualFold(token.Data, "rgba") {
			if c := parseRGB(input); c != nil {
				return c
			}
		}
		return nil
	case pa.KIdent:
		var out pr.Value
		if utils.EqualFold(token.Data, "currentcolor") {
			out = pr.NewIdent(kw.CurrentColor)
		} else if utils.EqualFold(token.Data, "transparent") {
			out = pr.NewColor(0)
		} else if argb, ok := lookupNamedColor(token.Data); ok {
			out = pr.NewColor(argb)
		} else {
			return nil
		}
		input.ConsumeIncludingWhitespace()
		return out
	}
	return nil
}

// parseHexColor accepts 3, 4, 6 or 8 hex digits.
func parseHexColor(s string) (uint32, bool) {
	var digits [8]uint32
	for i := 0; i < len(s); i++ {
		if i == len(digits) {
			return 0, false
		}
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			digits[i] = uint32(c - '0')
		case 'a' <= c && c <= 'f':
			digits[i] = uint32(c-'a') + 10
		case 'A' <= c && c <= 'F':
			digits[i] = uint32(c-'A') + 10
		default:
			return 0, false
		}
	}
	var r, g, b, a uint32
	switch len(s) {
	case 3, 4:
		r, g, b, a = digits[0]*0x11, digits[1]*0x11, digits[2]*0x11, 0xFF
		if len(s) == 4 {
			a = digits[3] * 0x11
		}
	case 6, 8:
		r, g, b, a = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], 0xFF
		if len(s) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return 0, false
	}
	return a<<24 | r<<16 | g<<8 | b, true
}

func roundChannel(v float64) uint8 { return uint8(math.Round(utils.Clamp(v, 0, 255))) }

// parseColorComponent parses a number in [0, 255] or a percentage.
func parseColorComponent(input *pa.TokenStream) (uint8, bool) {
	token := input.Peek()
	var v float64
	switch token.Kind {
	case pa.KNumber:
		v = token.Number
	case pa.KPercentage:
		v = token.Number * 255 / 100
	default:
		return 0, false
	}
	input.ConsumeIncludingWhitespace()
	return roundChannel(v), true
}

// parseAlphaComponent parses a number in [0, 1] or a percentage.
func parseAlphaComponent(input *pa.TokenStream) (uint8, bool) {
	token := input.Peek()
	var v float64
	switch token.Kind {
	case pa.KNumber:
		v = utils.Clamp(token.Number, 0, 1) * 255
	case pa.KPercentage:
		v = utils.Clamp(token.Number, 0, 100) * 255 / 100
	default:
		return 0, false
	}
	input.ConsumeIncludingWhitespace()
	return roundChannel(v), true
}

func consumeComma(input *pa.TokenStream) bool {
	if input.Peek().Kind != pa.KComma {
		return false
	}
	input.ConsumeIncludingWhitespace()
	return true
}

// parseRGB parses rgb() and rgba(), leaving the input untouched on failure.
func parseRGB(input *pa.TokenStream) *pr.Color {
	guard := pa.NewGuard(input)
	defer guard.Restore()

	args := input.ConsumeBlock()
	args.ConsumeWhitespace()
	var channels [3]uint8
	for i := range channels {
		if i != 0 && !consumeComma(&args) {
			return nil
		}
		c, ok := parseColorComponent(&args)
		if !ok {
			return nil
		}
		channels[i] = c
	}
	alpha := uint8(0xFF)
	if consumeComma(&args) {
		var ok bool
		if alpha, ok = parseAlphaComponent(&args); !ok {
			return nil
		}
	}
	if !args.Empty() {
		return nil
	}
	input.ConsumeWhitespace()
	guard.Release()
	return pr.NewRGBA(channels[0], channels[1], channels[2], alpha)
}
