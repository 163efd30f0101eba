package validation

import (
	"strings"

	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
	"github.com/benoitkugler/svgstyle/utils"
)

// validator consumes a value from `input`, returning nil if invalid.
// The caller checks that the whole input is consumed.
type validator func(input *pa.TokenStream, prop pr.KnownProp) pr.Value

var validators = [pr.NbProps]validator{
	pr.PClipPath:         urlOrNone,
	pr.PClipRule:         keywords(kw.NonZero, kw.EvenOdd),
	pr.PColor:            color,
	pr.PDisplay:          keywords(kw.Inline, kw.Block, kw.InlineBlock, kw.ListItem, kw.None),
	pr.PFill:             paint,
	pr.PFillOpacity:      opacity,
	pr.PFillRule:         keywords(kw.NonZero, kw.EvenOdd),
	pr.PFontFamily:       fontFamily,
	pr.PFontSize:         fontSize,
	pr.PFontStyle:        keywords(kw.Normal, kw.Italic, kw.Oblique),
	pr.PFontVariant:      keywords(kw.Normal, kw.SmallCaps),
	pr.PFontWeight:       fontWeight,
	pr.PLetterSpacing:    spacing,
	pr.PMarkerEnd:        urlOrNone,
	pr.PMarkerMid:        urlOrNone,
	pr.PMarkerStart:      urlOrNone,
	pr.PMask:             urlOrNone,
	pr.POpacity:          opacity,
	pr.POverflow:         keywords(kw.Visible, kw.Hidden, kw.Auto, kw.Scroll),
	pr.PSolidColor:       color,
	pr.PSolidOpacity:     opacity,
	pr.PStopColor:        color,
	pr.PStopOpacity:      opacity,
	pr.PStroke:           paint,
	pr.PStrokeDasharray:  dashArray,
	pr.PStrokeDashoffset: length(true),
	pr.PStrokeLinecap:    keywords(kw.Butt, kw.Round, kw.Square),
	pr.PStrokeLinejoin:   keywords(kw.Miter, kw.Round, kw.Bevel),
	pr.PStrokeMiterlimit: miterLimit,
	pr.PStrokeOpacity:    opacity,
	pr.PStrokeWidth:      length(false),
	pr.PTextAnchor:       keywords(kw.Start, kw.Middle, kw.End),
	pr.PTextDecoration:   keywords(kw.None, kw.Underline, kw.Overline, kw.LineThrough),
	pr.PVisibility:       keywords(kw.Visible, kw.Hidden, kw.Collapse),
	pr.PWordSpacing:      spacing,
}

// getKeyword returns the keyword of an ident token, if it is one of `allowed`.
func getKeyword(token pa.Token, allowed ...kw.Keyword) (kw.Keyword, bool) {
	if token.Kind != pa.KIdent {
		return 0, false
	}
	k := kw.NewKeyword(utils.AsciiLower(token.Data))
	for _, a := range allowed {
		if k == a {
			return k, true
		}
	}
	return 0, false
}

// getLength parses a dimension with a length unit, a percentage if `percentage` is true,
// and a plain number if `unitless` is true. The number 0 is always accepted.
func getLength(input *pa.TokenStream, negative, percentage, unitless bool) (*pr.Length, bool) {
	token := input.Peek()
	var out *pr.Length
	switch token.Kind {
	case pa.KNumber:
		if unitless || token.Number == 0 {
			out = pr.NewLength(token.Number, pr.UnitNone)
		}
	case pa.KPercentage:
		if percentage {
			out = pr.NewLength(token.Number, pr.UnitPercent)
		}
	case pa.KDimension:
		if unit, ok := pr.Units[utils.AsciiLower(token.Data)]; ok {
			out = pr.NewLength(token.Number, unit)
		}
	}
	if out == nil || (!negative && token.Number < 0) {
		return nil, false
	}
	input.ConsumeIncludingWhitespace()
	return out, true
}

// ParseURL parses an url token or an url() function with a string argument.
func ParseURL(input *pa.TokenStream) (string, bool) {
	token := input.Peek()
	switch {
	case token.Kind == pa.KURL:
		input.ConsumeIncludingWhitespace()
		return token.Data, true
	case token.Kind == pa.KFunction && utils.EqualFold(token.Data, "url"):
		guard := pa.NewGuard(input)
		defer guard.Restore()
		args := input.ConsumeBlock()
		args.ConsumeWhitespace()
		arg := args.Peek()
		if arg.Kind != pa.KString {
			return "", false
		}
		args.ConsumeIncludingWhitespace()
		if !args.Empty() {
			return "", false
		}
		input.ConsumeWhitespace()
		guard.Release()
		return arg.Data, true
	}
	return "", false
}

func keywords(allowed ...kw.Keyword) validator {
	return func(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
		k, ok := getKeyword(input.Peek(), allowed...)
		if !ok {
			return nil
		}
		input.ConsumeIncludingWhitespace()
		return pr.NewIdent(k)
	}
}

// opacity accepts a number or a percentage, clamped to [0, 1] or [0, 100].
// Negative values are invalid.
func opacity(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
	token := input.Peek()
	if token.Number < 0 {
		return nil
	}
	var out pr.Value
	switch token.Kind {
	case pa.KNumber:
		out = pr.NewNumber(utils.Clamp(token.Number, 0, 1))
	case pa.KPercentage:
		out = pr.NewPercent(utils.Clamp(token.Number, 0, 100))
	default:
		return nil
	}
	input.ConsumeIncludingWhitespace()
	return out
}

func miterLimit(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
	token := input.Peek()
	if token.Kind != pa.KNumber || token.Number < 0 {
		return nil
	}
	input.ConsumeIncludingWhitespace()
	return pr.NewNumber(token.Number)
}

func length(negative bool) validator {
	return func(input *pa.TokenStream, prop pr.KnownProp) pr.Value {
		l, ok := getLength(input, negative, true, prop.AcceptsUnitless())
		if !ok {
			return nil
		}
		return l
	}
}

// spacing is used for letter-spacing and word-spacing.
func spacing(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
	if input.Peek().IsIdent("normal") {
		input.ConsumeIncludingWhitespace()
		return pr.NewIdent(kw.Normal)
	}
	l, ok := getLength(input, true, false, false)
	if !ok {
		return nil
	}
	return l
}

func urlOrNone(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
	if input.Peek().IsIdent("none") {
		input.ConsumeIncludingWhitespace()
		return pr.NewIdent(kw.None)
	}
	url, ok := ParseURL(input)
	if !ok {
		return nil
	}
	return pr.NewURL(url)
}

func color(input *pa.TokenStream, _ pr.KnownProp) pr.Value { return parseColor(input) }

// paint is none | <color> | <url> [none | <color>]?
func paint(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
	if input.Peek().IsIdent("none") {
		input.ConsumeIncludingWhitespace()
		return pr.NewIdent(kw.None)
	}
	url, ok := ParseURL(input)
	if !ok {
		return parseColor(input)
	}
	if input.Empty() {
		return pr.NewURL(url)
	}
	if input.Peek().IsIdent("none") {
		input.ConsumeIncludingWhitespace()
		return pr.NewPair(pr.NewURL(url), pr.NewIdent(kw.None))
	}
	fallback := parseColor(input)
	if fallback == nil {
		return nil
	}
	return pr.NewPair(pr.NewURL(url), fallback)
}

// dashArray is none | a list of non negative lengths or percentages,
// separated by commas and/or whitespace.
func dashArray(input *pa.TokenStream, prop pr.KnownProp) pr.Value {
	if input.Peek().IsIdent("none") {
		input.ConsumeIncludingWhitespace()
		return pr.NewIdent(kw.None)
	}
	var values []pr.Value
	for {
		l, ok := getLength(input, false, true, prop.AcceptsUnitless())
		if !ok {
			return nil
		}
		values = append(values, l)
		if input.Empty() {
			return pr.NewList(values)
		}
		consumeComma(input)
	}
}

func fontWeight(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
	token := input.Peek()
	if k, ok := getKeyword(token, kw.Normal, kw.Bold, kw.Bolder, kw.Lighter); ok {
		input.ConsumeIncludingWhitespace()
		return pr.NewIdent(k)
	}
	if token.Kind != pa.KNumber || !token.IsInt() {
		return nil
	}
	input.ConsumeIncludingWhitespace()
	return pr.NewInteger(utils.ClampInt(token.Int(), 1, 1000))
}

func fontSize(input *pa.TokenStream, prop pr.KnownProp) pr.Value {
	k, ok := getKeyword(input.Peek(), kw.XXSmall, kw.XSmall, kw.Small, kw.Medium,
		kw.Large, kw.XLarge, kw.XXLarge, kw.Larger, kw.Smaller)
	if ok {
		input.ConsumeIncludingWhitespace()
		return pr.NewIdent(k)
	}
	l, ok := getLength(input, false, true, prop.AcceptsUnitless())
	if !ok {
		return nil
	}
	return l
}

// fontFamily is a comma separated list of family names, either quoted,
// or given as a sequence of idents joined by a space.
func fontFamily(input *pa.TokenStream, _ pr.KnownProp) pr.Value {
	var families []pr.Value
	for {
		token := input.Peek()
		switch token.Kind {
		case pa.KString:
			families = append(families, pr.NewString(token.Data))
			input.ConsumeIncludingWhitespace()
		case pa.KIdent:
			var name []string
			for input.Peek().Kind == pa.KIdent {
				name = append(name, input.Peek().Data)
				input.ConsumeIncludingWhitespace()
			}
			families = append(families, pr.NewString(strings.Join(name, " ")))
		default:
			return nil
		}
		if !consumeComma(input) {
			return pr.NewList(families)
		}
	}
}
