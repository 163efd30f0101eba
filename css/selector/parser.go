package selector

import (
	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/dom"
	"github.com/benoitkugler/svgstyle/utils"
)

var pseudoClasses = map[string]PseudoType{
	"empty":         Empty,
	"root":          Root,
	"first-child":   FirstChild,
	"last-child":    LastChild,
	"only-child":    OnlyChild,
	"first-of-type": FirstOfType,
	"last-of-type":  LastOfType,
	"only-of-type":  OnlyOfType,
}

var pseudoFunctions = map[string]PseudoType{
	"is":               Is,
	"not":              Not,
	"nth-child":        NthChild,
	"nth-last-child":   NthLastChild,
	"nth-of-type":      NthOfType,
	"nth-last-of-type": NthLastOfType,
}

// ParseList parses a comma separated list of selectors, leading whitespace included.
// It stops at the first token which can't start or continue a selector,
// so that the caller should check that the input is exhausted.
// An invalid selector anywhere in the list invalidates the whole list.
func ParseList(input *pa.TokenStream) (List, bool) {
	var out List
	for {
		sel, ok := parseSelector(input)
		if !ok {
			return nil, false
		}
		out = append(out, sel)
		if input.Peek().Kind != pa.KComma {
			return out, true
		}
		input.ConsumeIncludingWhitespace()
	}
}

// ParseString is a convenience wrapper for ParseList,
// which must consume the whole input.
func ParseString(text string) (List, bool) {
	input := pa.NewTokenStream(pa.Tokenize(text))
	out, ok := ParseList(&input)
	input.ConsumeWhitespace()
	if !ok || !input.Empty() {
		return nil, false
	}
	return out, true
}

func parseSelector(input *pa.TokenStream) (Selector, bool) {
	input.ConsumeWhitespace()
	var out Selector
	combinator := None
	for {
		simple, ok := parseSimpleSelector(input)
		if !ok {
			return nil, false
		}
		simple.Combinator = combinator
		out = append(out, simple)

		combinator = parseCombinator(input)
		if combinator == None {
			return out, true
		}
	}
}

// parseCombinator returns None at the end of the selector,
// trailing whitespace included.
func parseCombinator(input *pa.TokenStream) Combinator {
	combinator := None
	for input.Peek().Kind == pa.KWhitespace {
		input.Consume()
		combinator = Descendant
	}
	token := input.Peek()
	if token.Kind == pa.KDelim {
		switch token.Delim {
		case '+':
			combinator = DirectAdjacent
		case '>':
			combinator = Child
		case '~':
			combinator = IndirectAdjacent
		default:
			return combinator
		}
		input.ConsumeIncludingWhitespace()
		return combinator
	}
	switch token.Kind {
	case pa.KComma, pa.KEndOfFile, pa.KLeftCurlyBracket:
		return None
	}
	return combinator
}

func parseSimpleSelector(input *pa.TokenStream) (SimpleSelector, bool) {
	out := SimpleSelector{Element: dom.Star}
	hasType := false
	switch token := input.Peek(); {
	case token.IsDelim('*'):
		input.Consume()
		hasType = true
	case token.Kind == pa.KIdent:
		out.Element = dom.Lookup(token.Data)
		input.Consume()
		hasType = true
	}

	count := 0
	for ; ; count++ {
		token := input.Peek()
		switch {
		case token.Kind == pa.KHash:
			if token.HashType != pa.HashIdentifier {
				return out, false
			}
			out.Attributes = append(out.Attributes, AttributeSelector{Name: pr.PID, Operator: Equals, Value: token.Data})
			input.Consume()
		case token.IsDelim('.'):
			input.Consume()
			class := input.Peek()
			if class.Kind != pa.KIdent {
				return out, false
			}
			out.Attributes = append(out.Attributes, AttributeSelector{Name: pr.PClass, Operator: Includes, Value: class.Data})
			input.Consume()
		case token.Kind == pa.KLeftSquareBracket:
			block := input.ConsumeBlock()
			attr, ok := parseAttributeSelector(block)
			if !ok {
				return out, false
			}
			out.Attributes = append(out.Attributes, attr)
		case token.Kind == pa.KColon:
			input.Consume()
			pseudo, ok := parsePseudoClass(input)
			if !ok {
				return out, false
			}
			out.Pseudos = append(out.Pseudos, pseudo)
		default:
			return out, hasType || count != 0
		}
	}
}

var attributeOperators = map[rune]AttributeMatch{
	'~': Includes,
	'*': Contains,
	'^': StartsWith,
	'$': EndsWith,
	'|': DashEquals,
}

func parseAttributeSelector(block pa.TokenStream) (AttributeSelector, bool) {
	var out AttributeSelector
	block.ConsumeWhitespace()
	name := block.Peek()
	if name.Kind != pa.KIdent {
		return out, false
	}
	out.Name = pr.Lookup(name.Data)
	block.ConsumeIncludingWhitespace()
	if block.Empty() {
		out.Operator = Exists
		return out, true
	}

	op := block.Peek()
	if op.Kind != pa.KDelim {
		return out, false
	}
	if op.Delim == '=' {
		out.Operator = Equals
		block.ConsumeIncludingWhitespace()
	} else {
		match, ok := attributeOperators[op.Delim]
		if !ok {
			return out, false
		}
		block.Consume()
		if !block.Peek().IsDelim('=') {
			return out, false
		}
		block.ConsumeIncludingWhitespace()
		out.Operator = match
	}

	value := block.Peek()
	if value.Kind != pa.KIdent && value.Kind != pa.KString {
		return out, false
	}
	out.Value = value.Data
	block.ConsumeIncludingWhitespace()
	return out, block.Empty()
}

// parsePseudoClass is called after the colon.
func parsePseudoClass(input *pa.TokenStream) (PseudoClassSelector, bool) {
	var out PseudoClassSelector
	token := input.Peek()
	switch token.Kind {
	case pa.KIdent:
		out.Type = pseudoClasses[utils.AsciiLower(token.Data)]
		input.Consume()
		return out, out.Type != PseudoUnknown
	case pa.KFunction:
		out.Type = pseudoFunctions[utils.AsciiLower(token.Data)]
		args := input.ConsumeBlock()
		var ok bool
		switch out.Type {
		case Is, Not:
			out.SubSelectors, ok = ParseList(&args)
			args.ConsumeWhitespace()
			ok = ok && args.Empty()
		case NthChild, NthLastChild, NthOfType, NthLastOfType:
			out.A, out.B, ok = parseNth(args)
		}
		return out, ok
	}
	return out, false
}
