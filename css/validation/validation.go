// Package validation parses declaration blocks and checks
// property values against the grammar of each SVG property.
//
// Invalid declarations are dropped, never reported as errors:
// see https://www.w3.org/TR/css-syntax-3/#error-handling
package validation

import (
	"go.uber.org/zap"

	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/logger"
	"github.com/benoitkugler/svgstyle/utils"
)

// ParseDeclarations parses the content of a declaration block
// (or of a 'style' attribute), returning the valid declarations in source order.
func ParseDeclarations(input pa.TokenStream) pr.Declarations {
	var out pr.Declarations
	for {
		input.ConsumeWhitespace()
		if input.Empty() {
			return out
		}
		start := input
		for !input.Empty() && input.Peek().Kind != pa.KSemicolon {
			input.ConsumeComponent()
		}
		out = parseDeclaration(start.Until(input), out)
		input.Consume() // the semicolon
	}
}

// ParseAttribute validates the value of a presentation attribute,
// for which !important is not allowed.
func ParseAttribute(prop pr.KnownProp, value string) (pr.Value, bool) {
	if !prop.IsCSS() {
		return nil, false
	}
	tokens := trimWhitespace(pa.Tokenize(value))
	v := parseValue(prop, tokens)
	if v == nil {
		logger.WarningLogger.Debugw("ignored presentation attribute",
			zap.Stringer("property", prop), zap.String("value", value))
		return nil, false
	}
	return v, true
}

// parseDeclaration parses one declaration, appending it to out if valid.
func parseDeclaration(input pa.TokenStream, out pr.Declarations) pr.Declarations {
	name := input.Peek()
	if name.Kind != pa.KIdent {
		logger.WarningLogger.Debugw("ignored declaration: expected a property name", zap.Stringer("token", name))
		return out
	}
	input.ConsumeIncludingWhitespace()
	if input.Peek().Kind != pa.KColon {
		logger.WarningLogger.Debugw("ignored declaration: expected a colon", zap.String("property", name.Data))
		return out
	}
	input.ConsumeIncludingWhitespace()
	tokens, important := splitImportant(input.Tokens())

	if expand := expanders[utils.AsciiLower(name.Data)]; expand != nil {
		expanded := expand(pa.NewTokenStream(tokens))
		if expanded == nil {
			logger.WarningLogger.Debugw("ignored declaration: invalid value",
				zap.String("property", name.Data), zap.String("value", pa.Serialize(tokens)))
			return out
		}
		for _, prop := range expanded {
			prop.Important = important
			out = append(out, prop)
		}
		return out
	}

	prop := pr.LookupCSS(name.Data)
	if prop == pr.PUnknown {
		logger.WarningLogger.Debugw("ignored declaration: unknown property", zap.String("property", name.Data))
		return out
	}
	value := parseValue(prop, tokens)
	if value == nil {
		logger.WarningLogger.Debugw("ignored declaration: invalid value",
			zap.Stringer("property", prop), zap.String("value", pa.Serialize(tokens)))
		return out
	}
	return append(out, pr.Property{ID: prop, Value: value, Important: important})
}

func trimWhitespace(tokens []pa.Token) []pa.Token {
	for len(tokens) != 0 && tokens[0].Kind == pa.KWhitespace {
		tokens = tokens[1:]
	}
	for len(tokens) != 0 && tokens[len(tokens)-1].Kind == pa.KWhitespace {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// splitImportant removes a trailing '! important', as well as
// the trailing whitespace.
func splitImportant(tokens []pa.Token) ([]pa.Token, bool) {
	tokens = trimWhitespace(tokens)
	n := len(tokens)
	if n == 0 || !tokens[n-1].IsIdent("important") {
		return tokens, false
	}
	rest := trimWhitespace(tokens[:n-1])
	if len(rest) == 0 || !rest[len(rest)-1].IsDelim('!') {
		return tokens, false
	}
	return trimWhitespace(rest[:len(rest)-1]), true
}

// parseValue returns nil if `tokens` is not a valid value for `prop`.
// `tokens` must not start or end with whitespace.
func parseValue(prop pr.KnownProp, tokens []pa.Token) pr.Value {
	if len(tokens) == 1 {
		if tokens[0].IsIdent("inherit") {
			return pr.InheritValue()
		} else if tokens[0].IsIdent("initial") {
			return pr.InitialValue()
		}
	}
	fn := validators[prop]
	if fn == nil {
		return nil
	}
	input := pa.NewTokenStream(tokens)
	v := fn(&input, prop)
	if v == nil || !input.Empty() {
		return nil
	}
	return v
}
