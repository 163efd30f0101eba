package validation

import (
	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
)

// expander validates a shorthand value, returning
// the longhand declarations or nil if invalid.
type expander func(tokens pa.TokenStream) pr.Declarations

var expanders = map[string]expander{
	"marker": genericExpander(pr.PMarkerStart, pr.PMarkerMid, pr.PMarkerEnd),
}

// genericExpander returns an expander setting all the `longhands`
// to the same value, which is validated against the first longhand.
func genericExpander(longhands ...pr.KnownProp) expander {
	return func(tokens pa.TokenStream) pr.Declarations {
		value := parseValue(longhands[0], tokens.Tokens())
		if value == nil {
			return nil
		}
		out := make(pr.Declarations, len(longhands))
		for i, prop := range longhands {
			out[i] = pr.Property{ID: prop, Value: value}
		}
		return out
	}
}
