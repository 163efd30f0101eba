// Package selector implements the subset of CSS selectors
// needed to style SVG documents: type, id, class and attribute selectors,
// structural pseudo-classes, :is() and :not(), and the four combinators.
package selector

import (
	"github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/dom"
)

// Combinator relates a simple selector to the one before it.
type Combinator uint8

const (
	None             Combinator = iota // first simple selector
	Descendant                         // whitespace
	Child                              // '>'
	DirectAdjacent                     // '+'
	IndirectAdjacent                   // '~'
)

// AttributeMatch is the comparison made by an attribute selector.
type AttributeMatch uint8

const (
	Exists     AttributeMatch = iota // [a]
	Equals                           // [a=v]
	Includes                         // [a~=v]
	Contains                         // [a*=v]
	StartsWith                       // [a^=v]
	EndsWith                         // [a$=v]
	DashEquals                       // [a|=v]
)

// AttributeSelector also represents id (#v, which is [id=v])
// and class (.v, which is [class~=v]) selectors.
type AttributeSelector struct {
	Value    string
	Name     properties.KnownProp
	Operator AttributeMatch
}

// PseudoType is the kind of a pseudo-class.
type PseudoType uint8

const (
	PseudoUnknown PseudoType = iota
	Empty
	Root
	Is
	Not
	FirstChild
	LastChild
	OnlyChild
	FirstOfType
	LastOfType
	OnlyOfType
	NthChild
	NthLastChild
	NthOfType
	NthLastOfType
)

// PseudoClassSelector is a pseudo-class. A and B are the
// coefficients of An+B for the nth-* variants, and SubSelectors
// the argument of :is() and :not().
type PseudoClassSelector struct {
	SubSelectors List
	A, B         int
	Type         PseudoType
}

// SimpleSelector is a compound selector like 'rect.hidden[x]:first-child'.
// Element is dom.Star when no type selector is given.
type SimpleSelector struct {
	Attributes []AttributeSelector
	Pseudos    []PseudoClassSelector
	Element    dom.ElementID
	Combinator Combinator
}

// Selector is a complex selector, as a list of simple selectors
// in source order.
type Selector []SimpleSelector

// List is a comma separated selector list.
type List []Selector

// Specificity returns the specificity of the selector,
// packed so that it may be compared as an integer:
// 0x10000 per selector on the id attribute (#v, [id], [id^=v]...),
// 0x100 per other attribute selector (classes included), and 1 per type selector.
// Pseudo-classes do not contribute.
func (s Selector) Specificity() uint32 {
	var out uint32
	for _, simple := range s {
		if simple.Element != dom.Star {
			out += 1
		}
		for _, attr := range simple.Attributes {
			if attr.Name == properties.PID {
				out += 0x10000
			} else {
				out += 0x100
			}
		}
	}
	return out
}
