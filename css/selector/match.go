package selector

import (
	"strings"

	pr "github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/dom"
	"github.com/benoitkugler/svgstyle/utils"
)

// Element is the view of the document tree required to match selectors.
// The navigation methods must return a nil interface (not a typed nil pointer)
// when there is no such element, and only consider element nodes.
type Element interface {
	ID() dom.ElementID
	Parent() Element
	PreviousElement() Element
	NextElement() Element
	// HasChildren returns true if the element has any child node,
	// text included.
	HasChildren() bool
	// Get returns the value of an attribute, or an empty string.
	Get(name pr.KnownProp) string
}

// Match returns true if the selector matches `element`.
// Combinators are resolved from right to left without backtracking:
// for descendant and indirect adjacent combinators, the closest
// matching element is used.
func (s Selector) Match(element Element) bool {
	if len(s) == 0 {
		return false
	}
	i := len(s) - 1
	if !s[i].Match(element) {
		return false
	}
	for ; i > 0; i-- {
		combinator, simple := s[i].Combinator, &s[i-1]
		switch combinator {
		case Child:
			element = element.Parent()
			if element == nil || !simple.Match(element) {
				return false
			}
		case Descendant:
			for element = element.Parent(); element != nil && !simple.Match(element); element = element.Parent() {
			}
			if element == nil {
				return false
			}
		case DirectAdjacent:
			element = element.PreviousElement()
			if element == nil || !simple.Match(element) {
				return false
			}
		case IndirectAdjacent:
			for element = element.PreviousElement(); element != nil && !simple.Match(element); element = element.PreviousElement() {
			}
			if element == nil {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Match returns true if one of the selectors matches `element`.
func (l List) Match(element Element) bool {
	for _, sel := range l {
		if sel.Match(element) {
			return true
		}
	}
	return false
}

// Match checks the type, attributes and pseudo-classes of `element`,
// ignoring the combinator.
func (s *SimpleSelector) Match(element Element) bool {
	if s.Element != dom.Star && (s.Element == dom.Unknown || s.Element != element.ID()) {
		return false
	}
	for _, attr := range s.Attributes {
		if !attr.Match(element) {
			return false
		}
	}
	for i := range s.Pseudos {
		if !s.Pseudos[i].Match(element) {
			return false
		}
	}
	return true
}

// Match compares the attribute value, ignoring case.
// Attributes unknown to the engine never match.
func (a AttributeSelector) Match(element Element) bool {
	if a.Name == pr.PUnknown {
		return false
	}
	value := element.Get(a.Name)
	switch a.Operator {
	case Exists:
		return value != ""
	case Equals:
		return strings.EqualFold(value, a.Value)
	case Includes:
		for _, word := range strings.Fields(value) {
			if strings.EqualFold(word, a.Value) {
				return true
			}
		}
		return false
	case Contains:
		return a.Value != "" && utils.ContainsFold(value, a.Value)
	case StartsWith:
		return a.Value != "" && len(value) >= len(a.Value) && strings.EqualFold(value[:len(a.Value)], a.Value)
	case EndsWith:
		return a.Value != "" && len(value) >= len(a.Value) && strings.EqualFold(value[len(value)-len(a.Value):], a.Value)
	case DashEquals:
		if strings.EqualFold(value, a.Value) {
			return true
		}
		return len(value) > len(a.Value) && value[len(a.Value)] == '-' && strings.EqualFold(value[:len(a.Value)], a.Value)
	}
	return false
}

// Match evaluates the pseudo-class against `element`.
//
// The arguments of :is() and :not() are flattened: :is() requires
// every simple selector of every argument to match the element itself,
// and :not() requires that none of them does. Combinators inside
// the arguments are ignored.
func (p *PseudoClassSelector) Match(element Element) bool {
	switch p.Type {
	case Empty:
		return !element.HasChildren()
	case Root:
		return element.Parent() == nil
	case Is:
		for _, sel := range p.SubSelectors {
			for i := range sel {
				if !sel[i].Match(element) {
					return false
				}
			}
		}
		return true
	case Not:
		for _, sel := range p.SubSelectors {
			for i := range sel {
				if sel[i].Match(element) {
					return false
				}
			}
		}
		return true
	case FirstChild:
		return element.PreviousElement() == nil
	case LastChild:
		return element.NextElement() == nil
	case OnlyChild:
		return element.PreviousElement() == nil && element.NextElement() == nil
	case FirstOfType:
		return countPrevious(element, true) == 0
	case LastOfType:
		return countNext(element, true) == 0
	case OnlyOfType:
		return countPrevious(element, true) == 0 && countNext(element, true) == 0
	case NthChild:
		return matchNth(p.A, p.B, countPrevious(element, false)+1)
	case NthLastChild:
		return matchNth(p.A, p.B, countNext(element, false)+1)
	case NthOfType:
		return matchNth(p.A, p.B, countPrevious(element, true)+1)
	case NthLastOfType:
		return matchNth(p.A, p.B, countNext(element, true)+1)
	}
	return false
}

// countPrevious returns the number of previous siblings,
// restricted to the type of `element` if ofType is true.
func countPrevious(element Element, ofType bool) int {
	id, count := element.ID(), 0
	for sibling := element.PreviousElement(); sibling != nil; sibling = sibling.PreviousElement() {
		if !ofType || sibling.ID() == id {
			count++
		}
	}
	return count
}

func countNext(element Element, ofType bool) int {
	id, count := element.ID(), 0
	for sibling := element.NextElement(); sibling != nil; sibling = sibling.NextElement() {
		if !ofType || sibling.ID() == id {
			count++
		}
	}
	return count
}
