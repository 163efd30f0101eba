package style

import (
	pr "github.com/benoitkugler/svgstyle/css/properties"
	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
	"github.com/benoitkugler/svgstyle/css/selector"
)

// mediumFontSize is the initial font size, in pixels.
const mediumFontSize = 16.

// from https://www.w3.org/TR/css-fonts-3/#absolute-size-value
var fontSizeKeywords = [...]struct {
	keyword kw.Keyword
	size    float64
}{
	{kw.XXSmall, mediumFontSize * 3 / 5},
	{kw.XSmall, mediumFontSize * 3 / 4},
	{kw.Small, mediumFontSize * 8 / 9},
	{kw.Medium, mediumFontSize},
	{kw.Large, mediumFontSize * 6 / 5},
	{kw.XLarge, mediumFontSize * 3 / 2},
	{kw.XXLarge, mediumFontSize * 2},
}

// specified stores the winning declaration of each property.
type specified struct {
	values    [pr.NbProps]pr.Value
	important [pr.NbProps]bool
}

// merge applies `decls` in order: a later declaration wins,
// unless the current one is important and the later is not.
func (sp *specified) merge(decls pr.Declarations) {
	for _, d := range decls {
		if sp.values[d.ID] != nil && sp.important[d.ID] && !d.Important {
			continue
		}
		sp.values[d.ID] = d.Value
		sp.important[d.ID] = d.Important
	}
}

// StyleForElement returns the computed style of `element`,
// using only the rules of the sheet.
// `parent` is the style of the parent element, or nil for the root.
func (s *StyleSheet) StyleForElement(element selector.Element, parent *ComputedStyle) *ComputedStyle {
	return s.Cascade(element, parent, nil, nil)
}

// Cascade returns the computed style of `element`. The `presentation` declarations
// (from presentation attributes) come before the rules of the sheet, and the
// `inline` declarations (from the 'style' attribute) after them.
// `s` may be nil.
func (s *StyleSheet) Cascade(element selector.Element, parent *ComputedStyle, presentation, inline pr.Declarations) *ComputedStyle {
	var sp specified
	sp.merge(presentation)
	if s != nil {
		for _, entry := range s.entries {
			if entry.selector.Match(element) {
				sp.merge(entry.declarations)
			}
		}
	}
	sp.merge(inline)
	return sp.compute(parent)
}

// compute resolves the default keywords and the
// values depending on the parent style.
func (sp *specified) compute(parent *ComputedStyle) *ComputedStyle {
	out := &ComputedStyle{rootFontSize: mediumFontSize}
	if parent != nil {
		out.rootFontSize = parent.rootFontSize
	}
	for p := pr.KnownProp(1); p < pr.NbProps; p++ {
		if !p.IsCSS() {
			continue
		}
		value := sp.values[p]
		switch value.(type) {
		case nil:
			if p.IsInherited() && parent != nil {
				out.values[p] = parent.values[p]
				continue
			}
			value = p.InitialValue()
		case *pr.Inherit:
			if parent != nil {
				out.values[p] = parent.values[p]
				continue
			}
			value = p.InitialValue()
		case *pr.Initial:
			value = p.InitialValue()
		}
		out.values[p] = computeValue(p, value, parent)
	}
	if parent == nil {
		// the root font size is the font size of the root element
		out.rootFontSize = out.FontSize()
	}
	return out
}

// computeValue handles the properties whose computed value
// depends on the parent, for a specified `value`.
func computeValue(p pr.KnownProp, value pr.Value, parent *ComputedStyle) pr.Value {
	switch p {
	case pr.PFontSize:
		return pr.NewLength(computeFontSize(value, parent), pr.UnitPx)
	case pr.PFontWeight:
		return pr.NewInteger(computeFontWeight(value, parent))
	case pr.PColor:
		// 'color: currentColor' is 'color: inherit'
		if id, ok := value.(*pr.Ident); ok && id.Keyword() == kw.CurrentColor {
			if parent != nil {
				return parent.values[pr.PColor]
			}
			return p.InitialValue()
		}
	}
	return value
}

func computeFontSize(value pr.Value, parent *ComputedStyle) float64 {
	parentSize, rootSize := float64(mediumFontSize), float64(mediumFontSize)
	if parent != nil {
		parentSize, rootSize = parent.FontSize(), parent.rootFontSize
	}
	switch value := value.(type) {
	case *pr.Ident:
		switch value.Keyword() {
		case kw.Larger:
			for _, k := range fontSizeKeywords {
				if k.size > parentSize {
					return k.size
				}
			}
			return parentSize * 1.2
		case kw.Smaller:
			for i := len(fontSizeKeywords) - 1; i >= 0; i-- {
				if k := fontSizeKeywords[i]; k.size < parentSize {
					return k.size
				}
			}
			return parentSize * 0.8
		default:
			for _, k := range fontSizeKeywords {
				if k.keyword == value.Keyword() {
					return k.size
				}
			}
		}
	case *pr.Length:
		if value.Unit() == pr.UnitPercent {
			return value.Value() * parentSize / 100
		}
		if px, ok := value.ToPx(parentSize, rootSize); ok {
			return px
		}
	}
	return parentSize
}

func computeFontWeight(value pr.Value, parent *ComputedStyle) int {
	parentWeight := 400
	if parent != nil {
		parentWeight = parent.FontWeight()
	}
	switch value := value.(type) {
	case *pr.Integer:
		return value.Value()
	case *pr.Ident:
		switch value.Keyword() {
		case kw.Bold:
			return 700
		case kw.Bolder:
			switch {
			case parentWeight < 350:
				return 400
			case parentWeight < 550:
				return 700
			case parentWeight < 900:
				return 900
			}
			return parentWeight
		case kw.Lighter:
			switch {
			case parentWeight < 100:
				return parentWeight
			case parentWeight < 550:
				return 100
			case parentWeight < 750:
				return 400
			}
			return 700
		}
	}
	return 400
}
