package properties

import (
	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
)

// Property is one declaration, as found in a style sheet.
type Property struct {
	Value     Value
	ID        KnownProp
	Important bool
}

// Declarations is a list of declarations, in source order.
type Declarations []Property

var black = NewRGBA(0, 0, 0, 0xFF)

// initialValues stores the initial value of each CSS property.
var initialValues = [NbProps]Value{
	PClipPath:         NewIdent(kw.None),
	PClipRule:         NewIdent(kw.NonZero),
	PColor:            black,
	PDisplay:          NewIdent(kw.Inline),
	PFill:             black,
	PFillOpacity:      NewNumber(1),
	PFillRule:         NewIdent(kw.NonZero),
	PFontFamily:       NewList(nil),
	PFontSize:         NewIdent(kw.Medium),
	PFontStyle:        NewIdent(kw.Normal),
	PFontVariant:      NewIdent(kw.Normal),
	PFontWeight:       NewIdent(kw.Normal),
	PLetterSpacing:    NewIdent(kw.Normal),
	PMarkerEnd:        NewIdent(kw.None),
	PMarkerMid:        NewIdent(kw.None),
	PMarkerStart:      NewIdent(kw.None),
	PMask:             NewIdent(kw.None),
	POpacity:          NewNumber(1),
	POverflow:         NewIdent(kw.Visible),
	PSolidColor:       black,
	PSolidOpacity:     NewNumber(1),
	PStopColor:        black,
	PStopOpacity:      NewNumber(1),
	PStroke:           NewIdent(kw.None),
	PStrokeDasharray:  NewIdent(kw.None),
	PStrokeDashoffset: NewLength(0, UnitNone),
	PStrokeLinecap:    NewIdent(kw.Butt),
	PStrokeLinejoin:   NewIdent(kw.Miter),
	PStrokeMiterlimit: NewNumber(4),
	PStrokeOpacity:    NewNumber(1),
	PStrokeWidth:      NewLength(1, UnitNone),
	PTextAnchor:       NewIdent(kw.Start),
	PTextDecoration:   NewIdent(kw.None),
	PVisibility:       NewIdent(kw.Visible),
	PWordSpacing:      NewIdent(kw.Normal),
}

// InitialValue returns the initial value of a CSS property,
// or nil for other attributes.
func (p KnownProp) InitialValue() Value {
	if p < NbProps {
		return initialValues[p]
	}
	return nil
}
