package properties

import (
	"sort"

	"github.com/benoitkugler/svgstyle/utils"
)

// KnownProp identifies a CSS property or an SVG attribute.
// Attributes which are not CSS properties (like 'id' or 'x') are
// included so that attribute selectors and presentation attributes
// use a common key.
type KnownProp uint8

// The constants are sorted by lower case name: Lookup relies on it.
const (
	PUnknown KnownProp = iota

	PClass
	PClipPath
	PClipRule
	PClipPathUnits
	PColor
	PCx
	PCy
	PD
	PDisplay
	PFill
	PFillOpacity
	PFillRule
	PFontFamily
	PFontSize
	PFontStyle
	PFontVariant
	PFontWeight
	PFx
	PFy
	PGradientTransform
	PGradientUnits
	PHeight
	PHref
	PID
	PLetterSpacing
	PMarkerEnd
	PMarkerMid
	PMarkerStart
	PMarkerHeight
	PMarkerUnits
	PMarkerWidth
	PMask
	PMaskContentUnits
	PMaskUnits
	POffset
	POpacity
	POrient
	POverflow
	PPatternContentUnits
	PPatternTransform
	PPatternUnits
	PPoints
	PPreserveAspectRatio
	PR
	PRefX
	PRefY
	PRx
	PRy
	PSolidColor
	PSolidOpacity
	PSpace
	PSpreadMethod
	PStopColor
	PStopOpacity
	PStroke
	PStrokeDasharray
	PStrokeDashoffset
	PStrokeLinecap
	PStrokeLinejoin
	PStrokeMiterlimit
	PStrokeOpacity
	PStrokeWidth
	PStyle
	PTextAnchor
	PTextDecoration
	PTransform
	PType
	PViewBox
	PVisibility
	PWidth
	PWordSpacing
	PX
	PX1
	PX2
	PY
	PY1
	PY2

	NbProps
)

type propFlag uint8

const (
	// accepted in style sheets and presentation attributes
	css propFlag = 1 << iota
	inherited
	// accepts numbers without units as lengths
	unitless
)

type propInfo struct {
	name  string
	flags propFlag
}

var propsInfos = [NbProps]propInfo{
	PUnknown:             {"", 0},
	PClass:               {"class", 0},
	PClipPath:            {"clip-path", css},
	PClipRule:            {"clip-rule", css | inherited},
	PClipPathUnits:       {"clipPathUnits", 0},
	PColor:               {"color", css | inherited},
	PCx:                  {"cx", 0},
	PCy:                  {"cy", 0},
	PD:                   {"d", 0},
	PDisplay:             {"display", css},
	PFill:                {"fill", css | inherited},
	PFillOpacity:         {"fill-opacity", css | inherited},
	PFillRule:            {"fill-rule", css | inherited},
	PFontFamily:          {"font-family", css | inherited},
	PFontSize:            {"font-size", css | inherited | unitless},
	PFontStyle:           {"font-style", css | inherited},
	PFontVariant:         {"font-variant", css | inherited},
	PFontWeight:          {"font-weight", css | inherited},
	PFx:                  {"fx", 0},
	PFy:                  {"fy", 0},
	PGradientTransform:   {"gradientTransform", 0},
	PGradientUnits:       {"gradientUnits", 0},
	PHeight:              {"height", 0},
	PHref:                {"href", 0},
	PID:                  {"id", 0},
	PLetterSpacing:       {"letter-spacing", css | inherited},
	PMarkerEnd:           {"marker-end", css | inherited},
	PMarkerMid:           {"marker-mid", css | inherited},
	PMarkerStart:         {"marker-start", css | inherited},
	PMarkerHeight:        {"markerHeight", 0},
	PMarkerUnits:         {"markerUnits", 0},
	PMarkerWidth:         {"markerWidth", 0},
	PMask:                {"mask", css},
	PMaskContentUnits:    {"maskContentUnits", 0},
	PMaskUnits:           {"maskUnits", 0},
	POffset:              {"offset", 0},
	POpacity:             {"opacity", css},
	POrient:              {"orient", 0},
	POverflow:            {"overflow", css},
	PPatternContentUnits: {"patternContentUnits", 0},
	PPatternTransform:    {"patternTransform", 0},
	PPatternUnits:        {"patternUnits", 0},
	PPoints:              {"points", 0},
	PPreserveAspectRatio: {"preserveAspectRatio", 0},
	PR:                   {"r", 0},
	PRefX:                {"refX", 0},
	PRefY:                {"refY", 0},
	PRx:                  {"rx", 0},
	PRy:                  {"ry", 0},
	PSolidColor:          {"solid-color", css},
	PSolidOpacity:        {"solid-opacity", css},
	PSpace:               {"space", 0},
	PSpreadMethod:        {"spreadMethod", 0},
	PStopColor:           {"stop-color", css},
	PStopOpacity:         {"stop-opacity", css},
	PStroke:              {"stroke", css | inherited},
	PStrokeDasharray:     {"stroke-dasharray", css | inherited | unitless},
	PStrokeDashoffset:    {"stroke-dashoffset", css | inherited | unitless},
	PStrokeLinecap:       {"stroke-linecap", css | inherited},
	PStrokeLinejoin:      {"stroke-linejoin", css | inherited},
	PStrokeMiterlimit:    {"stroke-miterlimit", css | inherited},
	PStrokeOpacity:       {"stroke-opacity", css | inherited},
	PStrokeWidth:         {"stroke-width", css | inherited | unitless},
	PStyle:               {"style", 0},
	PTextAnchor:          {"text-anchor", css | inherited},
	PTextDecoration:      {"text-decoration", css},
	PTransform:           {"transform", 0},
	PType:                {"type", 0},
	PViewBox:             {"viewBox", 0},
	PVisibility:          {"visibility", css | inherited},
	PWidth:               {"width", 0},
	PWordSpacing:         {"word-spacing", css | inherited},
	PX:                   {"x", 0},
	PX1:                  {"x1", 0},
	PX2:                  {"x2", 0},
	PY:                   {"y", 0},
	PY1:                  {"y1", 0},
	PY2:                  {"y2", 0},
}

func (p KnownProp) String() string {
	if p < NbProps {
		return propsInfos[p].name
	}
	return ""
}

// IsCSS returns true for the properties accepted by style sheets.
func (p KnownProp) IsCSS() bool { return p < NbProps && propsInfos[p].flags&css != 0 }

// IsInherited returns true for the properties whose unset value
// comes from the parent element.
func (p KnownProp) IsInherited() bool { return p < NbProps && propsInfos[p].flags&inherited != 0 }

// AcceptsUnitless returns true for the length properties accepting plain numbers.
func (p KnownProp) AcceptsUnitless() bool { return p < NbProps && propsInfos[p].flags&unitless != 0 }

// Lookup returns the property or attribute named `name`, ignoring ASCII case,
// or PUnknown.
func Lookup(name string) KnownProp {
	lower := utils.AsciiLower(name)
	infos := propsInfos[1:]
	i := sort.Search(len(infos), func(i int) bool { return utils.AsciiLower(infos[i].name) >= lower })
	if i < len(infos) && utils.EqualFold(infos[i].name, lower) {
		return KnownProp(i + 1)
	}
	return PUnknown
}

// LookupCSS is like Lookup but only returns CSS properties.
func LookupCSS(name string) KnownProp {
	if p := Lookup(name); p.IsCSS() {
		return p
	}
	return PUnknown
}
