// Package dom enumerates the SVG element types known to the style engine.
package dom

import (
	"sort"

	"github.com/benoitkugler/svgstyle/utils"
)

// ElementID identifies an element type.
type ElementID uint8

const (
	// Unknown is used for elements not listed below.
	// Type selectors never match it.
	Unknown ElementID = iota
	// Star is the universal selector '*'. No element has this type.
	Star

	A
	Circle
	ClipPath
	Defs
	Desc
	Ellipse
	ForeignObject
	G
	Image
	Line
	LinearGradient
	Marker
	Mask
	Metadata
	Path
	Pattern
	Polygon
	Polyline
	RadialGradient
	Rect
	Script
	SolidColor
	Stop
	Style
	Svg
	Switch
	Symbol
	Text
	TextPath
	Title
	Tref
	Tspan
	Use

	elementCount
)

// sorted by lower case name, starting at A
var elementNames = [...]string{
	Unknown:        "",
	Star:           "*",
	A:              "a",
	Circle:         "circle",
	ClipPath:       "clipPath",
	Defs:           "defs",
	Desc:           "desc",
	Ellipse:        "ellipse",
	ForeignObject:  "foreignObject",
	G:              "g",
	Image:          "image",
	Line:           "line",
	LinearGradient: "linearGradient",
	Marker:         "marker",
	Mask:           "mask",
	Metadata:       "metadata",
	Path:           "path",
	Pattern:        "pattern",
	Polygon:        "polygon",
	Polyline:       "polyline",
	RadialGradient: "radialGradient",
	Rect:           "rect",
	Script:         "script",
	SolidColor:     "solidColor",
	Stop:           "stop",
	Style:          "style",
	Svg:            "svg",
	Switch:         "switch",
	Symbol:         "symbol",
	Text:           "text",
	TextPath:       "textPath",
	Title:          "title",
	Tref:           "tref",
	Tspan:          "tspan",
	Use:            "use",
}

func (id ElementID) String() string {
	if id < elementCount {
		return elementNames[id]
	}
	return ""
}

// Lookup returns the element type for `name`, ignoring ASCII case,
// or Unknown.
func Lookup(name string) ElementID {
	lower := utils.AsciiLower(name)
	names := elementNames[A:]
	i := sort.Search(len(names), func(i int) bool { return utils.AsciiLower(names[i]) >= lower })
	if i < len(names) && utils.EqualFold(names[i], lower) {
		return A + ElementID(i)
	}
	return Unknown
}
