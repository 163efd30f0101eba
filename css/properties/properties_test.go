package properties

import (
	"sort"
	"strings"
	"testing"

	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
	tu "github.com/benoitkugler/svgstyle/utils/testutils"
)

func TestTableSorted(t *testing.T) {
	infos := propsInfos[1:]
	sorted := sort.SliceIsSorted(infos, func(i, j int) bool {
		return strings.ToLower(infos[i].name) < strings.ToLower(infos[j].name)
	})
	if !sorted {
		t.Fatal("properties must be sorted by lower case name")
	}
	for p := PClass; p < NbProps; p++ {
		if p.String() == "" {
			t.Fatalf("missing name for %d", p)
		}
		if Lookup(p.String()) != p {
			t.Fatalf("lookup failed for %s", p)
		}
		if p.IsCSS() != (p.InitialValue() != nil) {
			t.Fatalf("CSS properties must have an initial value: %s", p)
		}
	}
}

func TestLookup(t *testing.T) {
	tu.AssertEqual(t, Lookup("STROKE-width"), PStrokeWidth, "case")
	tu.AssertEqual(t, Lookup("viewbox"), PViewBox, "attribute")
	tu.AssertEqual(t, Lookup("stroke-foo"), PUnknown, "unknown")
	tu.AssertEqual(t, LookupCSS("fill"), PFill, "css")
	tu.AssertEqual(t, LookupCSS("x"), PUnknown, "not css")
}

func TestFlags(t *testing.T) {
	for _, p := range []KnownProp{PFill, PStroke, PFontSize, PColor, PVisibility, PClipRule} {
		if !p.IsInherited() {
			t.Errorf("%s should be inherited", p)
		}
	}
	for _, p := range []KnownProp{POpacity, PDisplay, PClipPath, PMask, PStopColor, PX} {
		if p.IsInherited() {
			t.Errorf("%s should not be inherited", p)
		}
	}
	if !PStrokeWidth.AcceptsUnitless() || POpacity.AcceptsUnitless() {
		t.Error("unexpected unitless flag")
	}
}

func TestValues(t *testing.T) {
	if NewIdent(kw.None) != NewIdent(kw.None) {
		t.Fatal("idents should be shared")
	}
	tests := []struct {
		value    Value
		expected string
	}{
		{NewIdent(kw.CurrentColor), "currentcolor"},
		{NewRGBA(255, 0, 0, 255), "#ff0000"},
		{NewColor(0x80FF0000), "#ff000080"},
		{NewLength(-1.5, UnitEm), "-1.5em"},
		{NewPercent(50), "50%"},
		{NewPair(NewURL("#g"), NewIdent(kw.None)), "url(#g) none"},
		{NewList([]Value{NewString("Arial"), NewString("DejaVu Sans")}), `"Arial", "DejaVu Sans"`},
		{InheritValue(), "inherit"},
	}
	for _, tt := range tests {
		tu.AssertEqual(t, tt.value.String(), tt.expected)
	}

	r, g, b, a := NewColor(0xFFAABBCC).RGBA()
	tu.AssertEqual(t, [4]uint8{r, g, b, a}, [4]uint8{0xAA, 0xBB, 0xCC, 0xFF}, "RGBA")
}

func TestToPx(t *testing.T) {
	tests := []struct {
		length *Length
		px     float64
		ok     bool
	}{
		{NewLength(2, UnitNone), 2, true},
		{NewLength(72, UnitPt), 96, true},
		{NewLength(1, UnitIn), 96, true},
		{NewLength(2, UnitEm), 20, true},
		{NewLength(1, UnitEx), 5, true},
		{NewLength(1, UnitRem), 16, true},
		{NewLength(50, UnitPercent), 0, false},
		{NewLength(10, UnitVw), 0, false},
	}
	for _, tt := range tests {
		px, ok := tt.length.ToPx(10, 16)
		if px != tt.px || ok != tt.ok {
			t.Errorf("%s: got %v %v", tt.length, px, ok)
		}
	}
}
