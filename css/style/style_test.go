package style

import (
	"testing"

	pr "github.com/benoitkugler/svgstyle/css/properties"
	kw "github.com/benoitkugler/svgstyle/css/properties/keywords"
	"github.com/benoitkugler/svgstyle/css/selector"
	"github.com/benoitkugler/svgstyle/dom"
	"github.com/benoitkugler/svgstyle/logger"
	tu "github.com/benoitkugler/svgstyle/utils/testutils"
	"go.uber.org/zap/zaptest"
)

type node struct {
	attrs    map[pr.KnownProp]string
	parent   *node
	children []*node
	id       dom.ElementID
}

func el(id dom.ElementID, attrs map[pr.KnownProp]string, children ...*node) *node {
	n := &node{id: id, attrs: attrs, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func (n *node) ID() dom.ElementID { return n.id }

func (n *node) Parent() selector.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) sibling(offset int) selector.Element {
	if n.parent == nil {
		return nil
	}
	for i, c := range n.parent.children {
		if c == n {
			if j := i + offset; 0 <= j && j < len(n.parent.children) {
				return n.parent.children[j]
			}
			return nil
		}
	}
	return nil
}

func (n *node) PreviousElement() selector.Element { return n.sibling(-1) }
func (n *node) NextElement() selector.Element     { return n.sibling(1) }
func (n *node) HasChildren() bool                 { return len(n.children) != 0 }
func (n *node) Get(name pr.KnownProp) string      { return n.attrs[name] }

func sheet(t *testing.T, css string) *StyleSheet {
	t.Helper()
	logger.Set(zaptest.NewLogger(t))
	t.Cleanup(func() { logger.Set(nil) })
	var s StyleSheet
	s.Parse(css)
	return &s
}

func color(t *testing.T, s *ComputedStyle, p pr.KnownProp) uint32 {
	t.Helper()
	c := s.ResolveColor(p)
	if c == nil {
		t.Fatalf("%s is not a color: %v", p, s.Get(p))
	}
	return c.ARGB()
}

func TestParseRules(t *testing.T) {
	s := sheet(t, `
	<!-- rect { fill: red } -->
	@media print { rect { fill: blue } }
	@font-face;
	g, rect { fill: green; foo: bar }
	rect { }
	circle, a:hover { fill: red }
	ellipse { fill: red
	`)
	// the rule with :hover is dropped, the last one is closed by EOF
	tu.AssertEqual(t, s.Len(), 4)
	tu.AssertEqual(t, len(s.Rules()[1].Selectors), 2)
	tu.AssertEqual(t, s.Rules()[1].Declarations, pr.Declarations{{ID: pr.PFill, Value: pr.NewColor(0xFF008000)}})
	tu.AssertEqual(t, len(s.Rules()[2].Declarations), 0)
	// no entry for empty rules
	tu.AssertEqual(t, len(s.entries), 4)

	s = sheet(t, "rect { fill: red } garbage")
	tu.AssertEqual(t, s.Len(), 1)
}

func TestEntriesOrder(t *testing.T) {
	s := sheet(t, "#a { fill: red } rect { fill: blue } .b { fill: green } g rect { fill: black } * { fill: white }")
	var got []uint32
	for _, e := range s.entries {
		got = append(got, e.specificity)
	}
	tu.AssertEqual(t, got, []uint32{0, 1, 2, 0x100, 0x10000})
	// a second parse inserts among the existing entries
	s.Parse("line { fill: red }")
	tu.AssertEqual(t, s.entries[2].position, 5)
	tu.AssertEqual(t, s.entries[1].position, 1)
}

func TestImports(t *testing.T) {
	s := sheet(t, `@import "a.css"; @import url(b.css) screen; @IMPORT url("c.css"); @import ; rect { fill: red }`)
	tu.AssertEqual(t, s.Imports(), []string{"a.css", "b.css", "c.css"})
	tu.AssertEqual(t, s.Len(), 1)
}

func TestSpecificity(t *testing.T) {
	s := sheet(t, "#r { fill: red } .c { fill: blue } rect { fill: green }")
	r := el(dom.Rect, map[pr.KnownProp]string{pr.PID: "r", pr.PClass: "c"})
	tu.AssertEqual(t, color(t, s.StyleForElement(r, nil), pr.PFill), uint32(0xFFFF0000))

	// same specificity: the last rule wins
	s = sheet(t, ".c { fill: blue } .d { fill: green }")
	r = el(dom.Rect, map[pr.KnownProp]string{pr.PClass: "d c"})
	tu.AssertEqual(t, color(t, s.StyleForElement(r, nil), pr.PFill), uint32(0xFF008000))

	// any selector on the id attribute weights as an id
	for _, css := range []string{
		"[id] { fill: red } .a { fill: blue }",
		"[id^=x] { fill: red } .a { fill: blue }",
		"[id|=x] { fill: red } .a.b { fill: blue }",
	} {
		s = sheet(t, css)
		r = el(dom.Rect, map[pr.KnownProp]string{pr.PID: "x", pr.PClass: "a b"})
		tu.AssertEqual(t, color(t, s.StyleForElement(r, nil), pr.PFill), uint32(0xFFFF0000), css)
	}
}

func TestBlockOrder(t *testing.T) {
	r := el(dom.Rect, nil)
	for _, test := range []struct {
		css      string
		expected uint32
	}{
		{"rect { fill: red; fill: blue }", 0xFF0000FF},
		{"rect { fill: red !important; fill: blue }", 0xFFFF0000},
		{"rect { fill: red !important; fill: blue !important }", 0xFF0000FF},
		{"rect { fill: red; fill: bogus }", 0xFFFF0000},
	} {
		s := sheet(t, test.css)
		tu.AssertEqual(t, color(t, s.StyleForElement(r, nil), pr.PFill), test.expected, test.css)
	}
}

func TestImportant(t *testing.T) {
	s := sheet(t, "rect { fill: blue !important } #r { fill: red } rect { stroke: red; stroke: blue }")
	r := el(dom.Rect, map[pr.KnownProp]string{pr.PID: "r"})
	style := s.Cascade(r, nil, nil, ParseStyle("fill: green; stroke: green"))
	tu.AssertEqual(t, color(t, style, pr.PFill), uint32(0xFF0000FF))
	tu.AssertEqual(t, color(t, style, pr.PStroke), uint32(0xFF008000))

	style = s.Cascade(r, nil, nil, ParseStyle("fill: green !important"))
	tu.AssertEqual(t, color(t, style, pr.PFill), uint32(0xFF008000))
}

func TestDroppedDeclarations(t *testing.T) {
	s := sheet(t, "rect { foo: 1; stroke-width: -5px; fill: red } g, rect:unknown { fill: blue }")
	r := el(dom.Rect, nil)
	style := s.StyleForElement(r, nil)
	tu.AssertEqual(t, color(t, style, pr.PFill), uint32(0xFFFF0000))
	tu.AssertEqual(t, style.StrokeWidth(0), 1.)
	// the whole selector list is invalid
	tu.AssertEqual(t, style.Fill().Color.ARGB(), uint32(0xFFFF0000))
	g := el(dom.G, nil)
	tu.AssertEqual(t, color(t, s.StyleForElement(g, nil), pr.PFill), uint32(0xFF000000))
}

func TestStructural(t *testing.T) {
	s := sheet(t, "rect:nth-child(2n+1) { fill: red } g > rect + rect { stroke: blue }")
	children := []*node{el(dom.Rect, nil), el(dom.Rect, nil), el(dom.Rect, nil)}
	el(dom.G, nil, children...)
	var fills []bool
	for _, c := range children {
		fills = append(fills, s.StyleForElement(c, nil).Fill().Color.ARGB() == 0xFFFF0000)
	}
	tu.AssertEqual(t, fills, []bool{true, false, true})
	tu.AssertEqual(t, s.StyleForElement(children[0], nil).Stroke().IsNone(), true)
	tu.AssertEqual(t, s.StyleForElement(children[1], nil).Stroke().IsNone(), false)
}

func TestInheritance(t *testing.T) {
	s := sheet(t, `
	g { fill: red; opacity: 0.5; font-size: 20px; font-weight: bold; color: blue }
	rect { stroke: currentColor; font-size: 150%; font-weight: bolder; opacity: inherit }
	circle { fill: initial; font-size: larger; font-weight: lighter }
	`)
	r, c := el(dom.Rect, nil), el(dom.Circle, nil)
	g := el(dom.G, nil, r, c)
	gStyle := s.StyleForElement(g, nil)
	rStyle := s.StyleForElement(r, gStyle)
	cStyle := s.StyleForElement(c, gStyle)

	tu.AssertEqual(t, color(t, rStyle, pr.PFill), uint32(0xFFFF0000), "inherited fill")
	tu.AssertEqual(t, color(t, rStyle, pr.PStroke), uint32(0xFF0000FF), "currentColor")
	tu.AssertEqual(t, rStyle.Opacity(), 0.5, "explicit inherit")
	tu.AssertEqual(t, cStyle.Opacity(), 1., "opacity is not inherited")
	tu.AssertEqual(t, color(t, cStyle, pr.PFill), uint32(0xFF000000), "initial")

	tu.AssertEqual(t, gStyle.FontSize(), 20.)
	tu.AssertEqual(t, rStyle.FontSize(), 30.)
	tu.AssertEqual(t, cStyle.FontSize(), 24.)
	tu.AssertEqual(t, gStyle.FontWeight(), 700)
	tu.AssertEqual(t, rStyle.FontWeight(), 900)
	tu.AssertEqual(t, cStyle.FontWeight(), 400)
}

func TestDefaults(t *testing.T) {
	style := (*StyleSheet)(nil).Cascade(el(dom.Rect, nil), nil, nil, nil)
	tu.AssertEqual(t, style.FontSize(), 16.)
	tu.AssertEqual(t, style.FontWeight(), 400)
	tu.AssertEqual(t, style.Display(), kw.Inline)
	tu.AssertEqual(t, style.Visibility(), kw.Visible)
	tu.AssertEqual(t, style.Stroke().IsNone(), true)
	tu.AssertEqual(t, style.Dashes(0), []float64(nil))
	tu.AssertEqual(t, style.Opacity(), 1.)
	tu.AssertEqual(t, style.FontFamily(), []string{})
	if style.Get(pr.PX) != nil {
		t.Fatal("x is not a CSS property")
	}
}

func TestPresentationAttributes(t *testing.T) {
	s := sheet(t, "rect { stroke: red }")
	presentation := pr.Declarations{
		{ID: pr.PStroke, Value: pr.NewColor(0xFF0000FF)},
		{ID: pr.PFill, Value: pr.NewColor(0xFF0000FF)},
	}
	style := s.Cascade(el(dom.Rect, nil), nil, presentation, nil)
	tu.AssertEqual(t, color(t, style, pr.PStroke), uint32(0xFFFF0000))
	tu.AssertEqual(t, color(t, style, pr.PFill), uint32(0xFF0000FF))
}

func TestComputedLengths(t *testing.T) {
	s := sheet(t, `rect { font-size: 10px; stroke-width: 2em; stroke-dasharray: 1, 2px 50%; fill: url(#grad) none }
	circle { fill: url(#grad) green; font-family: "Times New", serif }`)
	style := s.StyleForElement(el(dom.Rect, nil), nil)
	tu.AssertEqual(t, style.StrokeWidth(0), 20.)
	tu.AssertEqual(t, style.Dashes(10), []float64{1, 2, 5})
	tu.AssertEqual(t, style.Fill(), Paint{URL: "#grad"})

	style = s.StyleForElement(el(dom.Circle, nil), nil)
	tu.AssertEqual(t, style.Fill().URL, "#grad")
	tu.AssertEqual(t, style.Fill().Color.ARGB(), uint32(0xFF008000))
	tu.AssertEqual(t, style.FontFamily(), []string{"Times New", "serif"})
}

func TestUserAgent(t *testing.T) {
	defs := el(dom.Defs, nil)
	inner := el(dom.Svg, nil)
	root := el(dom.Svg, nil, defs, inner)

	author := sheet(t, "defs { display: inline } svg { overflow: visible }")
	cascade := func(n *node) *ComputedStyle {
		return author.Cascade(n, nil, UserAgent.Match(n), nil)
	}
	tu.AssertEqual(t, cascade(defs).Display(), kw.None)
	tu.AssertEqual(t, cascade(inner).Keyword(pr.POverflow), kw.Visible)
	tu.AssertEqual(t, UserAgent.StyleForElement(inner, nil).Keyword(pr.POverflow), kw.Hidden)
	tu.AssertEqual(t, UserAgent.StyleForElement(root, nil).Keyword(pr.POverflow), kw.Visible)
}

func TestParseBytes(t *testing.T) {
	var s StyleSheet
	s.ParseBytes([]byte("\xEF\xBB\xBFrect { fill: red }"))
	tu.AssertEqual(t, s.Len(), 1)
}
