package selector

import (
	"testing"

	pa "github.com/benoitkugler/svgstyle/css/parser"
	pr "github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/dom"
	tu "github.com/benoitkugler/svgstyle/utils/testutils"
)

// node is a minimal Element implementation
type node struct {
	attrs    map[pr.KnownProp]string
	parent   *node
	children []*node
	id       dom.ElementID
	hasText  bool
}

func el(id dom.ElementID, attrs map[pr.KnownProp]string, children ...*node) *node {
	n := &node{id: id, attrs: attrs, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func (n *node) ID() dom.ElementID { return n.id }

func (n *node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) sibling(offset int) Element {
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

func (n *node) PreviousElement() Element { return n.sibling(-1) }
func (n *node) NextElement() Element     { return n.sibling(1) }
func (n *node) HasChildren() bool        { return len(n.children) != 0 || n.hasText }
func (n *node) Get(name pr.KnownProp) string {
	return n.attrs[name]
}

func mustParse(t *testing.T, text string) List {
	t.Helper()
	out, ok := ParseString(text)
	if !ok {
		t.Fatalf("invalid selector %q", text)
	}
	return out
}

func TestParseValid(t *testing.T) {
	for _, text := range []string{
		"rect", "*", "#a.b[c]", "a > b + c ~ d e", " g  rect ",
		":nth-child(2n+1)", "a, b", "rect:not(.a, .b)", "[x  ~=  'v' ]",
		"stop:first-child", "LinearGradient", "*|*", "foo",
	} {
		if text == "*|*" { // namespaces are not supported
			if _, ok := ParseString(text); ok {
				t.Errorf("expected invalid selector %q", text)
			}
			continue
		}
		mustParse(t, text)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, text := range []string{
		"", "a,", ", a", "a,,b", "::before", ":hover", "[x=]", "#1a",
		"a >", "> a", ".", "[]", "[x=a b]", "[x=10]", ":nth-child(foo)", "a)", "a b,c ~",
	} {
		if _, ok := ParseString(text); ok {
			t.Errorf("expected invalid selector %q", text)
		}
	}
}

func TestParseStructure(t *testing.T) {
	got := mustParse(t, "g > rect.a[x^='1']:first-child")
	expected := List{{
		{Element: dom.G},
		{
			Element:    dom.Rect,
			Combinator: Child,
			Attributes: []AttributeSelector{
				{Name: pr.PClass, Operator: Includes, Value: "a"},
				{Name: pr.PX, Operator: StartsWith, Value: "1"},
			},
			Pseudos: []PseudoClassSelector{{Type: FirstChild}},
		},
	}}
	tu.AssertEqual(t, got, expected, "structure")

	got = mustParse(t, "a b ~ #c")
	tu.AssertEqual(t, got[0][1].Combinator, Descendant)
	tu.AssertEqual(t, got[0][2].Combinator, IndirectAdjacent)
	tu.AssertEqual(t, got[0][2].Element, dom.Star)
	tu.AssertEqual(t, got[0][0].Element, dom.A)
}

func TestParseNth(t *testing.T) {
	tests := []struct {
		input string
		a, b  int
		ok    bool
	}{
		{"odd", 2, 1, true},
		{"EVEN", 2, 0, true},
		{"3", 0, 3, true},
		{"+5", 0, 5, true},
		{"n", 1, 0, true},
		{"-n+3", -1, 3, true},
		{"2n+1", 2, 1, true},
		{"2n + 1", 2, 1, true},
		{"2n-1", 2, -1, true},
		{"2n - 1", 2, -1, true},
		{"-2n-1", -2, -1, true},
		{"+n-4", 1, -4, true},
		{"n- 4", 1, -4, true},
		{" 3n ", 3, 0, true},
		{"2n+-1", 0, 0, false},
		{"2n 1", 0, 0, false},
		{"+ n", 0, 0, false},
		{"1.5n", 0, 0, false},
		{"foo", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		a, b, ok := parseNth(pa.NewTokenStream(pa.Tokenize(tt.input)))
		if a != tt.a || b != tt.b || ok != tt.ok {
			t.Errorf("parseNth(%q) = %d, %d, %v", tt.input, a, b, ok)
		}
	}
}

func TestMatchNth(t *testing.T) {
	var odd, first3 []int
	for i := 1; i <= 6; i++ {
		if matchNth(2, 1, i) {
			odd = append(odd, i)
		}
		if matchNth(-1, 3, i) {
			first3 = append(first3, i)
		}
	}
	tu.AssertEqual(t, odd, []int{1, 3, 5}, "2n+1")
	tu.AssertEqual(t, first3, []int{1, 2, 3}, "-n+3")
	if !matchNth(0, 2, 2) || matchNth(0, 2, 4) {
		t.Fatal("unexpected match for b only")
	}
}

func TestSpecificity(t *testing.T) {
	tests := []struct {
		selector string
		expected uint32
	}{
		{"*", 0},
		{"rect", 1},
		{".a", 0x100},
		{"#b", 0x10000},
		{"[id]", 0x10000},
		{"[id^=a]", 0x10000},
		{"rect[id|=a].c", 0x10101},
		{"g rect.a.b[x]", 0x302},
		{"#b > *:first-child", 0x10000},
		{"rect:not(.a)", 1},
	}
	for _, tt := range tests {
		got := mustParse(t, tt.selector)[0].Specificity()
		if got != tt.expected {
			t.Errorf("specificity of %q: got %#x, expected %#x", tt.selector, got, tt.expected)
		}
	}
}

func testTree() (root, group *node, rects []*node) {
	r1 := el(dom.Rect, map[pr.KnownProp]string{pr.PClass: "a big", pr.PID: "r1"})
	c := el(dom.Circle, nil)
	r2 := el(dom.Rect, map[pr.KnownProp]string{pr.PClass: "b", pr.PX: "10", pr.PHref: "#grad-main"})
	r3 := el(dom.Rect, map[pr.KnownProp]string{pr.PClass: "A"})
	group = el(dom.G, map[pr.KnownProp]string{pr.PID: "main"}, r1, c, r2, r3)
	text := el(dom.Text, nil)
	text.hasText = true
	root = el(dom.Svg, nil, group, text, el(dom.Unknown, nil))
	return root, group, []*node{r1, r2, r3}
}

func TestMatch(t *testing.T) {
	root, group, rects := testTree()
	circle, text, unknown := group.children[1], root.children[1], root.children[2]
	tests := []struct {
		selector string
		element  *node
		expected bool
	}{
		{"rect", rects[0], true},
		{"circle", rects[0], false},
		{"*", unknown, true},
		{"foo", unknown, false},
		{"#r1", rects[0], true},
		{"#R1", rects[0], true},
		{".big", rects[0], true},
		{".a", rects[2], true}, // case insensitive
		{".bi", rects[0], false},
		{"[x]", rects[1], true},
		{"[x]", rects[0], false},
		{"[x='10']", rects[1], true},
		{"[href^='#grad']", rects[1], true},
		{"[href$=main]", rects[1], true},
		{"[href*=d-m]", rects[1], true},
		{"[href*='']", rects[1], false},
		{"[class|=b]", rects[1], true},
		{"[foo]", rects[1], false},
		{"svg > g > rect", rects[0], true},
		{"svg > rect", rects[0], false},
		{"svg rect", rects[0], true},
		{"text rect", rects[0], false},
		{"rect + circle", circle, true},
		{"rect + rect", rects[1], false},
		{"rect ~ rect", rects[1], true},
		{"circle + rect", rects[1], true},
		{"g + text", text, true},
		{"svg:root", root, true},
		{"g:root", group, false},
		{"circle:empty", circle, true},
		{"text:empty", text, false},
		{"g:empty", group, false},
		{"rect:first-child", rects[0], true},
		{"rect:last-child", rects[2], true},
		{":only-child", group, false},
		{"rect:first-of-type", rects[0], true},
		{"rect:first-of-type", rects[1], false},
		{"circle:first-of-type", circle, true},
		{"rect:last-of-type", rects[2], true},
		{"circle:only-of-type", circle, true},
		{"rect:only-of-type", rects[0], false},
		{":nth-child(2n+1)", rects[1], true}, // third child
		{":nth-child(2n+1)", circle, false},
		{":nth-child(odd)", rects[0], true},
		{":nth-last-child(1)", rects[2], true},
		{"rect:nth-of-type(2)", rects[1], true},
		{"rect:nth-last-of-type(3)", rects[0], true},
		{"rect:is(.a, [id])", rects[0], true},
		{"rect:is(.b, [id])", rects[0], false},
		{"rect:not(.b)", rects[0], true},
		{"rect:not(.b, circle)", rects[1], false},
		{"a, rect", rects[0], true},
		{"g#main rect.b", rects[1], true},
	}
	for _, tt := range tests {
		if got := mustParse(t, tt.selector).Match(tt.element); got != tt.expected {
			t.Errorf("%q: expected %v", tt.selector, tt.expected)
		}
	}
}
