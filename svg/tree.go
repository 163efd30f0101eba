package svg

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	pr "github.com/benoitkugler/svgstyle/css/properties"
	"github.com/benoitkugler/svgstyle/css/selector"
	"github.com/benoitkugler/svgstyle/css/style"
	"github.com/benoitkugler/svgstyle/css/validation"
	"github.com/benoitkugler/svgstyle/dom"
	"github.com/benoitkugler/svgstyle/logger"
	"github.com/benoitkugler/svgstyle/matrix"
)

// convert from html nodes to the styled svg tree

// Node is an element of an SVG document.
type Node struct {
	// Tag is the element name, as found in the document.
	Tag string
	// Text is the concatenation of the text children.
	Text string

	// Style is the computed style of the element.
	Style *style.ComputedStyle

	Children []*Node

	attrs  map[pr.KnownProp]string
	parent *Node
	// position in parent.Children
	index         int
	kind          dom.ElementID
	hasChildNodes bool
}

var _ selector.Element = (*Node)(nil)

// ID returns the kind of element, which is dom.Unknown
// for unsupported tags.
func (n *Node) ID() dom.ElementID { return n.kind }

func (n *Node) Parent() selector.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) PreviousElement() selector.Element {
	if n.parent == nil || n.index == 0 {
		return nil
	}
	return n.parent.Children[n.index-1]
}

func (n *Node) NextElement() selector.Element {
	if n.parent == nil || n.index+1 >= len(n.parent.Children) {
		return nil
	}
	return n.parent.Children[n.index+1]
}

func (n *Node) HasChildren() bool { return n.hasChildNodes }

// Get returns the raw value of the attribute, or an empty string.
// Unsupported attributes are not stored.
func (n *Node) Get(name pr.KnownProp) string { return n.attrs[name] }

// ParentNode returns the parent of n, or nil for the root.
func (n *Node) ParentNode() *Node { return n.parent }

// ViewBox returns the value of the 'viewBox' attribute, or nil if it is
// absent.
func (n *Node) ViewBox() (*Rectangle, error) {
	attr := n.attrs[pr.PViewBox]
	if attr == "" {
		return nil, nil
	}
	vb, err := parseViewbox(attr)
	if err != nil {
		return nil, err
	}
	return &vb, nil
}

// Points returns the value of the 'points' attribute of polylines and polygons.
func (n *Node) Points() ([]float64, error) { return parsePoints(n.attrs[pr.PPoints]) }

// Href returns the fragment of the 'href' attribute ('xlink:href' is also supported).
func (n *Node) Href() string { return parseURLFragment(n.attrs[pr.PHref]) }

// Transform returns the transformation of the element: 'gradientTransform'
// for gradients, 'patternTransform' for patterns and 'transform' otherwise.
func (n *Node) Transform() (matrix.Transform, error) {
	attr := pr.PTransform
	switch n.kind {
	case dom.LinearGradient, dom.RadialGradient:
		attr = pr.PGradientTransform
	case dom.Pattern:
		attr = pr.PPatternTransform
	}
	return matrix.Parse(n.attrs[attr])
}

func newNode(node *html.Node) *Node {
	out := &Node{
		Tag:   node.Data,
		kind:  dom.Lookup(node.Data),
		attrs: make(map[pr.KnownProp]string, len(node.Attr)),
	}
	for _, attr := range node.Attr {
		key := attr.Key
		if attr.Namespace == "xlink" && key == "href" || key == "xlink:href" {
			key = "href"
		}
		if prop := pr.Lookup(key); prop != pr.PUnknown {
			out.attrs[prop] = attr.Val
		}
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			out.Text += c.Data
			out.hasChildNodes = true
		case html.ElementNode:
			out.hasChildNodes = true
		}
	}
	return out
}

// presentationAttributes returns the CSS properties specified as attributes,
// sorted by property.
func (n *Node) presentationAttributes() pr.Declarations {
	var out pr.Declarations
	for prop := pr.KnownProp(1); prop < pr.NbProps; prop++ {
		attr, has := n.attrs[prop]
		if !has || !prop.IsCSS() {
			continue
		}
		if value, ok := validation.ParseAttribute(prop, attr); ok {
			out = append(out, pr.Property{ID: prop, Value: value})
		}
	}
	return out
}

// builder applies the style sheets while converting the html tree
type builder struct {
	sheet     *style.StyleSheet
	userAgent *style.StyleSheet // may be nil
	ids       map[string]*Node
}

func (b *builder) build(node *html.Node, parent *Node) *Node {
	n := newNode(node)
	n.parent = parent
	if parent != nil {
		n.index = len(parent.Children)
		parent.Children = append(parent.Children, n)
	}
	if n.kind == dom.Unknown {
		logger.WarningLogger.Debugw("unsupported element", zap.String("tag", n.Tag))
	}
	if id := n.attrs[pr.PID]; id != "" {
		if _, has := b.ids[id]; !has {
			b.ids[id] = n
		}
	}
	// children are needed to match structural selectors
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			b.build(c, n)
		}
	}
	return n
}

// cascade computes the style of n and its children, in tree order.
func (b *builder) cascade(n *Node) {
	var parentStyle *style.ComputedStyle
	if n.parent != nil {
		parentStyle = n.parent.Style
	}
	var presentation pr.Declarations
	if b.userAgent != nil {
		presentation = b.userAgent.Match(n)
	}
	presentation = append(presentation, n.presentationAttributes()...)
	var inline pr.Declarations
	if css := n.attrs[pr.PStyle]; css != "" {
		inline = style.ParseStyle(css)
	}
	n.Style = b.sheet.Cascade(n, parentStyle, presentation, inline)
	for _, c := range n.Children {
		b.cascade(c)
	}
}
