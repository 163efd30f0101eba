// Package svg parses SVG documents into a tree of elements,
// and resolves their style: <style> elements, presentation attributes,
// 'style' attributes and the user agent style sheet.
package svg

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/benoitkugler/svgstyle/css/style"
	"github.com/benoitkugler/svgstyle/logger"
)

// ErrMissingSVG is returned when the input has no <svg> element.
var ErrMissingSVG = errors.New("missing <svg> element")

// Options controls how styles are resolved.
type Options struct {
	// ExtraCSS are user style sheets, applied after
	// the <style> elements of the document.
	ExtraCSS []string
	// UserAgent enables the user agent style sheet.
	UserAgent bool
}

// Document is a parsed SVG document, with computed styles.
type Document struct {
	// Root is the outermost <svg> element.
	Root *Node
	// StyleSheet contains the rules of the <style> elements
	// and of Options.ExtraCSS.
	StyleSheet *style.StyleSheet

	ids map[string]*Node
}

// Parse parses an SVG document, using the user agent style sheet.
func Parse(r io.Reader) (*Document, error) {
	return ParseWithOptions(r, Options{UserAgent: true})
}

// ParseWithOptions parses an SVG document and computes the style of its elements.
func ParseWithOptions(r io.Reader, opts Options) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing svg markup: %w", err)
	}
	return ParseNode(root, opts)
}

// ParseNode builds a document from an already parsed html tree.
func ParseNode(root *html.Node, opts Options) (*Document, error) {
	// the root svg node is not always the first one
	svgRoot := findSVG(root)
	if svgRoot == nil {
		return nil, ErrMissingSVG
	}

	b := builder{
		sheet: parseStylesheets(svgRoot, opts.ExtraCSS),
		ids:   make(map[string]*Node),
	}
	if opts.UserAgent {
		b.userAgent = &style.UserAgent
	}
	out := &Document{StyleSheet: b.sheet, ids: b.ids}
	out.Root = b.build(svgRoot, nil)
	b.cascade(out.Root)
	logger.ProgressLogger.Debugw("computed styles", zap.Int("referenceable", len(out.ids)))
	return out, nil
}

func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Svg {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findSVG(c); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for each element, in tree order, with its depth (0 for the root).
// If fn returns false, the children of the element are skipped.
func (d *Document) Walk(fn func(n *Node, depth int) bool) {
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(d.Root, 0)
}

// Lookup returns the element referenced by `url` (like "#id" or "url(#id)"),
// or nil. Only references to the document itself are supported.
func (d *Document) Lookup(url string) *Node {
	id := parseURLFragment(url)
	if id == "" {
		return nil
	}
	return d.ids[id]
}
