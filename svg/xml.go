package svg

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// ParseXML is like ParseWithOptions, but uses a strict XML parser,
// which supports the encodings declared in the XML header
// and preserves the case of tags and attributes.
func ParseXML(r io.Reader, opts Options) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing svg markup: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrMissingSVG
	}
	return ParseNode(fromXML(root), opts)
}

// fromXML converts an XML element (and its children) to an html node,
// so that both parsers share the same tree building.
func fromXML(el *etree.Element) *html.Node {
	out := &html.Node{
		Type:      html.ElementNode,
		Data:      el.Tag,
		DataAtom:  atom.Lookup([]byte(el.Tag)),
		Namespace: "svg",
	}
	for _, attr := range el.Attr {
		out.Attr = append(out.Attr, html.Attribute{Namespace: attr.Space, Key: attr.Key, Val: attr.Value})
	}
	for _, token := range el.Child {
		switch token := token.(type) {
		case *etree.Element:
			out.AppendChild(fromXML(token))
		case *etree.CharData:
			out.AppendChild(&html.Node{Type: html.TextNode, Data: token.Data})
		}
	}
	return out
}
