package svg

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/benoitkugler/svgstyle/css/style"
	"github.com/benoitkugler/svgstyle/logger"
	"github.com/benoitkugler/svgstyle/utils"
)

// Apply CSS to SVG documents.

// http://www.w3.org/TR/SVG/styling.html#StyleElement
// returns false if n is not a CSS <style> element
func handleStyleElement(n *html.Node) (string, bool) {
	if n.Type != html.ElementNode || n.DataAtom != atom.Style {
		return "", false
	}
	for _, v := range n.Attr {
		if v.Key == "type" && v.Val != "" && !utils.EqualFold(strings.TrimSpace(v.Val), "text/css") {
			logger.WarningLogger.Debugw("ignored style element", zap.String("type", v.Val))
			return "", false
		}
	}
	return childrenText(n), true
}

// childrenText concatenates the text (and CDATA) children of n.
func childrenText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// build the author style sheet from the <style> elements, in tree order,
// followed by the `extra` style sheets
func parseStylesheets(root *html.Node, extra []string) *style.StyleSheet {
	var sheet style.StyleSheet
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if css, ok := handleStyleElement(n); ok {
			sheet.Parse(css)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	for _, css := range extra {
		sheet.Parse(css)
	}
	logger.ProgressLogger.Debugw("parsed style sheets", zap.Int("rules", sheet.Len()), zap.Strings("imports", sheet.Imports()))
	return &sheet
}
