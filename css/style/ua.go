package style

import (
	_ "embed"
)

//go:embed ua.css
var uaCSS string

// UserAgent is the user agent style sheet for SVG documents.
// Its declarations should be used below the presentation attributes,
// see (*StyleSheet).Match.
var UserAgent StyleSheet

func init() {
	UserAgent.Parse(uaCSS)
}
