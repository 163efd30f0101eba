package svg

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/benoitkugler/svgstyle/utils/parsing"
)

// provide low-level functions to read basic SVG attribute values

// Rectangle is the value of a viewBox attribute.
type Rectangle struct {
	X, Y, Width, Height float64
}

// parsePoints reads a list of numbers separated by whitespace and/or commas,
// as used by the 'points' and 'viewBox' attributes.
// Units are not supported.
func parsePoints(attr string) ([]float64, error) {
	points, ok := parsing.ParseNumberList(attr)
	if !ok {
		return nil, fmt.Errorf("invalid number list %q", attr)
	}
	return points, nil
}

func parseViewbox(attr string) (Rectangle, error) {
	points, err := parsePoints(attr)
	if err != nil {
		return Rectangle{}, err
	}
	if len(points) != 4 {
		return Rectangle{}, fmt.Errorf("expected 4 numbers for viewbox, got %s", attr)
	}
	if points[2] < 0 || points[3] < 0 {
		return Rectangle{}, fmt.Errorf("negative viewbox size in %s", attr)
	}
	return Rectangle{points[0], points[1], points[2], points[3]}, nil
}

// if the URL is invalid, the empty string is returned
func parseURLFragment(url_ string) string {
	u, err := parseURL(url_)
	if err != nil {
		return ""
	}
	return u.Fragment
}

// parse a URL, possibly in a "url(...)" string.
func parseURL(url_ string) (*url.URL, error) {
	url_ = strings.TrimSpace(url_)
	if strings.HasPrefix(url_, "url(") && strings.HasSuffix(url_, ")") {
		url_ = strings.TrimSpace(url_[4 : len(url_)-1])
		if len(url_) >= 2 {
			if (url_[0] == '"' && url_[len(url_)-1] == '"') || (url_[0] == '\'' && url_[len(url_)-1] == '\'') {
				url_ = url_[1 : len(url_)-1]
			}
		}
	}
	return url.Parse(url_)
}
