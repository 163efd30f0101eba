package version

import (
	"fmt"
)

const (
	Version = "0.1.0"
)

// VersionString identifies the program in logs and dumps.
var VersionString = fmt.Sprintf("svgstyle %s", Version)
