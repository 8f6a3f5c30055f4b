package creational

import _ "embed"

// Version is the release of the catalog, read from the VERSION file.
//
//go:embed VERSION
var Version string
