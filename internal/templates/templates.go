// Package templates embeds the server-rendered pages so the binary and
// the tests work regardless of the working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
