// Package views holds the console's HTML templates, embedded so the binary
// ships self-contained.
package views

import "embed"

//go:embed *.html
var FS embed.FS
