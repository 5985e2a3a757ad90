// Package web holds the static single-page UI embedded into the server
// binary.
package web

import "embed"

//go:embed index.html
var FS embed.FS
