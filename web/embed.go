// Package web holds the page skeletons, HTML fragments, static assets and
// default content documents compiled into the binary.
package web

import "embed"

//go:embed templates/*.html templates/fragments/*.html static data images
var FS embed.FS
