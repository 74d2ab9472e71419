// Package spec embeds the OpenAPI specification for the article sections API.
// It is imported by the HTTP server to serve the spec at /openapi.yaml and
// the Swagger UI at /docs.
package spec

import (
	_ "embed"
	"net/http"

	swgui "github.com/swaggest/swgui/v5"
)

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the spec and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte

const (
	// Path is where the raw document is served.
	Path = "/openapi.yaml"

	// DocsPath is where the Swagger UI is mounted.
	DocsPath = "/docs"
)

// Handler serves the embedded OpenAPI document as YAML.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(OpenAPI)
	})
}

// DocsHandler returns a Swagger UI (assets embedded, no CDN) that renders
// the document at Path.
func DocsHandler() http.Handler {
	return swgui.New("Article Sections API", Path, DocsPath)
}
