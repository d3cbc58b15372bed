// Package ui serves the single-page client. The page is a plain HTML
// template with inline script: an upload widget, a query widget, and a
// results section rendered from the enriched /ask response. All heavy
// lifting (column inference, cell resolution) happens server-side.
package ui

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	APIPrefix string
}

// Index returns the handler for GET /
func Index(apiPrefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		if err := indexTmpl.Execute(w, pageData{APIPrefix: apiPrefix}); err != nil {
			log.Error().Err(err).Msg("render index")
		}
	}
}
