package handlers

import (
	"fmt"
	"hash/fnv"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ImageHandler serves generated SVG placeholders for product images
type ImageHandler struct{}

// ServeHTTP handles GET /static/images/{name}
func (h ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(chi.URLParam(r, "name"), ".svg")
	if name == "" {
		http.NotFound(w, r)
		return
	}

	hash := fnv.New32a()
	hash.Write([]byte(name))
	hue := hash.Sum32() % 360

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="320" height="240" viewBox="0 0 320 240">`+
		`<rect width="320" height="240" fill="hsl(%d, 45%%, 80%%)"/>`+
		`<text x="160" y="125" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text></svg>`,
		hue, html.EscapeString(name))
}
