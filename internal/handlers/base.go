package handlers

import (
	"net/http"

	"github.com/adyen/storefront-ui/internal/services"
)

// pageHandler carries what every HTML handler needs to render a page
type pageHandler struct {
	renderer *Renderer
	catalog  services.CatalogService
}

func (h pageHandler) page(r *http.Request, title string, content any) PageData {
	session := SessionFrom(r)
	return PageData{
		Title: title,
		Nav: NavData{
			SignedIn:   session.IsSignedIn(),
			Email:      session.Email,
			CartCount:  session.CartCount(),
			Categories: h.catalog.Categories(),
		},
		Content: content,
	}
}

func (h pageHandler) render(w http.ResponseWriter, r *http.Request, name, title string, content any) {
	h.renderer.Render(w, http.StatusOK, name, h.page(r, title, content))
}

func (h pageHandler) notFound(w http.ResponseWriter, r *http.Request, message string) {
	h.renderer.Render(w, http.StatusNotFound, "not_found", h.page(r, "Not found", message))
}
