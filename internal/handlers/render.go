package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page templates, each rendered inside layout.html
var pageTemplates = []string{
	"home", "product", "login", "register", "forgot_password",
	"account", "favorites", "cart", "contact", "not_found",
}

const siteTitle = "Practice Software Testing - Toolshop"

// NavData is rendered by the navigation bar on every page
type NavData struct {
	SignedIn   bool
	Email      string
	CartCount  int
	Categories []models.Category
}

// PageData is the data passed to the layout template
type PageData struct {
	Title   string
	Nav     NavData
	Content any
}

// Renderer executes page templates inside the shared layout
type Renderer struct {
	pages map[string]*template.Template
	log   logrus.FieldLogger
}

// NewRenderer parses the embedded templates
func NewRenderer(logger logrus.FieldLogger) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pageTemplates)),
		log:   logger,
	}

	for _, name := range pageTemplates {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render writes the named page with status
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data PageData) {
	tmpl, ok := r.pages[name]
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if data.Title == "" {
		data.Title = siteTitle
	} else {
		data.Title = data.Title + " - " + siteTitle
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		r.log.WithError(err).WithField("template", name).Error("Failed to render template")
	}
}
