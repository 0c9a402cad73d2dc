package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/services"
)

// Dependencies holds what the storefront routes need
type Dependencies struct {
	Catalog  services.CatalogService
	Sessions services.SessionService
	Logger   logrus.FieldLogger
}

// NewRouter builds the storefront's routes
func NewRouter(deps Dependencies) (http.Handler, error) {
	renderer, err := NewRenderer(deps.Logger)
	if err != nil {
		return nil, err
	}

	home := NewHomeHandler(renderer, deps.Catalog)
	product := NewProductHandler(renderer, deps.Catalog)
	auth := NewAuthHandler(renderer, deps.Catalog, deps.Sessions, deps.Logger)
	account := NewAccountHandler(renderer, deps.Catalog, deps.Logger)
	api := NewAPIHandler(deps.Sessions, deps.Logger)
	fallback := pageHandler{renderer: renderer, catalog: deps.Catalog}

	router := chi.NewRouter()
	router.Use(requestLogger(deps.Logger))

	// Static assets carry no session
	router.Get("/static/images/{name}", ImageHandler{}.ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(WithSession(deps.Sessions))

		r.Get("/", home.ServeHTTP)
		r.Get("/search", home.ServeHTTP)
		r.Get("/category/{slug}", home.ServeHTTP)
		r.Get("/product/{id}", product.ServeHTTP)

		r.Route("/auth", func(r chi.Router) {
			r.HandleFunc("/login", auth.Login)
			r.Get("/logout", auth.Logout)
			r.HandleFunc("/register", auth.Register)
			r.HandleFunc("/forgot-password", auth.ForgotPassword)
		})

		r.Get("/account", account.Account)
		r.Get("/account/favorites", account.Favorites)
		r.Get("/cart", account.Cart)
		r.HandleFunc("/contact", account.Contact)

		r.Route("/api", func(r chi.Router) {
			r.Post("/cart", api.AddToCart)
			r.Post("/favorites", api.AddFavorite)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			fallback.notFound(w, r, "Page not found")
		})
	})

	return router, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start),
			}).Debug("Handled request")
		})
	}
}
