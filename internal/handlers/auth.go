package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/services"
)

// Messages shown on the login page
const (
	LoginErrorMessage     = "Invalid email or password"
	ResetSentMessage      = "Password reset instructions have been sent to your email."
	RegisteredMessage     = "Your account has been created, please log in."
	MissingFieldsMessage  = "Email and password are required"
	MissingEmailMessage   = "Email is required"
	RegisterFailedMessage = "First name, email and password are required"
)

// LoginData represents the data passed to the login template
type LoginData struct {
	Email   string
	Error   string
	Success string
}

// FormData represents the data passed to simple form templates
type FormData struct {
	Error string
}

// AuthHandler handles sign-in, sign-out, registration and password reset
type AuthHandler struct {
	pageHandler
	sessions services.SessionService
	log      logrus.FieldLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(renderer *Renderer, catalog services.CatalogService, sessions services.SessionService, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		pageHandler: pageHandler{renderer: renderer, catalog: catalog},
		sessions:    sessions,
		log:         logger,
	}
}

// Login handles GET and POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data := LoginData{}
		switch {
		case r.URL.Query().Has("reset"):
			data.Success = ResetSentMessage
		case r.URL.Query().Has("registered"):
			data.Success = RegisteredMessage
		}
		h.render(w, r, "login", "Login", data)

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.PostForm.Get("email"))
		password := r.PostForm.Get("password")
		if email == "" || password == "" {
			h.render(w, r, "login", "Login", LoginData{Email: email, Error: MissingFieldsMessage})
			return
		}

		session := SessionFrom(r)
		_, err := h.sessions.Login(session.ID, email, password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.render(w, r, "login", "Login", LoginData{Email: email, Error: LoginErrorMessage})
			return
		}
		if err != nil {
			h.log.WithError(err).Error("Failed to sign in")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if r.PostForm.Get("remember") != "" {
			setSessionCookie(w, session.ID, RememberMeDuration)
		}
		http.Redirect(w, r, "/account", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Logout handles GET /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(SessionFrom(r).ID); err != nil {
		h.log.WithError(err).Warn("Failed to sign out")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register handles GET and POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "register", "Register", FormData{})

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		for _, field := range []string{"first_name", "email", "password"} {
			if strings.TrimSpace(r.PostForm.Get(field)) == "" {
				h.render(w, r, "register", "Register", FormData{Error: RegisterFailedMessage})
				return
			}
		}
		http.Redirect(w, r, "/auth/login?registered=1", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ForgotPassword handles GET and POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "forgot_password", "Forgot password", FormData{})

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(r.PostForm.Get("email")) == "" {
			h.render(w, r, "forgot_password", "Forgot password", FormData{Error: MissingEmailMessage})
			return
		}
		http.Redirect(w, r, "/auth/login?reset=1", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
