package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/models"
	"github.com/adyen/storefront-ui/internal/repository"
	"github.com/adyen/storefront-ui/internal/services"
)

// CartRequest is the body of POST /api/cart
type CartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartResponse is returned after a successful add-to-cart
type CartResponse struct {
	CartCount int    `json:"cartCount"`
	Message   string `json:"message"`
}

// FavoriteRequest is the body of POST /api/favorites
type FavoriteRequest struct {
	ProductID string `json:"productId"`
}

// FavoriteResponse is returned after a favorite is recorded
type FavoriteResponse struct {
	Favorites int    `json:"favorites"`
	Message   string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIHandler handles the storefront's JSON endpoints
type APIHandler struct {
	sessions services.SessionService
	log      logrus.FieldLogger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(sessions services.SessionService, logger logrus.FieldLogger) *APIHandler {
	return &APIHandler{
		sessions: sessions,
		log:      logger,
	}
}

// AddToCart handles POST /api/cart
func (h *APIHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.AddToCart(SessionFrom(r).ID, req.ProductID, req.Quantity)
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, CartResponse{
		CartCount: session.CartCount(),
		Message:   "Product added to shopping cart.",
	})
}

// AddFavorite handles POST /api/favorites
func (h *APIHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.AddFavorite(SessionFrom(r).ID, req.ProductID)
	if err != nil {
		h.sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, FavoriteResponse{
		Favorites: len(session.Favorites),
		Message:   "Product added to your favorites list.",
	})
}

func (h *APIHandler) sendDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		sendErrorResponse(w, "Product not found", http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidQuantity):
		sendErrorResponse(w, "Quantity must be between 1 and 99", http.StatusUnprocessableEntity)
	case errors.Is(err, models.ErrOutOfStock):
		sendErrorResponse(w, "Product is out of stock", http.StatusConflict)
	case errors.Is(err, models.ErrNotSignedIn):
		sendErrorResponse(w, "Sign in to add favorites", http.StatusUnauthorized)
	default:
		h.log.WithError(err).Error("Request failed")
		sendErrorResponse(w, "Something went wrong", http.StatusInternalServerError)
	}
}

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
