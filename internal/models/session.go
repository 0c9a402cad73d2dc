package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxLineQuantity caps a single cart line
const MaxLineQuantity = 99

// Domain errors
var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrNotSignedIn     = errors.New("session is not signed in")
	ErrAlreadySignedIn = errors.New("session is already signed in")
	ErrInvalidEmail    = errors.New("email cannot be empty")
)

// CartLine is one product in a cart
type CartLine struct {
	ProductID string
	Quantity  int
}

// Session is one visitor's browsing state: cart, favorites and sign-in
type Session struct {
	ID        string
	Email     string
	Lines     []CartLine
	Favorites []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates an anonymous session with an empty cart
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddToCart adds quantity units of product, merging with an existing line
func (s *Session) AddToCart(product *Product, quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return ErrInvalidQuantity
	}
	if !product.InStock() {
		return fmt.Errorf("%w: %s", ErrOutOfStock, product.ID)
	}

	for i := range s.Lines {
		if s.Lines[i].ProductID == product.ID {
			total := s.Lines[i].Quantity + quantity
			if total > MaxLineQuantity {
				return ErrInvalidQuantity
			}
			s.Lines[i].Quantity = total
			s.UpdatedAt = time.Now()
			return nil
		}
	}

	s.Lines = append(s.Lines, CartLine{ProductID: product.ID, Quantity: quantity})
	s.UpdatedAt = time.Now()
	return nil
}

// CartCount returns the total number of units in the cart
func (s *Session) CartCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

// AddFavorite records productID once
func (s *Session) AddFavorite(productID string) error {
	if !s.IsSignedIn() {
		return ErrNotSignedIn
	}
	for _, id := range s.Favorites {
		if id == productID {
			return nil
		}
	}
	s.Favorites = append(s.Favorites, productID)
	s.UpdatedAt = time.Now()
	return nil
}

// SignIn attaches an account to the session
func (s *Session) SignIn(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	if s.IsSignedIn() {
		return fmt.Errorf("%w as %s", ErrAlreadySignedIn, s.Email)
	}
	s.Email = email
	s.UpdatedAt = time.Now()
	return nil
}

// SignOut detaches the account; the cart is kept
func (s *Session) SignOut() {
	s.Email = ""
	s.Favorites = nil
	s.UpdatedAt = time.Now()
}

// IsSignedIn returns true if an account is attached
func (s *Session) IsSignedIn() bool {
	return s.Email != ""
}
