package models

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups products in the storefront navigation
type Category struct {
	Slug string
	Name string
}

// Product represents one catalog item
type Product struct {
	ID          string
	Name        string
	Description string
	// Price in cents
	Price    int64
	Brand    string
	Category Category
	Stock    int
	Images   []string
}

// Domain errors
var (
	ErrInvalidProductID   = errors.New("product id cannot be empty")
	ErrInvalidProductName = errors.New("product name cannot be empty")
	ErrInvalidPrice       = errors.New("product price must be positive")
	ErrInvalidStock       = errors.New("product stock cannot be negative")
)

// Validate checks the product can be listed
func (p *Product) Validate() error {
	if p.ID == "" {
		return ErrInvalidProductID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProductName
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// InStock returns true if at least one unit can be ordered
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// StockLabel returns the availability text shown on the product page
func (p *Product) StockLabel() string {
	switch {
	case p.Stock == 0:
		return "Out of stock"
	case p.Stock < 5:
		return fmt.Sprintf("Only %d left", p.Stock)
	default:
		return "In stock"
	}
}

// GetFormattedPrice returns the price formatted in dollars
func (p *Product) GetFormattedPrice() string {
	return FormatPrice(p.Price)
}

// FormatPrice formats an amount in cents as dollars
func FormatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
