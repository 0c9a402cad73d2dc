package models

import (
	"testing"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr error
	}{
		{
			name:    "valid product",
			product: Product{ID: "01", Name: "Claw Hammer", Price: 1250, Stock: 10},
			wantErr: nil,
		},
		{
			name:    "out of stock is still valid",
			product: Product{ID: "01", Name: "Claw Hammer", Price: 1250, Stock: 0},
			wantErr: nil,
		},
		{
			name:    "missing id",
			product: Product{Name: "Claw Hammer", Price: 1250},
			wantErr: ErrInvalidProductID,
		},
		{
			name:    "blank name",
			product: Product{ID: "01", Name: "   ", Price: 1250},
			wantErr: ErrInvalidProductName,
		},
		{
			name:    "zero price",
			product: Product{ID: "01", Name: "Claw Hammer"},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative stock",
			product: Product{ID: "01", Name: "Claw Hammer", Price: 1250, Stock: -1},
			wantErr: ErrInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.product.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProduct_StockLabel(t *testing.T) {
	tests := []struct {
		stock   int
		want    string
		inStock bool
	}{
		{stock: 0, want: "Out of stock", inStock: false},
		{stock: 1, want: "Only 1 left", inStock: true},
		{stock: 4, want: "Only 4 left", inStock: true},
		{stock: 5, want: "In stock", inStock: true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := &Product{Stock: tt.stock}
			if got := p.StockLabel(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if p.InStock() != tt.inStock {
				t.Errorf("Expected InStock() %v for stock %d", tt.inStock, tt.stock)
			}
		})
	}
}

func TestProduct_GetFormattedPrice(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{price: 1415, want: "$14.15"},
		{price: 100, want: "$1.00"},
		{price: 5, want: "$0.05"},
		{price: 123456, want: "$1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p := &Product{Price: tt.price}
			if got := p.GetFormattedPrice(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
