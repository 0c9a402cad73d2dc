package services

import (
	"fmt"

	"github.com/adyen/storefront-ui/internal/models"
	"github.com/adyen/storefront-ui/internal/repository"
)

// MockCatalogRepository is a mock implementation of CatalogRepository for testing
type MockCatalogRepository struct {
	Products           []models.Product
	GetProductByIDFunc func(string) (*models.Product, error)
}

func (m *MockCatalogRepository) All() []models.Product {
	return m.Products
}

func (m *MockCatalogRepository) GetProductByID(id string) (*models.Product, error) {
	if m.GetProductByIDFunc != nil {
		return m.GetProductByIDFunc(id)
	}
	for _, p := range m.Products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", repository.ErrProductNotFound, id)
}

func (m *MockCatalogRepository) Categories() []models.Category {
	return nil
}

func (m *MockCatalogRepository) Brands() []string {
	return nil
}

// MockSessionRepository is a mock implementation of SessionRepository for testing
type MockSessionRepository struct {
	CreateSessionFunc func() *models.Session
	GetSessionFunc    func(string) (*models.Session, error)
	UpdateSessionFunc func(string, func(*models.Session) error) (*models.Session, error)
}

func (m *MockSessionRepository) CreateSession() *models.Session {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc()
	}
	return &models.Session{ID: "new-session"}
}

func (m *MockSessionRepository) GetSession(id string) (*models.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(id)
	}
	return &models.Session{ID: id}, nil
}

func (m *MockSessionRepository) UpdateSession(id string, fn func(*models.Session) error) (*models.Session, error) {
	if m.UpdateSessionFunc != nil {
		return m.UpdateSessionFunc(id, fn)
	}
	s := &models.Session{ID: id}
	if err := fn(s); err != nil {
		return nil, err
	}
	return s, nil
}
