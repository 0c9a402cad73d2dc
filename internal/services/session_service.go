package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/config"
	"github.com/adyen/storefront-ui/internal/models"
)

// ErrInvalidCredentials is returned when the email/password pair does not match the account
var ErrInvalidCredentials = errors.New("invalid email or password")

// SessionRepository defines the interface for session persistence
type SessionRepository interface {
	CreateSession() *models.Session
	GetSession(id string) (*models.Session, error)
	UpdateSession(id string, fn func(*models.Session) error) (*models.Session, error)
}

// SessionService handles visitor sessions: cart, favorites and sign-in
type SessionService interface {
	Resolve(id string) *models.Session
	AddToCart(sessionID, productID string, quantity int) (*models.Session, error)
	AddFavorite(sessionID, productID string) (*models.Session, error)
	Login(sessionID, email, password string) (*models.Session, error)
	Logout(sessionID string) error
}

// SessionServiceImpl implements SessionService
type SessionServiceImpl struct {
	sessions SessionRepository
	catalog  CatalogRepository
	account  config.Credentials
	log      logrus.FieldLogger
}

// NewSessionService creates a new session service accepting the given account
func NewSessionService(sessions SessionRepository, catalog CatalogRepository, account config.Credentials, logger logrus.FieldLogger) SessionService {
	return &SessionServiceImpl{
		sessions: sessions,
		catalog:  catalog,
		account:  account,
		log:      logger,
	}
}

// Resolve returns the session with id, creating a new one when id is unknown
func (s *SessionServiceImpl) Resolve(id string) *models.Session {
	if id != "" {
		if session, err := s.sessions.GetSession(id); err == nil {
			return session
		}
	}
	return s.sessions.CreateSession()
}

// AddToCart adds quantity units of a product to the session's cart
func (s *SessionServiceImpl) AddToCart(sessionID, productID string, quantity int) (*models.Session, error) {
	product, err := s.catalog.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.UpdateSession(sessionID, func(session *models.Session) error {
		return session.AddToCart(product, quantity)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"session":  sessionID,
		"product":  productID,
		"quantity": quantity,
	}).Info("Added to cart")
	return session, nil
}

// AddFavorite records a product in the signed-in session's favorites
func (s *SessionServiceImpl) AddFavorite(sessionID, productID string) (*models.Session, error) {
	if _, err := s.catalog.GetProductByID(productID); err != nil {
		return nil, err
	}
	return s.sessions.UpdateSession(sessionID, func(session *models.Session) error {
		return session.AddFavorite(productID)
	})
}

// Login signs the session in when email and password match the account
func (s *SessionServiceImpl) Login(sessionID, email, password string) (*models.Session, error) {
	if email != s.account.Email || password != s.account.Password {
		s.log.WithField("session", sessionID).Info("Rejected sign-in")
		return nil, ErrInvalidCredentials
	}
	return s.sessions.UpdateSession(sessionID, func(session *models.Session) error {
		if session.IsSignedIn() {
			session.SignOut()
		}
		return session.SignIn(email)
	})
}

// Logout signs the session out, keeping its cart
func (s *SessionServiceImpl) Logout(sessionID string) error {
	_, err := s.sessions.UpdateSession(sessionID, func(session *models.Session) error {
		session.SignOut()
		return nil
	})
	return err
}
