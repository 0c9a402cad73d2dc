package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-ui/internal/config"
	"github.com/adyen/storefront-ui/internal/logging"
	"github.com/adyen/storefront-ui/internal/models"
	"github.com/adyen/storefront-ui/internal/repository"
)

var testAccount = config.Credentials{Email: "customer@example.com", Password: "welcome01"}

func newTestSessionService(sessions SessionRepository) SessionService {
	catalog := &MockCatalogRepository{Products: []models.Product{
		{ID: "claw-hammer", Name: "Claw Hammer", Price: 1250, Stock: 10},
		{ID: "sold-out", Name: "Sold Out", Price: 900, Stock: 0},
	}}
	return NewSessionService(sessions, catalog, testAccount, logging.Discard())
}

func TestSessionService_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		getErr error
		wantID string
	}{
		{name: "existing session", id: "abc", wantID: "abc"},
		{name: "unknown session", id: "gone", getErr: repository.ErrSessionNotFound, wantID: "new-session"},
		{name: "no cookie", id: "", wantID: "new-session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSessionService(&MockSessionRepository{
				GetSessionFunc: func(id string) (*models.Session, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return &models.Session{ID: id}, nil
				},
			})

			assert.Equal(t, tt.wantID, svc.Resolve(tt.id).ID)
		})
	}
}

func TestSessionService_AddToCart(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		quantity  int
		wantErr   error
		wantCount int
	}{
		{name: "adds units", productID: "claw-hammer", quantity: 3, wantCount: 3},
		{name: "unknown product", productID: "missing", quantity: 1, wantErr: repository.ErrProductNotFound},
		{name: "out of stock", productID: "sold-out", quantity: 1, wantErr: models.ErrOutOfStock},
		{name: "invalid quantity", productID: "claw-hammer", quantity: 0, wantErr: models.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSessionService(&MockSessionRepository{})

			session, err := svc.AddToCart("abc", tt.productID, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, session.CartCount())
		})
	}
}

func TestSessionService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: testAccount.Email, password: testAccount.Password},
		{name: "wrong password", email: testAccount.Email, password: "wrongpass", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "invalid@test.com", password: testAccount.Password, wantErr: ErrInvalidCredentials},
		{name: "empty", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			svc := newTestSessionService(&MockSessionRepository{
				UpdateSessionFunc: func(id string, fn func(*models.Session) error) (*models.Session, error) {
					updated = true
					s := &models.Session{ID: id}
					return s, fn(s)
				},
			})

			session, err := svc.Login("abc", tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, updated, "rejected sign-in must not touch the session")
				return
			}
			require.NoError(t, err)
			assert.True(t, session.IsSignedIn())
		})
	}
}

func TestSessionService_LoginReplacesExistingAccount(t *testing.T) {
	sessions := repository.NewSessionRepository()
	svc := newTestSessionService(sessions)
	s := sessions.CreateSession()

	_, err := svc.Login(s.ID, testAccount.Email, testAccount.Password)
	require.NoError(t, err)
	session, err := svc.Login(s.ID, testAccount.Email, testAccount.Password)
	require.NoError(t, err)
	assert.Equal(t, testAccount.Email, session.Email)

	require.NoError(t, svc.Logout(s.ID))
	stored, err := sessions.GetSession(s.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsSignedIn())
}

func TestSessionService_AddFavorite(t *testing.T) {
	sessions := repository.NewSessionRepository()
	svc := newTestSessionService(sessions)
	s := sessions.CreateSession()

	_, err := svc.AddFavorite(s.ID, "claw-hammer")
	require.ErrorIs(t, err, models.ErrNotSignedIn)

	_, err = svc.Login(s.ID, testAccount.Email, testAccount.Password)
	require.NoError(t, err)

	session, err := svc.AddFavorite(s.ID, "claw-hammer")
	require.NoError(t, err)
	assert.Equal(t, []string{"claw-hammer"}, session.Favorites)

	_, err = svc.AddFavorite(s.ID, "missing")
	assert.True(t, errors.Is(err, repository.ErrProductNotFound))
}
