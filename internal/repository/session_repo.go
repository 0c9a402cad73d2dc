package repository

import (
	"errors"
	"fmt"
	"sync"

	"github.com/adyen/storefront-ui/internal/models"
)

// ErrSessionNotFound is returned for an unknown or expired session id
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps visitor sessions in memory for the life of the server
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewSessionRepository creates an empty session store
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*models.Session),
	}
}

// CreateSession stores a new anonymous session
func (r *SessionRepository) CreateSession() *models.Session {
	s := models.NewSession()

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return snapshot(s)
}

// GetSession returns a copy of the session with the given id
func (r *SessionRepository) GetSession(id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return snapshot(s), nil
}

// UpdateSession applies fn to the stored session under the write lock.
// The session is left unchanged when fn returns an error.
func (r *SessionRepository) UpdateSession(id string, fn func(*models.Session) error) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	draft := snapshot(s)
	if err := fn(draft); err != nil {
		return nil, err
	}
	r.sessions[id] = draft
	return snapshot(draft), nil
}

// Count returns the number of stored sessions
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func snapshot(s *models.Session) *models.Session {
	c := *s
	c.Lines = append([]models.CartLine(nil), s.Lines...)
	c.Favorites = append([]string(nil), s.Favorites...)
	return &c
}
