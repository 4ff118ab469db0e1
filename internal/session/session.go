package session

import (
	"errors"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"servicehub/internal/domain"
)

var ErrNotAuthenticated = errors.New("no active session")

// Claims is the slice of the identity provider's token the client cares
// about. The token is decoded without signature verification: the provider
// signs it and the API verifies it, the client only reads it.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

// Manager owns the bearer token. It is the only component allowed to mutate
// it; everything else reads through the accessors. Safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	token  string
	claims *Claims
	store  *Store
}

func NewManager(store *Store) (*Manager, error) {
	m := &Manager{store: store}
	if store == nil {
		return m, nil
	}
	token, err := store.LoadToken()
	if err != nil {
		return nil, err
	}
	if token != "" {
		// A stale persisted token is dropped rather than surfaced.
		if err := m.SetToken(token); err != nil {
			_ = store.ClearToken()
		}
	}
	return m, nil
}

// SetToken installs a new bearer token after a login or refresh.
func (m *Manager) SetToken(token string) error {
	claims, err := decodeClaims(token)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.token = token
	m.claims = claims
	m.mu.Unlock()

	if m.store != nil {
		return m.store.SaveToken(token)
	}
	return nil
}

// Clear drops the session, e.g. after a PERMISSION_DENIED response.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.token = ""
	m.claims = nil
	m.mu.Unlock()

	if m.store != nil {
		_ = m.store.ClearToken()
	}
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

func (m *Manager) Role() (domain.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.claims == nil {
		return "", ErrNotAuthenticated
	}
	return domain.Role(m.claims.Role), nil
}

func (m *Manager) UserID() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.claims == nil {
		return 0, ErrNotAuthenticated
	}
	return m.claims.UserID, nil
}

func decodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwtlib.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	if !domain.Role(claims.Role).Valid() {
		return nil, errors.New("token carries no usable role claim")
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}
