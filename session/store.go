// Package session keeps the admin bearer token. Every component that talks to
// the backend gets a Store injected instead of reading a global.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Key is the fixed storage key the token lives under.
const Key = "token"

var ErrNoToken = errors.New("no session token")

type Store interface {
	// Token returns ErrNoToken when no usable token is stored.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Active returns the stored token, dropping it first if it is a JWT that has already expired.
func Active(ctx context.Context, s Store) (string, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return "", err
	}
	if Expired(token, time.Now()) {
		if err := s.Clear(ctx); err != nil {
			return "", fmt.Errorf("%w: drop expired token: %w", ErrNoToken, err)
		}
		return "", ErrNoToken
	}
	return token, nil
}

// Expired reports whether token is a JWT whose exp claim is in the past.
// The signature is not checked; opaque tokens never expire here.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", ErrNoToken
	}
	return m.token, nil
}

func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
