package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore tracks refresh-token jtis revoked by logout. Entries
// expire with the token itself, so the map stays bounded.
type RevokedTokenStore interface {
	Revoke(jti string, ttl time.Duration)
	IsRevoked(jti string) bool
}

type entry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]entry),
	}
}

func (s *RevokedTokens) Revoke(jti string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[jti] = entry{expiresAt: time.Now().Add(ttl)}
}

func (s *RevokedTokens) IsRevoked(jti string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[jti]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, jti) // cleanup expired
		return false
	}
	return true
}
