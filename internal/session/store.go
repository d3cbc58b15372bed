// Package session tracks the single active session per client. Sessions are
// owned by the backend; this registry only remembers which one a given
// browser is currently working against so a new upload replaces the old
// dataset and stale session IDs get rejected before hitting the network.
package session

import (
	"sync"

	"github.com/tabletalk/tabletalk/internal/models"
)

type Store struct {
	mu     sync.RWMutex
	active map[string]*models.Session
}

func NewStore() *Store {
	return &Store{active: make(map[string]*models.Session)}
}

// Replace installs the session as the client's active one, discarding any
// previous session. Sessions are never explicitly destroyed beyond this.
func (s *Store) Replace(clientID string, sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[clientID] = sess
}

// Active returns the client's current session, if any.
func (s *Store) Active(clientID string) (*models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.active[clientID]
	return sess, ok
}
