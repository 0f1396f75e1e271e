package memory

import (
	"context"
	"sync"
	"time"

	"cargotrail/contexts/identity-access/auth-service/domain/entities"
	domainerrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
)

// Store is an in-memory credential store for tests and local development.
type Store struct {
	mu          sync.RWMutex
	usersByName map[string]entities.User
	nextID      uint
}

func NewStore() *Store {
	return &Store{
		usersByName: make(map[string]entities.User),
		nextID:      1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (entities.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByName[username]
	if !ok {
		return entities.User{}, false, nil
	}
	return user, true, nil
}

func (s *Store) CreateUser(_ context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByName[user.Username]; exists {
		return entities.User{}, domainerrors.ErrUsernameTaken
	}
	user.ID = s.nextID
	s.nextID++
	s.usersByName[user.Username] = user
	return user, nil
}
