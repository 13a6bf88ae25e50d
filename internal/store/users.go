package store

import (
	"errors"
	"strings"

	"pocketmart/internal/domain"
)

// ErrEmailTaken reports a signup collision on the normalized email.
var ErrEmailTaken = errors.New("email already registered")

// AddUser appends a user and persists the users record. Email is the
// uniqueness key, compared case-insensitively like a UNIQUE index on
// LOWER(email) would.
func (s *Store) AddUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, x := range s.users {
		if strings.EqualFold(x.Email, u.Email) {
			return ErrEmailTaken
		}
	}
	s.users = append(s.users, u)
	return s.saveUsersLocked()
}

func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, x := range s.users {
		if strings.EqualFold(x.Email, email) {
			return x, true
		}
	}
	return domain.User{}, false
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}
