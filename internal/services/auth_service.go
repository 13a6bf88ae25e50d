package services

import (
	"errors"
	"strings"

	"pocketmart/internal/domain"
	"pocketmart/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds       = errors.New("invalid email or password")
	ErrDuplicateEmail = errors.New("email already registered")
)

type AuthService struct {
	Store *store.Store
}

// Signup registers the user and signs them in, persisting both the
// users and the session record.
func (s *AuthService) Signup(name, email, password, role string) (domain.Session, error) {
	email = NormalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return domain.Session{}, err
	}
	u := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Store.AddUser(u); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return domain.Session{}, ErrDuplicateEmail
		}
		return domain.Session{}, err
	}
	sess := domain.SessionOf(u)
	if err := s.Store.SetSession(&sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Login verifies credentials and replaces the session record. Unknown
// email and wrong password come back as the same error.
func (s *AuthService) Login(email, password string) (domain.Session, error) {
	u, ok := s.Store.UserByEmail(NormalizeEmail(email))
	if !ok {
		return domain.Session{}, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, ErrBadCreds
	}
	sess := domain.SessionOf(u)
	if err := s.Store.SetSession(&sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *AuthService) Logout() error {
	return s.Store.SetSession(nil)
}

func (s *AuthService) Current() *domain.Session {
	return s.Store.Session()
}

// NormalizeEmail is the canonical lookup form: trimmed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
