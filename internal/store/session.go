package store

import (
	"encoding/json"

	"pocketmart/internal/domain"
)

// SetSession replaces the signed-in user record. Passing nil logs out:
// the record is deleted rather than overwritten with an empty object.
func (s *Store) SetSession(sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = sess
	if sess == nil {
		return s.deleteRecord(recSession)
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.putRecord(recSession, b)
}

// Session returns a copy of the current session, or nil when nobody is
// signed in.
func (s *Store) Session() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}
