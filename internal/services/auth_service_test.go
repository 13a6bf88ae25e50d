package services_test

import (
	"errors"
	"strings"
	"testing"

	"pocketmart/internal/domain"
	"pocketmart/internal/services"
	"pocketmart/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	st := store.New(db)
	if err := st.Load(); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	st := newStore(t)
	svc := services.AuthService{Store: st}

	sess, err := svc.Signup("Ada", "Ada@Example.com ", "hunter22", domain.RoleSeller)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Email != "ada@example.com" {
		t.Fatalf("want normalized email, got %q", sess.Email)
	}
	if sess.Role != domain.RoleSeller {
		t.Fatalf("want seller role, got %q", sess.Role)
	}

	// Signup signs the user in.
	if cur := svc.Current(); cur == nil || cur.UserID != sess.UserID {
		t.Fatalf("want live session for %s, got %+v", sess.UserID, cur)
	}

	// The stored hash must not be the raw password, and must be bcrypt.
	u, ok := st.UserByEmail("ada@example.com")
	if !ok {
		t.Fatal("user not stored")
	}
	if u.PasswordHash == "hunter22" || !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Fatalf("password not bcrypt-hashed: %q", u.PasswordHash)
	}

	if err := svc.Logout(); err != nil {
		t.Fatal(err)
	}
	if cur := svc.Current(); cur != nil {
		t.Fatalf("want no session after logout, got %+v", cur)
	}

	// Login accepts the original password and sloppy email casing.
	sess2, err := svc.Login("  ADA@example.COM", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if sess2.UserID != sess.UserID {
		t.Fatalf("login resolved wrong user: %+v", sess2)
	}
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	st := newStore(t)
	svc := services.AuthService{Store: st}

	if _, err := svc.Signup("Ada", "ada@example.com", "hunter22", domain.RoleBuyer); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Signup("Imposter", " ADA@EXAMPLE.COM ", "different", domain.RoleSeller)
	if !errors.Is(err, services.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
	if n := len(st.Users()); n != 1 {
		t.Fatalf("want 1 user, got %d", n)
	}
}

func TestAuthService_BadCredentialsLookTheSame(t *testing.T) {
	st := newStore(t)
	svc := services.AuthService{Store: st}

	if _, err := svc.Signup("Ada", "ada@example.com", "hunter22", domain.RoleBuyer); err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatal(err)
	}

	_, errUnknown := svc.Login("nobody@example.com", "hunter22")
	_, errWrongPw := svc.Login("ada@example.com", "wrong")
	if !errors.Is(errUnknown, services.ErrBadCreds) || !errors.Is(errWrongPw, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds for both, got %v / %v", errUnknown, errWrongPw)
	}

	// Neither failure leaves a session behind.
	if cur := svc.Current(); cur != nil {
		t.Fatalf("failed login must not sign in, got %+v", cur)
	}
}
