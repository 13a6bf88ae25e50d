package domain

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"` // stored normalized: trimmed + lowercased
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"` // buyer | seller
}

// Session is the reduced view of a User held while someone is logged in.
// It is persisted as its own record, separate from the users collection.
type Session struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// SessionOf derives the session record for a user.
func SessionOf(u User) Session {
	return Session{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
