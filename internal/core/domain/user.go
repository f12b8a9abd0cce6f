package domain

import "time"

// Role strings carry the ROLE_ prefix so they line up directly with the
// role matching done by the API authorization policy.
const (
	RoleCitizen = "ROLE_CITIZEN"
	RoleAdmin   = "ROLE_ADMIN"
)

// User is the persistence-layer account record. The password hash never
// leaves this layer; request handling works with Principal instead.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the narrow identity view attached to a request after a
// bearer token resolves to a known account.
type Principal struct {
	ID       string
	Username string
	Role     string
}

// Principal derives the request-scoped identity view of the user.
func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, Username: u.Username, Role: u.Role}
}
