package ports

import "context"

// RegisterInput carries the fields needed to create a citizen account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput carries a login attempt's credentials.
type LoginInput struct {
	Username string
	Password string
}

// AuthResult is returned by both registration (auto-login) and login.
type AuthResult struct {
	Token    string
	Username string
	Role     string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}
