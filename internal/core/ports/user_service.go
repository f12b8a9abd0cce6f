package ports

import (
	"context"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// UserProfile is the safe projection of an account returned to its owner.
type UserProfile struct {
	ID       string
	Username string
	Email    string
	Role     string
}

// UserService exposes self-service profile operations for the
// authenticated user.
type UserService interface {
	Profile(ctx context.Context, principal *domain.Principal) (*UserProfile, error)
	UpdateEmail(ctx context.Context, principal *domain.Principal, email string) (*UserProfile, error)
	// Delete removes the account along with all issues the user reported
	// and any image files attached to them.
	Delete(ctx context.Context, principal *domain.Principal) error
}
