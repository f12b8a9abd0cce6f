package ports

import (
	"context"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByEmailExcept reports whether any user other than id holds email.
	ExistsByEmailExcept(ctx context.Context, email, id string) (bool, error)
	ExistsByRole(ctx context.Context, role string) (bool, error)
	UpdateEmail(ctx context.Context, id, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
