package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

// AdminBootstrap describes the administrator account created on first start.
type AdminBootstrap struct {
	Username string
	Email    string
	Password string
}

// EnsureAdmin creates the administrator account when none exists yet.
// Safe to run on every startup; it is a no-op once an admin is present.
// The plaintext password is never logged.
func EnsureAdmin(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, boot AdminBootstrap, log zerolog.Logger) error {
	exists, err := users.ExistsByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if exists {
		log.Debug().Msg("admin user already exists, skipping bootstrap")
		return nil
	}

	hash, err := hasher.Hash(boot.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err := users.Create(ctx, &domain.User{
		Username:     boot.Username,
		Email:        boot.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}

	log.Info().Str("username", boot.Username).Msg("default admin user created")
	return nil
}
