package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

// UserService implements self-service profile operations.
type UserService struct {
	users  ports.UserRepository
	issues ports.IssueService
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, issues ports.IssueService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, issues: issues, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, principal *domain.Principal) (*ports.UserProfile, error) {
	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

// UpdateEmail changes the account email unless another user already holds it.
func (s *UserService) UpdateEmail(ctx context.Context, principal *domain.Principal, email string) (*ports.UserProfile, error) {
	taken, err := s.users.ExistsByEmailExcept(ctx, email, principal.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}

	user, err := s.users.UpdateEmail(ctx, principal.ID, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", principal.Username).Msg("profile email updated")
	return toProfile(user), nil
}

// Delete removes the account and everything it owns. Issues are deleted
// through the issue service so attached image files go with them.
func (s *UserService) Delete(ctx context.Context, principal *domain.Principal) error {
	owned, err := s.issues.ListMine(ctx, principal)
	if err != nil {
		return err
	}
	for _, issue := range owned {
		if err := s.issues.Delete(ctx, principal, issue.ID); err != nil {
			return err
		}
	}

	if err := s.users.Delete(ctx, principal.ID); err != nil {
		return err
	}

	s.logger.Info().Str("username", principal.Username).Msg("account deleted")
	return nil
}

func toProfile(u *domain.User) *ports.UserProfile {
	return &ports.UserProfile{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}
