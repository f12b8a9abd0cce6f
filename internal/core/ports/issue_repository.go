package ports

import (
	"context"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// IssueRepository defines persistence operations for issues.
type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) (*domain.Issue, error)
	FindByID(ctx context.Context, id string) (*domain.Issue, error)
	// FindAll returns every issue, newest first.
	FindAll(ctx context.Context) ([]*domain.Issue, error)
	// FindByReporter returns the issues submitted by reporterID, newest first.
	FindByReporter(ctx context.Context, reporterID string) ([]*domain.Issue, error)
	UpdateStatus(ctx context.Context, id string, status domain.IssueStatus) (*domain.Issue, error)
	Delete(ctx context.Context, id string) error
}
