package ports

import (
	"context"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// CreateIssueInput carries all data needed to report a new issue.
type CreateIssueInput struct {
	Title       string
	Description string
	Category    string
	Latitude    *float64
	Longitude   *float64
	ImageURL    string
}

// IssueService defines use-case operations for issue reporting and triage.
type IssueService interface {
	// Create files a new issue on behalf of the reporting principal.
	Create(ctx context.Context, reporter *domain.Principal, input CreateIssueInput) (*domain.Issue, error)
	// ListMine returns the reporter's own issues, newest first.
	ListMine(ctx context.Context, reporter *domain.Principal) ([]*domain.Issue, error)
	// ListAll returns every issue for administrative triage, newest first.
	ListAll(ctx context.Context) ([]*domain.Issue, error)
	UpdateStatus(ctx context.Context, actor *domain.Principal, id string, status domain.IssueStatus) (*domain.Issue, error)
	// Delete removes the issue and its attached image file, if any.
	Delete(ctx context.Context, actor *domain.Principal, id string) error
	// Activity returns the issue's recorded lifecycle events in order.
	Activity(ctx context.Context, id string) ([]*domain.IssueEvent, error)
}
