package ports

import (
	"context"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// EventRepository persists the issue activity trail.
type EventRepository interface {
	Append(ctx context.Context, event *domain.IssueEvent) error
	// FindByIssue returns the issue's events in chronological order.
	FindByIssue(ctx context.Context, issueID string) ([]*domain.IssueEvent, error)
}
