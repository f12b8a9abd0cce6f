package ports

import (
	"context"
	"time"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// IssueEventInput is the DTO handed to the activity pipeline when an issue
// changes state.
type IssueEventInput struct {
	IssueID   string
	Type      domain.IssueEventType
	Status    domain.IssueStatus
	Actor     string
	Timestamp time.Time
}

// ActivityService processes issue lifecycle events from the dispatcher.
type ActivityService interface {
	Process(ctx context.Context, event IssueEventInput) error
}

// EventSink accepts lifecycle events for asynchronous recording. Services
// publish through it without waiting on persistence.
type EventSink interface {
	Record(event IssueEventInput)
}
