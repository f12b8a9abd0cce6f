package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

type activityService struct {
	events ports.EventRepository
	log    zerolog.Logger
}

// NewActivityService returns the ActivityService implementation backing the
// issue activity trail.
func NewActivityService(events ports.EventRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{events: events, log: log}
}

// Process persists a single issue lifecycle event.
func (s *activityService) Process(ctx context.Context, in ports.IssueEventInput) error {
	event := &domain.IssueEvent{
		IssueID:   in.IssueID,
		Type:      in.Type,
		Status:    in.Status,
		Actor:     in.Actor,
		Timestamp: in.Timestamp,
	}
	if err := s.events.Append(ctx, event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("issue_id", in.IssueID).
		Str("type", string(in.Type)).
		Msg("activity recorded")

	return nil
}
