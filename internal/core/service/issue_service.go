package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

// IssueService carries the business logic for reporting and triaging issues.
type IssueService struct {
	repo    ports.IssueRepository
	events  ports.EventRepository
	sink    ports.EventSink
	storage ports.FileStorage
	logger  zerolog.Logger
}

func NewIssueService(repo ports.IssueRepository, events ports.EventRepository, sink ports.EventSink, storage ports.FileStorage, logger zerolog.Logger) *IssueService {
	return &IssueService{repo: repo, events: events, sink: sink, storage: storage, logger: logger}
}

// Create files a new issue linked to the reporting principal. New issues
// always start out PENDING.
func (s *IssueService) Create(ctx context.Context, reporter *domain.Principal, input ports.CreateIssueInput) (*domain.Issue, error) {
	issue := &domain.Issue{
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		Status:           domain.StatusPending,
		ImageURL:         input.ImageURL,
		ReporterID:       reporter.ID,
		ReporterUsername: reporter.Username,
		CreatedAt:        time.Now().UTC(),
	}
	if input.Latitude != nil && input.Longitude != nil {
		issue.Location = &domain.Coordinates{Lat: *input.Latitude, Lng: *input.Longitude}
	}

	created, err := s.repo.Create(ctx, issue)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create issue")
		return nil, err
	}

	s.logger.Info().Str("issue_id", created.ID).Str("reporter", reporter.Username).Msg("issue created")

	s.sink.Record(ports.IssueEventInput{
		IssueID:   created.ID,
		Type:      domain.EventIssueCreated,
		Status:    created.Status,
		Actor:     reporter.Username,
		Timestamp: created.CreatedAt,
	})

	return created, nil
}

func (s *IssueService) ListMine(ctx context.Context, reporter *domain.Principal) ([]*domain.Issue, error) {
	return s.repo.FindByReporter(ctx, reporter.ID)
}

func (s *IssueService) ListAll(ctx context.Context) ([]*domain.Issue, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus moves an issue to a new triage state.
func (s *IssueService) UpdateStatus(ctx context.Context, actor *domain.Principal, id string, status domain.IssueStatus) (*domain.Issue, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("issue_id", id).Str("status", string(status)).Str("actor", actor.Username).Msg("issue status updated")

	s.sink.Record(ports.IssueEventInput{
		IssueID:   id,
		Type:      domain.EventStatusChanged,
		Status:    status,
		Actor:     actor.Username,
		Timestamp: time.Now().UTC(),
	})

	return updated, nil
}

// Delete removes the issue and, best-effort, its attached image file.
func (s *IssueService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	issue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if issue.ImageURL != "" {
		if err := s.storage.Delete(issue.ImageURL); err != nil {
			// The issue still goes away even if the file does not.
			s.logger.Warn().Err(err).Str("image_url", issue.ImageURL).Msg("failed to delete issue image")
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("issue_id", id).Str("actor", actor.Username).Msg("issue deleted")

	s.sink.Record(ports.IssueEventInput{
		IssueID:   id,
		Type:      domain.EventIssueDeleted,
		Actor:     actor.Username,
		Timestamp: time.Now().UTC(),
	})

	return nil
}

// Activity returns the issue's recorded lifecycle events, oldest first.
func (s *IssueService) Activity(ctx context.Context, id string) ([]*domain.IssueEvent, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.events.FindByIssue(ctx, id)
}
