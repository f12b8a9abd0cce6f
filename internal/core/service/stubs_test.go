package service

import (
	"context"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func cloneIssue(i *domain.Issue) *domain.Issue {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

// stubUserRepo is an in-memory ports.UserRepository keyed by user ID.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmailExcept(_ context.Context, email, id string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByRole(_ context.Context, role string) (bool, error) {
	for _, u := range r.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) UpdateEmail(_ context.Context, id, email string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Email = email
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubIssueRepo is an in-memory ports.IssueRepository keyed by issue ID.
type stubIssueRepo struct {
	issues map[string]*domain.Issue
	nextID int
}

func newStubIssueRepo() *stubIssueRepo {
	return &stubIssueRepo{issues: make(map[string]*domain.Issue)}
}

func (r *stubIssueRepo) Create(_ context.Context, issue *domain.Issue) (*domain.Issue, error) {
	r.nextID++
	copy := cloneIssue(issue)
	copy.ID = "issue-" + strconv.Itoa(r.nextID)
	r.issues[copy.ID] = cloneIssue(copy)
	return copy, nil
}

func (r *stubIssueRepo) FindByID(_ context.Context, id string) (*domain.Issue, error) {
	if i, ok := r.issues[id]; ok {
		return cloneIssue(i), nil
	}
	return nil, domain.ErrIssueNotFound
}

func (r *stubIssueRepo) FindAll(_ context.Context) ([]*domain.Issue, error) {
	out := make([]*domain.Issue, 0, len(r.issues))
	for _, i := range r.issues {
		out = append(out, cloneIssue(i))
	}
	return out, nil
}

func (r *stubIssueRepo) FindByReporter(_ context.Context, reporterID string) ([]*domain.Issue, error) {
	var out []*domain.Issue
	for _, i := range r.issues {
		if i.ReporterID == reporterID {
			out = append(out, cloneIssue(i))
		}
	}
	return out, nil
}

func (r *stubIssueRepo) UpdateStatus(_ context.Context, id string, status domain.IssueStatus) (*domain.Issue, error) {
	i, ok := r.issues[id]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	i.Status = status
	return cloneIssue(i), nil
}

func (r *stubIssueRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.issues[id]; !ok {
		return domain.ErrIssueNotFound
	}
	delete(r.issues, id)
	return nil
}

// stubEventRepo collects appended events in order.
type stubEventRepo struct {
	events []*domain.IssueEvent
}

func (r *stubEventRepo) Append(_ context.Context, event *domain.IssueEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *stubEventRepo) FindByIssue(_ context.Context, issueID string) ([]*domain.IssueEvent, error) {
	var out []*domain.IssueEvent
	for _, e := range r.events {
		if e.IssueID == issueID {
			out = append(out, e)
		}
	}
	return out, nil
}

// stubSink records events synchronously, standing in for the dispatcher.
type stubSink struct {
	recorded []ports.IssueEventInput
}

func (s *stubSink) Record(event ports.IssueEventInput) {
	s.recorded = append(s.recorded, event)
}

// stubStorage remembers which web paths were deleted.
type stubStorage struct {
	deleted []string
}

func (s *stubStorage) Store(string, io.Reader) (string, error) {
	return "/media/stub", nil
}

func (s *stubStorage) Delete(webPath string) error {
	s.deleted = append(s.deleted, webPath)
	return nil
}
