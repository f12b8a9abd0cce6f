package domain

import "time"

// IssueEventType identifies a lifecycle change recorded in the activity feed.
type IssueEventType string

const (
	EventIssueCreated  IssueEventType = "issue_created"
	EventStatusChanged IssueEventType = "status_changed"
	EventIssueDeleted  IssueEventType = "issue_deleted"
)

// IssueEvent is one entry in an issue's activity trail.
type IssueEvent struct {
	ID        string
	IssueID   string
	Type      IssueEventType
	Status    IssueStatus
	Actor     string
	Timestamp time.Time
}
