package domain

import "time"

// IssueStatus represents the triage state of a reported issue.
type IssueStatus string

const (
	StatusPending    IssueStatus = "PENDING"
	StatusInProgress IssueStatus = "IN_PROGRESS"
	StatusResolved   IssueStatus = "RESOLVED"
	StatusRejected   IssueStatus = "REJECTED"
)

// knownStatuses is the closed set an administrator may assign.
var knownStatuses = map[IssueStatus]struct{}{
	StatusPending:    {},
	StatusInProgress: {},
	StatusResolved:   {},
	StatusRejected:   {},
}

// IsValid reports whether s is one of the known triage states.
func (s IssueStatus) IsValid() bool {
	_, ok := knownStatuses[s]
	return ok
}

// Coordinates is an optional geographic point attached to an issue.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Issue is a citizen-reported municipal problem.
type Issue struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Category         string       `json:"category"`
	Status           IssueStatus  `json:"status"`
	Location         *Coordinates `json:"location,omitempty"`
	ImageURL         string       `json:"image_url,omitempty"`
	ReporterID       string       `json:"-"`
	ReporterUsername string       `json:"submitted_by"`
	CreatedAt        time.Time    `json:"created_at"`
}
