package handler

import "github.com/cityconnect/issue-reporting/internal/core/domain"

func toIssueResponse(issue *domain.Issue) issueResponse {
	resp := issueResponse{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Category:    issue.Category,
		Status:      string(issue.Status),
		ImageURL:    issue.ImageURL,
		SubmittedBy: issue.ReporterUsername,
		CreatedAt:   issue.CreatedAt,
	}
	if issue.Location != nil {
		lat, lng := issue.Location.Lat, issue.Location.Lng
		resp.Latitude, resp.Longitude = &lat, &lng
	}
	return resp
}

func toIssueResponses(issues []*domain.Issue) []issueResponse {
	out := make([]issueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, toIssueResponse(issue))
	}
	return out
}

func toEventResponses(events []*domain.IssueEvent) []issueEventResponse {
	out := make([]issueEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, issueEventResponse{
			Type:      string(e.Type),
			Status:    string(e.Status),
			Actor:     e.Actor,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
