package handler

import "time"

type createIssueRequest struct {
	Title       string   `json:"title"       validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Latitude    *float64 `json:"latitude"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude"   validate:"omitempty,gte=-180,lte=180"`
	ImageURL    string   `json:"image_url"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS RESOLVED REJECTED"`
}

type issueResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	SubmittedBy string    `json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type issueEventResponse struct {
	Type      string    `json:"type"`
	Status    string    `json:"status,omitempty"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}
