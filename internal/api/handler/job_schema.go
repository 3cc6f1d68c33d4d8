package handler

import "time"

// --- Request types ---

// jobRequest is the full-replace posting payload used by create and update.
// posted_at and expires_at are optional; a missing posted_at is stamped
// server-side.
type jobRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description" validate:"required"`
	Location    string     `json:"location"`
	JobType     string     `json:"job_type"    validate:"required,oneof=remote full-time part-time"`
	Category    string     `json:"category"`
	PostedAt    time.Time  `json:"posted_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// --- Response types ---

type jobResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location,omitempty"`
	JobType     string     `json:"job_type"`
	Category    string     `json:"category,omitempty"`
	PostedAt    time.Time  `json:"posted_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	EmployerID  string     `json:"employer_id"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listJobsResponse struct {
	Data       []jobResponse      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
