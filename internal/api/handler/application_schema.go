package handler

import "time"

// --- Request types ---

// applicationRequest is the full-replace application payload. user_id is
// accepted for compatibility but the persisted owner always comes from the
// token; applied_at is stamped server-side when absent.
type applicationRequest struct {
	UserID      string    `json:"user_id"`
	JobID       string    `json:"job_id" validate:"required"`
	CoverLetter string    `json:"cover_letter"`
	AppliedAt   time.Time `json:"applied_at"`
}

// --- Response types ---

type applicationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	JobID       string    `json:"job_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	AppliedAt   time.Time `json:"applied_at"`
}

type listApplicationsResponse struct {
	Data       []applicationResponse `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}
