package domain

import "time"

// Application links a candidate to a job. The (UserID, JobID) pair is unique:
// a candidate applies to a given job at most once. UserID is always set by
// the service layer from the acting user.
type Application struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	JobID       string    `json:"job_id" bson:"job_id"`
	CoverLetter string    `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	AppliedAt   time.Time `json:"applied_at" bson:"applied_at"`
}
