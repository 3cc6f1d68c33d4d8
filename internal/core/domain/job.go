package domain

import "time"

const (
	JobTypeRemote   = "remote"
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
)

// ValidJobType reports whether jobType is an accepted posting type.
func ValidJobType(jobType string) bool {
	switch jobType {
	case JobTypeRemote, JobTypeFullTime, JobTypePartTime:
		return true
	}
	return false
}

// Job is a posting owned by an employer. EmployerID is always set by the
// service layer from the acting user, never from caller input.
type Job struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	JobType     string     `json:"job_type" bson:"job_type"`
	Category    string     `json:"category,omitempty" bson:"category,omitempty"`
	PostedAt    time.Time  `json:"posted_at" bson:"posted_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	EmployerID  string     `json:"employer_id" bson:"employer_id"`
}
