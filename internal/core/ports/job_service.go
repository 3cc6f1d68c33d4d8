package ports

import (
	"context"
	"time"

	"github.com/jobboard/jobboard-api/internal/core/domain"
)

// JobInput is the full-replace job payload. PostedAt is server-stamped when
// zero. Any employer id supplied by the caller is ignored: ownership always
// comes from the acting user.
type JobInput struct {
	Title       string
	Description string
	Location    string
	JobType     string
	Category    string
	PostedAt    time.Time
	ExpiresAt   *time.Time
}

// ListJobsInput carries the public listing parameters.
type ListJobsInput struct {
	Location string
	JobType  string
	Page     int
	PageSize int
}

// JobPage is the page contract returned by listing operations:
// TotalPages = ceil(TotalItems / PageSize), zero when there are no items.
type JobPage struct {
	Items      []*domain.Job
	TotalItems int64
	Page       int
	PageSize   int
	TotalPages int
}

// JobService covers job posting CRUD with employer-ownership enforcement.
type JobService interface {
	ListJobs(ctx context.Context, in ListJobsInput) (*JobPage, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListJobsByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
	CreateJob(ctx context.Context, in JobInput, actorID string) (*domain.Job, error)
	// UpdateJob returns false (no error) when the job does not exist or is
	// not owned by actorID; the two cases are not distinguished.
	UpdateJob(ctx context.Context, id string, in JobInput, actorID string) (bool, error)
	// DeleteJob fails with domain.ErrForbidden when the job does not exist
	// or is not owned by actorID.
	DeleteJob(ctx context.Context, id, actorID string) error
}
