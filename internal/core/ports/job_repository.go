package ports

import (
	"context"

	"github.com/jobboard/jobboard-api/internal/core/domain"
)

// ListJobsFilter carries the query parameters for the public job listing.
// Filters are exact-match when non-empty. Page is 1-based; the service layer
// coerces both paging values before the repository sees them.
type ListJobsFilter struct {
	Location string
	JobType  string
	Page     int
	PageSize int
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	// List returns a page of jobs matching filter, ordered by posted_at
	// descending, and the total count of matching rows.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
	// Update replaces the stored job. Returns false when no row matched.
	Update(ctx context.Context, id string, job *domain.Job) (bool, error)
	Delete(ctx context.Context, id string) error
}
