package ports

import (
	"context"
	"time"

	"github.com/jobboard/jobboard-api/internal/core/domain"
)

// ApplicationInput is the full-replace application payload. AppliedAt is
// server-stamped when zero. UserID from the payload is never persisted as
// the owner; it only participates in the duplicate pre-check on update.
type ApplicationInput struct {
	UserID      string
	JobID       string
	CoverLetter string
	AppliedAt   time.Time
}

// ApplicationPage is the page contract for the application listing.
type ApplicationPage struct {
	Items      []*domain.Application
	TotalItems int64
	Page       int
	PageSize   int
	TotalPages int
}

// ApplicationService covers application CRUD with dual ownership rules: the
// candidate owns the application, the employer owns the job it targets.
type ApplicationService interface {
	ListApplications(ctx context.Context, page, pageSize int) (*ApplicationPage, error)
	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	// ListByJob is restricted to the employer who posted the job.
	ListByJob(ctx context.Context, jobID, actorID string) ([]*domain.Application, error)
	// ListByUser returns the acting candidate's own applications.
	ListByUser(ctx context.Context, actorID string) ([]*domain.Application, error)
	CreateApplication(ctx context.Context, in ApplicationInput, actorID string) (*domain.Application, error)
	// UpdateApplication returns false (no error) when the application does
	// not exist or is not owned by actorID.
	UpdateApplication(ctx context.Context, id string, in ApplicationInput, actorID string) (bool, error)
	// DeleteApplication fails with domain.ErrForbidden when the application
	// does not exist or is not owned by actorID.
	DeleteApplication(ctx context.Context, id, actorID string) error
}
