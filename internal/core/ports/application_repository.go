package ports

import (
	"context"

	"github.com/jobboard/jobboard-api/internal/core/domain"
)

// ApplicationRepository defines persistence operations for job applications.
// The (user_id, job_id) pair carries a storage-level uniqueness constraint;
// Exists is the in-process pre-check only.
type ApplicationRepository interface {
	List(ctx context.Context, page, pageSize int) ([]*domain.Application, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Application, error)
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	Create(ctx context.Context, app *domain.Application) error
	// Update replaces the stored application. Returns false when no row matched.
	Update(ctx context.Context, id string, app *domain.Application) (bool, error)
	Delete(ctx context.Context, id string) error
}
