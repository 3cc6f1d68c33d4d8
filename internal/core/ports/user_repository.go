package ports

import (
	"context"

	"github.com/jobboard/jobboard-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Lookups return domain.ErrUserNotFound when no row matches; the uniqueness
// of email and full_name is additionally enforced at the storage layer so
// that concurrent check-then-act races resolve to a single winner.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByFullName(ctx context.Context, fullName string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
	// CreateBatch inserts all users in one storage call. Reserved for an
	// atomic bulk registration; BulkRegister intentionally does not use it.
	CreateBatch(ctx context.Context, users []*domain.User) error
	// Update replaces the stored user. Returns false when no row matched.
	Update(ctx context.Context, id string, user *domain.User) (bool, error)
	Delete(ctx context.Context, id string) error
}
