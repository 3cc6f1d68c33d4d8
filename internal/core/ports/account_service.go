package ports

import (
	"context"

	"github.com/jobboard/jobboard-api/internal/core/domain"
)

// RegisterInput carries the data needed to create one account.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
	Role     string
}

// UpdateUserInput is the full-replace profile payload. Password is optional:
// when empty the stored hash is retained.
type UpdateUserInput struct {
	Email    string
	FullName string
	Password string
	Role     string
}

// AccountService covers registration, authentication and profile CRUD.
// Every mutating call takes its inputs explicitly; there is no ambient
// session state.
type AccountService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// Register creates one account and returns its new id.
	Register(ctx context.Context, in RegisterInput) (string, error)
	// Login verifies credentials and returns a signed token plus the
	// authenticated user. Unknown email and wrong password yield the same
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// UpdateUser replaces the profile. Returns false (no error) when the
	// account does not exist.
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (bool, error)
	// DeleteUser removes the account unconditionally.
	DeleteUser(ctx context.Context, id string) error
	// BulkRegister processes entries in order and stops at the first
	// failure. The batch is not atomic: accounts created before the failing
	// entry remain persisted. Returns the ids created so far.
	BulkRegister(ctx context.Context, entries []RegisterInput) ([]string, error)
}
