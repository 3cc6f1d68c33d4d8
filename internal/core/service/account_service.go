package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

// AccountService implements registration, authentication and profile CRUD.
type AccountService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewAccountService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Register creates a single account and returns its new id.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return "", fmt.Errorf("%w: email, password, and full name are required", domain.ErrInvalidInput)
	}
	if !domain.ValidRole(in.Role) {
		return "", fmt.Errorf("%w: role must be %q or %q", domain.ErrInvalidInput, domain.RoleCandidate, domain.RoleEmployer)
	}

	taken, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	if taken {
		return "", domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:           s.newID(),
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return user.ID, nil
}

// Login verifies credentials against the stored hash. An unknown email and a
// wrong password collapse into the same ErrInvalidCredentials so callers
// cannot probe which emails are registered.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// UpdateUser replaces the profile. Returns (false, nil) when the account does
// not exist; uniqueness is re-checked only for fields that actually changed.
func (s *AccountService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (bool, error) {
	if in.FullName == "" {
		return false, fmt.Errorf("%w: full name is required", domain.ErrInvalidInput)
	}
	if in.Email == "" {
		return false, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if !domain.ValidRole(in.Role) {
		return false, fmt.Errorf("%w: role must be %q or %q", domain.ErrInvalidInput, domain.RoleCandidate, domain.RoleEmployer)
	}

	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if in.FullName != existing.FullName {
		taken, err := s.users.ExistsByFullName(ctx, in.FullName)
		if err != nil {
			return false, err
		}
		if taken {
			return false, domain.ErrUsernameTaken
		}
	}
	if in.Email != existing.Email {
		taken, err := s.users.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return false, err
		}
		if taken {
			return false, domain.ErrEmailTaken
		}
	}

	passwordHash := existing.PasswordHash
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}
		passwordHash = string(hash)
	}

	updated := &domain.User{
		ID:           id,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: passwordHash,
		Role:         in.Role,
		CreatedAt:    existing.CreatedAt,
	}
	return s.users.Update(ctx, id, updated)
}

// DeleteUser removes the account. No actor check happens at this layer.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// BulkRegister creates accounts one by one and stops at the first failure.
// The batch is not atomic: entries written before the failing one stay
// persisted. The ids created so far are returned alongside the error.
func (s *AccountService) BulkRegister(ctx context.Context, entries []ports.RegisterInput) ([]string, error) {
	created := make([]string, 0, len(entries))
	for i, in := range entries {
		if in.FullName == "" {
			return created, fmt.Errorf("entry %d: %w: full name is required", i, domain.ErrInvalidInput)
		}
		if in.Email == "" {
			return created, fmt.Errorf("entry %d: %w: email is required", i, domain.ErrInvalidInput)
		}
		if in.Password == "" {
			return created, fmt.Errorf("entry %d: %w: password is required", i, domain.ErrInvalidInput)
		}
		if !domain.ValidRole(in.Role) {
			return created, fmt.Errorf("entry %d: %w: role must be %q or %q", i, domain.ErrInvalidInput, domain.RoleCandidate, domain.RoleEmployer)
		}

		taken, err := s.users.ExistsByFullName(ctx, in.FullName)
		if err != nil {
			return created, err
		}
		if taken {
			return created, fmt.Errorf("entry %d (%s): %w", i, in.FullName, domain.ErrUsernameTaken)
		}
		taken, err = s.users.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return created, err
		}
		if taken {
			return created, fmt.Errorf("entry %d (%s): %w", i, in.Email, domain.ErrEmailTaken)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}
		user := &domain.User{
			ID:           s.newID(),
			Email:        in.Email,
			FullName:     in.FullName,
			PasswordHash: string(hash),
			Role:         in.Role,
			CreatedAt:    s.now(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return created, fmt.Errorf("entry %d: %w", i, err)
		}
		created = append(created, user.ID)
	}

	s.log.Info().Int("count", len(created)).Msg("bulk registration completed")
	return created, nil
}

func (s *AccountService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  s.now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
