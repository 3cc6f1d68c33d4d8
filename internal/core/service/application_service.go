package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

// ApplicationService implements application CRUD with dual ownership: the
// candidate owns the application, the employer owns the job it targets.
type ApplicationService struct {
	apps  ports.ApplicationRepository
	jobs  ports.JobRepository
	users ports.UserRepository
	log   zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, users ports.UserRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		apps:  apps,
		jobs:  jobs,
		users: users,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *ApplicationService) ListApplications(ctx context.Context, page, pageSize int) (*ports.ApplicationPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	items, total, err := s.apps.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return &ports.ApplicationPage{
		Items:      items,
		TotalItems: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	return s.apps.GetByID(ctx, id)
}

// ListByJob returns a job's applications to the employer who posted it. The
// job's own applicants cannot list this way.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID, actorID string) ([]*domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actorID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if user == nil || user.Role != domain.RoleEmployer || job.EmployerID != actorID {
		return nil, fmt.Errorf("%w: only the employer who posted the job can view its applications", domain.ErrForbidden)
	}

	return s.apps.ListByJob(ctx, jobID)
}

// ListByUser returns the acting candidate's own applications.
func (s *ApplicationService) ListByUser(ctx context.Context, actorID string) ([]*domain.Application, error) {
	if err := s.requireCandidate(ctx, actorID, "only candidates can view their own applications"); err != nil {
		return nil, err
	}
	return s.apps.ListByUser(ctx, actorID)
}

// CreateApplication forces the owning candidate to the actor, discarding any
// caller-supplied identity, and rejects a second application for the same
// (candidate, job) pair.
func (s *ApplicationService) CreateApplication(ctx context.Context, in ports.ApplicationInput, actorID string) (*domain.Application, error) {
	if err := s.requireCandidate(ctx, actorID, "only candidates can apply for jobs"); err != nil {
		return nil, err
	}

	if _, err := s.jobs.GetByID(ctx, in.JobID); err != nil {
		return nil, err
	}

	exists, err := s.apps.Exists(ctx, actorID, in.JobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	appliedAt := in.AppliedAt
	if appliedAt.IsZero() {
		appliedAt = s.now()
	}
	app := &domain.Application{
		ID:          s.newID(),
		UserID:      actorID,
		JobID:       in.JobID,
		CoverLetter: in.CoverLetter,
		AppliedAt:   appliedAt,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.log.Info().Str("application_id", app.ID).Str("job_id", app.JobID).Str("user_id", actorID).Msg("application created")
	return app, nil
}

// UpdateApplication reports (false, nil) when the application is absent or
// owned by another candidate. The duplicate pre-check re-runs only when the
// (candidate, job) pair in the payload differs from the stored one; the
// persisted owner is always re-forced to the actor.
func (s *ApplicationService) UpdateApplication(ctx context.Context, id string, in ports.ApplicationInput, actorID string) (bool, error) {
	if err := s.requireCandidate(ctx, actorID, "only candidates can update their applications"); err != nil {
		return false, err
	}

	existing, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return false, nil
		}
		return false, err
	}
	if existing.UserID != actorID {
		return false, nil
	}

	if _, err := s.jobs.GetByID(ctx, in.JobID); err != nil {
		return false, err
	}

	if existing.JobID != in.JobID || existing.UserID != in.UserID {
		exists, err := s.apps.Exists(ctx, in.UserID, in.JobID)
		if err != nil {
			return false, err
		}
		if exists {
			return false, domain.ErrAlreadyApplied
		}
	}

	appliedAt := in.AppliedAt
	if appliedAt.IsZero() {
		appliedAt = existing.AppliedAt
	}
	app := &domain.Application{
		ID:          id,
		UserID:      actorID,
		JobID:       in.JobID,
		CoverLetter: in.CoverLetter,
		AppliedAt:   appliedAt,
	}
	return s.apps.Update(ctx, id, app)
}

// DeleteApplication raises ErrForbidden when the application is absent or
// not owned by the actor — a different shape than UpdateApplication's
// negative result for the same precondition, kept as documented behavior.
func (s *ApplicationService) DeleteApplication(ctx context.Context, id, actorID string) error {
	if err := s.requireCandidate(ctx, actorID, "only candidates can delete their applications"); err != nil {
		return err
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrApplicationNotFound) {
		return err
	}
	if app == nil || app.UserID != actorID {
		return fmt.Errorf("%w: application not found or not owned by this user", domain.ErrForbidden)
	}

	if err := s.apps.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	s.log.Info().Str("application_id", id).Str("user_id", actorID).Msg("application deleted")
	return nil
}

func (s *ApplicationService) requireCandidate(ctx context.Context, actorID, reason string) error {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrForbidden, reason)
		}
		return err
	}
	if user.Role != domain.RoleCandidate {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, reason)
	}
	return nil
}
