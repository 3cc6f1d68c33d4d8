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

const defaultPageSize = 5

// JobListCache abstracts the listing cache (Redis). A nil cache disables
// caching entirely; cache failures never fail the request.
type JobListCache interface {
	Get(ctx context.Context, in ports.ListJobsInput) (*ports.JobPage, error)
	Set(ctx context.Context, in ports.ListJobsInput, page *ports.JobPage) error
	Invalidate(ctx context.Context) error
}

// JobService implements job posting CRUD with ownership enforcement.
type JobService struct {
	jobs  ports.JobRepository
	users ports.UserRepository
	cache JobListCache
	log   zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, cache JobListCache, log zerolog.Logger) *JobService {
	return &JobService{
		jobs:  jobs,
		users: users,
		cache: cache,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// ListJobs is an unauthenticated read. Page and PageSize are coerced before
// the repository or the cache sees them, so every equivalent query shares
// one cache key.
func (s *JobService) ListJobs(ctx context.Context, in ports.ListJobsInput) (*ports.JobPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 {
		in.PageSize = defaultPageSize
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, in)
		if err != nil {
			s.log.Warn().Err(err).Msg("job list cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	items, total, err := s.jobs.List(ctx, ports.ListJobsFilter{
		Location: in.Location,
		JobType:  in.JobType,
		Page:     in.Page,
		PageSize: in.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	page := &ports.JobPage{
		Items:      items,
		TotalItems: total,
		Page:       in.Page,
		PageSize:   in.PageSize,
		TotalPages: totalPages(total, in.PageSize),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, in, page); err != nil {
			s.log.Warn().Err(err).Msg("job list cache write failed")
		}
	}
	return page, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) ListJobsByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	return s.jobs.ListByEmployer(ctx, employerID)
}

// CreateJob validates the payload, requires the actor to be an employer, and
// forces ownership to the actor regardless of caller input.
func (s *JobService) CreateJob(ctx context.Context, in ports.JobInput, actorID string) (*domain.Job, error) {
	if err := validateJobInput(in); err != nil {
		return nil, err
	}
	if err := s.requireEmployer(ctx, actorID, "only employers can create jobs"); err != nil {
		return nil, err
	}

	postedAt := in.PostedAt
	if postedAt.IsZero() {
		postedAt = s.now()
	}
	job := &domain.Job{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		JobType:     in.JobType,
		Category:    in.Category,
		PostedAt:    postedAt,
		ExpiresAt:   in.ExpiresAt,
		EmployerID:  actorID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.invalidateCache(ctx)
	s.log.Info().Str("job_id", job.ID).Str("employer_id", actorID).Msg("job created")
	return job, nil
}

// UpdateJob applies the same validation and role check as CreateJob, then
// reports (false, nil) when the job is absent or owned by someone else — the
// two cases are deliberately indistinguishable. Ownership is never
// transferable: the employer id is re-forced to the actor.
func (s *JobService) UpdateJob(ctx context.Context, id string, in ports.JobInput, actorID string) (bool, error) {
	if err := validateJobInput(in); err != nil {
		return false, err
	}
	if err := s.requireEmployer(ctx, actorID, "only employers can update jobs"); err != nil {
		return false, err
	}

	existing, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return false, nil
		}
		return false, err
	}
	if existing.EmployerID != actorID {
		return false, nil
	}

	postedAt := in.PostedAt
	if postedAt.IsZero() {
		postedAt = existing.PostedAt
	}
	job := &domain.Job{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		JobType:     in.JobType,
		Category:    in.Category,
		PostedAt:    postedAt,
		ExpiresAt:   in.ExpiresAt,
		EmployerID:  actorID,
	}
	updated, err := s.jobs.Update(ctx, id, job)
	if err != nil {
		return false, err
	}
	if updated {
		s.invalidateCache(ctx)
	}
	return updated, nil
}

// DeleteJob raises ErrForbidden when the job is absent or not owned by the
// actor. Update reports the same condition as a negative result instead;
// both shapes are part of the contract.
func (s *JobService) DeleteJob(ctx context.Context, id, actorID string) error {
	if err := s.requireEmployer(ctx, actorID, "only employers can delete jobs"); err != nil {
		return err
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrJobNotFound) {
		return err
	}
	if job == nil || job.EmployerID != actorID {
		return fmt.Errorf("%w: job not found or not owned by this employer", domain.ErrForbidden)
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	s.invalidateCache(ctx)
	s.log.Info().Str("job_id", id).Str("employer_id", actorID).Msg("job deleted")
	return nil
}

func (s *JobService) requireEmployer(ctx context.Context, actorID, reason string) error {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrForbidden, reason)
		}
		return err
	}
	if user.Role != domain.RoleEmployer {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, reason)
	}
	return nil
}

func (s *JobService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("job list cache invalidation failed")
	}
}

func validateJobInput(in ports.JobInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: job title is required", domain.ErrInvalidInput)
	}
	if in.Description == "" {
		return fmt.Errorf("%w: job description is required", domain.ErrInvalidInput)
	}
	if !domain.ValidJobType(in.JobType) {
		return fmt.Errorf("%w: job type must be %q, %q, or %q",
			domain.ErrInvalidInput, domain.JobTypeRemote, domain.JobTypeFullTime, domain.JobTypePartTime)
	}
	return nil
}

// totalPages implements the page contract: ceil(total / pageSize), zero when
// there are no items.
func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
