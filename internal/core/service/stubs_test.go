package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	users map[string]*domain.User
	err   error // if set, every call returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByFullName(_ context.Context, fullName string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if u.FullName == fullName {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) CreateBatch(_ context.Context, users []*domain.User) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range users {
		r.users[u.ID] = cloneUser(u)
	}
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, user *domain.User) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	r.users[id] = cloneUser(user)
	return true, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.users, id)
	return nil
}

// seedUser inserts a user directly, bypassing the service.
func (r *stubUserRepo) seedUser(id, email, fullName, role string) *domain.User {
	u := &domain.User{
		ID:        id,
		Email:     email,
		FullName:  fullName,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	r.users[id] = u
	return u
}

type stubJobRepo struct {
	jobs map[string]*domain.Job
	err  error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	clone := *j
	return &clone
}

// List mirrors the real repository: exact-match filters, posted_at
// descending, skip/limit paging.
func (r *stubJobRepo) List(_ context.Context, f ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}

	var matched []*domain.Job
	for _, j := range r.jobs {
		if f.Location != "" && j.Location != f.Location {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		matched = append(matched, cloneJob(j))
	}
	sort.Slice(matched, func(i, k int) bool {
		return matched[i].PostedAt.After(matched[k].PostedAt)
	})

	total := int64(len(matched))
	skip := (f.Page - 1) * f.PageSize
	if skip >= len(matched) {
		return []*domain.Job{}, total, nil
	}
	end := skip + f.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	if r.err != nil {
		return nil, r.err
	}
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return cloneJob(j), nil
}

func (r *stubJobRepo) ListByEmployer(_ context.Context, employerID string) ([]*domain.Job, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, cloneJob(j))
		}
	}
	return out, nil
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	if r.err != nil {
		return r.err
	}
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *stubJobRepo) Update(_ context.Context, id string, job *domain.Job) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.jobs[id]; !ok {
		return false, nil
	}
	r.jobs[id] = cloneJob(job)
	return true, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) seedJob(id, employerID, title string, postedAt time.Time) *domain.Job {
	j := &domain.Job{
		ID:          id,
		Title:       title,
		Description: "desc",
		JobType:     domain.JobTypeRemote,
		PostedAt:    postedAt,
		EmployerID:  employerID,
	}
	r.jobs[id] = j
	return j
}

type stubApplicationRepo struct {
	apps map[string]*domain.Application
	err  error
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.Application)}
}

func cloneApp(a *domain.Application) *domain.Application {
	clone := *a
	return &clone
}

func (r *stubApplicationRepo) List(_ context.Context, page, pageSize int) ([]*domain.Application, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var all []*domain.Application
	for _, a := range r.apps {
		all = append(all, cloneApp(a))
	}
	sort.Slice(all, func(i, k int) bool {
		return all[i].AppliedAt.After(all[k].AppliedAt)
	})

	total := int64(len(all))
	skip := (page - 1) * pageSize
	if skip >= len(all) {
		return []*domain.Application{}, total, nil
	}
	end := skip + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}

func (r *stubApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return cloneApp(a), nil
}

func (r *stubApplicationRepo) ListByJob(_ context.Context, jobID string) ([]*domain.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, cloneApp(a))
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Application
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, cloneApp(a))
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) Exists(_ context.Context, userID, jobID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, a := range r.apps {
		if a.UserID == userID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) error {
	if r.err != nil {
		return r.err
	}
	r.apps[app.ID] = cloneApp(app)
	return nil
}

func (r *stubApplicationRepo) Update(_ context.Context, id string, app *domain.Application) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.apps[id]; !ok {
		return false, nil
	}
	r.apps[id] = cloneApp(app)
	return true, nil
}

func (r *stubApplicationRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.apps, id)
	return nil
}

func (r *stubApplicationRepo) seedApplication(id, userID, jobID string) *domain.Application {
	a := &domain.Application{
		ID:        id,
		UserID:    userID,
		JobID:     jobID,
		AppliedAt: time.Now().UTC(),
	}
	r.apps[id] = a
	return a
}
