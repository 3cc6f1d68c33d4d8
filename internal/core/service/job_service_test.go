package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobboard/jobboard-api/internal/core/domain"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

func newJobService(jobs *stubJobRepo, users *stubUserRepo) *JobService {
	return NewJobService(jobs, users, nil, discardLogger)
}

func jobInput(title string) ports.JobInput {
	return ports.JobInput{
		Title:       title,
		Description: "We are hiring",
		Location:    "Berlin",
		JobType:     domain.JobTypeFullTime,
	}
}

// ---------------------------------------------------------------------------
// CreateJob
// ---------------------------------------------------------------------------

func TestJobService_Create_Success(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	svc := newJobService(jobs, users)

	job, err := svc.CreateJob(context.Background(), jobInput("Backend Engineer"), "emp1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if job.ID == "" {
		t.Fatal("expected generated id")
	}
	if job.EmployerID != "emp1" {
		t.Errorf("employer id must be the actor, got %q", job.EmployerID)
	}
	if job.PostedAt.IsZero() {
		t.Error("PostedAt must be stamped when absent")
	}
	if _, ok := jobs.jobs[job.ID]; !ok {
		t.Fatal("job not persisted")
	}
}

func TestJobService_Create_InvalidJobType(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	svc := newJobService(jobs, users)

	in := jobInput("Backend Engineer")
	in.JobType = "contractor"
	if _, err := svc.CreateJob(context.Background(), in, "emp1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(jobs.jobs) != 0 {
		t.Errorf("no job may be persisted, got %d", len(jobs.jobs))
	}
}

func TestJobService_Create_RequiresTitleAndDescription(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	svc := newJobService(jobs, users)

	in := jobInput("")
	if _, err := svc.CreateJob(context.Background(), in, "emp1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty title: expected ErrInvalidInput, got %v", err)
	}

	in = jobInput("Backend Engineer")
	in.Description = ""
	if _, err := svc.CreateJob(context.Background(), in, "emp1"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty description: expected ErrInvalidInput, got %v", err)
	}
}

func TestJobService_Create_CandidateForbidden(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("cand1", "c@x.com", "Cleo", domain.RoleCandidate)
	svc := newJobService(jobs, users)

	if _, err := svc.CreateJob(context.Background(), jobInput("Backend Engineer"), "cand1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for candidate actor, got %v", err)
	}
}

func TestJobService_Create_UnknownActorForbidden(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	svc := newJobService(jobs, users)

	if _, err := svc.CreateJob(context.Background(), jobInput("Backend Engineer"), "ghost"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unknown actor, got %v", err)
	}
}

func TestJobService_Create_IgnoresCallerPostedAtWhenSet(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	svc := newJobService(jobs, users)

	supplied := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := jobInput("Backend Engineer")
	in.PostedAt = supplied

	job, err := svc.CreateJob(context.Background(), in, "emp1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !job.PostedAt.Equal(supplied) {
		t.Errorf("a supplied posting time must be kept, got %v", job.PostedAt)
	}
}

// ---------------------------------------------------------------------------
// UpdateJob
// ---------------------------------------------------------------------------

func TestJobService_Update_NotOwnerReturnsFalse(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e1@x.com", "Acme", domain.RoleEmployer)
	users.seedUser("emp2", "e2@x.com", "Initech", domain.RoleEmployer)
	seeded := jobs.seedJob("j1", "emp1", "Backend Engineer", time.Now().UTC())
	svc := newJobService(jobs, users)

	updated, err := svc.UpdateJob(context.Background(), "j1", jobInput("Hijacked"), "emp2")
	if err != nil {
		t.Fatalf("expected silent negative result, got error: %v", err)
	}
	if updated {
		t.Fatal("expected false for non-owner")
	}
	if jobs.jobs["j1"].Title != seeded.Title {
		t.Error("stored job must be unchanged")
	}
}

func TestJobService_Update_MissingJobReturnsFalse(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	svc := newJobService(jobs, users)

	updated, err := svc.UpdateJob(context.Background(), "missing", jobInput("Whatever"), "emp1")
	if err != nil {
		t.Fatalf("expected silent negative result, got error: %v", err)
	}
	if updated {
		t.Fatal("expected false for missing job")
	}
}

func TestJobService_Update_OwnerSucceedsAndKeepsOwnership(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	jobs.seedJob("j1", "emp1", "Backend Engineer", time.Now().UTC())
	svc := newJobService(jobs, users)

	updated, err := svc.UpdateJob(context.Background(), "j1", jobInput("Senior Backend Engineer"), "emp1")
	if err != nil || !updated {
		t.Fatalf("update failed: updated=%v err=%v", updated, err)
	}
	stored := jobs.jobs["j1"]
	if stored.Title != "Senior Backend Engineer" {
		t.Errorf("title not replaced: %q", stored.Title)
	}
	if stored.EmployerID != "emp1" {
		t.Errorf("ownership must stay with the actor, got %q", stored.EmployerID)
	}
}

func TestJobService_Update_CandidateForbidden(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("cand1", "c@x.com", "Cleo", domain.RoleCandidate)
	jobs.seedJob("j1", "emp1", "Backend Engineer", time.Now().UTC())
	svc := newJobService(jobs, users)

	if _, err := svc.UpdateJob(context.Background(), "j1", jobInput("X"), "cand1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// DeleteJob
// ---------------------------------------------------------------------------

func TestJobService_Delete_NotOwnerForbidden(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e1@x.com", "Acme", domain.RoleEmployer)
	users.seedUser("emp2", "e2@x.com", "Initech", domain.RoleEmployer)
	jobs.seedJob("j1", "emp1", "Backend Engineer", time.Now().UTC())
	svc := newJobService(jobs, users)

	// Unlike update, delete surfaces the ownership violation as an error.
	if err := svc.DeleteJob(context.Background(), "j1", "emp2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := jobs.jobs["j1"]; !ok {
		t.Fatal("job must remain retrievable")
	}
}

func TestJobService_Delete_OwnerSucceeds(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	jobs.seedJob("j1", "emp1", "Backend Engineer", time.Now().UTC())
	svc := newJobService(jobs, users)

	if err := svc.DeleteJob(context.Background(), "j1", "emp1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := jobs.jobs["j1"]; ok {
		t.Fatal("job must be removed")
	}
}

func TestJobService_Delete_MissingJobForbidden(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	svc := newJobService(jobs, users)

	if err := svc.DeleteJob(context.Background(), "missing", "emp1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for missing job, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListJobs
// ---------------------------------------------------------------------------

func TestJobService_List_CoercesPaging(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	svc := newJobService(jobs, users)

	page, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Page: 0, PageSize: 0})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 {
		t.Errorf("page: expected 1, got %d", page.Page)
	}
	if page.PageSize != 5 {
		t.Errorf("page size: expected default 5, got %d", page.PageSize)
	}
	if page.TotalPages != 0 {
		t.Errorf("total pages must be 0 when empty, got %d", page.TotalPages)
	}
}

func TestJobService_List_PaginationMath(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	svc := newJobService(jobs, users)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		jobs.seedJob(string(rune('a'+i)), "emp1", "Job", base.Add(time.Duration(i)*time.Hour))
	}

	page, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalItems != 7 {
		t.Errorf("total: expected 7, got %d", page.TotalItems)
	}
	if page.TotalPages != 3 {
		t.Errorf("total pages: expected ceil(7/3)=3, got %d", page.TotalPages)
	}
	if len(page.Items) != 3 {
		t.Fatalf("items: expected 3, got %d", len(page.Items))
	}
	// Most recent first.
	if !page.Items[0].PostedAt.After(page.Items[1].PostedAt) {
		t.Error("items must be ordered by posting time, most recent first")
	}
}

func TestJobService_List_ExactMatchFilters(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	svc := newJobService(jobs, users)

	now := time.Now().UTC()
	j1 := jobs.seedJob("j1", "emp1", "Job A", now)
	j1.Location = "Berlin"
	j1.JobType = domain.JobTypeRemote
	j2 := jobs.seedJob("j2", "emp1", "Job B", now)
	j2.Location = "Paris"
	j2.JobType = domain.JobTypeFullTime

	page, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Location: "Berlin", Page: 1, PageSize: 5})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalItems != 1 || page.Items[0].ID != "j1" {
		t.Errorf("location filter: expected only j1, got %+v", page.Items)
	}

	page, err = svc.ListJobs(context.Background(), ports.ListJobsInput{JobType: domain.JobTypeFullTime, Page: 1, PageSize: 5})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.TotalItems != 1 || page.Items[0].ID != "j2" {
		t.Errorf("job type filter: expected only j2, got %+v", page.Items)
	}
}

// fakeJobCache records interactions for cache behaviour tests.
type fakeJobCache struct {
	pages       map[ports.ListJobsInput]*ports.JobPage
	invalidated int
	getErr      error
}

func newFakeJobCache() *fakeJobCache {
	return &fakeJobCache{pages: make(map[ports.ListJobsInput]*ports.JobPage)}
}

func (c *fakeJobCache) Get(_ context.Context, in ports.ListJobsInput) (*ports.JobPage, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.pages[in], nil
}

func (c *fakeJobCache) Set(_ context.Context, in ports.ListJobsInput, page *ports.JobPage) error {
	c.pages[in] = page
	return nil
}

func (c *fakeJobCache) Invalidate(_ context.Context) error {
	c.invalidated++
	c.pages = make(map[ports.ListJobsInput]*ports.JobPage)
	return nil
}

func TestJobService_List_UsesCache(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	cache := newFakeJobCache()
	svc := NewJobService(jobs, users, cache, discardLogger)

	jobs.seedJob("j1", "emp1", "Job", time.Now().UTC())

	first, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Page: 1, PageSize: 5})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// Second identical query must be served from the cache even after the
	// repository changed underneath it.
	jobs.seedJob("j2", "emp1", "Job 2", time.Now().UTC())
	second, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Page: 1, PageSize: 5})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if second.TotalItems != first.TotalItems {
		t.Errorf("expected cached result, got total=%d", second.TotalItems)
	}
}

func TestJobService_Create_InvalidatesCache(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	users.seedUser("emp1", "e@x.com", "Acme", domain.RoleEmployer)
	cache := newFakeJobCache()
	svc := NewJobService(jobs, users, cache, discardLogger)

	if _, err := svc.CreateJob(context.Background(), jobInput("Backend Engineer"), "emp1"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidated != 1 {
		t.Errorf("expected 1 invalidation, got %d", cache.invalidated)
	}
}

func TestJobService_List_CacheFailureFallsBack(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	cache := newFakeJobCache()
	cache.getErr = errors.New("redis down")
	svc := NewJobService(jobs, users, cache, discardLogger)

	jobs.seedJob("j1", "emp1", "Job", time.Now().UTC())

	page, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Page: 1, PageSize: 5})
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if page.TotalItems != 1 {
		t.Errorf("expected repository fallback, got total=%d", page.TotalItems)
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func TestJobService_Get_NotFound(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	svc := newJobService(jobs, users)

	if _, err := svc.GetJob(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_ListByEmployer(t *testing.T) {
	jobs, users := newStubJobRepo(), newStubUserRepo()
	svc := newJobService(jobs, users)

	now := time.Now().UTC()
	jobs.seedJob("j1", "emp1", "A", now)
	jobs.seedJob("j2", "emp2", "B", now)
	jobs.seedJob("j3", "emp1", "C", now)

	out, err := svc.ListJobsByEmployer(context.Background(), "emp1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 jobs for emp1, got %d", len(out))
	}
}
