package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobboard/jobboard-api/internal/api/metrics"
	"github.com/jobboard/jobboard-api/internal/core/ports"
)

const (
	jobListTTL     = 30 * time.Second
	jobListVersion = "jobs:list:version"
)

// JobListCache caches job listing pages under versioned keys.
// Key format: jobs:list:v<version>:<location>:<job_type>:<page>:<page_size>
//
// Invalidation bumps the version counter instead of scanning for keys; stale
// entries simply expire with their TTL.
type JobListCache struct {
	client *redis.Client
}

// NewJobListCache creates a JobListCache wrapping the given Redis client.
func NewJobListCache(client *redis.Client) *JobListCache {
	return &JobListCache{client: client}
}

// Get returns the cached page for the query, or (nil, nil) on a miss.
func (c *JobListCache) Get(ctx context.Context, in ports.ListJobsInput) (*ports.JobPage, error) {
	key, err := c.key(ctx, in)
	if err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.JobListCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("job cache get: %w", err)
	}

	var page ports.JobPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("job cache decode: %w", err)
	}
	metrics.JobListCacheTotal.WithLabelValues("hit").Inc()
	return &page, nil
}

// Set stores the page under the current version (expires after jobListTTL).
func (c *JobListCache) Set(ctx context.Context, in ports.ListJobsInput, page *ports.JobPage) error {
	key, err := c.key(ctx, in)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("job cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, jobListTTL).Err()
}

// Invalidate bumps the version counter, orphaning every cached page at once.
func (c *JobListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, jobListVersion).Err(); err != nil {
		return fmt.Errorf("job cache invalidate: %w", err)
	}
	return nil
}

func (c *JobListCache) key(ctx context.Context, in ports.ListJobsInput) (string, error) {
	version, err := c.client.Get(ctx, jobListVersion).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("job cache version: %w", err)
	}
	return fmt.Sprintf("jobs:list:v%d:%s:%s:%d:%d", version, in.Location, in.JobType, in.Page, in.PageSize), nil
}
