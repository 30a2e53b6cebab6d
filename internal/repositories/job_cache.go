package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-job-board/internal/logger"
	"github.com/sbilibin2017/gw-job-board/internal/models"
)

// JobCacheRepository caches single job postings in Redis
type JobCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached jobs
}

// NewJobCacheRepository creates a cache repository with the given TTL
func NewJobCacheRepository(client *redis.Client, expiration time.Duration) *JobCacheRepository {
	return &JobCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func jobCacheKey(id int64) string {
	return fmt.Sprintf("job:%d", id)
}

// Get returns the cached job, or nil, nil on a cache miss.
func (r *JobCacheRepository) Get(ctx context.Context, id int64) (*models.JobDB, error) {
	key := jobCacheKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return nil, err
	}

	var job models.JobDB
	if err := json.Unmarshal([]byte(val), &job); err != nil {
		logger.Log.Errorw("cache value is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &job, nil
}

// Set stores the job with the repository TTL
func (r *JobCacheRepository) Set(ctx context.Context, job models.JobDB) error {
	key := jobCacheKey(job.ID)

	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}

// Delete drops the cached job if present
func (r *JobCacheRepository) Delete(ctx context.Context, id int64) error {
	key := jobCacheKey(id)

	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("cache delete", "key", key, "error", err)

	return err
}
