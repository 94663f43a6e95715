package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bizforge/internal/common/database"
	"bizforge/internal/models"
)

const statusKeyPrefix = "deploy:status:"

// StatusCache stores deploy records in Redis so the API can answer status
// polls without keeping deploy state in process memory. Records expire
// after the configured TTL; a finished deploy older than that reads as not
// found, which callers treat the same as an unknown ID.
type StatusCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

func NewStatusCache(redisClient *database.RedisClient, ttl time.Duration) *StatusCache {
	return &StatusCache{redis: redisClient, ttl: ttl}
}

// Put writes the record, stamping UpdatedAt.
func (s *StatusCache) Put(ctx context.Context, record models.DeployRecord) error {
	record.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal deploy record: %w", err)
	}
	if err := s.redis.Set(ctx, statusKeyPrefix+record.ID, payload, s.ttl); err != nil {
		return fmt.Errorf("store deploy record: %w", err)
	}
	return nil
}

// Get returns the record for id, or ok=false when it is unknown or expired.
func (s *StatusCache) Get(ctx context.Context, id string) (models.DeployRecord, bool, error) {
	payload, err := s.redis.Get(ctx, statusKeyPrefix+id)
	if err == redis.Nil {
		return models.DeployRecord{}, false, nil
	}
	if err != nil {
		return models.DeployRecord{}, false, fmt.Errorf("read deploy record: %w", err)
	}

	var record models.DeployRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return models.DeployRecord{}, false, fmt.Errorf("decode deploy record: %w", err)
	}
	return record, true, nil
}

// SetState transitions an existing record, preserving its other fields.
func (s *StatusCache) SetState(ctx context.Context, id, state, url, errMsg string) error {
	record, ok, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("deploy record %s not found", id)
	}

	record.State = state
	if url != "" {
		record.URL = url
	}
	record.Error = errMsg
	return s.Put(ctx, record)
}
