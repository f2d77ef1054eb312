package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"rently-backend/internal/domain"
	"rently-backend/internal/logger"
	"rently-backend/internal/repository"
)

// CachedAnalyticsRepository decorates an AnalyticsRepository with a
// cache-aside layer for the summary query, which dashboards poll far more
// often than bookings mutate. Writes invalidate the tenant's cached summary.
type CachedAnalyticsRepository struct {
	repository.AnalyticsRepository
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedAnalyticsRepository(real repository.AnalyticsRepository, rdb *redis.Client, ttl time.Duration) *CachedAnalyticsRepository {
	return &CachedAnalyticsRepository{
		AnalyticsRepository: real,
		redis:               rdb,
		ttl:                 ttl,
	}
}

func summaryKey(tenantID uuid.UUID) string {
	return fmt.Sprintf("analytics:summary:%s", tenantID)
}

func (c *CachedAnalyticsRepository) Summary(ctx context.Context, tenantID uuid.UUID) (*domain.AnalyticsSummary, error) {
	key := summaryKey(tenantID)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var s domain.AnalyticsSummary
		if err := json.Unmarshal(data, &s); err != nil {
			logger.Warn("Failed to unmarshal cached summary, falling back to database", "error", err)
			break
		}
		return &s, nil
	case errors.Is(err, redis.Nil):
		// cache miss
	default:
		logger.Warn("Redis read failed, falling back to database", "error", err)
	}

	s, err := c.AnalyticsRepository.Summary(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(s); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			logger.Warn("Failed to cache analytics summary", "error", err)
		}
	}
	return s, nil
}

func (c *CachedAnalyticsRepository) Insert(ctx context.Context, l *domain.AnalyticsLog) error {
	if err := c.AnalyticsRepository.Insert(ctx, l); err != nil {
		return err
	}
	c.invalidate(ctx, l.TenantID)
	return nil
}

func (c *CachedAnalyticsRepository) Update(ctx context.Context, l *domain.AnalyticsLog) error {
	if err := c.AnalyticsRepository.Update(ctx, l); err != nil {
		return err
	}
	c.invalidate(ctx, l.TenantID)
	return nil
}

func (c *CachedAnalyticsRepository) invalidate(ctx context.Context, tenantID uuid.UUID) {
	if err := c.redis.Del(ctx, summaryKey(tenantID)).Err(); err != nil {
		logger.Warn("Failed to invalidate cached summary", "tenant_id", tenantID, "error", err)
	}
}
