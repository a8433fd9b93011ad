package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-tracker-api/internal/domain"
)

// TypeCache is a read-through cache of a project's active work item
// types. Type lists are read on every form render but change only when
// a template is applied, so they cache well. A nil client disables
// caching entirely; all methods become no-ops.
type TypeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewTypeCache creates a new TypeCache
func NewTypeCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *TypeCache {
	return &TypeCache{client: client, ttl: ttl, logger: logger}
}

func typeCacheKey(projectID uuid.UUID) string {
	return "tracker:types:" + projectID.String()
}

// Get returns the cached type list, or nil on miss or any cache error
func (c *TypeCache) Get(ctx context.Context, projectID uuid.UUID) []*domain.WorkItemType {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, typeCacheKey(projectID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Type cache read failed", zap.Error(err))
		}
		return nil
	}
	var types []*domain.WorkItemType
	if err := json.Unmarshal(data, &types); err != nil {
		c.logger.Warn("Type cache entry corrupt, dropping",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
		c.client.Del(ctx, typeCacheKey(projectID))
		return nil
	}
	return types
}

// Set stores a project's type list; cache errors are logged, not returned
func (c *TypeCache) Set(ctx context.Context, projectID uuid.UUID, types []*domain.WorkItemType) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(types)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, typeCacheKey(projectID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Type cache write failed", zap.Error(err))
	}
}

// Invalidate drops a project's cached type list
func (c *TypeCache) Invalidate(ctx context.Context, projectID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, typeCacheKey(projectID)).Err(); err != nil {
		c.logger.Warn("Type cache invalidation failed", zap.Error(err))
	}
}
