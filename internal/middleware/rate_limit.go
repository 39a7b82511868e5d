package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vilohq/vilo-api/internal/config"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/internal/utils"
	"github.com/vilohq/vilo-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis   *redis.Client
	config  *config.Config
	tenants repository.TenantRepository
	logger  *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, tenants repository.TenantRepository, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:   redis,
		config:  config,
		tenants: tenants,
		logger:  logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, err := utils.GetTenantIDFromContext(requestCtx(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant ID required for rate limiting"})
			c.Abort()
			return
		}

		limit := m.getTenantRateLimit(c.Request.Context(), tenantID)
		key := fmt.Sprintf("rate_limit:tenant:%s", tenantID)
		m.enforce(c, key, limit)
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.enforce(c, key, limit)
	}
}

// enforce runs a fixed-window counter in Redis. Redis errors fail open so a
// cache outage never takes the API down with it.
func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int) {
	current, err := m.redis.Get(c.Request.Context(), key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10)

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)

		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"limit": limit,
		})
		c.Abort()
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(c.Request.Context(), key)
	pipe.Expire(c.Request.Context(), key, time.Minute)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}

// getTenantRateLimit resolves the tenant's configured limit, falling back to
// the global default when the row cannot be read.
func (m *RateLimitMiddleware) getTenantRateLimit(ctx context.Context, tenantID string) int {
	tenant, err := m.tenants.GetByID(ctx, tenantID)
	if err == nil && tenant.RateLimit > 0 {
		return tenant.RateLimit
	}
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 1000
}

// requestCtx merges gin's keys into the request context so the shared
// context helpers work in middleware too.
func requestCtx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	for k, v := range c.Keys {
		ctx = context.WithValue(ctx, utils.ContextKey(k), v)
	}
	return ctx
}
