package middleware

import (
	"sync"

	"employee-directory/internal/shared/apperror"
	"employee-directory/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientIDHeader lets trusted callers (e.g. a UI backend) be limited per
// client instead of per IP.
const ClientIDHeader = "X-Client-ID"

// KeyedRateLimiter hands out one token bucket per key.
type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit // requests per second
	b        int        // burst
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	limiter, exists := k.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(k.r, k.b)
		k.limiters[key] = limiter
	}
	return limiter
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(r, b), func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByClient keys on X-Client-ID and falls back to the client IP.
func RateLimitByClient(r rate.Limit, b int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(r, b), func(c *gin.Context) string {
		if id := c.GetHeader(ClientIDHeader); id != "" {
			return "client:" + id
		}
		return "ip:" + c.ClientIP()
	})
}

func rateLimit(limiter *KeyedRateLimiter, key func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.GetLimiter(key(c)).Allow() {
			e := apperror.ErrTooManyRequests
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
