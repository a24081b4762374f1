package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, 429, "Too many requests", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
