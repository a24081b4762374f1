package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDMaxLen caps externally supplied ids to keep logs clean.
const requestIDMaxLen = 64

func (m Middleware) RequestIDMiddleware(ctx *gin.Context) {
	rid := ctx.GetHeader("X-Request-ID")
	if rid == "" || len(rid) > requestIDMaxLen {
		rid = uuid.New().String()
	}

	ctx.Set("request_id", rid)
	ctx.Header("X-Request-ID", rid)

	ctx.Next()
}
