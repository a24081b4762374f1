package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/auth"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/util"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, 401, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, 401, "Invalid access token type", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

// RequireRole gates a route to the listed roles. Run after AuthMiddleware.
func (m Middleware) RequireRole(roles ...constant.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get("user")
		if !exists {
			util.ResponseFailed(ctx, 401, "", nil, nil)
			ctx.Abort()
			return
		}

		user, ok := value.(auth.JWTPayload)
		if !ok {
			util.ResponseFailed(ctx, 401, "", nil, nil)
			ctx.Abort()
			return
		}

		if !util.HasRole(user.Role, roles...) {
			m.app.Logger.Debugf("User %d with role %s denied, requires one of %v", user.UserID, user.Role, roles)
			util.ResponseFailed(ctx, 403, "권한이 없습니다.", nil, nil)
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
