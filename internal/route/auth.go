package route

import (
	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/controller"
	"github.com/suritel/worklog-api/internal/middleware"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController, middleware *middleware.Middleware) {
	v1 := r.Group("/auth")
	{
		v1.POST("/login", authController.Login)
		v1.POST("/refresh", authController.RefreshAccessToken)
		v1.GET("/me", middleware.AuthMiddleware, authController.Me)
	}
}
