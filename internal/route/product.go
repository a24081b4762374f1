package route

import (
	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/controller"
	"github.com/suritel/worklog-api/internal/middleware"
)

func V1_Products(r *gin.RouterGroup, pc *controller.ProductController, middleware *middleware.Middleware) {
	v1 := r.Group("/products")
	v1.Use(middleware.AuthMiddleware)

	adminOnly := middleware.RequireRole(constant.UserRoleAdmin)
	{
		v1.GET("", pc.GetAll)
		v1.GET("/grouped", pc.GetGrouped)
		v1.GET("/:id", pc.GetByID)
		v1.POST("", adminOnly, pc.Create)
		v1.PUT("/:id", adminOnly, pc.Update)
		v1.DELETE("/:id", adminOnly, pc.Delete)
	}
}
