package route

import (
	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/controller"
	"github.com/suritel/worklog-api/internal/middleware"
)

func V1_Users(r *gin.RouterGroup, uc *controller.UserController, dc *controller.DepartmentController, middleware *middleware.Middleware) {
	v1 := r.Group("/users")
	v1.Use(middleware.AuthMiddleware)

	adminOnly := middleware.RequireRole(constant.UserRoleAdmin)
	{
		// Departments sit under /users; register them before /:id.
		v1.GET("/departments", dc.GetAll)
		v1.POST("/departments", adminOnly, dc.Create)
		v1.PUT("/departments/:id", adminOnly, dc.Update)
		v1.DELETE("/departments/:id", adminOnly, dc.Delete)

		v1.GET("", adminOnly, uc.GetAll)
		v1.GET("/:id", adminOnly, uc.GetByID)
		v1.POST("", adminOnly, uc.Create)
		v1.PUT("/:id", adminOnly, uc.Update)
		v1.PATCH("/:id/deactivate", adminOnly, uc.Deactivate)
		v1.PATCH("/:id/activate", adminOnly, uc.Activate)
	}
}
