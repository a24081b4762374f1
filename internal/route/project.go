package route

import (
	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/controller"
	"github.com/suritel/worklog-api/internal/middleware"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, cc *controller.ClientController, mc *controller.ContactController, middleware *middleware.Middleware) {
	v1 := r.Group("/projects")
	v1.Use(middleware.AuthMiddleware)

	managerial := middleware.RequireRole(constant.UserRoleAdmin, constant.UserRoleManager)
	adminOnly := middleware.RequireRole(constant.UserRoleAdmin)
	{
		v1.GET("/clients", cc.GetAll)
		v1.GET("/clients/:id", cc.GetByID)
		v1.POST("/clients", managerial, cc.Create)
		v1.PUT("/clients/:id", managerial, cc.Update)
		v1.DELETE("/clients/:id", adminOnly, cc.Delete)

		v1.POST("/contacts", managerial, mc.Create)
		v1.PUT("/contacts/:id", managerial, mc.Update)
		v1.DELETE("/contacts/:id", adminOnly, mc.Delete)

		v1.GET("", pc.GetAll)
		v1.GET("/:id", pc.GetByID)
		v1.GET("/:id/contacts", mc.GetByProject)
		v1.POST("", managerial, pc.Create)
		v1.PUT("/:id", managerial, pc.Update)
		v1.DELETE("/:id", adminOnly, pc.Delete)
	}
}
