package route

import (
	"github.com/gin-gonic/gin"
	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/controller"
	"github.com/suritel/worklog-api/internal/middleware"
)

func V1_Work(r *gin.RouterGroup, wc *controller.WorkLogController, fc *controller.FileController, sc *controller.StatisticsController, middleware *middleware.Middleware) {
	v1 := r.Group("/work")
	v1.Use(middleware.AuthMiddleware)

	managerial := middleware.RequireRole(constant.UserRoleAdmin, constant.UserRoleManager)
	{
		// Statistics routes must come before /:id.
		v1.GET("/statistics", managerial, sc.GetStatistics)
		v1.GET("/statistics/detailed", managerial, sc.GetDetailedStatistics)
		v1.GET("/statistics/detailed/export", managerial, sc.ExportDetailedStatistics)

		v1.POST("", wc.Create)
		v1.GET("", wc.GetAll)
		v1.GET("/:id", wc.GetByID)
		v1.PUT("/:id", wc.Update)
		v1.PATCH("/:id/status", managerial, wc.ChangeStatus)
		v1.DELETE("/:id", wc.Delete)

		v1.POST("/:id/files", fc.Upload)
		v1.GET("/:id/files", fc.ListByWorkLog)
		v1.GET("/files/:fileId/download", fc.Download)
		v1.DELETE("/files/:fileId", fc.Delete)
	}
}
