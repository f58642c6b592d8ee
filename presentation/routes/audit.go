package routes

import (
	"github.com/ecstazane/zane-crud2/presentation/controllers/audit"
	"github.com/gin-gonic/gin"
)

func AuditRoutes(router *gin.RouterGroup, controller audit.AuditController, strict gin.HandlerFunc) {
	logs := router.Group("/audit-logs")
	{
		logs.GET("", controller.List)
		logs.POST("/batch-delete", strict, controller.BatchDelete)
	}
}
