package routes

import (
	"github.com/ecstazane/zane-crud2/presentation/controllers/records"
	"github.com/gin-gonic/gin"
)

// RecordRoutes mounts the whole lifecycle for every registered model under a
// single :model parameter. Static siblings like /models and /audit-logs are
// registered before this family and win the match. The strict handler
// throttles the destructive set-wide operations harder than the rest of the
// API.
func RecordRoutes(router *gin.RouterGroup, controller records.RecordsController, strict gin.HandlerFunc) {
	router.GET("/:model", controller.ListActive)
	router.GET("/:model/archived", controller.ListArchived)
	router.GET("/:model/:id", controller.GetByID)

	router.POST("/:model", controller.Create)
	router.PUT("/:model/:id", controller.Update)

	router.DELETE("/:model/:id", controller.Archive)
	router.DELETE("/:model", controller.ArchiveAll)
	router.POST("/:model/batch-archive", controller.ArchiveBatch)

	router.POST("/:model/:id/restore", controller.Restore)
	router.POST("/:model/restore-all", controller.RestoreAll)
	router.POST("/:model/batch-restore", controller.RestoreBatch)

	router.DELETE("/:model/:id/permanent", controller.Delete)
	router.POST("/:model/batch-permanent-delete", strict, controller.DeleteBatch)
	router.DELETE("/:model/archived/all", strict, controller.DeleteArchived)
}
