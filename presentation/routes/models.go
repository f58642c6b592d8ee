package routes

import (
	"github.com/ecstazane/zane-crud2/presentation/controllers/models"
	"github.com/gin-gonic/gin"
)

func ModelRoutes(router *gin.RouterGroup, controller models.ModelsController) {
	router.GET("/models", controller.List)
}
