package models

import (
	"net/http"

	"github.com/ecstazane/zane-crud2/domain/schema"
	"github.com/gin-gonic/gin"
)

// ModelsController serves the schema registry so the client can render tables
// and forms without hardcoding any model.
type ModelsController interface {
	List(ctx *gin.Context)
}

type modelsController struct {
	registry *schema.Registry
}

func NewModelsController(registry *schema.Registry) ModelsController {
	return &modelsController{
		registry: registry,
	}
}

func (c *modelsController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.registry.Definitions())
}
