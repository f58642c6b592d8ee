package audit

import (
	"net/http"

	"github.com/ecstazane/zane-crud2/application/usecases/audit"
	"github.com/ecstazane/zane-crud2/presentation/middlewares"
	"github.com/gin-gonic/gin"
)

type AuditController interface {
	List(ctx *gin.Context)
	BatchDelete(ctx *gin.Context)
}

type auditController struct {
	usecase audit.AuditUseCase
}

func NewAuditController(usecase audit.AuditUseCase) AuditController {
	return &auditController{
		usecase: usecase,
	}
}

func (c *auditController) List(ctx *gin.Context) {
	entries, err := c.usecase.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

func (c *auditController) BatchDelete(ctx *gin.Context) {
	var req BatchDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: middlewares.TranslateValidationError(err),
		})
		return
	}

	count, err := c.usecase.BatchDelete(ctx.Request.Context(), req.IDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Message: "Audit entries deleted", Count: count})
}
