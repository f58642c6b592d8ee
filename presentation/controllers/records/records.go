package records

import (
	"net/http"

	"github.com/ecstazane/zane-crud2/application/usecases/lifecycle"
	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/domain/schema"
	"github.com/ecstazane/zane-crud2/presentation/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// RecordsController exposes the record lifecycle for every registered model
// under a single /:model route family.
type RecordsController interface {
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	ListActive(ctx *gin.Context)
	ListArchived(ctx *gin.Context)
	Update(ctx *gin.Context)

	Archive(ctx *gin.Context)
	ArchiveBatch(ctx *gin.Context)
	ArchiveAll(ctx *gin.Context)

	Restore(ctx *gin.Context)
	RestoreBatch(ctx *gin.Context)
	RestoreAll(ctx *gin.Context)

	Delete(ctx *gin.Context)
	DeleteBatch(ctx *gin.Context)
	DeleteArchived(ctx *gin.Context)
}

type recordsController struct {
	usecase lifecycle.LifecycleUseCase
}

func NewRecordsController(usecase lifecycle.LifecycleUseCase) RecordsController {
	return &recordsController{
		usecase: usecase,
	}
}

func (c *recordsController) Create(ctx *gin.Context) {
	var payload map[string]any
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: middlewares.TranslateValidationError(err),
		})
		return
	}

	record, err := c.usecase.Create(ctx.Request.Context(), ctx.Param("model"), payload)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, record.Document())
}

func (c *recordsController) GetByID(ctx *gin.Context) {
	record, err := c.usecase.GetByID(ctx.Request.Context(), ctx.Param("model"), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record.Document())
}

func (c *recordsController) ListActive(ctx *gin.Context) {
	records, err := c.usecase.ListActive(ctx.Request.Context(), ctx.Param("model"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, documents(records))
}

func (c *recordsController) ListArchived(ctx *gin.Context) {
	records, err := c.usecase.ListArchived(ctx.Request.Context(), ctx.Param("model"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, documents(records))
}

func (c *recordsController) Update(ctx *gin.Context) {
	var payload map[string]any
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: middlewares.TranslateValidationError(err),
		})
		return
	}

	record, err := c.usecase.Update(ctx.Request.Context(), ctx.Param("model"), ctx.Param("id"), payload)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record.Document())
}

func (c *recordsController) Archive(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.usecase.Archive(ctx.Request.Context(), ctx.Param("model"), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Item soft deleted", ID: id})
}

func (c *recordsController) ArchiveBatch(ctx *gin.Context) {
	ids, ok := bindBatch(ctx)
	if !ok {
		return
	}

	count, err := c.usecase.ArchiveBatch(ctx.Request.Context(), ctx.Param("model"), ids)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Message: "Items soft deleted", Count: count})
}

func (c *recordsController) ArchiveAll(ctx *gin.Context) {
	count, err := c.usecase.ArchiveAll(ctx.Request.Context(), ctx.Param("model"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Message: "All items soft deleted", Count: count})
}

func (c *recordsController) Restore(ctx *gin.Context) {
	record, err := c.usecase.Restore(ctx.Request.Context(), ctx.Param("model"), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Item restored", Item: record.Document()})
}

func (c *recordsController) RestoreBatch(ctx *gin.Context) {
	ids, ok := bindBatch(ctx)
	if !ok {
		return
	}

	count, err := c.usecase.RestoreBatch(ctx.Request.Context(), ctx.Param("model"), ids)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Message: "Items restored", Count: count})
}

func (c *recordsController) RestoreAll(ctx *gin.Context) {
	count, err := c.usecase.RestoreAll(ctx.Request.Context(), ctx.Param("model"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Message: "All items restored", Count: count})
}

func (c *recordsController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.usecase.Delete(ctx.Request.Context(), ctx.Param("model"), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Item permanently deleted", ID: id})
}

func (c *recordsController) DeleteBatch(ctx *gin.Context) {
	ids, ok := bindBatch(ctx)
	if !ok {
		return
	}

	count, err := c.usecase.DeleteBatch(ctx.Request.Context(), ctx.Param("model"), ids)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Message: "Items permanently deleted", Count: count})
}

func (c *recordsController) DeleteArchived(ctx *gin.Context) {
	count, err := c.usecase.DeleteArchived(ctx.Request.Context(), ctx.Param("model"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CountResponse{Message: "All archived items permanently deleted", Count: count})
}

func bindBatch(ctx *gin.Context) ([]string, bool) {
	var req BatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: middlewares.TranslateValidationError(err),
		})
		return nil, false
	}
	return req.IDs, true
}

func documents(records []model.Record) []model.JSONMap {
	out := make([]model.JSONMap, 0, len(records))
	for i := range records {
		out = append(out, records[i].Document())
	}
	return out
}

func respondError(ctx *gin.Context, err error) {
	var validationErr *schema.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: validationErr.Error(),
		})
	case errors.Is(err, repository.ErrUnknownModel):
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "unknown_model",
			Message: err.Error(),
		})
	case errors.Is(err, repository.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
