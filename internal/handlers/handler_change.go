package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	portssvc "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/services"
	"github.com/ahmedhedefa/cashier-ca-web/internal/dto"
	"github.com/ahmedhedefa/cashier-ca-web/internal/middleware"
	"github.com/gin-gonic/gin"
)

// changeHandler handles HTTP requests for change computation.
type changeHandler struct {
	changeService portssvc.ChangeSvcFacade
}

// newChangeHandler creates a new changeHandler.
func newChangeHandler(cs portssvc.ChangeSvcFacade) *changeHandler {
	return &changeHandler{changeService: cs}
}

// registerChangeRoutes registers the change and catalog routes.
func registerChangeRoutes(rg *gin.RouterGroup, changeService portssvc.ChangeSvcFacade) {
	h := newChangeHandler(changeService)

	rg.POST("/change", h.computeChange)
	rg.GET("/denominations", h.listDenominations)
}

// computeChange godoc
// @Summary Compute change for a cash payment
// @Description Rounds the change to the nearest nickel, breaks it into pieces and suggests top-ups that reduce the piece count
// @Tags change
// @Accept  json
// @Produce  json
// @Param   request body dto.ComputeChangeRequest true "Amounts and optional denomination toggles"
// @Success 200 {object} dto.ChangeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Till not found"
// @Failure 422 {object} map[string]string "Insufficient payment"
// @Failure 500 {object} map[string]string "Failed to compute change"
// @Router /change [post]
func (h *changeHandler) computeChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComputeChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeChange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	result, err := h.changeService.ComputeChange(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientPayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": apperrors.ErrInsufficientPayment.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error computing change", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Till not found"})
		default:
			logger.Error("Failed to compute change", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute change"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChangeResponse(result))
}

// listDenominations godoc
// @Summary List the denomination catalog
// @Description Returns every bill and coin the calculator knows, plus the quick-add tender amounts
// @Tags change
// @Produce  json
// @Success 200 {object} dto.CatalogResponse
// @Router /denominations [get]
func (h *changeHandler) listDenominations(c *gin.Context) {
	set := h.changeService.Catalog(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCatalogResponse(set, h.changeService.RoundingUnit()))
}
