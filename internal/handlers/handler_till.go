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
	"github.com/google/uuid"
)

// tillHandler handles HTTP requests related to till profiles.
type tillHandler struct {
	tillService portssvc.TillSvcFacade
}

// newTillHandler creates a new tillHandler.
func newTillHandler(ts portssvc.TillSvcFacade) *tillHandler {
	return &tillHandler{tillService: ts}
}

// registerTillRoutes registers routes related to till profiles.
func registerTillRoutes(rg *gin.RouterGroup, tillService portssvc.TillSvcFacade) {
	h := newTillHandler(tillService)

	tills := rg.Group("/tills")
	{
		tills.POST("", h.createTill)
		tills.GET("", h.listTills)
		tills.GET("/:tillID", h.getTill)
		tills.PUT("/:tillID/denominations", h.updateTillDenominations)
		tills.DELETE("/:tillID", h.deleteTill)
	}
}

// tillIDParam validates the :tillID path parameter.
func tillIDParam(c *gin.Context) (string, bool) {
	tillID := c.Param("tillID")
	if _, err := uuid.Parse(tillID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Till ID must be a UUID"})
		return "", false
	}
	return tillID, true
}

// writeTillError maps service errors to responses.
func writeTillError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Till not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "A till with this name already exists"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// createTill godoc
// @Summary Create a till profile
// @Description Stores which denominations a cash drawer holds
// @Tags tills
// @Accept  json
// @Produce  json
// @Param   till body dto.CreateTillRequest true "Till details"
// @Success 201 {object} dto.TillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Till name already exists"
// @Failure 500 {object} map[string]string "Failed to create till"
// @Security BearerAuth
// @Router /tills [post]
func (h *tillHandler) createTill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	till, err := h.tillService.CreateTill(c.Request.Context(), req, operatorID)
	if err != nil {
		writeTillError(c, logger, err, "Failed to create till")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTillResponse(till))
}

// listTills godoc
// @Summary List till profiles
// @Tags tills
// @Produce  json
// @Success 200 {array} dto.TillResponse
// @Failure 500 {object} map[string]string "Failed to list tills"
// @Security BearerAuth
// @Router /tills [get]
func (h *tillHandler) listTills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tills, err := h.tillService.ListTills(c.Request.Context())
	if err != nil {
		writeTillError(c, logger, err, "Failed to list tills")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTillResponse(tills))
}

// getTill godoc
// @Summary Get a till profile
// @Tags tills
// @Produce  json
// @Param   tillID path string true "Till ID"
// @Success 200 {object} dto.TillResponse
// @Failure 400 {object} map[string]string "Invalid till ID"
// @Failure 404 {object} map[string]string "Till not found"
// @Security BearerAuth
// @Router /tills/{tillID} [get]
func (h *tillHandler) getTill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tillID, ok := tillIDParam(c)
	if !ok {
		return
	}

	till, err := h.tillService.GetTillByID(c.Request.Context(), tillID)
	if err != nil {
		writeTillError(c, logger, err, "Failed to retrieve till")
		return
	}

	c.JSON(http.StatusOK, dto.ToTillResponse(till))
}

// updateTillDenominations godoc
// @Summary Toggle denominations on a till profile
// @Tags tills
// @Accept  json
// @Produce  json
// @Param   tillID path string true "Till ID"
// @Param   request body dto.UpdateTillDenominationsRequest true "Enable flags keyed by denomination name"
// @Success 200 {object} dto.TillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Till not found"
// @Security BearerAuth
// @Router /tills/{tillID}/denominations [put]
func (h *tillHandler) updateTillDenominations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tillID, ok := tillIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTillDenominationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTillDenominations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	till, err := h.tillService.UpdateTillDenominations(c.Request.Context(), tillID, req, operatorID)
	if err != nil {
		writeTillError(c, logger, err, "Failed to update till")
		return
	}

	c.JSON(http.StatusOK, dto.ToTillResponse(till))
}

// deleteTill godoc
// @Summary Delete a till profile
// @Tags tills
// @Param   tillID path string true "Till ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid till ID"
// @Failure 404 {object} map[string]string "Till not found"
// @Security BearerAuth
// @Router /tills/{tillID} [delete]
func (h *tillHandler) deleteTill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tillID, ok := tillIDParam(c)
	if !ok {
		return
	}

	operatorID, ok := middleware.GetOperatorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.tillService.DeleteTill(c.Request.Context(), tillID, operatorID); err != nil {
		writeTillError(c, logger, err, "Failed to delete till")
		return
	}

	c.Status(http.StatusNoContent)
}
