package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/dto"
	"github.com/advisorkit/fna_app/internal/middleware"
)

// liabilityHandler handles HTTP requests for liability rows.
type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
}

func newLiabilityHandler(ls portssvc.LiabilitySvcFacade) *liabilityHandler {
	return &liabilityHandler{liabilityService: ls}
}

// registerLiabilityRoutes registers the liability row routes.
func registerLiabilityRoutes(rg *gin.RouterGroup, liabilityService portssvc.LiabilitySvcFacade) {
	h := newLiabilityHandler(liabilityService)

	liabilities := rg.Group("/plans/:planID/liabilities")
	{
		liabilities.POST("", h.addLiability)
		liabilities.PUT("/:liabilityID", h.updateLiability)
		liabilities.DELETE("/:liabilityID", h.removeLiability)
	}
}

// addLiability godoc
// @Summary Add a liability row
// @Description Appends a liability row to a plan. The parent plan must exist and the type must be one of the recognized values.
// @Tags liabilities
// @Accept json
// @Produce json
// @Param planID path string true "Plan ID"
// @Param liability body dto.CreateLiabilityRequest true "Liability details"
// @Success 201 {object} dto.LiabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans/{planID}/liabilities [post]
func (h *liabilityHandler) addLiability(c *gin.Context) {
	logger := requestLogger(c)
	planID := c.Param("planID")

	var req dto.CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addLiability", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	row, err := h.liabilityService.AddLiability(c.Request.Context(), planID, req, creatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add liability")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLiabilityResponse(*row))
}

// updateLiability godoc
// @Summary Update a liability row
// @Description Rewrites a liability row. Fields left out keep their current value.
// @Tags liabilities
// @Accept json
// @Produce json
// @Param planID path string true "Plan ID"
// @Param liabilityID path string true "Liability ID"
// @Param liability body dto.UpdateLiabilityRequest true "Fields to update"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans/{planID}/liabilities/{liabilityID} [put]
func (h *liabilityHandler) updateLiability(c *gin.Context) {
	logger := requestLogger(c)
	planID := c.Param("planID")
	liabilityID := c.Param("liabilityID")

	var req dto.UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateLiability", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	row, err := h.liabilityService.UpdateLiability(c.Request.Context(), planID, liabilityID, req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update liability")
		return
	}

	c.JSON(http.StatusOK, dto.ToLiabilityResponse(*row))
}

// removeLiability godoc
// @Summary Remove a liability row
// @Description Deletes a liability row from a plan.
// @Tags liabilities
// @Produce json
// @Param planID path string true "Plan ID"
// @Param liabilityID path string true "Liability ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /plans/{planID}/liabilities/{liabilityID} [delete]
func (h *liabilityHandler) removeLiability(c *gin.Context) {
	logger := requestLogger(c)
	planID := c.Param("planID")
	liabilityID := c.Param("liabilityID")

	if err := h.liabilityService.RemoveLiability(c.Request.Context(), planID, liabilityID); err != nil {
		respondServiceError(c, logger, err, "Failed to remove liability")
		return
	}

	c.Status(http.StatusNoContent)
}
