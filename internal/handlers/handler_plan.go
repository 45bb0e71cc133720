package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/dto"
	"github.com/advisorkit/fna_app/internal/middleware"
)

// planHandler handles HTTP requests for plan load and save.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{planService: ps}
}

// registerPlanRoutes registers the plan load/save routes.
func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	rg.GET("/clients/:clientID/plan", h.getPlan)
	rg.PUT("/clients/:clientID/plan", h.savePlan)
}

// getPlan godoc
// @Summary Load a client's plan
// @Description Loads the saved plan with a fresh analysis pass. Returns a default plan when the client has none, or the local backup when the primary store is unreachable.
// @Tags plans
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.PlanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID}/plan [get]
func (h *planHandler) getPlan(c *gin.Context) {
	logger := requestLogger(c)
	clientID := c.Param("clientID")

	snap, err := h.planService.GetPlan(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load plan")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponse(snap))
}

// savePlan godoc
// @Summary Save a client's plan
// @Description Persists the submitted form and returns the recomputed snapshot. Manual overrides whose base figures changed are reset to auto.
// @Tags plans
// @Accept json
// @Produce json
// @Param clientID path string true "Client ID"
// @Param plan body dto.SavePlanRequest true "Plan form"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID}/plan [put]
func (h *planHandler) savePlan(c *gin.Context) {
	logger := requestLogger(c)
	clientID := c.Param("clientID")

	var req dto.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for savePlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	snap, err := h.planService.SavePlan(c.Request.Context(), clientID, req, updaterID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save plan")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponse(snap))
}
