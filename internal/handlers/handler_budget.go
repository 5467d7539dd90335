package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets. The GET segment is
// the owner id, the PUT and DELETE segment is the budget id.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("/:ownerId", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), domain.OwnerID(c.Param("ownerId")), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
}

func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	created, err := h.budgetService.CreateBudget(c.Request.Context(), req.ToDomain(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(created))
}

func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	updated, err := h.budgetService.UpdateBudget(c.Request.Context(), domain.RecordID(c.Param("id")), req.ToPatch(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(updated))
}

func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), domain.RecordID(c.Param("id")), userID); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
