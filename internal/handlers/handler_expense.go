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

type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("/:ownerId", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), domain.OwnerID(c.Param("ownerId")), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	created, err := h.expenseService.CreateExpense(c.Request.Context(), req.ToDomain(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(created))
}

func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	updated, err := h.expenseService.UpdateExpense(c.Request.Context(), domain.RecordID(c.Param("id")), req.ToPatch(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(updated))
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), domain.RecordID(c.Param("id")), userID); err != nil {
		respondError(c, logger, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
