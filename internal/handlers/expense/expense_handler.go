// internal/handlers/expense/expense_handler.go
package expense

import (
	"net/http"

	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/pkg/response"
	service "fleetflow-service/internal/service/expense"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// GetExpense returns a single expense
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	result, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "expense retrieved", result)
}

// SummarizeExpenses returns per-category totals across all expenses
func (h *ExpenseHandler) SummarizeExpenses(c *gin.Context) {
	result, err := h.expenseService.SummarizeByCategory(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "expense summary retrieved", result)
}

// ListExpenses returns a paginated expense list, newest first
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var filters expense.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	items, params, total, err := h.expenseService.ListExpenses(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "expenses retrieved", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}
