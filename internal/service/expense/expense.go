// internal/service/expense/expense.go
package expense

import (
	"context"
	"fmt"

	"fleetflow-service/internal/domain/expense"
	"fleetflow-service/internal/pkg/pagination"

	"go.uber.org/zap"
)

// ExpenseService is read-only: expenses are created by the fuel and
// maintenance pipelines, never directly.
type ExpenseService struct {
	expenseRepo expense.Repository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo expense.Repository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) GetExpense(ctx context.Context, id string) (*expense.Expense, error) {
	return s.expenseRepo.FindByID(ctx, id)
}

func (s *ExpenseService) ListExpenses(ctx context.Context, filters expense.ListFilters) ([]expense.Expense, pagination.Params, int64, error) {
	params := pagination.Normalize(filters.Page, filters.Limit)
	filters.Page = params.Page
	filters.Limit = params.Limit

	items, total, err := s.expenseRepo.List(ctx, filters)
	if err != nil {
		return nil, params, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	return items, params, total, nil
}

// SummarizeByCategory returns total spend and row count per category,
// categories sorted ascending.
func (s *ExpenseService) SummarizeByCategory(ctx context.Context) ([]expense.CategorySummary, error) {
	summary, err := s.expenseRepo.SummaryByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	return summary, nil
}
