package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/core/tracker"
)

// XLSXContentType is the media type of generated reports.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of a generated report workbook.
const (
	SummarySheet  = "Summary"
	ExpensesSheet = "Expenses"
	BudgetsSheet  = "Budgets"
)

// moneyFormat is the builtin "#,##0.00" number format.
const moneyFormat = 4

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	budgetRepo  portsrepo.BudgetReader
	expenseRepo portsrepo.ExpenseReader
}

// NewReportingService creates a new reporting service reading from the given repositories
func NewReportingService(budgetRepo portsrepo.BudgetReader, expenseRepo portsrepo.ExpenseReader) portssvc.ReportingSvc {
	return &reportingService{budgetRepo: budgetRepo, expenseRepo: expenseRepo}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GenerateReport renders the user's expenses of the period containing now
// as an xlsx workbook with a summary, an expenses and a budgets sheet.
func (s *reportingService) GenerateReport(ctx context.Context, userID string, period domain.ReportPeriod, now time.Time) (*domain.Report, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: unknown report period %q", apperrors.ErrValidation, period)
	}
	owner := domain.OwnerID(userID)
	from, to := period.Bounds(now)

	expenses, err := s.expenseRepo.FindExpensesByOwnerInRange(ctx, owner, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve expenses for report", slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	budgets, err := s.budgetRepo.FindBudgetsByOwner(ctx, owner)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve budgets for report", slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to retrieve budgets: %w", err)
	}

	body, err := renderWorkbook(period, from, to, budgets, expenses, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	s.LogInfo(ctx, "Report generated",
		slog.String("period", string(period)),
		slog.String("from", from.String()),
		slog.Int("expense_count", len(expenses)))
	return &domain.Report{Period: period, ContentType: XLSXContentType, Body: body}, nil
}

func renderWorkbook(period domain.ReportPeriod, from, to domain.Date, budgets []domain.Budget, expenses []domain.Expense, now time.Time) ([]byte, error) {
	view := tracker.Aggregate(budgets, expenses)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("naming summary sheet: %w", err)
	}
	for _, name := range []string{ExpensesSheet, BudgetsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("adding %s sheet: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return nil, fmt.Errorf("creating money style: %w", err)
	}

	w := &sheetWriter{f: f, header: header, money: amount}

	w.row(SummarySheet, 1, "Expense Report")
	w.row(SummarySheet, 2, "Period", string(period))
	w.row(SummarySheet, 3, "From", from.String())
	w.row(SummarySheet, 4, "To (exclusive)", to.String())
	w.row(SummarySheet, 5, "Generated", now.UTC().Format(time.RFC3339))
	w.row(SummarySheet, 7, "Total Spent", view.TotalSpent)
	w.row(SummarySheet, 8, "Total Budget", view.TotalBudget)
	w.row(SummarySheet, 9, "Remaining Budget", view.RemainingBudget)
	w.row(SummarySheet, 10, "Transactions", len(expenses))
	w.bold(SummarySheet, "A1", "A1")
	w.width(SummarySheet, "A", "B", 20)

	w.row(ExpensesSheet, 1, "Date", "Category", "Description", "Amount")
	w.bold(ExpensesSheet, "A1", "D1")
	for i, e := range expenses {
		w.row(ExpensesSheet, i+2, e.Date.String(), e.Category, e.Description, e.Amount)
	}
	w.width(ExpensesSheet, "A", "D", 16)

	w.row(BudgetsSheet, 1, "Category", "Limit", "Spent", "Remaining")
	w.bold(BudgetsSheet, "A1", "D1")
	for i, c := range view.Categories {
		w.row(BudgetsSheet, i+2, c.Category, c.Limit, c.Spent, c.Remaining)
	}
	w.width(BudgetsSheet, "A", "D", 16)

	if w.err != nil {
		return nil, w.err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter fills cells and keeps the first error.
type sheetWriter struct {
	f      *excelize.File
	header int
	money  int
	err    error
}

// row writes values from column A of row. Decimals become numeric cells
// in the money format.
func (w *sheetWriter) row(sheet string, row int, values ...any) {
	for i, v := range values {
		if w.err != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			w.err = err
			return
		}
		if d, ok := v.(decimal.Decimal); ok {
			if err := w.f.SetCellFloat(sheet, cell, d.Round(2).InexactFloat64(), -1, 64); err != nil {
				w.err = fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
				return
			}
			if err := w.f.SetCellStyle(sheet, cell, cell, w.money); err != nil {
				w.err = fmt.Errorf("styling %s!%s: %w", sheet, cell, err)
			}
			continue
		}
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			w.err = fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
		}
	}
}

func (w *sheetWriter) bold(sheet, from, to string) {
	if w.err == nil {
		w.err = w.f.SetCellStyle(sheet, from, to, w.header)
	}
}

func (w *sheetWriter) width(sheet, from, to string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(sheet, from, to, width)
	}
}
