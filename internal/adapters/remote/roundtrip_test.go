package remote_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/money_tracker/internal/adapters/credentials"
	"github.com/SscSPs/money_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/money_tracker/internal/adapters/remote"
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/core/tracker"
	"github.com/SscSPs/money_tracker/internal/handlers"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
)

// TestRoundTrip drives the tracker core against the reference server.
func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	require.NoError(t, handlers.RegisterRoutes(router, &config.Config{
		JWTSecret:         "roundtrip-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		LoginRateLimit:    "100-M",
	}, services.NewServiceContainer(repos)))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	creds := credentials.NewMemoryStore()
	client, err := remote.NewClient(srv.URL+"/api", creds, 5*time.Second, nil)
	require.NoError(t, err)

	auth := tracker.NewAuthSession(remote.NewAuthGateway(client), creds, nil)
	require.NoError(t, auth.Register(ctx, "ana", "ana@example.com", "secret-pass"))
	require.ErrorIs(t, auth.Register(ctx, "ana", "ana@example.com", "secret-pass"), apperrors.ErrDuplicate)
	require.Error(t, auth.Login(ctx, "ana@example.com", "wrong-pass"))
	assert.False(t, auth.Authenticated())
	require.NoError(t, auth.Login(ctx, "ana@example.com", "secret-pass"))
	assert.True(t, auth.Authenticated())

	user, err := repos.UserRepo.FindUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	owner := domain.OwnerID(user.UserID)

	budgets := tracker.NewBudgetStore(owner, remote.NewBudgetGateway(client), nil)
	expenses := tracker.NewExpenseStore(owner, remote.NewExpenseGateway(client), nil)
	dashboard := tracker.NewDashboard(budgets, expenses)

	today := domain.DateOf(time.Now())
	require.NoError(t, budgets.Submit(ctx, domain.BudgetDraft{Category: "Food", Limit: decimal.NewFromInt(300)}))
	require.NoError(t, expenses.Submit(ctx, domain.ExpenseDraft{Category: "Food", Amount: decimal.RequireFromString("120"), Date: today}))
	require.NoError(t, expenses.Submit(ctx, domain.ExpenseDraft{Category: "Food", Amount: decimal.RequireFromString("90"), Description: "groceries", Date: today}))
	assert.Equal(t, "Expense successfully created", expenses.Feedback().Success)

	require.NoError(t, dashboard.Refresh(ctx))
	view := dashboard.View()
	assert.True(t, view.TotalSpent.Equal(decimal.NewFromInt(210)), view.TotalSpent.String())
	assert.True(t, view.RemainingBudget.Equal(decimal.NewFromInt(90)), view.RemainingBudget.String())

	// Edit sends only the changed amount; the description survives on the server.
	records := expenses.Records()
	require.Len(t, records, 2)
	expenses.BeginEdit(records[1])
	draft := expenses.Session().Draft
	draft.Amount = decimal.NewFromInt(50)
	require.NoError(t, expenses.Submit(ctx, draft))
	updated, ok := expenses.Find(records[1].ID)
	require.True(t, ok)
	assert.Equal(t, "groceries", updated.Description)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(50)))
	assert.False(t, expenses.Session().Editing())

	path, err := tracker.NewReportDownloader(remote.NewReportGateway(client), nil).Download(ctx, domain.ReportMonthly, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "monthly-report.xlsx", filepath.Base(path))
	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	spent, err := book.GetCellValue(services.SummarySheet, "B7", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "170", spent)
	require.NoError(t, book.Close())

	require.NoError(t, expenses.Remove(ctx, records[0].ID))
	assert.Len(t, expenses.Records(), 1)

	require.NoError(t, auth.Logout())
	err = budgets.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	kind, failed := budgets.LastFailure()
	assert.True(t, failed)
	assert.Equal(t, apperrors.LoadFailure, kind)
	assert.Len(t, budgets.Records(), 1, "a failed load keeps the cache")
}
