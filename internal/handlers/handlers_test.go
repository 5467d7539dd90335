package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/money_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/handlers"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/SscSPs/money_tracker/internal/utils"
)

const testJWTSecret = "handler-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		LoginRateLimit:    "100-M",
		FrontendBaseURL:   "http://localhost:5173",
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, container *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container))
	return r
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, "test")
	require.NoError(t, err)
	return token
}

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *RouterTestSuite) SetupTest() {
	container := services.NewServiceContainer(memory.NewRepositoryProvider())
	s.router = newTestRouter(s.T(), testConfig(), container)
}

func (s *RouterTestSuite) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(s.T(), userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) register(username, email string) dto.UserResponse {
	w := s.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: username, Email: email, Password: "secret-pass"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var user dto.UserResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func (s *RouterTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *RouterTestSuite) TestRegisterAndLogin() {
	user := s.register("ana", "ana@example.com")
	s.NotEmpty(user.UserID)

	dup := s.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "ana2", Email: "ANA@example.com", Password: "secret-pass"})
	s.Equal(http.StatusConflict, dup.Code)

	short := s.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "bo", Email: "bo@example.com", Password: "x"})
	s.Equal(http.StatusBadRequest, short.Code)

	w := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "secret-pass"})
	s.Require().Equal(http.StatusOK, w.Code)
	var login dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &login))
	claims, err := utils.ParseAndValidateJWT(login.Token, testJWTSecret)
	s.Require().NoError(err)
	s.Equal(user.UserID, claims.Subject)

	wrong := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "nope-nope"})
	s.Equal(http.StatusUnauthorized, wrong.Code)

	unknown := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "who@example.com", Password: "secret-pass"})
	s.Equal(http.StatusUnauthorized, unknown.Code)
}

func (s *RouterTestSuite) TestBudgetLifecycle() {
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/budgets/u1", "", nil).Code)

	w := s.do(http.MethodPost, "/api/budgets", "u1", map[string]any{"category": "Food", "limit": "300"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.BudgetResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal(domain.OwnerID("u1"), created.UserID)
	s.NotEmpty(created.ID)

	list := s.do(http.MethodGet, "/api/budgets/u1", "u1", nil)
	s.Require().Equal(http.StatusOK, list.Code)
	var budgets []dto.BudgetResponse
	s.Require().NoError(json.Unmarshal(list.Body.Bytes(), &budgets))
	s.Len(budgets, 1)

	s.Equal(http.StatusForbidden, s.do(http.MethodGet, "/api/budgets/u1", "u2", nil).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/api/budgets", "u2", map[string]any{"userId": "u1", "category": "Food", "limit": 1}).Code)

	path := "/api/budgets/" + created.ID.String()
	s.Equal(http.StatusNotFound, s.do(http.MethodPut, path, "u2", map[string]any{"limit": "1"}).Code)

	upd := s.do(http.MethodPut, path, "u1", map[string]any{"limit": "350.25"})
	s.Require().Equal(http.StatusOK, upd.Code, upd.Body.String())
	var updated dto.BudgetResponse
	s.Require().NoError(json.Unmarshal(upd.Body.Bytes(), &updated))
	s.Equal("350.25", updated.Limit.String())
	s.Equal("Food", updated.Category)

	s.Equal(http.StatusBadRequest, s.do(http.MethodPut, path, "u1", map[string]any{"limit": "-1"}).Code)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, "u1", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, "u1", nil).Code)
}

func (s *RouterTestSuite) TestExpenseLifecycle() {
	w := s.do(http.MethodPost, "/api/expenses", "u1", map[string]any{
		"userId":      "u1",
		"category":    "Food",
		"amount":      12.5,
		"description": "lunch",
		"date":        "2024-03-05",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.ExpenseResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal("2024-03-05", created.Date.String())

	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/expenses", "u1", map[string]any{"amount": "5"}).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/expenses", "u1", map[string]any{"category": "Food", "amount": "-5"}).Code)

	path := "/api/expenses/" + created.ID.String()
	upd := s.do(http.MethodPut, path, "u1", map[string]any{"category": "Travel"})
	s.Require().Equal(http.StatusOK, upd.Code)
	var updated dto.ExpenseResponse
	s.Require().NoError(json.Unmarshal(upd.Body.Bytes(), &updated))
	s.Equal("Travel", updated.Category)
	s.Equal("lunch", updated.Description)

	list := s.do(http.MethodGet, "/api/expenses/u1", "u1", nil)
	s.Require().Equal(http.StatusOK, list.Code)
	s.JSONEq(`[{"id":"`+created.ID.String()+`","userId":"u1","category":"Travel","amount":"12.5","description":"lunch","date":"2024-03-05"}]`, list.Body.String())

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, "u1", nil).Code)
}

func (s *RouterTestSuite) TestReportDownload() {
	today := domain.DateOf(time.Now()).String()
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/expenses", "u1", map[string]any{"category": "Food", "amount": "10", "date": today}).Code)

	w := s.do(http.MethodGet, "/api/reports/monthly", "u1", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(services.XLSXContentType, w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "monthly-report.xlsx")
	book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	s.Require().NoError(err)
	defer book.Close()
	spent, err := book.GetCellValue(services.SummarySheet, "B7", excelize.Options{RawCellValue: true})
	s.Require().NoError(err)
	s.Equal("10", spent)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/reports/weekly", "u1", nil).Code)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestLoginIsRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = "1-M"
	router := newTestRouter(t, cfg, services.NewServiceContainer(memory.NewRepositoryProvider()))

	var codes []int
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":"a@example.com","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestRegisterRoutes_BadRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = "often"
	gin.SetMode(gin.TestMode)

	err := handlers.RegisterRoutes(gin.New(), cfg, services.NewServiceContainer(memory.NewRepositoryProvider()))

	assert.Error(t, err)
}

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ListBudgets(ctx context.Context, owner domain.OwnerID, requestingUserID string) ([]domain.Budget, error) {
	args := m.Called(ctx, owner, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, budget domain.Budget, requestingUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, budget, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) UpdateBudget(ctx context.Context, id domain.RecordID, patch domain.BudgetPatch, requestingUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, id, patch, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) DeleteBudget(ctx context.Context, id domain.RecordID, requestingUserID string) error {
	args := m.Called(ctx, id, requestingUserID)
	return args.Error(0)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

func TestListBudgets_InternalErrorIsHidden(t *testing.T) {
	budgetSvc := new(MockBudgetService)
	budgetSvc.On("ListBudgets", mock.Anything, domain.OwnerID("u1"), "u1").Return(nil, assert.AnError).Once()
	container := services.NewServiceContainer(memory.NewRepositoryProvider())
	container.Budget = budgetSvc
	router := newTestRouter(t, testConfig(), container)

	req := httptest.NewRequest(http.MethodGet, "/api/budgets/u1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, "u1"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to list budgets"}`, w.Body.String())
	budgetSvc.AssertExpectations(t)
}
