package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports"
)

var (
	_ ports.ExpenseGateway = (*CollectionGateway[domain.Expense, domain.ExpenseDraft, domain.ExpensePatch])(nil)
	_ ports.BudgetGateway  = (*CollectionGateway[domain.Budget, domain.BudgetDraft, domain.BudgetPatch])(nil)
	_ ports.AuthGateway    = (*AuthGateway)(nil)
	_ ports.ReportGateway  = (*ReportGateway)(nil)
)

// CollectionGateway maps one record collection onto its REST resource:
//
//	GET    /{resource}/{ownerId}
//	POST   /{resource}
//	PUT    /{resource}/{id}
//	DELETE /{resource}/{id}
type CollectionGateway[R any, D any, P any] struct {
	client     *Client
	resource   string
	createBody func(domain.OwnerID, D) any
	patchBody  func(P) any
}

func NewExpenseGateway(client *Client) *CollectionGateway[domain.Expense, domain.ExpenseDraft, domain.ExpensePatch] {
	return &CollectionGateway[domain.Expense, domain.ExpenseDraft, domain.ExpensePatch]{
		client:     client,
		resource:   "expenses",
		createBody: newExpensePayload,
		patchBody:  newExpensePatchPayload,
	}
}

func NewBudgetGateway(client *Client) *CollectionGateway[domain.Budget, domain.BudgetDraft, domain.BudgetPatch] {
	return &CollectionGateway[domain.Budget, domain.BudgetDraft, domain.BudgetPatch]{
		client:     client,
		resource:   "budgets",
		createBody: newBudgetPayload,
		patchBody:  newBudgetPatchPayload,
	}
}

func (g *CollectionGateway[R, D, P]) List(ctx context.Context, owner domain.OwnerID) ([]R, error) {
	var records []R
	if _, err := g.client.sendJSON(ctx, http.MethodGet, nil, &records, g.resource, owner.String()); err != nil {
		return nil, fmt.Errorf("listing %s: %w", g.resource, err)
	}
	return records, nil
}

// Create posts draft for owner; the id is left for the store to assign.
func (g *CollectionGateway[R, D, P]) Create(ctx context.Context, owner domain.OwnerID, draft D) (R, error) {
	var created R
	if _, err := g.client.sendJSON(ctx, http.MethodPost, g.createBody(owner, draft), &created, g.resource); err != nil {
		return created, fmt.Errorf("creating in %s: %w", g.resource, err)
	}
	return created, nil
}

func (g *CollectionGateway[R, D, P]) Update(ctx context.Context, id domain.RecordID, patch P) (R, error) {
	var updated R
	if _, err := g.client.sendJSON(ctx, http.MethodPut, g.patchBody(patch), &updated, g.resource, id.String()); err != nil {
		return updated, fmt.Errorf("updating %s %s: %w", g.resource, id, err)
	}
	return updated, nil
}

func (g *CollectionGateway[R, D, P]) Delete(ctx context.Context, id domain.RecordID) error {
	if _, err := g.client.sendJSON(ctx, http.MethodDelete, nil, nil, g.resource, id.String()); err != nil {
		return fmt.Errorf("deleting %s %s: %w", g.resource, id, err)
	}
	return nil
}

// AuthGateway exchanges credentials at /auth.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (string, int, error) {
	var out loginResponse
	status, err := g.client.sendJSON(ctx, http.MethodPost, loginRequest{Email: email, Password: password}, &out, "auth", "login")
	if err != nil {
		return "", status, fmt.Errorf("login: %w", err)
	}
	return out.Token, status, nil
}

func (g *AuthGateway) Register(ctx context.Context, username, email, password string) (int, error) {
	status, err := g.client.sendJSON(ctx, http.MethodPost, registerRequest{Username: username, Email: email, Password: password}, nil, "auth", "register")
	if err != nil {
		return status, fmt.Errorf("register: %w", err)
	}
	return status, nil
}

// ReportGateway downloads rendered reports from /reports/{period}.
type ReportGateway struct {
	client *Client
}

func NewReportGateway(client *Client) *ReportGateway {
	return &ReportGateway{client: client}
}

func (g *ReportGateway) FetchReport(ctx context.Context, period domain.ReportPeriod) (*domain.Report, error) {
	res, err := g.client.send(ctx, http.MethodGet, nil, "reports", string(period))
	if err != nil {
		return nil, fmt.Errorf("fetching %s report: %w", period, err)
	}
	return &domain.Report{Period: period, ContentType: res.contentType, Body: res.body}, nil
}
