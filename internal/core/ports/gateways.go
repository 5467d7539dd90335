package ports

import (
	"context"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// RecordGateway is the remote store of one record collection.
// R is the record, D its draft and P its patch type.
type RecordGateway[R any, D any, P any] interface {
	// List returns every record of owner in the store's order.
	List(ctx context.Context, owner domain.OwnerID) ([]R, error)
	// Create persists a new record built from draft for owner.
	Create(ctx context.Context, owner domain.OwnerID, draft D) (R, error)
	// Update applies patch to the record addressed by id.
	Update(ctx context.Context, id domain.RecordID, patch P) (R, error)
	// Delete removes the record addressed by id.
	Delete(ctx context.Context, id domain.RecordID) error
}

// ExpenseGateway is the remote expense collection.
type ExpenseGateway = RecordGateway[domain.Expense, domain.ExpenseDraft, domain.ExpensePatch]

// BudgetGateway is the remote budget collection.
type BudgetGateway = RecordGateway[domain.Budget, domain.BudgetDraft, domain.BudgetPatch]

// AuthGateway performs the credential exchanges. Status is the HTTP status the
// remote answered with; callers decide which statuses they accept.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, status int, err error)
	Register(ctx context.Context, username, email, password string) (status int, err error)
}

// ReportGateway fetches rendered reports.
type ReportGateway interface {
	FetchReport(ctx context.Context, period domain.ReportPeriod) (*domain.Report, error)
}

// CredentialProvider stores the bearer token between requests.
// It is set on login, read on every outgoing request and cleared on logout.
type CredentialProvider interface {
	Get() (token string, ok bool)
	Set(token string) error
	Clear() error
}
