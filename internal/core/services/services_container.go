package services

import (
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.UserRepo),
		Budget:    NewBudgetService(repos.BudgetRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo),
		Reporting: NewReportingService(repos.BudgetRepo, repos.ExpenseRepo),
	}
}
