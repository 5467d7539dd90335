package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// ReportingSvc renders downloadable reports.
type ReportingSvc interface {
	// GenerateReport renders the period containing now for the user.
	GenerateReport(ctx context.Context, userID string, period domain.ReportPeriod, now time.Time) (*domain.Report, error)
}
