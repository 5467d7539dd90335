package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/ports"
)

const msgReportFailed = "Failed to generate report"

// ReportDownloader saves remote reports as local files.
type ReportDownloader struct {
	gateway ports.ReportGateway
	logger  *slog.Logger
}

func NewReportDownloader(gateway ports.ReportGateway, logger *slog.Logger) *ReportDownloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportDownloader{gateway: gateway, logger: logger.With(slog.String("component", "reports"))}
}

// Download fetches the report for period and writes it to dir as
// "<period>-report.xlsx". It returns the written path.
func (d *ReportDownloader) Download(ctx context.Context, period domain.ReportPeriod, dir string) (string, error) {
	if !period.Valid() {
		return "", d.fail(fmt.Errorf("%w: unknown report period %q", apperrors.ErrValidation, period))
	}

	report, err := d.gateway.FetchReport(ctx, period)
	if err != nil {
		return "", d.fail(err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", d.fail(fmt.Errorf("creating report directory: %w", err))
	}
	path := filepath.Join(dir, ReportFileName(period))
	if err := os.WriteFile(path, report.Body, 0o644); err != nil {
		return "", d.fail(fmt.Errorf("writing report: %w", err))
	}

	d.logger.Info("Report saved", slog.String("period", string(period)), slog.String("path", path), slog.Int("bytes", len(report.Body)), slog.String("content_type", report.ContentType))
	return path, nil
}

// ReportFileName names a saved report spreadsheet.
func ReportFileName(period domain.ReportPeriod) string {
	return fmt.Sprintf("%s-report.xlsx", period)
}

func (d *ReportDownloader) fail(cause error) error {
	d.logger.Error(msgReportFailed, slog.String("error", cause.Error()))
	return apperrors.NewOperationError(apperrors.ReportFailure, msgReportFailed, cause)
}
