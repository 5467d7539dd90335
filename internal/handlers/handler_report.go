package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/middleware"
)

type reportHandler struct {
	reportingService portssvc.ReportingSvc
	now              func() time.Time
}

func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := &reportHandler{reportingService: reportingService, now: time.Now}
	rg.GET("/reports/:period", h.downloadReport)
}

// downloadReport renders the caller's report for the current month or year.
func (h *reportHandler) downloadReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUser(c, logger)
	if !ok {
		return
	}
	period := domain.ReportPeriod(c.Param("period"))
	logger = logger.With(slog.String("period", string(period)))

	report, err := h.reportingService.GenerateReport(c.Request.Context(), userID, period, h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-report.xlsx"`, period))
	c.Data(http.StatusOK, report.ContentType, report.Body)
}
