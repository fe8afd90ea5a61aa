package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financio/internal/errors"
	"financio/internal/services"
)

// ReportHandler handles report-related requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlyReport handles generating a monthly financial summary
// @Summary     Get monthly report
// @Description Get income, expenses, category breakdowns, and total wealth for one calendar month. Defaults to the current month.
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year (default: current year)"
// @Param       month query int false "Month 1-12 (default: current month)"
// @Success     200 {object} services.MonthlyReport "Monthly report"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed < 1970 || parsed > 9999 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year"))
			return
		}
		year = parsed
	}

	if v := c.Query("month"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month"))
			return
		}
		month = parsed
	}

	report, err := h.reportService.GetMonthlyReport(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
