package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "financio/internal/errors"
	"financio/internal/models"
)

// reportService computes read-only aggregates over a user's finances.
// It is the single source of truth for monthly totals; clients never
// derive these numbers themselves.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GetMonthlyReport aggregates the user's income, expenses, category
// breakdowns, and total wealth for one calendar month.
func (s *reportService) GetMonthlyReport(userID string, year, month int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be positive")
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := firstDay.AddDate(0, 1, 0)

	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ? AND transaction_date >= ? AND transaction_date < ?", userID, firstDay, nextMonth).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	report := &MonthlyReport{
		Year:               year,
		Month:              month,
		IncomeByCategory:   make(map[string]float64),
		ExpensesByCategory: make(map[string]float64),
		TransactionCount:   len(transactions),
	}

	for i := range transactions {
		t := &transactions[i]
		switch t.Type {
		case models.TransactionTypeIncome:
			report.Income += t.Amount
			report.IncomeByCategory[t.Category] += t.Amount
		case models.TransactionTypeExpense:
			report.Expenses += t.Amount
			report.ExpensesByCategory[t.Category] += t.Amount
		}
	}
	report.NetBalance = report.Income - report.Expenses

	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range accounts {
		report.TotalAccountBalance += accounts[i].CurrentBalance
	}

	var investments []models.Investment
	if err := s.db.Where("user_id = ?", userID).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range investments {
		report.TotalInvestments += investments[i].CurrentValue
	}

	report.TotalWealth = report.TotalAccountBalance + report.TotalInvestments
	return report, nil
}
