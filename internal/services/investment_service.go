package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "financio/internal/errors"
	"financio/internal/models"
	"financio/internal/pagination"
)

// investmentService handles investment position business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// CreateInvestment creates a new investment position. A zero current
// value defaults to the invested amount.
func (s *investmentService) CreateInvestment(userID string, investmentType models.InvestmentType, assetName string, amountInvested, currentValue float64, purchaseDate time.Time) (*models.Investment, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(assetName) == "" {
		fields["asset_name"] = "is required"
	}
	switch investmentType {
	case models.InvestmentTypeStock, models.InvestmentTypeFund, models.InvestmentTypeCrypto, models.InvestmentTypePension:
	default:
		fields["type"] = "must be stock, fund, crypto, or pension"
	}
	if amountInvested <= 0 {
		fields["amount_invested"] = "must be greater than zero"
	}
	if currentValue < 0 {
		fields["current_value"] = "must not be negative"
	}
	if purchaseDate.IsZero() {
		fields["purchase_date"] = "is required"
	}
	if len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fields)
	}

	if currentValue == 0 {
		currentValue = amountInvested
	}

	investment := &models.Investment{
		UserID:         userID,
		Type:           investmentType,
		AssetName:      strings.TrimSpace(assetName),
		AmountInvested: amountInvested,
		CurrentValue:   currentValue,
		PurchaseDate:   purchaseDate,
	}

	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investment, nil
}

// GetUserInvestments retrieves a paginated list of the user's investments,
// optionally filtered by type.
func (s *investmentService) GetUserInvestments(userID string, investmentType *models.InvestmentType, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	page.Defaults()

	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)
	if investmentType != nil {
		base = base.Where("type = ?", *investmentType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := base.Scopes(pagination.Paginate(page)).
		Order("purchase_date DESC").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvestmentByID retrieves an investment by ID for a specific user
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investment, nil
}

// UpdateInvestment applies a merge patch to an investment position.
func (s *investmentService) UpdateInvestment(userID, investmentID string, fields InvestmentUpdateFields) (*models.Investment, error) {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return nil, err
	}

	fieldErrs := make(map[string]string)
	if fields.AssetName != nil && strings.TrimSpace(*fields.AssetName) == "" {
		fieldErrs["asset_name"] = "must not be empty"
	}
	if fields.Type != nil {
		switch *fields.Type {
		case models.InvestmentTypeStock, models.InvestmentTypeFund, models.InvestmentTypeCrypto, models.InvestmentTypePension:
		default:
			fieldErrs["type"] = "must be stock, fund, crypto, or pension"
		}
	}
	if fields.AmountInvested != nil && *fields.AmountInvested <= 0 {
		fieldErrs["amount_invested"] = "must be greater than zero"
	}
	if fields.CurrentValue != nil && *fields.CurrentValue < 0 {
		fieldErrs["current_value"] = "must not be negative"
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fieldErrs)
	}

	if fields.Type != nil {
		investment.Type = *fields.Type
	}
	if fields.AssetName != nil {
		investment.AssetName = strings.TrimSpace(*fields.AssetName)
	}
	if fields.AmountInvested != nil {
		investment.AmountInvested = *fields.AmountInvested
	}
	if fields.CurrentValue != nil {
		investment.CurrentValue = *fields.CurrentValue
	}
	if fields.PurchaseDate != nil {
		investment.PurchaseDate = *fields.PurchaseDate
	}

	if err := s.db.Save(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investment, nil
}

// DeleteInvestment deletes an investment position.
func (s *investmentService) DeleteInvestment(userID, investmentID string) error {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(investment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
