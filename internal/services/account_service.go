package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "financio/internal/errors"
	"financio/internal/models"
	"financio/internal/pagination"
)

// accountService handles bank account business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new bank account for a user. The current
// balance starts equal to the initial balance, set here explicitly.
func (s *accountService) CreateAccount(userID, name string, accountType models.AccountType, initialBalance float64) (*models.Account, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		fields["name"] = "is required"
	}
	switch accountType {
	case models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeInvestment, models.AccountTypeCash:
	default:
		fields["type"] = "must be checking, savings, investment, or cash"
	}
	if len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fields)
	}

	account := &models.Account{
		UserID:         userID,
		Name:           strings.TrimSpace(name),
		Type:           accountType,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// GetUserAccounts retrieves a paginated list of the user's accounts,
// optionally filtered by type.
func (s *accountService) GetUserAccounts(userID string, accountType *models.AccountType, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	base := s.db.Model(&models.Account{}).Where("user_id = ?", userID)
	if accountType != nil {
		base = base.Where("type = ?", *accountType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountByID retrieves an account by ID for a specific user
func (s *accountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount applies a merge patch to an account.
func (s *accountService) UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	fieldErrs := make(map[string]string)
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		fieldErrs["name"] = "must not be empty"
	}
	if fields.Type != nil {
		switch *fields.Type {
		case models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeInvestment, models.AccountTypeCash:
		default:
			fieldErrs["type"] = "must be checking, savings, investment, or cash"
		}
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fieldErrs)
	}

	if fields.Name != nil {
		account.Name = strings.TrimSpace(*fields.Name)
	}
	if fields.Type != nil {
		account.Type = *fields.Type
	}
	if fields.InitialBalance != nil {
		account.InitialBalance = *fields.InitialBalance
	}
	if fields.CurrentBalance != nil {
		account.CurrentBalance = *fields.CurrentBalance
	}

	if err := s.db.Save(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// DeleteAccount deletes an account, refusing while any transaction still
// references it.
func (s *accountService) DeleteAccount(userID, accountID string) error {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("account_id = ?", account.ID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrAccountInUse
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
