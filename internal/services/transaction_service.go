package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "financio/internal/errors"
	"financio/internal/invoice"
	"financio/internal/models"
	"financio/internal/pagination"
)

// transactionService handles transaction-related business logic. It owns
// the payment source invariant: every transaction references exactly one
// of a bank account or a credit card, and card transactions carry the
// invoice month computed from the card's closing day.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
	cardService    CreditCardServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer, cardService CreditCardServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
		cardService:    cardService,
	}
}

// CreateTransaction validates and persists a new transaction. All field
// violations are reported together; the payment source lookup and the
// invoice month computation happen before any write, so a failed lookup
// never leaves a partial record behind.
func (s *transactionService) CreateTransaction(userID string, input NewTransaction) (*models.Transaction, error) {
	if input.AccountID != "" && input.CreditCardID != "" {
		return nil, apperrors.ErrBothPaymentSources
	}
	if input.AccountID == "" && input.CreditCardID == "" {
		return nil, apperrors.ErrNoPaymentSource
	}

	if fields := validateTransactionFields(input.Type, input.Category, input.Amount); len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fields)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:          userID,
		Type:            input.Type,
		Category:        strings.TrimSpace(input.Category),
		Amount:          input.Amount,
		Description:     input.Description,
		TransactionDate: date,
	}

	if input.CreditCardID != "" {
		card, err := s.cardService.GetCreditCardByID(userID, input.CreditCardID)
		if err != nil {
			return nil, err
		}
		transaction.CreditCardID = &card.ID
		transaction.InvoiceMonth = invoice.MonthOf(date, card.ClosingDay)
	} else {
		account, err := s.accountService.GetAccountByID(userID, input.AccountID)
		if err != nil {
			return nil, err
		}
		transaction.AccountID = &account.ID
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// UpdateTransaction applies a merge patch to an existing transaction.
// The payment source invariant is revalidated against the effective
// (post-patch) values. The invoice month is recomputed only when the
// effective credit card is set and either the card or the date changed;
// a description-only edit never touches it, and a card closing day
// changed after assignment never retroactively moves past invoices.
func (s *transactionService) UpdateTransaction(userID, transactionID string, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	effAccount := deref(transaction.AccountID)
	if fields.AccountID != nil {
		effAccount = *fields.AccountID
	}

	effCard := deref(transaction.CreditCardID)
	cardChanged := false
	if fields.CreditCardID != nil && *fields.CreditCardID != effCard {
		effCard = *fields.CreditCardID
		cardChanged = true
	}

	if effAccount != "" && effCard != "" {
		return nil, apperrors.ErrBothPaymentSources
	}
	if effAccount == "" && effCard == "" {
		return nil, apperrors.ErrNoPaymentSource
	}

	fieldErrs := make(map[string]string)
	if fields.Amount != nil && *fields.Amount <= 0 {
		fieldErrs["amount"] = "must be greater than zero"
	}
	if fields.Type != nil && *fields.Type != models.TransactionTypeIncome && *fields.Type != models.TransactionTypeExpense {
		fieldErrs["type"] = "must be income or expense"
	}
	if fields.Category != nil && strings.TrimSpace(*fields.Category) == "" {
		fieldErrs["category"] = "must not be empty"
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fieldErrs)
	}

	effDate := transaction.TransactionDate
	dateChanged := false
	if fields.Date != nil && !fields.Date.Equal(transaction.TransactionDate) {
		effDate = *fields.Date
		dateChanged = true
	}

	// Resolve the card and recompute the invoice month before mutating
	// anything, so a missing card leaves the record untouched.
	if effCard != "" && (cardChanged || dateChanged) {
		card, err := s.cardService.GetCreditCardByID(userID, effCard)
		if err != nil {
			return nil, err
		}
		transaction.InvoiceMonth = invoice.MonthOf(effDate, card.ClosingDay)
	}
	if effCard == "" {
		transaction.InvoiceMonth = ""
	}

	transaction.AccountID = optionalID(effAccount)
	transaction.CreditCardID = optionalID(effCard)
	if fields.Type != nil {
		transaction.Type = *fields.Type
	}
	if fields.Category != nil {
		transaction.Category = strings.TrimSpace(*fields.Category)
	}
	if fields.Amount != nil {
		transaction.Amount = *fields.Amount
	}
	if fields.Description != nil {
		transaction.Description = *fields.Description
	}
	if fields.Date != nil {
		transaction.TransactionDate = *fields.Date
	}

	// Last write wins; there is no optimistic concurrency check on the
	// lookup-compute-save sequence.
	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's transactions.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.FromDate != nil {
		q = q.Where("transaction_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("transaction_date <= ?", *f.ToDate)
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	if f.CreditCardID != nil {
		q = q.Where("credit_card_id = ?", *f.CreditCardID)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction deletes a transaction
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// validateTransactionFields collects every violated field constraint so
// the caller can report them all at once.
func validateTransactionFields(transactionType models.TransactionType, category string, amount float64) map[string]string {
	fields := make(map[string]string)
	if amount <= 0 {
		fields["amount"] = "must be greater than zero"
	}
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		fields["type"] = "must be income or expense"
	}
	if strings.TrimSpace(category) == "" {
		fields["category"] = "is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
