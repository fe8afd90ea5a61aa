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

// creditCardService handles credit card business logic, including the
// invoice aggregation over a card's billing cycle.
type creditCardService struct {
	db *gorm.DB
}

// NewCreditCardService creates a new CreditCardServicer.
func NewCreditCardService(db *gorm.DB) CreditCardServicer {
	return &creditCardService{db: db}
}

// CreateCreditCard creates a new credit card for a user. The current
// invoice month is defaulted from the creation date here, explicitly,
// rather than by a persistence hook.
func (s *creditCardService) CreateCreditCard(userID, name string, limit float64, closingDay, dueDay int) (*models.CreditCard, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(name) == "" {
		fields["name"] = "is required"
	}
	if limit <= 0 {
		fields["limit"] = "must be greater than zero"
	}
	if closingDay < 1 || closingDay > 31 {
		fields["closing_day"] = "must be between 1 and 31"
	}
	if dueDay < 1 || dueDay > 31 {
		fields["due_day"] = "must be between 1 and 31"
	}
	if len(fields) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fields)
	}

	card := &models.CreditCard{
		UserID:              userID,
		Name:                strings.TrimSpace(name),
		Limit:               limit,
		ClosingDay:          closingDay,
		DueDay:              dueDay,
		CurrentInvoiceMonth: invoice.CurrentMonth(time.Now()),
	}

	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// GetUserCreditCards retrieves a paginated list of the user's credit cards.
func (s *creditCardService) GetUserCreditCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error) {
	page.Defaults()

	base := s.db.Model(&models.CreditCard{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.CreditCard
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(cards, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCreditCardByID retrieves a credit card by ID for a specific user
func (s *creditCardService) GetCreditCardByID(userID, cardID string) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCreditCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// UpdateCreditCard applies a merge patch to a credit card. A changed
// closing day only affects invoice assignment from this point on; past
// transactions keep the invoice month they were assigned at write time.
func (s *creditCardService) UpdateCreditCard(userID, cardID string, fields CreditCardUpdateFields) (*models.CreditCard, error) {
	card, err := s.GetCreditCardByID(userID, cardID)
	if err != nil {
		return nil, err
	}

	fieldErrs := make(map[string]string)
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		fieldErrs["name"] = "must not be empty"
	}
	if fields.Limit != nil && *fields.Limit <= 0 {
		fieldErrs["limit"] = "must be greater than zero"
	}
	if fields.ClosingDay != nil && (*fields.ClosingDay < 1 || *fields.ClosingDay > 31) {
		fieldErrs["closing_day"] = "must be between 1 and 31"
	}
	if fields.DueDay != nil && (*fields.DueDay < 1 || *fields.DueDay > 31) {
		fieldErrs["due_day"] = "must be between 1 and 31"
	}
	if len(fieldErrs) > 0 {
		return nil, apperrors.WithFields(apperrors.ErrInvalidInput, fieldErrs)
	}

	if fields.CurrentInvoiceMonth != nil && !invoice.ValidMonth(*fields.CurrentInvoiceMonth) {
		return nil, apperrors.ErrInvalidInvoiceMonth
	}

	if fields.Name != nil {
		card.Name = strings.TrimSpace(*fields.Name)
	}
	if fields.Limit != nil {
		card.Limit = *fields.Limit
	}
	if fields.ClosingDay != nil {
		card.ClosingDay = *fields.ClosingDay
	}
	if fields.DueDay != nil {
		card.DueDay = *fields.DueDay
	}
	if fields.CurrentInvoiceMonth != nil {
		card.CurrentInvoiceMonth = *fields.CurrentInvoiceMonth
	}

	if err := s.db.Save(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// DeleteCreditCard deletes a credit card, refusing while any transaction
// still references it.
func (s *creditCardService) DeleteCreditCard(userID, cardID string) error {
	card, err := s.GetCreditCardByID(userID, cardID)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("credit_card_id = ?", card.ID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrCreditCardInUse
	}

	if err := s.db.Delete(card).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetInvoice computes the aggregate for one billing cycle of a card:
// the matching transactions ordered by date descending (insertion order
// breaks ties via the time-ordered primary key), their total, and the
// limit remaining after it. Read-only and safe to call repeatedly.
func (s *creditCardService) GetInvoice(userID, cardID, invoiceMonth string) (*Invoice, error) {
	if !invoice.ValidMonth(invoiceMonth) {
		return nil, apperrors.ErrInvalidInvoiceMonth
	}

	card, err := s.GetCreditCardByID(userID, cardID)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.
		Where("credit_card_id = ? AND invoice_month = ?", card.ID, invoiceMonth).
		Order("transaction_date DESC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total float64
	for i := range transactions {
		total += transactions[i].Amount
	}

	return &Invoice{
		CreditCard:     card,
		InvoiceMonth:   invoiceMonth,
		Transactions:   transactions,
		Total:          total,
		AvailableLimit: card.Limit - total,
	}, nil
}
