package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financio/internal/errors"
	"financio/internal/invoice"
	"financio/internal/pagination"
	"financio/internal/services"
)

// CreditCardHandler handles credit card-related requests.
type CreditCardHandler struct {
	cardService services.CreditCardServicer
}

// NewCreditCardHandler creates a new CreditCardHandler.
func NewCreditCardHandler(cardService services.CreditCardServicer) *CreditCardHandler {
	return &CreditCardHandler{cardService: cardService}
}

// CreateCreditCardRequest represents the request payload for creating a credit card
type CreateCreditCardRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Limit      float64 `json:"limit" binding:"required,gt=0"`
	ClosingDay int     `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay     int     `json:"due_day" binding:"required,min=1,max=31"`
}

// CreateCreditCard handles the creation of a new credit card
// @Summary     Create a credit card
// @Description Register a credit card with its limit and billing cycle days
// @Tags        credit-cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCreditCardRequest true "Credit card details"
// @Success     201 {object} models.CreditCard "Credit card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards [post]
func (h *CreditCardHandler) CreateCreditCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCreditCard(userID, req.Name, req.Limit, req.ClosingDay, req.DueDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"credit_card": card})
}

// GetUserCreditCards handles listing the authenticated user's credit cards
// @Summary     List credit cards
// @Description Get a paginated list of the authenticated user's credit cards
// @Tags        credit-cards
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CreditCard] "Paginated credit cards"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards [get]
func (h *CreditCardHandler) GetUserCreditCards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.cardService.GetUserCreditCards(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCreditCardByID handles the retrieval of a specific credit card
// @Summary     Get credit card by ID
// @Description Get a specific credit card by ID
// @Tags        credit-cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Credit card ID"
// @Success     200 {object} models.CreditCard "Credit card details"
// @Failure     400 {object} ErrorResponse "Invalid credit card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Credit card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards/{id} [get]
func (h *CreditCardHandler) GetCreditCardByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.GetCreditCardByID(userID, cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credit_card": card})
}

// UpdateCreditCardRequest represents the request payload for updating a credit card.
type UpdateCreditCardRequest struct {
	Name                *string  `json:"name" binding:"omitempty,max=100"`
	Limit               *float64 `json:"limit" binding:"omitempty,gt=0"`
	ClosingDay          *int     `json:"closing_day" binding:"omitempty,min=1,max=31"`
	DueDay              *int     `json:"due_day" binding:"omitempty,min=1,max=31"`
	CurrentInvoiceMonth *string  `json:"current_invoice_month" binding:"omitempty,invoice_month"`
}

// UpdateCreditCard handles updating an existing credit card
// @Summary     Update credit card
// @Description Update an existing credit card. Changing the closing day only affects future transactions.
// @Tags        credit-cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Credit card ID"
// @Param       request body UpdateCreditCardRequest true "Fields to update"
// @Success     200 {object} models.CreditCard "Updated credit card"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Credit card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards/{id} [put]
func (h *CreditCardHandler) UpdateCreditCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.UpdateCreditCard(userID, cardID, services.CreditCardUpdateFields{
		Name:                req.Name,
		Limit:               req.Limit,
		ClosingDay:          req.ClosingDay,
		DueDay:              req.DueDay,
		CurrentInvoiceMonth: req.CurrentInvoiceMonth,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credit_card": card})
}

// DeleteCreditCard handles the deletion of a credit card
// @Summary     Delete credit card
// @Description Delete a credit card. Fails if the card has transactions.
// @Tags        credit-cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Credit card ID"
// @Success     200 {object} MessageResponse "Credit card deleted"
// @Failure     400 {object} ErrorResponse "Invalid credit card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Credit card not found"
// @Failure     409 {object} ErrorResponse "Credit card has transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards/{id} [delete]
func (h *CreditCardHandler) DeleteCreditCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCreditCard(userID, cardID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credit card deleted successfully"})
}

// GetInvoice handles the retrieval of one billing cycle of a credit card
// @Summary     Get credit card invoice
// @Description Get the transactions, total, and available limit for one billing cycle of a card. Defaults to the current cycle when month is omitted.
// @Tags        credit-cards
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  string true  "Credit card ID"
// @Param       month query string false "Invoice month in YYYY-MM format (default: current month)"
// @Success     200 {object} services.Invoice "Invoice details"
// @Failure     400 {object} ErrorResponse "Invalid credit card ID or invoice month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Credit card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /credit-cards/{id}/invoice [get]
func (h *CreditCardHandler) GetInvoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("month")
	if month == "" {
		month = invoice.CurrentMonth(time.Now())
	}

	result, err := h.cardService.GetInvoice(userID, cardID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": result})
}
