package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financio/internal/errors"
	"financio/internal/models"
	"financio/internal/pagination"
	"financio/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the request payload for creating an investment
type CreateInvestmentRequest struct {
	Type           models.InvestmentType `json:"type" binding:"required,investment_type"`
	AssetName      string                `json:"asset_name" binding:"required,max=100"`
	AmountInvested float64               `json:"amount_invested" binding:"required,gt=0"`
	CurrentValue   float64               `json:"current_value" binding:"omitempty,gte=0"`
	PurchaseDate   *string               `json:"purchase_date"`
}

// CreateInvestment handles the creation of a new investment
// @Summary     Create an investment
// @Description Record an investment position. Current value defaults to the invested amount when omitted.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateInvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.PurchaseDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		purchaseDate = parsed
	}

	investment, err := h.investmentService.CreateInvestment(userID, req.Type, req.AssetName, req.AmountInvested, req.CurrentValue, purchaseDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetUserInvestments handles listing the authenticated user's investments
// @Summary     List investments
// @Description Get a paginated list of the authenticated user's investments
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       type      query string false "Filter by investment type (stock, fund, crypto, pension)"
// @Success     200 {object} pagination.PageResponse[models.Investment] "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetUserInvestments(c *gin.Context) {
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

	var investmentType *models.InvestmentType
	if v := c.Query("type"); v != "" {
		t := models.InvestmentType(v)
		switch t {
		case models.InvestmentTypeStock, models.InvestmentTypeFund,
			models.InvestmentTypeCrypto, models.InvestmentTypePension:
			investmentType = &t
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be stock, fund, crypto, or pension"))
			return
		}
	}

	result, err := h.investmentService.GetUserInvestments(userID, investmentType, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetInvestmentByID handles the retrieval of a specific investment
// @Summary     Get investment by ID
// @Description Get a specific investment by ID
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} models.Investment "Investment details"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestmentByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	investment, err := h.investmentService.GetInvestmentByID(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// UpdateInvestmentRequest represents the request payload for updating an investment.
type UpdateInvestmentRequest struct {
	Type           *models.InvestmentType `json:"type" binding:"omitempty,investment_type"`
	AssetName      *string                `json:"asset_name" binding:"omitempty,max=100"`
	AmountInvested *float64               `json:"amount_invested" binding:"omitempty,gt=0"`
	CurrentValue   *float64               `json:"current_value" binding:"omitempty,gte=0"`
	PurchaseDate   *string                `json:"purchase_date"`
}

// UpdateInvestment handles updating an existing investment
// @Summary     Update investment
// @Description Update an existing investment. Only provided fields are changed.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Investment ID"
// @Param       request body UpdateInvestmentRequest true "Fields to update"
// @Success     200 {object} models.Investment "Updated investment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	updateFields := services.InvestmentUpdateFields{
		Type:           req.Type,
		AssetName:      req.AssetName,
		AmountInvested: req.AmountInvested,
		CurrentValue:   req.CurrentValue,
	}

	if req.PurchaseDate != nil && *req.PurchaseDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.PurchaseDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		updateFields.PurchaseDate = &parsed
	}

	investment, err := h.investmentService.UpdateInvestment(userID, investmentID, updateFields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": investment})
}

// DeleteInvestment handles the deletion of an investment
// @Summary     Delete investment
// @Description Delete an investment by ID
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} MessageResponse "Investment deleted"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeleteInvestment(userID, investmentID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}
