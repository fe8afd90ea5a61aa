package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "financio/internal/errors"
	"financio/internal/models"
	"financio/internal/pagination"
	"financio/internal/services"
)

// --- mock credit card service ---

type mockCreditCardService struct {
	createCreditCardFn   func(userID, name string, limit float64, closingDay, dueDay int) (*models.CreditCard, error)
	getUserCreditCardsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error)
	getCreditCardByIDFn  func(userID, cardID string) (*models.CreditCard, error)
	updateCreditCardFn   func(userID, cardID string, fields services.CreditCardUpdateFields) (*models.CreditCard, error)
	deleteCreditCardFn   func(userID, cardID string) error
	getInvoiceFn         func(userID, cardID, invoiceMonth string) (*services.Invoice, error)
}

func (m *mockCreditCardService) CreateCreditCard(userID, name string, limit float64, closingDay, dueDay int) (*models.CreditCard, error) {
	if m.createCreditCardFn != nil {
		return m.createCreditCardFn(userID, name, limit, closingDay, dueDay)
	}
	return &models.CreditCard{}, nil
}

func (m *mockCreditCardService) GetUserCreditCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error) {
	if m.getUserCreditCardsFn != nil {
		return m.getUserCreditCardsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.CreditCard{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockCreditCardService) GetCreditCardByID(userID, cardID string) (*models.CreditCard, error) {
	if m.getCreditCardByIDFn != nil {
		return m.getCreditCardByIDFn(userID, cardID)
	}
	return &models.CreditCard{}, nil
}

func (m *mockCreditCardService) UpdateCreditCard(userID, cardID string, fields services.CreditCardUpdateFields) (*models.CreditCard, error) {
	if m.updateCreditCardFn != nil {
		return m.updateCreditCardFn(userID, cardID, fields)
	}
	return &models.CreditCard{}, nil
}

func (m *mockCreditCardService) DeleteCreditCard(userID, cardID string) error {
	if m.deleteCreditCardFn != nil {
		return m.deleteCreditCardFn(userID, cardID)
	}
	return nil
}

func (m *mockCreditCardService) GetInvoice(userID, cardID, invoiceMonth string) (*services.Invoice, error) {
	if m.getInvoiceFn != nil {
		return m.getInvoiceFn(userID, cardID, invoiceMonth)
	}
	return &services.Invoice{}, nil
}

var _ services.CreditCardServicer = (*mockCreditCardService)(nil)

func setupCreditCardRouter(handler *CreditCardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/credit-cards", handler.CreateCreditCard)
	auth.GET("/credit-cards", handler.GetUserCreditCards)
	auth.GET("/credit-cards/:id", handler.GetCreditCardByID)
	auth.PUT("/credit-cards/:id", handler.UpdateCreditCard)
	auth.DELETE("/credit-cards/:id", handler.DeleteCreditCard)
	auth.GET("/credit-cards/:id/invoice", handler.GetInvoice)
	return r
}

func TestCreditCardHandler_CreateCreditCard(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		cardSvc := &mockCreditCardService{
			createCreditCardFn: func(userID, name string, limit float64, closingDay, dueDay int) (*models.CreditCard, error) {
				return &models.CreditCard{
					Base:                models.Base{ID: testCardID},
					UserID:              userID,
					Name:                name,
					Limit:               limit,
					ClosingDay:          closingDay,
					DueDay:              dueDay,
					CurrentInvoiceMonth: "2025-06",
				}, nil
			},
		}
		handler := NewCreditCardHandler(cardSvc)
		r := setupCreditCardRouter(handler)

		rec := doRequest(r, "POST", "/credit-cards",
			`{"name":"Visa Gold","limit":5000,"closing_day":10,"due_day":17}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		card := result["credit_card"].(map[string]interface{})
		if card["closing_day"].(float64) != 10 {
			t.Errorf("expected closing day 10, got %v", card["closing_day"])
		}
	})

	t.Run("returns 400 on out_of_range closing day", func(t *testing.T) {
		handler := NewCreditCardHandler(&mockCreditCardService{})
		r := setupCreditCardRouter(handler)

		rec := doRequest(r, "POST", "/credit-cards",
			`{"name":"Visa","limit":5000,"closing_day":32,"due_day":17}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCreditCardHandler_GetInvoice(t *testing.T) {
	t.Run("passes month through", func(t *testing.T) {
		var gotMonth string
		cardSvc := &mockCreditCardService{
			getInvoiceFn: func(_, _, invoiceMonth string) (*services.Invoice, error) {
				gotMonth = invoiceMonth
				return &services.Invoice{
					InvoiceMonth:   invoiceMonth,
					Total:          350.75,
					AvailableLimit: 4649.25,
				}, nil
			},
		}
		handler := NewCreditCardHandler(cardSvc)
		r := setupCreditCardRouter(handler)

		rec := doRequest(r, "GET", "/credit-cards/"+testCardID+"/invoice?month=2025-06", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth != "2025-06" {
			t.Errorf("expected month 2025-06, got %q", gotMonth)
		}
		result := parseJSON(t, rec)
		inv := result["invoice"].(map[string]interface{})
		if inv["total"].(float64) != 350.75 {
			t.Errorf("expected total 350.75, got %v", inv["total"])
		}
	})

	t.Run("defaults to current month", func(t *testing.T) {
		var gotMonth string
		cardSvc := &mockCreditCardService{
			getInvoiceFn: func(_, _, invoiceMonth string) (*services.Invoice, error) {
				gotMonth = invoiceMonth
				return &services.Invoice{InvoiceMonth: invoiceMonth}, nil
			},
		}
		handler := NewCreditCardHandler(cardSvc)
		r := setupCreditCardRouter(handler)

		rec := doRequest(r, "GET", "/credit-cards/"+testCardID+"/invoice", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(gotMonth) != 7 {
			t.Errorf("expected a YYYY-MM month, got %q", gotMonth)
		}
	})

	t.Run("returns 400 on bad month", func(t *testing.T) {
		cardSvc := &mockCreditCardService{
			getInvoiceFn: func(_, _, _ string) (*services.Invoice, error) {
				return nil, apperrors.ErrInvalidInvoiceMonth
			},
		}
		handler := NewCreditCardHandler(cardSvc)
		r := setupCreditCardRouter(handler)

		rec := doRequest(r, "GET", "/credit-cards/"+testCardID+"/invoice?month=bogus", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INVOICE_MONTH")
	})

	t.Run("returns 404 on unknown card", func(t *testing.T) {
		cardSvc := &mockCreditCardService{
			getInvoiceFn: func(_, _, _ string) (*services.Invoice, error) {
				return nil, apperrors.ErrCreditCardNotFound
			},
		}
		handler := NewCreditCardHandler(cardSvc)
		r := setupCreditCardRouter(handler)

		rec := doRequest(r, "GET", "/credit-cards/"+testCardID+"/invoice?month=2025-06", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCreditCardHandler_DeleteCreditCard(t *testing.T) {
	t.Run("returns 409 when card in use", func(t *testing.T) {
		cardSvc := &mockCreditCardService{
			deleteCreditCardFn: func(_, _ string) error {
				return apperrors.ErrCreditCardInUse
			},
		}
		handler := NewCreditCardHandler(cardSvc)
		r := setupCreditCardRouter(handler)

		rec := doRequest(r, "DELETE", "/credit-cards/"+testCardID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CREDIT_CARD_IN_USE")
	})
}
