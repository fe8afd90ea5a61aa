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

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn  func(userID string, input services.NewTransaction) (*models.Transaction, error)
	getUserTxFn          func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn func(userID, transactionID string) (*models.Transaction, error)
	updateTransactionFn  func(userID, transactionID string, fields services.TransactionUpdateFields) (*models.Transaction, error)
	deleteTransactionFn  func(userID, transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(userID string, input services.NewTransaction) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTxFn != nil {
		return m.getUserTxFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID string, fields services.TransactionUpdateFields) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, fields)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

const testCardID = "0198c0de-bbbb-7000-8000-000000000002"

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetUserTransactions)
	auth.GET("/transactions/:id", handler.GetTransactionByID)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(userID string, input services.NewTransaction) (*models.Transaction, error) {
				return &models.Transaction{
					Base:         models.Base{ID: "0198c0de-cccc-7000-8000-000000000003"},
					UserID:       userID,
					CreditCardID: &input.CreditCardID,
					Type:         input.Type,
					Amount:       input.Amount,
					InvoiceMonth: "2025-06",
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"credit_card_id":"`+testCardID+`","type":"expense","category":"groceries","amount":100.50,"date":"2025-06-09"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["invoice_month"] != "2025-06" {
			t.Errorf("expected invoice month 2025-06, got %v", tx["invoice_month"])
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"credit_card_id":"`+testCardID+`","type":"expense","category":"groceries","amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"credit_card_id":"`+testCardID+`","type":"transfer","category":"x","amount":10}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when both sources set", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ string, _ services.NewTransaction) (*models.Transaction, error) {
				return nil, apperrors.ErrBothPaymentSources
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"account_id":"`+testUserID+`","credit_card_id":"`+testCardID+`","type":"expense","category":"groceries","amount":10}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MUTUALLY_EXCLUSIVE_PAYMENT_SOURCE")
	})

	t.Run("returns 404 when card not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ string, _ services.NewTransaction) (*models.Transaction, error) {
				return nil, apperrors.ErrCreditCardNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"credit_card_id":"`+testCardID+`","type":"expense","category":"groceries","amount":10}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"credit_card_id":"`+testCardID+`","type":"expense","category":"groceries","amount":10,"date":"June 9th"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := gin.New()
		r.POST("/transactions", handler.CreateTransaction)

		rec := doRequest(r, "POST", "/transactions",
			`{"credit_card_id":"`+testCardID+`","type":"expense","category":"groceries","amount":10}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("passes merge patch through", func(t *testing.T) {
		var gotFields services.TransactionUpdateFields
		txSvc := &mockTransactionService{
			updateTransactionFn: func(_, _ string, fields services.TransactionUpdateFields) (*models.Transaction, error) {
				gotFields = fields
				return &models.Transaction{}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/"+testCardID,
			`{"description":"weekly shop"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFields.Description == nil || *gotFields.Description != "weekly shop" {
			t.Error("expected description in patch")
		}
		if gotFields.Amount != nil || gotFields.Date != nil || gotFields.CreditCardID != nil {
			t.Error("expected absent fields to stay nil")
		}
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/not-a-uuid", `{"description":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetUserTransactions(t *testing.T) {
	t.Run("parses filters", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		txSvc := &mockTransactionService{
			getUserTxFn: func(_ string, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=expense&credit_card_id="+testCardID+"&from_date=2025-06-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Type == nil || *gotFilter.Type != models.TransactionTypeExpense {
			t.Error("expected type filter")
		}
		if gotFilter.CreditCardID == nil || *gotFilter.CreditCardID != testCardID {
			t.Error("expected credit card filter")
		}
		if gotFilter.FromDate == nil {
			t.Error("expected from_date filter")
		}
	})

	t.Run("returns 400 on bad type filter", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
