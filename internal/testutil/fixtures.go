package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		Name:     "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates a checking account with the given balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string, balance float64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Account %d", nextID()),
		Type:           models.AccountTypeChecking,
		InitialBalance: balance,
		CurrentBalance: balance,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCreditCard creates a credit card with the given limit and closing day.
func CreateTestCreditCard(t *testing.T, db *gorm.DB, userID string, limit float64, closingDay int) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		UserID:              userID,
		Name:                fmt.Sprintf("Test Card %d", nextID()),
		Limit:               limit,
		ClosingDay:          closingDay,
		DueDay:              closingDay + 7,
		CurrentInvoiceMonth: "2025-06",
	}
	if card.DueDay > 28 {
		card.DueDay = 5
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}
	return card
}

// CreateTestCardTransaction creates an expense charged to a credit card,
// already tagged with an invoice month.
func CreateTestCardTransaction(t *testing.T, db *gorm.DB, userID, cardID string, amount float64, date time.Time, invoiceMonth string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		CreditCardID:    &cardID,
		Type:            models.TransactionTypeExpense,
		Category:        "groceries",
		Amount:          amount,
		TransactionDate: date,
		InvoiceMonth:    invoiceMonth,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test card transaction: %v", err)
	}
	return tx
}

// CreateTestAccountTransaction creates a transaction charged to an account.
func CreateTestAccountTransaction(t *testing.T, db *gorm.DB, userID, accountID string, txType models.TransactionType, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		AccountID:       &accountID,
		Type:            txType,
		Category:        "general",
		Amount:          amount,
		TransactionDate: date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test account transaction: %v", err)
	}
	return tx
}

// CreateTestInvestment creates an investment position.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string, invested, current float64) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:         userID,
		Type:           models.InvestmentTypeStock,
		AssetName:      fmt.Sprintf("Test Asset %d", nextID()),
		AmountInvested: invested,
		CurrentValue:   current,
		PurchaseDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
