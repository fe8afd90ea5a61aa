package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction charged against exactly
// one payment source: a bank account or a credit card. The XOR between
// AccountID and CreditCardID is enforced by the service layer before any
// write. InvoiceMonth is present exactly when CreditCardID is, and holds
// the YYYY-MM billing cycle the transaction was assigned to.
type Transaction struct {
	Base
	UserID          string          `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID       *string         `gorm:"type:uuid;index" json:"account_id,omitempty"`
	CreditCardID    *string         `gorm:"type:uuid;index:idx_card_invoice_month" json:"credit_card_id,omitempty"`
	Type            TransactionType `gorm:"not null" json:"type"`
	Category        string          `gorm:"not null" json:"category"`
	Amount          float64         `gorm:"not null" json:"amount"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transaction_date"`
	InvoiceMonth    string          `gorm:"size:7;index:idx_card_invoice_month" json:"invoice_month,omitempty"`

	// Relationships
	Account    *Account    `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	CreditCard *CreditCard `gorm:"foreignKey:CreditCardID" json:"credit_card,omitempty"`
}
