package models

// AccountType represents the type of bank account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCash       AccountType = "cash"
)

// Account represents a bank account, the alternative payment source to a
// credit card. CurrentBalance starts equal to InitialBalance and is only
// changed through explicit updates.
type Account struct {
	Base
	UserID         string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string      `gorm:"not null" json:"name"`
	Type           AccountType `gorm:"not null" json:"type"`
	InitialBalance float64     `gorm:"not null;default:0" json:"initial_balance"`
	CurrentBalance float64     `gorm:"not null;default:0" json:"current_balance"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
