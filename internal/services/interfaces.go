package services

import (
	"time"

	"financio/internal/models"
	"financio/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID string, name, partnerEmail *string) (*models.User, error)
}

// AccountUpdateFields holds optional account fields for partial updates.
// Nil fields are left unchanged.
type AccountUpdateFields struct {
	Name           *string
	Type           *models.AccountType
	InitialBalance *float64
	CurrentBalance *float64
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name string, accountType models.AccountType, initialBalance float64) (*models.Account, error)
	GetUserAccounts(userID string, accountType *models.AccountType, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
}

// CreditCardUpdateFields holds optional credit card fields for partial updates.
type CreditCardUpdateFields struct {
	Name                *string
	Limit               *float64
	ClosingDay          *int
	DueDay              *int
	CurrentInvoiceMonth *string
}

// Invoice is the computed aggregate of one billing cycle: the card, its
// transactions for the cycle ordered newest first, the cycle total, and
// how much of the limit remains. AvailableLimit may be negative when the
// card is over limit; that is reported, not rejected.
type Invoice struct {
	CreditCard     *models.CreditCard   `json:"credit_card"`
	InvoiceMonth   string               `json:"invoice_month"`
	Transactions   []models.Transaction `json:"transactions"`
	Total          float64              `json:"total"`
	AvailableLimit float64              `json:"available_limit"`
}

// CreditCardServicer defines the contract for credit card business logic.
type CreditCardServicer interface {
	CreateCreditCard(userID, name string, limit float64, closingDay, dueDay int) (*models.CreditCard, error)
	GetUserCreditCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error)
	GetCreditCardByID(userID, cardID string) (*models.CreditCard, error)
	UpdateCreditCard(userID, cardID string, fields CreditCardUpdateFields) (*models.CreditCard, error)
	DeleteCreditCard(userID, cardID string) error
	GetInvoice(userID, cardID, invoiceMonth string) (*Invoice, error)
}

// NewTransaction is the input for creating a transaction. Exactly one of
// AccountID and CreditCardID must be set. A zero Date defaults to now.
type NewTransaction struct {
	AccountID    string
	CreditCardID string
	Type         models.TransactionType
	Category     string
	Amount       float64
	Description  string
	Date         time.Time
}

// TransactionUpdateFields holds optional transaction fields for partial
// updates. Nil fields are left unchanged; an empty AccountID or
// CreditCardID explicitly clears that payment source, which is how a
// transaction is switched from one source to the other.
type TransactionUpdateFields struct {
	AccountID    *string
	CreditCardID *string
	Type         *models.TransactionType
	Category     *string
	Amount       *float64
	Description  *string
	Date         *time.Time
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type         *models.TransactionType
	Category     *string
	FromDate     *time.Time
	ToDate       *time.Time
	AccountID    *string
	CreditCardID *string
}

// TransactionServicer defines the contract for transaction business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, input NewTransaction) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// InvestmentUpdateFields holds optional investment fields for partial updates.
type InvestmentUpdateFields struct {
	Type           *models.InvestmentType
	AssetName      *string
	AmountInvested *float64
	CurrentValue   *float64
	PurchaseDate   *time.Time
}

// InvestmentServicer defines the contract for investment business logic.
type InvestmentServicer interface {
	CreateInvestment(userID string, investmentType models.InvestmentType, assetName string, amountInvested, currentValue float64, purchaseDate time.Time) (*models.Investment, error)
	GetUserInvestments(userID string, investmentType *models.InvestmentType, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
	UpdateInvestment(userID, investmentID string, fields InvestmentUpdateFields) (*models.Investment, error)
	DeleteInvestment(userID, investmentID string) error
}

// MonthlyReport aggregates a user's finances for one calendar month.
type MonthlyReport struct {
	Year                int                `json:"year"`
	Month               int                `json:"month"`
	Income              float64            `json:"income"`
	Expenses            float64            `json:"expenses"`
	NetBalance          float64            `json:"net_balance"`
	IncomeByCategory    map[string]float64 `json:"income_by_category"`
	ExpensesByCategory  map[string]float64 `json:"expenses_by_category"`
	TotalAccountBalance float64            `json:"total_account_balance"`
	TotalInvestments    float64            `json:"total_investments"`
	TotalWealth         float64            `json:"total_wealth"`
	TransactionCount    int                `json:"transaction_count"`
}

// ReportServicer defines the contract for report generation.
type ReportServicer interface {
	GetMonthlyReport(userID string, year, month int) (*MonthlyReport, error)
}
