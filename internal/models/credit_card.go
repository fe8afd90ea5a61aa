package models

// CreditCard represents a credit card with its billing cycle settings.
// ClosingDay and DueDay are days of the month in [1,31]; months shorter
// than the configured day close on their last day instead.
// CurrentInvoiceMonth is a YYYY-MM label defaulted from the creation date
// by the service layer, never by a persistence hook.
type CreditCard struct {
	Base
	UserID              string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                string  `gorm:"not null" json:"name"`
	Limit               float64 `gorm:"not null" json:"limit"`
	ClosingDay          int     `gorm:"not null" json:"closing_day"`
	DueDay              int     `gorm:"not null" json:"due_day"`
	CurrentInvoiceMonth string  `gorm:"not null;size:7" json:"current_invoice_month"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CreditCardID" json:"transactions,omitempty"`
}
