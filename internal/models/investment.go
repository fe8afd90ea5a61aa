package models

import "time"

// InvestmentType represents the type of investment asset
type InvestmentType string

const (
	InvestmentTypeStock   InvestmentType = "stock"
	InvestmentTypeFund    InvestmentType = "fund"
	InvestmentTypeCrypto  InvestmentType = "crypto"
	InvestmentTypePension InvestmentType = "pension"
)

// Investment represents a single investment position.
type Investment struct {
	Base
	UserID         string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type           InvestmentType `gorm:"not null" json:"type"`
	AssetName      string         `gorm:"not null" json:"asset_name"`
	AmountInvested float64        `gorm:"not null" json:"amount_invested"`
	CurrentValue   float64        `gorm:"not null" json:"current_value"`
	PurchaseDate   time.Time      `gorm:"not null" json:"purchase_date"`
}

// Return returns the absolute gain or loss of the position.
func (i *Investment) Return() float64 {
	return i.CurrentValue - i.AmountInvested
}

// ReturnPercentage returns the gain or loss relative to the invested amount.
func (i *Investment) ReturnPercentage() float64 {
	if i.AmountInvested == 0 {
		return 0
	}
	return (i.CurrentValue - i.AmountInvested) / i.AmountInvested * 100
}
