package models

// User represents the user model in the database.
// PartnerEmail links two users sharing a household; finances stay scoped
// per user, the link only drives the shared dashboard views.
type User struct {
	Base
	Email        string        `gorm:"uniqueIndex;not null" json:"email"`
	Password     string        `gorm:"not null" json:"-"`
	Name         string        `json:"name"`
	PartnerEmail string        `json:"partner_email,omitempty"`
	Accounts     []Account     `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
	CreditCards  []CreditCard  `gorm:"foreignKey:UserID" json:"credit_cards,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Investments  []Investment  `gorm:"foreignKey:UserID" json:"investments,omitempty"`
}
