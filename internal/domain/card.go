package domain

// Card classification and network values accepted for Card fields
var (
	CardClassifications = []string{"Debit", "Credit"}
	CardNetworks        = []string{"Visa", "Mastercard", "RuPay", "Amex", "Other"}
)

// Card Model
type Card struct {
	ID                 uint   `gorm:"primaryKey"`                                 // Surrogate primary key
	Username           string `gorm:"size:255;uniqueIndex:idx_user_card"`         // Foreign key to User
	CardName           string `gorm:"size:255"`                                   // Optional display name
	CardNumber         string `gorm:"size:16;not null;uniqueIndex:idx_user_card"` // Card number, unique per user
	CardClassification string `gorm:"size:10;not null"`                           // Debit or Credit
	CardType           string `gorm:"size:15;not null"`                           // Network: Visa, Mastercard, RuPay, Amex, Other
	ExpiryMonth        string `gorm:"size:2;not null"`                            // Expiry month, "01".."12"
	ExpiryYear         string `gorm:"size:4;not null"`                            // Expiry year
	CVV                string `gorm:"size:3;not null"`                            // Card verification value
	IsActive           bool   `gorm:"default:true"`                               // Active flag, defaults to true
}
