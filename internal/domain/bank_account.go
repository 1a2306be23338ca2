package domain

import "github.com/shopspring/decimal"

// BankAccount Model
type BankAccount struct {
	ID             uint            `gorm:"primaryKey"`                                      // Surrogate primary key
	Username       string          `gorm:"size:255;uniqueIndex:idx_user_account"`           // Foreign key to User
	BankName       string          `gorm:"size:255;not null"`                               // Bank name
	AccountNumber  string          `gorm:"size:20;not null;uniqueIndex:idx_user_account"`   // Account number, unique per user
	IFSCCode       string          `gorm:"size:11;not null"`                                // Branch routing code
	AccountBalance decimal.Decimal `gorm:"type:decimal(15,2);default:0"`                    // Current balance
	NomineeName    string          `gorm:"size:255"`                                        // Optional nominee
}
