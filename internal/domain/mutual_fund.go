package domain

import "github.com/shopspring/decimal"

// Fund type values accepted for MutualFund.FundType
var FundTypes = []string{"Equity", "Debt", "Hybrid", "ELSS", "Other"}

// MutualFund Model
type MutualFund struct {
	ID               uint            `gorm:"primaryKey"`                                  // Surrogate primary key
	Username         string          `gorm:"size:255;uniqueIndex:idx_user_folio"`         // Foreign key to User
	FolioNumber      string          `gorm:"size:50;not null;uniqueIndex:idx_user_folio"` // Folio number, unique per user
	FundName         string          `gorm:"size:255;not null"`                           // Fund name
	FundType         string          `gorm:"size:10;not null"`                            // Equity, Debt, Hybrid, ELSS or Other
	InvestmentAmount decimal.Decimal `gorm:"type:decimal(15,2)"`                          // Amount invested
	CurrentValue     decimal.Decimal `gorm:"type:decimal(15,2)"`                          // Current market value
	NomineeName      string          `gorm:"size:255"`                                    // Optional nominee
}
