// Package portfolio derives dashboard figures from bank and mutual fund
// snapshots. Everything here is a pure function over decimals; both input
// slices must come from the same logical snapshot so the figures are
// consistent with each other.
package portfolio

import (
	"folio_fetch/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary holds the four dashboard figures. Values are exact decimals;
// rounding happens only at display time.
type Summary struct {
	TotalBalance  decimal.Decimal `json:"total_balance"`  // Sum of bank account balances
	TotalInvested decimal.Decimal `json:"total_invested"` // Sum of fund investment amounts
	CurrentValue  decimal.Decimal `json:"current_value"`  // Sum of fund current values
	NetWorth      decimal.Decimal `json:"net_worth"`      // TotalBalance + CurrentValue
}

// ROI returns the percentage return on a fund: (current - invested) /
// invested * 100. A zero investment amount yields zero rather than a
// division error.
func ROI(fund domain.MutualFund) decimal.Decimal {
	if fund.InvestmentAmount.IsZero() {
		return decimal.Zero
	}
	return fund.CurrentValue.Sub(fund.InvestmentAmount).
		Div(fund.InvestmentAmount).
		Mul(hundred)
}

// Summarize computes the dashboard summary from one snapshot of bank
// accounts and mutual funds. Empty snapshots sum to zero.
func Summarize(accounts []domain.BankAccount, funds []domain.MutualFund) Summary {
	s := Summary{
		TotalBalance:  decimal.Zero,
		TotalInvested: decimal.Zero,
		CurrentValue:  decimal.Zero,
	}
	for _, a := range accounts {
		s.TotalBalance = s.TotalBalance.Add(a.AccountBalance)
	}
	for _, f := range funds {
		s.TotalInvested = s.TotalInvested.Add(f.InvestmentAmount)
		s.CurrentValue = s.CurrentValue.Add(f.CurrentValue)
	}
	s.NetWorth = s.TotalBalance.Add(s.CurrentValue)
	return s
}

// FormatCurrency renders a value as rupees with two decimal places.
func FormatCurrency(v decimal.Decimal) string {
	return "₹" + v.StringFixed(2)
}

// FormatPercent renders a percentage with two decimal places. Display only;
// stored ROI values stay unrounded.
func FormatPercent(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}
