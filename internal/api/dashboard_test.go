package api

import (
	"encoding/json"
	"testing"

	"folio_fetch/internal/domain"
	"folio_fetch/internal/portfolio"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardResponseShape(t *testing.T) {
	accounts := []domain.BankAccount{
		{Username: "alice", BankName: "HDFC", AccountNumber: "123456", IFSCCode: "HDFC0001234",
			AccountBalance: decimal.RequireFromString("3500.50")},
	}
	funds := []domain.MutualFund{
		{Username: "alice", FolioNumber: "F-100", FundName: "Index Fund", FundType: "Equity",
			InvestmentAmount: decimal.NewFromInt(5000), CurrentValue: decimal.NewFromInt(6000)},
	}
	summary := portfolio.Summarize(accounts, funds)
	resp := DashboardResponse{
		Summary:      summary,
		BankAccounts: accounts,
		MutualFunds:  fundViews(funds),
	}

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		BankAccounts []domain.BankAccount `json:"bank_accounts"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded.BankAccounts, 1)
	assert.Equal(t, "HDFC", decoded.BankAccounts[0].BankName)
	assert.True(t, decoded.BankAccounts[0].AccountBalance.Equal(decimal.RequireFromString("3500.50")))
}
