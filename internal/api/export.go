package api

import (
	"bytes"        // CSV buffer
	"encoding/csv" // CSV writing
	"net/http"     // HTTP status codes
	"strconv"      // Id formatting

	"folio_fetch/internal/portfolio"  // Currency and percent formatting
	"folio_fetch/internal/repository" // Record repositories

	"github.com/gin-gonic/gin" // Gin web framework
)

// writeCSV sends rows as a CSV attachment.
func writeCSV(c *gin.Context, filename string, rows [][]string) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportBankAccountsHandler exports the user's bank accounts as CSV with
// balances formatted as currency, matching the dashboard export
func ExportBankAccountsHandler(banks *repository.BankRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		accounts, err := banks.ListByOwner(username)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		rows := [][]string{{"id", "bank_name", "account_number", "ifsc_code", "account_balance", "nominee_name"}}
		for _, a := range accounts {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(a.ID), 10),
				a.BankName,
				a.AccountNumber,
				a.IFSCCode,
				portfolio.FormatCurrency(a.AccountBalance),
				a.NomineeName,
			})
		}
		writeCSV(c, "bank_accounts.csv", rows)
	}
}

// ExportMutualFundsHandler exports the user's mutual funds as CSV with
// formatted amounts and the computed ROI column
func ExportMutualFundsHandler(funds *repository.FundRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		list, err := funds.ListByOwner(username)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		rows := [][]string{{"id", "folio_number", "fund_name", "fund_type", "investment_amount", "current_value", "roi", "nominee_name"}}
		for _, f := range list {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(f.ID), 10),
				f.FolioNumber,
				f.FundName,
				f.FundType,
				portfolio.FormatCurrency(f.InvestmentAmount),
				portfolio.FormatCurrency(f.CurrentValue),
				portfolio.FormatPercent(portfolio.ROI(f)),
				f.NomineeName,
			})
		}
		writeCSV(c, "mutual_funds.csv", rows)
	}
}
