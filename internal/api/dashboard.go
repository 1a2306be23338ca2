package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"folio_fetch/internal/domain"     // Importing domain models
	"folio_fetch/internal/portfolio"  // Aggregation engine
	"folio_fetch/internal/repository" // Record repositories
	"folio_fetch/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// DashboardResponse carries one consistent snapshot: the summary figures and
// the records they were computed from. Formatted fields are display-only;
// the decimal values stay unrounded.
type DashboardResponse struct {
	Summary      portfolio.Summary    `json:"summary"`       // Raw decimal figures
	Formatted    FormattedSummary     `json:"formatted"`     // Currency-formatted figures
	BankAccounts []domain.BankAccount `json:"bank_accounts"` // Snapshot the summary was computed from
	MutualFunds  []FundView           `json:"mutual_funds"`  // Funds with ROI attached
}

// FormattedSummary renders the four figures for display
type FormattedSummary struct {
	TotalBalance  string `json:"total_balance"`  // e.g. ₹3500.50
	TotalInvested string `json:"total_invested"` // e.g. ₹5000.00
	CurrentValue  string `json:"current_value"`  // e.g. ₹6000.00
	NetWorth      string `json:"net_worth"`      // e.g. ₹9500.50
}

// DashboardHandler fetches one snapshot of the user's bank accounts and
// mutual funds, derives the summary figures from it and caches the result
// for 60 seconds. Mutating handlers invalidate the cache.
func DashboardHandler(banks *repository.BankRepo, funds *repository.FundRepo, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		ctx := context.Background()
		cacheKey := dashboardCacheKey(username)
		var cached DashboardResponse
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"dashboard": cached, "cached": true})
			return
		}
		// Fetch both collections before computing anything so the figures
		// come from the same logical snapshot
		accounts, err := banks.ListByOwner(username)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		fundList, err := funds.ListByOwner(username)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		summary := portfolio.Summarize(accounts, fundList)
		resp := DashboardResponse{
			Summary: summary,
			Formatted: FormattedSummary{
				TotalBalance:  portfolio.FormatCurrency(summary.TotalBalance),
				TotalInvested: portfolio.FormatCurrency(summary.TotalInvested),
				CurrentValue:  portfolio.FormatCurrency(summary.CurrentValue),
				NetWorth:      portfolio.FormatCurrency(summary.NetWorth),
			},
			BankAccounts: accounts,
			MutualFunds:  fundViews(fundList),
		}
		// Cache the result for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"dashboard": resp, "cached": false})
	}
}
