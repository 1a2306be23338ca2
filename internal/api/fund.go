package api

import (
	"net/http" // HTTP status codes

	"folio_fetch/internal/domain"     // Importing domain models
	"folio_fetch/internal/portfolio"  // ROI computation
	"folio_fetch/internal/repository" // Record repositories
	"folio_fetch/internal/session"    // Session store

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal money values
	"github.com/sirupsen/logrus"    // Logging library
)

// Request struct for creating or updating a mutual fund (full-row replace)
type MutualFundRequest struct {
	FolioNumber      string          `json:"folio_number" binding:"required"` // Folio number
	FundName         string          `json:"fund_name" binding:"required"`    // Fund name
	FundType         string          `json:"fund_type" binding:"required"`    // Equity, Debt, Hybrid, ELSS or Other
	InvestmentAmount decimal.Decimal `json:"investment_amount"`               // Amount invested
	CurrentValue     decimal.Decimal `json:"current_value"`                   // Current market value
	NomineeName      string          `json:"nominee_name"`                    // Optional nominee
}

func (r MutualFundRequest) toModel(username string) domain.MutualFund {
	return domain.MutualFund{
		Username:         username,
		FolioNumber:      r.FolioNumber,
		FundName:         r.FundName,
		FundType:         r.FundType,
		InvestmentAmount: r.InvestmentAmount,
		CurrentValue:     r.CurrentValue,
		NomineeName:      r.NomineeName,
	}
}

// FundView is a mutual fund with its derived ROI attached for display
type FundView struct {
	domain.MutualFund                 // Stored fields
	ROI               decimal.Decimal `json:"roi"`         // Unrounded percentage return
	ROIDisplay        string          `json:"roi_display"` // Rounded to 2 decimal places
}

// fundViews attaches ROI to every fund in a snapshot
func fundViews(funds []domain.MutualFund) []FundView {
	views := make([]FundView, len(funds))
	for i, f := range funds {
		roi := portfolio.ROI(f)
		views[i] = FundView{MutualFund: f, ROI: roi, ROIDisplay: portfolio.FormatPercent(roi)}
	}
	return views
}

// ListMutualFundsHandler returns all mutual funds owned by the user, each
// with its computed ROI
func ListMutualFundsHandler(funds *repository.FundRepo) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, gin.H{"mutual_funds": fundViews(list)})
	}
}

// CreateMutualFundHandler adds a new mutual fund for the user
func CreateMutualFundHandler(funds *repository.FundRepo, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		var req MutualFundRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
			return
		}
		fund := req.toModel(username)
		if err := funds.Create(&fund); err != nil {
			logrus.WithFields(logrus.Fields{
				"username": username,
				"error":    err.Error(),
			}).Error("Failed to save mutual fund")
			writeRepoError(c, err)
			return
		}
		finishEdit(c, sessions, session.KindFund) // Close the add form
		invalidateDashboard(c, username)          // Totals changed
		c.JSON(http.StatusCreated, gin.H{"message": "Mutual fund details saved successfully", "mutual_fund": fund})
	}
}

// UpdateMutualFundHandler replaces every mutable field of a mutual fund
func UpdateMutualFundHandler(funds *repository.FundRepo, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		var req MutualFundRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
			return
		}
		fund := req.toModel(username)
		if err := funds.Update(username, id, &fund); err != nil {
			writeRepoError(c, err)
			return
		}
		finishEdit(c, sessions, session.KindFund) // Close the edit form
		invalidateDashboard(c, username)          // Totals changed
		c.JSON(http.StatusOK, gin.H{"message": "Mutual fund details saved successfully"})
	}
}

// DeleteMutualFundHandler removes a mutual fund by id
func DeleteMutualFundHandler(funds *repository.FundRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		deleted, err := funds.Delete(username, id)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mutual fund not found"})
			return
		}
		invalidateDashboard(c, username)
		c.JSON(http.StatusOK, gin.H{"message": "Mutual fund deleted successfully"})
	}
}
