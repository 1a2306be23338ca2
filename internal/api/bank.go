package api

import (
	"net/http" // HTTP status codes

	"folio_fetch/internal/domain"     // Importing domain models
	"folio_fetch/internal/repository" // Record repositories
	"folio_fetch/internal/session"    // Session store

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal money values
	"github.com/sirupsen/logrus"    // Logging library
)

// Request struct for creating or updating a bank account. Update has
// full-row replace semantics, so the same complete struct serves both.
type BankAccountRequest struct {
	BankName       string          `json:"bank_name" binding:"required"`      // Bank name
	AccountNumber  string          `json:"account_number" binding:"required"` // Account number
	IFSCCode       string          `json:"ifsc_code" binding:"required,max=11"` // Branch routing code
	AccountBalance decimal.Decimal `json:"account_balance"`                   // Current balance
	NomineeName    string          `json:"nominee_name"`                      // Optional nominee
}

func (r BankAccountRequest) toModel(username string) domain.BankAccount {
	return domain.BankAccount{
		Username:       username,
		BankName:       r.BankName,
		AccountNumber:  r.AccountNumber,
		IFSCCode:       r.IFSCCode,
		AccountBalance: r.AccountBalance,
		NomineeName:    r.NomineeName,
	}
}

// ListBankAccountsHandler returns all bank accounts owned by the user
func ListBankAccountsHandler(banks *repository.BankRepo) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, gin.H{"bank_accounts": accounts})
	}
}

// CreateBankAccountHandler adds a new bank account for the user
func CreateBankAccountHandler(banks *repository.BankRepo, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		var req BankAccountRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
			return
		}
		account := req.toModel(username)
		if err := banks.Create(&account); err != nil {
			logrus.WithFields(logrus.Fields{
				"username": username,
				"error":    err.Error(),
			}).Error("Failed to save bank account")
			writeRepoError(c, err)
			return
		}
		finishEdit(c, sessions, session.KindBank) // Close the add form
		invalidateDashboard(c, username)          // Totals changed
		c.JSON(http.StatusCreated, gin.H{"message": "Bank details saved successfully", "bank_account": account})
	}
}

// UpdateBankAccountHandler replaces every mutable field of a bank account
func UpdateBankAccountHandler(banks *repository.BankRepo, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		var req BankAccountRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
			return
		}
		account := req.toModel(username)
		if err := banks.Update(username, id, &account); err != nil {
			writeRepoError(c, err)
			return
		}
		finishEdit(c, sessions, session.KindBank) // Close the edit form
		invalidateDashboard(c, username)          // Totals changed
		c.JSON(http.StatusOK, gin.H{"message": "Bank details saved successfully"})
	}
}

// DeleteBankAccountHandler removes a bank account by id
func DeleteBankAccountHandler(banks *repository.BankRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		deleted, err := banks.Delete(username, id)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		// Missing target is a no-op, reported but not fatal
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank account not found"})
			return
		}
		invalidateDashboard(c, username)
		c.JSON(http.StatusOK, gin.H{"message": "Bank account deleted successfully"})
	}
}
