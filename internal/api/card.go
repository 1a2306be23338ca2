package api

import (
	"net/http" // HTTP status codes

	"folio_fetch/internal/domain"     // Importing domain models
	"folio_fetch/internal/repository" // Record repositories
	"folio_fetch/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for creating or updating a card (full-row replace)
type CardRequest struct {
	CardName           string `json:"card_name"`                            // Optional display name
	CardNumber         string `json:"card_number" binding:"required,max=16"` // Card number
	CardClassification string `json:"card_classification" binding:"required"` // Debit or Credit
	CardType           string `json:"card_type" binding:"required"`         // Network
	ExpiryMonth        string `json:"expiry_month" binding:"required,oneof=01 02 03 04 05 06 07 08 09 10 11 12"` // Zero-padded month
	ExpiryYear         string `json:"expiry_year" binding:"required,len=4"` // Four-digit year
	CVV                string `json:"cvv" binding:"required,len=3"`         // Card verification value
}

func (r CardRequest) toModel(username string) domain.Card {
	return domain.Card{
		Username:           username,
		CardName:           r.CardName,
		CardNumber:         r.CardNumber,
		CardClassification: r.CardClassification,
		CardType:           r.CardType,
		ExpiryMonth:        r.ExpiryMonth,
		ExpiryYear:         r.ExpiryYear,
		CVV:                r.CVV,
		IsActive:           true, // New cards start active
	}
}

// Request struct for the status toggle
type CardStatusRequest struct {
	Active *bool `json:"active" binding:"required"` // Desired active state
}

// ListCardsHandler returns the user's cards, active first then by classification
func ListCardsHandler(cards *repository.CardRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		list, err := cards.ListByOwner(username)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cards": list})
	}
}

// CreateCardHandler adds a new card for the user
func CreateCardHandler(cards *repository.CardRepo, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		var req CardRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
			return
		}
		card := req.toModel(username)
		if err := cards.Create(&card); err != nil {
			logrus.WithFields(logrus.Fields{
				"username": username,
				"error":    err.Error(),
			}).Error("Failed to save card")
			writeRepoError(c, err)
			return
		}
		finishEdit(c, sessions, session.KindCard) // Close the add form
		c.JSON(http.StatusCreated, gin.H{"message": "Card details saved successfully", "card": card})
	}
}

// UpdateCardHandler replaces every mutable field of a card
func UpdateCardHandler(cards *repository.CardRepo, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		var req CardRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
			return
		}
		card := req.toModel(username)
		if err := cards.Update(username, id, &card); err != nil {
			writeRepoError(c, err)
			return
		}
		finishEdit(c, sessions, session.KindCard) // Close the edit form
		c.JSON(http.StatusOK, gin.H{"message": "Card details saved successfully"})
	}
}

// SetCardStatusHandler toggles the active flag of a card
func SetCardStatusHandler(cards *repository.CardRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		var req CardStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := cards.SetActive(username, id, *req.Active); err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Card status updated"})
	}
}

// DeleteCardHandler removes a card by id
func DeleteCardHandler(cards *repository.CardRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		deleted, err := cards.Delete(username, id)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
	}
}
