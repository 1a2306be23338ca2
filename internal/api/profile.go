package api

import (
	"context"  // Context for session store operations
	"net/http" // HTTP status codes
	"time"     // Date of birth parsing

	"folio_fetch/internal/domain"     // Importing domain models
	"folio_fetch/internal/repository" // Record repositories
	"folio_fetch/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for saving a profile
type ProfileRequest struct {
	FullName         string `json:"full_name" binding:"required"`     // Full name
	Email            string `json:"email" binding:"required,email"`   // Email address
	Gender           string `json:"gender"`                           // Male, Female or Other
	DateOfBirth      string `json:"date_of_birth" binding:"required"` // YYYY-MM-DD
	PANCard          string `json:"pan_card" binding:"max=10"`        // PAN card number
	AadharCard       string `json:"aadhar_card" binding:"max=12"`     // Aadhar card number
	MobileNumber     string `json:"mobile_number" binding:"required,max=10"` // Mobile number
	ProfilePhotoPath string `json:"profile_photo_path"`               // Stored verbatim
	Address          string `json:"address" binding:"required"`       // Street address
	City             string `json:"city"`                             // City
	State            string `json:"state"`                            // State
	Pincode          string `json:"pincode" binding:"max=10"`         // Postal code
	Country          string `json:"country"`                          // Country
}

// SaveProfileHandler creates or overwrites the profile for the authenticated
// user and marks the profile completed in their session
func SaveProfileHandler(profiles *repository.ProfileRepo, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		var req ProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all required fields"})
			return
		}
		// Parse date of birth
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth"})
			return
		}
		profile := domain.Profile{
			Username:         username,
			FullName:         req.FullName,
			Email:            req.Email,
			Gender:           req.Gender,
			DateOfBirth:      dob,
			PANCard:          req.PANCard,
			AadharCard:       req.AadharCard,
			MobileNumber:     req.MobileNumber,
			ProfilePhotoPath: req.ProfilePhotoPath,
			Address:          req.Address,
			City:             req.City,
			State:            req.State,
			Pincode:          req.Pincode,
			Country:          req.Country,
		}
		// Upsert: re-saving overwrites the existing row in place
		if err := profiles.Save(&profile); err != nil {
			logrus.WithFields(logrus.Fields{
				"username": username,
				"error":    err.Error(),
			}).Error("Failed to save profile")
			writeRepoError(c, err)
			return
		}
		// Mark the profile completed and clear the just-signed-up flag
		if sessionID := c.GetString("sessionID"); sessionID != "" {
			ctx := context.Background()
			if coord, err := sessions.Get(ctx, sessionID); err == nil {
				coord.ProfileCompleted = true
				coord.JustSignedUp = false
				_ = sessions.Save(ctx, sessionID, coord)
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully"})
	}
}

// GetProfileHandler returns the authenticated user's profile
func GetProfileHandler(profiles *repository.ProfileRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		profile, err := profiles.Get(username)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"profile": profile})
	}
}
