package api

import (
	"context"  // Context for session store operations
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strings"  // String manipulation

	"folio_fetch/internal/domain"     // Importing domain models
	"folio_fetch/internal/repository" // Record repositories
	"folio_fetch/internal/session"    // Edit-state coordinator and store
	"folio_fetch/internal/utils"      // JWT helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Request struct for signup
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token            string `json:"token"`             // JWT token
	ProfileCompleted bool   `json:"profile_completed"` // Whether the profile form can be skipped
}

// isValidUsername checks if the username contains only alphabetic characters
func isValidUsername(username string) bool {
	matched, _ := regexp.MatchString(`^[A-Za-z]+$`, username) // Regex to match alphabetic characters only
	return matched                                            // Return whether it matched
}

// isValidPassword checks if the password length is between 8 and 15 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 15 // Return true if length is valid
}

// RegisterHandler creates a new user and logs them straight in with the
// just-signed-up flag set, so the profile form is shown first
func RegisterHandler(users *repository.UserRepo, sessions *session.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate username and password
		if !isValidUsername(req.Username) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be alphabetic only"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-15 characters"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// Create user with lowercase username to ensure uniqueness
		user := domain.User{Username: strings.ToLower(req.Username), Password: string(hash)}
		if err := users.Create(&user); err != nil {
			// A duplicate username is a validation failure, not a fault
			if errors.Is(err, repository.ErrDuplicateKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
				return
			}
			writeRepoError(c, err)
			return
		}
		// Start a fresh session; a new user has no profile yet
		coord := session.NewCoordinator()
		coord.JustSignedUp = true
		sessionID, err := sessions.Create(context.Background(), coord)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		// Generate JWT token for the new session
		token, err := utils.GenerateJWT(user.Username, sessionID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		logrus.WithField("username", user.Username).Info("User registered")
		// Return the token in the response
		c.JSON(http.StatusCreated, AuthResponse{Token: token, ProfileCompleted: false})
	}
}

// LoginHandler authenticates a user, resets their edit state and returns a JWT token
func LoginHandler(users *repository.UserRepo, profiles *repository.ProfileRepo, sessions *session.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Fetch user from database
		user, err := users.FindByUsername(strings.ToLower(req.Username))
		if err != nil {
			if errors.Is(err, repository.ErrConnectionUnavailable) {
				writeRepoError(c, err)
				return
			}
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Check whether the profile is completed
		completed, err := profiles.Exists(user.Username)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		// Start a fresh session with every edit form closed
		coord := session.NewCoordinator()
		coord.ProfileCompleted = completed
		sessionID, err := sessions.Create(context.Background(), coord)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.Username, sessionID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		logrus.WithField("username", user.Username).Info("User logged in")
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, ProfileCompleted: completed})
	}
}

// LogoutHandler deletes the session so edit state does not leak into the next login
func LogoutHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("sessionID") // Session id from the JWT claims
		if sessionID != "" {
			_ = sessions.Delete(context.Background(), sessionID)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
