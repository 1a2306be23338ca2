package api

import (
	"context"  // Context for session store operations
	"net/http" // HTTP status codes

	"folio_fetch/internal/repository" // Record repositories
	"folio_fetch/internal/session"    // Edit-state coordinator

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// editKind parses the :kind path parameter into a record kind.
func editKind(c *gin.Context) (session.Kind, bool) {
	kind := session.Kind(c.Param("kind"))
	for _, k := range session.Kinds {
		if kind == k {
			return kind, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown record kind"})
	return "", false
}

// loadCoordinator fetches the session's coordinator, or reports the failure.
func loadCoordinator(c *gin.Context, sessions *session.Store) (*session.Coordinator, string, bool) {
	sessionID := c.GetString("sessionID")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, "", false
	}
	coord, err := sessions.Get(context.Background(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return nil, "", false
	}
	return coord, sessionID, true
}

// saveCoordinator writes the coordinator back and returns its states.
func saveCoordinator(c *gin.Context, sessions *session.Store, sessionID string, coord *session.Coordinator) {
	if err := sessions.Save(context.Background(), sessionID, coord); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"states": coord.States})
}

// GetEditStateHandler returns the session's edit state for every record kind
func GetEditStateHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		coord, _, ok := loadCoordinator(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"states":            coord.States,
			"just_signed_up":    coord.JustSignedUp,
			"profile_completed": coord.ProfileCompleted,
		})
	}
}

// StartCreateHandler opens the add form for a record kind
func StartCreateHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := editKind(c)
		if !ok {
			return
		}
		coord, sessionID, ok := loadCoordinator(c, sessions)
		if !ok {
			return
		}
		coord.StartCreate(kind)
		saveCoordinator(c, sessions, sessionID, coord)
	}
}

// StartEditHandler opens the edit form for one record, replacing any form
// already open for the same kind
func StartEditHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := editKind(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		coord, sessionID, ok := loadCoordinator(c, sessions)
		if !ok {
			return
		}
		coord.StartEdit(kind, id)
		saveCoordinator(c, sessions, sessionID, coord)
	}
}

// RequestDeleteHandler records a pending delete awaiting confirmation
func RequestDeleteHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := editKind(c)
		if !ok {
			return
		}
		id, ok := recordID(c)
		if !ok {
			return
		}
		coord, sessionID, ok := loadCoordinator(c, sessions)
		if !ok {
			return
		}
		coord.RequestDelete(kind, id)
		saveCoordinator(c, sessions, sessionID, coord)
	}
}

// ConfirmDeleteHandler performs the pending delete for a record kind and
// returns the session to browsing
func ConfirmDeleteHandler(sessions *session.Store, banks *repository.BankRepo, funds *repository.FundRepo, cards *repository.CardRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := currentUsername(c)
		if !ok {
			return
		}
		kind, ok := editKind(c)
		if !ok {
			return
		}
		coord, sessionID, ok := loadCoordinator(c, sessions)
		if !ok {
			return
		}
		id, pending := coord.ConfirmDelete(kind)
		if !pending {
			c.JSON(http.StatusConflict, gin.H{"error": "No delete pending"})
			return
		}
		// Persist the transition to Browsing before touching storage:
		// confirm always leaves PendingDelete, whatever the delete outcome
		if err := sessions.Save(context.Background(), sessionID, coord); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		// Route the delete to the right repository
		var deleted bool
		var err error
		switch kind {
		case session.KindBank:
			deleted, err = banks.Delete(username, id)
		case session.KindFund:
			deleted, err = funds.Delete(username, id)
		case session.KindCard:
			deleted, err = cards.Delete(username, id)
		}
		if err != nil {
			writeRepoError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"username": username,
			"kind":     kind,
			"id":       id,
		}).Info("Record deleted")
		if kind == session.KindBank || kind == session.KindFund {
			invalidateDashboard(c, username) // Totals changed
		}
		c.JSON(http.StatusOK, gin.H{"states": coord.States})
	}
}

// CancelHandler closes any open form or pending delete for a record kind
func CancelHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := editKind(c)
		if !ok {
			return
		}
		coord, sessionID, ok := loadCoordinator(c, sessions)
		if !ok {
			return
		}
		coord.Finish(kind)
		saveCoordinator(c, sessions, sessionID, coord)
	}
}
