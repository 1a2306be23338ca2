package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"folio_fetch/internal/repository" // Repository error taxonomy
	"folio_fetch/internal/session"    // Edit-state coordinator
	"folio_fetch/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// currentUsername pulls the authenticated username set by the JWT middleware.
func currentUsername(c *gin.Context) (string, bool) {
	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return username, true
}

// recordID parses the :id path parameter.
func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return 0, false
	}
	return uint(id), true
}

// writeRepoError maps the repository error taxonomy onto HTTP responses.
// Every failure becomes a user-visible message; nothing is fatal.
func writeRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrConnectionUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to connect to database"})
	case errors.Is(err, repository.ErrDuplicateKey):
		c.JSON(http.StatusConflict, gin.H{"error": "Record already exists"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

// dashboardCacheKey is the per-user cache key for the dashboard snapshot.
func dashboardCacheKey(username string) string {
	return "dashboard:user:" + username
}

// invalidateDashboard drops the cached dashboard after any bank or fund
// mutation so the next render recomputes from a fresh snapshot.
func invalidateDashboard(c *gin.Context, username string) {
	if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
		_ = utils.DeleteCache(context.Background(), rdb, dashboardCacheKey(username))
	}
}

// finishEdit returns the session's edit state for kind to Browsing after a
// successful save. Best effort: a session store failure never fails the save.
func finishEdit(c *gin.Context, sessions *session.Store, kind session.Kind) {
	sessionID := c.GetString("sessionID")
	if sessionID == "" {
		return
	}
	ctx := context.Background()
	coord, err := sessions.Get(ctx, sessionID)
	if err != nil {
		return
	}
	coord.Finish(kind)
	_ = sessions.Save(ctx, sessionID, coord)
}
