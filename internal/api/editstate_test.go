package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio_fetch/internal/repository"
	"folio_fetch/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// setupEditStateRouter wires the edit-state routes against an in-process
// Redis and a dry-run DB handle. The dry-run handle builds SQL but matches
// no rows, so every storage delete comes back empty.
func setupEditStateRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(rdb)

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	banks := repository.NewBankRepo(db)
	funds := repository.NewFundRepo(db)
	cards := repository.NewCardRepo(db)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("username", "alice")
		c.Set("sessionID", "sess-1")
		c.Set("redisClient", rdb)
		c.Next()
	})
	r.GET("/api/editstate", GetEditStateHandler(sessions))
	r.POST("/api/editstate/:kind/create", StartCreateHandler(sessions))
	r.POST("/api/editstate/:kind/edit/:id", StartEditHandler(sessions))
	r.POST("/api/editstate/:kind/delete/:id", RequestDeleteHandler(sessions))
	r.POST("/api/editstate/:kind/confirm", ConfirmDeleteHandler(sessions, banks, funds, cards))
	r.POST("/api/editstate/:kind/cancel", CancelHandler(sessions))
	return r, sessions
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestEditStateLifecycle(t *testing.T) {
	r, sessions := setupEditStateRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/editstate/bank/create").Code)

	coord, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.Creating, coord.State(session.KindBank).Mode)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/editstate/bank/cancel").Code)
	coord, err = sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.Browsing, coord.State(session.KindBank).Mode)
}

func TestEditStateUnknownKind(t *testing.T) {
	r, _ := setupEditStateRouter(t)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/editstate/wallet/create").Code)
}

// A confirmed delete must leave PendingDelete even when the storage delete
// comes back empty. The session is persisted before the delete runs, so a
// retried confirm cannot replay against a state that no longer exists.
func TestConfirmDeleteFailureStillReturnsToBrowsing(t *testing.T) {
	r, sessions := setupEditStateRouter(t)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/editstate/fund/delete/42").Code)
	coord, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Equal(t, session.State{Mode: session.PendingDelete, RecordID: 42}, coord.State(session.KindFund))

	// No row matches in storage, so the delete reports not found.
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/editstate/fund/confirm").Code)

	coord, err = sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.Browsing, coord.State(session.KindFund).Mode,
		"failed delete must not leave the session stuck in PendingDelete")
}

func TestConfirmDeleteWithNothingPending(t *testing.T) {
	r, _ := setupEditStateRouter(t)
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/editstate/card/confirm").Code)
}
