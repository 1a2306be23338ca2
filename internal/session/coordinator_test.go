package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinatorStartsBrowsing(t *testing.T) {
	c := NewCoordinator()
	for _, k := range Kinds {
		assert.Equal(t, Browsing, c.State(k).Mode)
	}
	assert.False(t, c.JustSignedUp)
	assert.False(t, c.ProfileCompleted)
}

func TestStartCreate(t *testing.T) {
	c := NewCoordinator()
	c.StartCreate(KindBank)
	assert.Equal(t, State{Mode: Creating}, c.State(KindBank))
	// Other kinds are untouched.
	assert.Equal(t, Browsing, c.State(KindFund).Mode)
}

func TestStartEditReplacesPreviousEdit(t *testing.T) {
	c := NewCoordinator()
	c.StartEdit(KindFund, 1)
	require.Equal(t, State{Mode: Editing, RecordID: 1}, c.State(KindFund))

	// Editing B while A is open silently replaces A; never both.
	c.StartEdit(KindFund, 2)
	assert.Equal(t, State{Mode: Editing, RecordID: 2}, c.State(KindFund))
}

func TestStartEditSameRecordIsNoOp(t *testing.T) {
	c := NewCoordinator()
	c.StartEdit(KindCard, 7)
	before := c.State(KindCard)
	c.StartEdit(KindCard, 7)
	assert.Equal(t, before, c.State(KindCard))
}

func TestFinishReturnsToBrowsing(t *testing.T) {
	c := NewCoordinator()

	c.StartCreate(KindBank)
	c.Finish(KindBank)
	assert.Equal(t, Browsing, c.State(KindBank).Mode)

	c.StartEdit(KindBank, 3)
	c.Finish(KindBank)
	assert.Equal(t, Browsing, c.State(KindBank).Mode)
}

func TestDeleteConfirmation(t *testing.T) {
	c := NewCoordinator()
	c.RequestDelete(KindFund, 42)
	require.Equal(t, State{Mode: PendingDelete, RecordID: 42}, c.State(KindFund))

	id, ok := c.ConfirmDelete(KindFund)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, Browsing, c.State(KindFund).Mode)

	// Confirming again has nothing pending.
	_, ok = c.ConfirmDelete(KindFund)
	assert.False(t, ok)
}

func TestCancelPendingDelete(t *testing.T) {
	c := NewCoordinator()
	c.RequestDelete(KindCard, 5)
	c.Finish(KindCard)
	assert.Equal(t, Browsing, c.State(KindCard).Mode)

	_, ok := c.ConfirmDelete(KindCard)
	assert.False(t, ok, "cancel must clear the pending delete")
}

func TestConfirmDeleteWhileBrowsing(t *testing.T) {
	c := NewCoordinator()
	_, ok := c.ConfirmDelete(KindBank)
	assert.False(t, ok)
	assert.Equal(t, Browsing, c.State(KindBank).Mode)
}

func TestResetClearsEveryKind(t *testing.T) {
	c := NewCoordinator()
	c.StartEdit(KindBank, 1)
	c.StartCreate(KindFund)
	c.RequestDelete(KindCard, 2)

	c.Reset()
	for _, k := range Kinds {
		assert.Equal(t, Browsing, c.State(k).Mode)
	}
}

func TestCoordinatorJSONRoundTrip(t *testing.T) {
	c := NewCoordinator()
	c.StartEdit(KindFund, 9)
	c.ProfileCompleted = true

	b, err := json.Marshal(c)
	require.NoError(t, err)

	var got Coordinator
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, State{Mode: Editing, RecordID: 9}, got.State(KindFund))
	assert.True(t, got.ProfileCompleted)
	assert.Equal(t, Browsing, got.State(KindBank).Mode)
}
