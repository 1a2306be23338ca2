package repository

import (
	"strings"
	"testing"
	"time"

	"folio_fetch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *domain.Profile {
	return &domain.Profile{
		Username:     "alice",
		FullName:     "Alice Kumar",
		Email:        "alice@example.com",
		DateOfBirth:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		MobileNumber: "9876543210",
		Address:      "12 MG Road",
	}
}

func TestValidateProfile(t *testing.T) {
	assert.NoError(t, validateProfile(sampleProfile()))

	missing := sampleProfile()
	missing.Email = ""
	assert.ErrorIs(t, validateProfile(missing), ErrValidation)

	noDOB := sampleProfile()
	noDOB.DateOfBirth = time.Time{}
	assert.ErrorIs(t, validateProfile(noDOB), ErrValidation)
}

// The first save must be a plain INSERT. ON DUPLICATE KEY UPDATE fires on
// any unique index, so an insert carrying another user's email would
// silently rewrite that user's row instead of failing with a duplicate.
func TestProfileSaveInsertsWithoutConflictClause(t *testing.T) {
	db, captured := newDryRunDB(t)
	profiles := NewProfileRepo(db)

	require.NoError(t, profiles.Save(sampleProfile()))

	stmt := lastStatement(t, captured)
	upper := strings.ToUpper(stmt)
	assert.Contains(t, upper, "INSERT")
	assert.NotContains(t, upper, "ON DUPLICATE")
	assert.NotContains(t, upper, "ON CONFLICT")
}

func TestProfileColumnsNeverTouchUsername(t *testing.T) {
	cols := profileColumns(sampleProfile())
	assert.Len(t, cols, 13)
	assert.NotContains(t, cols, "username")
	for _, key := range []string{"full_name", "email", "pan_card", "aadhar_card", "mobile_number"} {
		assert.Contains(t, cols, key)
	}
}
