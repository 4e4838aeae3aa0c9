package repositories

import (
	"testing"

	"complaint-intake-backend/db/models"
	"complaint-intake-backend/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCasesByPatientID(t *testing.T) {
	db := testdb.Open(t)
	repo := NewCaseRepository(db)

	alice := models.Patient{Name: "Alice"}
	bob := models.Patient{Name: "Bob"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	cases := []models.Case{
		{CaseReference: "CASE-2026-001-001", PatientID: alice.ID},
		{CaseReference: "CASE-2026-001-002", PatientID: alice.ID},
		{CaseReference: "CASE-2026-002-001", PatientID: bob.ID},
	}
	for i := range cases {
		require.NoError(t, db.Create(&cases[i]).Error)
	}

	t.Run("nil filter returns every case", func(t *testing.T) {
		found, err := repo.GetCasesByPatientID(nil)
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("filter is an exact patient match", func(t *testing.T) {
		found, err := repo.GetCasesByPatientID(&alice.ID)
		require.NoError(t, err)
		require.Len(t, found, 2)
		for _, c := range found {
			assert.Equal(t, alice.ID, c.PatientID)
		}
	})

	t.Run("unknown patient is an empty list", func(t *testing.T) {
		ghost := models.Patient{Name: "Ghost"}
		require.NoError(t, db.Create(&ghost).Error)

		found, err := repo.GetCasesByPatientID(&ghost.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Empty(t, found)
	})
}

func TestGetCaseByID(t *testing.T) {
	db := testdb.Open(t)
	repo := NewCaseRepository(db)

	patient := models.Patient{Name: "Alice"}
	require.NoError(t, db.Create(&patient).Error)
	kase := models.Case{CaseReference: "CASE-2026-001-001", PatientID: patient.ID}
	require.NoError(t, db.Create(&kase).Error)

	found, err := repo.GetCaseByID(kase.ID)
	require.NoError(t, err)
	assert.Equal(t, "CASE-2026-001-001", found.CaseReference)
	assert.Equal(t, patient.ID, found.PatientID)
}
