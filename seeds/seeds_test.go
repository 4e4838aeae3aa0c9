package seeds

import (
	"testing"

	"complaint-intake-backend/db/models"
	"complaint-intake-backend/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAllPopulatesReferenceData(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, SeedAll(db))

	var categories, patients, cases int64
	require.NoError(t, db.Model(&models.ComplaintCategory{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Patient{}).Count(&patients).Error)
	require.NoError(t, db.Model(&models.Case{}).Count(&cases).Error)

	assert.Equal(t, int64(8), categories)
	assert.Equal(t, int64(6), patients)
	assert.Equal(t, int64(12), cases)
}

func TestSeedAllIsIdempotent(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, SeedAll(db))
	require.NoError(t, SeedAll(db))

	var categories, patients, cases int64
	require.NoError(t, db.Model(&models.ComplaintCategory{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Patient{}).Count(&patients).Error)
	require.NoError(t, db.Model(&models.Case{}).Count(&cases).Error)

	assert.Equal(t, int64(8), categories)
	assert.Equal(t, int64(6), patients)
	assert.Equal(t, int64(12), cases)
}

func TestSeededCasesBelongToSeededPatients(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, SeedAll(db))

	var cases []models.Case
	require.NoError(t, db.Find(&cases).Error)

	patientIDs := make(map[string]bool)
	var patients []models.Patient
	require.NoError(t, db.Find(&patients).Error)
	for _, p := range patients {
		patientIDs[p.ID.String()] = true
	}

	references := make(map[string]bool)
	for _, c := range cases {
		assert.True(t, patientIDs[c.PatientID.String()], "case %s has unknown patient", c.CaseReference)
		assert.False(t, references[c.CaseReference], "duplicate case reference %s", c.CaseReference)
		references[c.CaseReference] = true
	}
}
