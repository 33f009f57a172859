package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"health-backend/internal/database"
	"health-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// getTestDB connects to the database named by TEST_POSTGRES_URI and migrates
// the schema. Tests are skipped when no database is available.
func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	uri := os.Getenv("TEST_POSTGRES_URI")
	if uri == "" {
		t.Skip("Skipping integration test: TEST_POSTGRES_URI not set")
	}
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to database: %v", err)
	}
	require.NoError(t, database.Migrate(db))
	return db
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// testPatient builds a patient with a username distinct from every other
// test patient, so only the constraint under test can fire.
func testPatient(firstName, email string) *models.Patient {
	p := &models.Patient{FirstName: firstName, Email: email}
	p.Username = fmt.Sprintf("%s-%d", firstName, time.Now().UnixNano())
	return p
}

func TestDuplicateEmailRejected(t *testing.T) {
	db := getTestDB(t)
	s := New(db)
	ctx := context.Background()

	email := uniqueEmail("dup")
	first := testPatient("Ada", email)
	require.NoError(t, s.CreatePatient(ctx, first))
	t.Cleanup(func() { _ = s.DeletePatient(ctx, first.ID) })

	second := testPatient("Grace", email)
	err := s.CreatePatient(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	var count int64
	require.NoError(t, db.Model(&models.Patient{}).Where("email = ?", email).Count(&count).Error)
	assert.EqualValues(t, 1, count, "no duplicate row may exist")
}

func TestPatientsWithDistinctEmailsCoexist(t *testing.T) {
	db := getTestDB(t)
	s := New(db)
	ctx := context.Background()

	first := testPatient("Ada", uniqueEmail("coexist"))
	require.NoError(t, s.CreatePatient(ctx, first))
	t.Cleanup(func() { _ = s.DeletePatient(ctx, first.ID) })

	second := testPatient("Grace", uniqueEmail("coexist"))
	require.NoError(t, s.CreatePatient(ctx, second), "distinct emails and usernames must not collide")
	t.Cleanup(func() { _ = s.DeletePatient(ctx, second.ID) })
}

func TestDeletePatientCascades(t *testing.T) {
	db := getTestDB(t)
	s := New(db)
	ctx := context.Background()

	patient := testPatient("Ada", uniqueEmail("cascade"))
	require.NoError(t, s.CreatePatient(ctx, patient))

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	record := &models.Record{PatientID: patient.ID, RecordDate: day}
	require.NoError(t, s.CreateRecord(ctx, record))

	labs := &models.LabResults{RecordID: record.ID, TestDate: day}
	require.NoError(t, s.CreateLabResults(ctx, labs))

	require.NoError(t, s.DeletePatient(ctx, patient.ID))

	_, err := s.GetPatient(ctx, patient.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := s.RecordsForPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, records, "records must be removed with the patient")

	panels, err := s.LabResultsForRecord(ctx, record.ID)
	require.NoError(t, err)
	assert.Empty(t, panels, "lab results must be removed with the record")
}

func TestRecordsOrderedByDate(t *testing.T) {
	db := getTestDB(t)
	s := New(db)
	ctx := context.Background()

	patient := testPatient("Ada", uniqueEmail("order"))
	require.NoError(t, s.CreatePatient(ctx, patient))
	t.Cleanup(func() { _ = s.DeletePatient(ctx, patient.ID) })

	dates := []time.Time{
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		require.NoError(t, s.CreateRecord(ctx, &models.Record{PatientID: patient.ID, RecordDate: d}))
	}

	records, err := s.RecordsForPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].RecordDate.Before(records[i-1].RecordDate))
	}
}

func TestProfileRoundTrip(t *testing.T) {
	db := getTestDB(t)
	s := New(db)
	ctx := context.Background()

	age := 36
	profile := &models.PatientProfile{FirstName: "Ada", LastName: "Lovelace", Age: &age}
	require.NoError(t, s.CreateProfile(ctx, profile))
	require.NotZero(t, profile.ID)
	t.Cleanup(func() { db.Delete(&models.PatientProfile{}, profile.ID) })

	got, err := s.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	require.NotNil(t, got.Age)
	assert.Equal(t, 36, *got.Age)
	assert.False(t, got.CreatedAt.IsZero())
}
