package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nurpe/marketplace-ledger/internal/model"
)

func createNamedClient(t *testing.T, db *gorm.DB, id uuid.UUID, firstName, profession string) model.Profile {
	t.Helper()
	profile := model.Profile{
		ID:         id,
		Role:       model.RoleClient,
		FirstName:  firstName,
		LastName:   "Client",
		Profession: profession,
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

func paidAt(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	parsed = parsed.UTC()
	return &parsed
}

func TestTopClientsByPaidTotal(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	contractor := createProfile(t, db, model.RoleContractor, 0)
	alice := createNamedClient(t, db, uuid.New(), "Alice", "Musician")
	bob := createNamedClient(t, db, uuid.New(), "Bob", "Fighter")

	aliceContract := createContract(t, db, alice.ID, contractor.ID, model.ContractStatusInProgress)
	bobContract := createContract(t, db, bob.ID, contractor.ID, model.ContractStatusInProgress)

	createJob(t, db, aliceContract.ID, 200, true, paidAt(t, "2020-08-10T12:00:00Z"))
	createJob(t, db, aliceContract.ID, 100, true, paidAt(t, "2020-08-12T12:00:00Z"))
	createJob(t, db, bobContract.ID, 150, true, paidAt(t, "2020-08-11T12:00:00Z"))
	createJob(t, db, bobContract.ID, 999, true, paidAt(t, "2020-09-01T12:00:00Z")) // outside window
	createJob(t, db, bobContract.ID, 500, false, nil)                              // unpaid

	from := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	rows, err := repo.TopClientsByPaidTotal(ctx, from, to, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, alice.ID, rows[0].ClientID)
	require.Equal(t, 300.0, rows[0].TotalPaid)
	require.Equal(t, "Musician", rows[0].Profession)
	require.Equal(t, bob.ID, rows[1].ClientID)
	require.Equal(t, 150.0, rows[1].TotalPaid)
}

func TestTopClientsByPaidTotalLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	contractor := createProfile(t, db, model.RoleContractor, 0)
	for i, total := range []float64{100, 300, 200} {
		client := createNamedClient(t, db, uuid.New(), string(rune('A'+i)), "Professional")
		contract := createContract(t, db, client.ID, contractor.ID, model.ContractStatusInProgress)
		createJob(t, db, contract.ID, total, true, paidAt(t, "2020-08-10T12:00:00Z"))
	}

	from := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	rows, err := repo.TopClientsByPaidTotal(ctx, from, to, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 300.0, rows[0].TotalPaid)
	require.Equal(t, 200.0, rows[1].TotalPaid)
}

func TestTopClientsByPaidTotalTieBreaksOnSmallerID(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	contractor := createProfile(t, db, model.RoleContractor, 0)
	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	low := createNamedClient(t, db, lowID, "Low", "Plumber")
	high := createNamedClient(t, db, highID, "High", "Electrician")

	lowContract := createContract(t, db, low.ID, contractor.ID, model.ContractStatusInProgress)
	highContract := createContract(t, db, high.ID, contractor.ID, model.ContractStatusInProgress)
	createJob(t, db, lowContract.ID, 250, true, paidAt(t, "2020-08-10T12:00:00Z"))
	createJob(t, db, highContract.ID, 250, true, paidAt(t, "2020-08-11T12:00:00Z"))

	from := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	rows, err := repo.TopClientsByPaidTotal(ctx, from, to, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, lowID, rows[0].ClientID)
}

func TestTopClientsByPaidTotalEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	from := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	rows, err := repo.TopClientsByPaidTotal(ctx, from, to, 5)
	require.NoError(t, err)
	require.Empty(t, rows)
}
