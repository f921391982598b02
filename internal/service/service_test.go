package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nurpe/marketplace-ledger/internal/model"
	"github.com/nurpe/marketplace-ledger/internal/repository"
)

type fixtures struct {
	db         *gorm.DB
	ledgerRepo *repository.LedgerRepository
	reportRepo *repository.ReportRepository
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Profile{}, &model.Contract{}, &model.Job{}))

	return &fixtures{
		db:         db,
		ledgerRepo: repository.NewLedgerRepository(db),
		reportRepo: repository.NewReportRepository(db),
	}
}

func (f *fixtures) profile(t *testing.T, role model.ProfileRole, profession string, balance float64) model.Profile {
	t.Helper()
	profile := model.Profile{
		ID:         uuid.New(),
		Role:       role,
		FirstName:  "Test",
		LastName:   string(role),
		Profession: profession,
		Balance:    balance,
	}
	require.NoError(t, f.db.Create(&profile).Error)
	return profile
}

func (f *fixtures) contract(t *testing.T, clientID, contractorID uuid.UUID, status model.ContractStatus) model.Contract {
	t.Helper()
	contract := model.Contract{
		ID:           uuid.New(),
		ClientID:     clientID,
		ContractorID: contractorID,
		Terms:        "test contract",
		Status:       status,
	}
	require.NoError(t, f.db.Create(&contract).Error)
	return contract
}

func (f *fixtures) job(t *testing.T, contractID uuid.UUID, price float64, paid bool, paidAt *time.Time) model.Job {
	t.Helper()
	job := model.Job{
		ID:          uuid.New(),
		ContractID:  contractID,
		Description: "test job",
		Price:       price,
		Paid:        paid,
		PaymentDate: paidAt,
	}
	require.NoError(t, f.db.Create(&job).Error)
	return job
}

func (f *fixtures) balanceOf(t *testing.T, id uuid.UUID) float64 {
	t.Helper()
	var balance float64
	require.NoError(t, f.db.Raw(`SELECT balance FROM profiles WHERE id = ?`, id).Scan(&balance).Error)
	return balance
}

func principalFor(profile model.Profile) model.Principal {
	return model.Principal{
		ProfileID: profile.ID,
		Role:      profile.Role,
		Balance:   profile.Balance,
	}
}

func mustTime(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	parsed = parsed.UTC()
	return &parsed
}
