package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/marketplace-ledger/internal/model"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, role, first_name, last_name, profession, balance, created_at
		FROM profiles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

// GetContractForContractor returns the contract only when the given
// profile is its contractor; anything else reads as absent.
func (r *LedgerRepository) GetContractForContractor(ctx context.Context, id, contractorID uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE id = ? AND contractor_id = ?
		LIMIT 1
	`, id, contractorID).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *LedgerRepository) ListActiveContracts(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE status <> ?
		ORDER BY created_at ASC, id ASC
	`, model.ContractStatusTerminated).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// ListUnpaidJobs returns unpaid jobs on in-progress contracts where the
// profile takes part on either side, each row carrying its contract.
func (r *LedgerRepository) ListUnpaidJobs(ctx context.Context, profileID uuid.UUID) ([]model.Job, error) {
	var rows []struct {
		ID           uuid.UUID
		ContractID   uuid.UUID
		Description  string
		Price        float64
		Paid         bool
		PaymentDate  *time.Time
		CreatedAt    time.Time
		ClientID     uuid.UUID
		ContractorID uuid.UUID
		Terms        string
		Status       model.ContractStatus
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.contract_id,
			j.description,
			j.price,
			j.paid,
			j.payment_date,
			j.created_at,
			c.client_id,
			c.contractor_id,
			c.terms,
			c.status
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = ?
			AND c.status = ?
			AND (c.client_id = ? OR c.contractor_id = ?)
		ORDER BY c.id ASC, j.created_at ASC, j.id ASC
	`, false, model.ContractStatusInProgress, profileID, profileID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, model.Job{
			ID:          row.ID,
			ContractID:  row.ContractID,
			Description: row.Description,
			Price:       row.Price,
			Paid:        row.Paid,
			PaymentDate: row.PaymentDate,
			CreatedAt:   row.CreatedAt,
			Contract: model.Contract{
				ID:           row.ContractID,
				ClientID:     row.ClientID,
				ContractorID: row.ContractorID,
				Terms:        row.Terms,
				Status:       row.Status,
			},
		})
	}
	return jobs, nil
}

// GetJob returns the job together with its contract.
func (r *LedgerRepository) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var row struct {
		ID           uuid.UUID
		ContractID   uuid.UUID
		Description  string
		Price        float64
		Paid         bool
		PaymentDate  *time.Time
		CreatedAt    time.Time
		ClientID     uuid.UUID
		ContractorID uuid.UUID
		Terms        string
		Status       model.ContractStatus
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.contract_id,
			j.description,
			j.price,
			j.paid,
			j.payment_date,
			j.created_at,
			c.client_id,
			c.contractor_id,
			c.terms,
			c.status
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Job{
		ID:          row.ID,
		ContractID:  row.ContractID,
		Description: row.Description,
		Price:       row.Price,
		Paid:        row.Paid,
		PaymentDate: row.PaymentDate,
		CreatedAt:   row.CreatedAt,
		Contract: model.Contract{
			ID:           row.ContractID,
			ClientID:     row.ClientID,
			ContractorID: row.ContractorID,
			Terms:        row.Terms,
			Status:       row.Status,
		},
	}, nil
}

// SumOutstanding totals the unpaid job prices over the client's contracts.
func (r *LedgerRepository) SumOutstanding(ctx context.Context, clientID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE c.client_id = ? AND j.paid = ?
	`, clientID, false).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// LedgerTx is the transaction-scoped view of the ledger. All writes made
// through it commit or roll back together.
type LedgerTx struct {
	db *gorm.DB
}

// Atomically runs fn inside a single database transaction; returning an
// error rolls every write back.
func (r *LedgerRepository) Atomically(ctx context.Context, fn func(tx *LedgerTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LedgerTx{db: tx})
	})
}

// DebitBalance subtracts amount from the profile balance in one guarded
// statement. A profile whose balance is below amount matches no row and
// the call reports gorm.ErrRecordNotFound, so the read-modify-write of a
// balance is atomic even across concurrent transactions.
func (t *LedgerTx) DebitBalance(id uuid.UUID, amount float64) error {
	result := t.db.Exec(`
		UPDATE profiles
		SET balance = balance - ?
		WHERE id = ? AND balance >= ?
	`, amount, id, amount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (t *LedgerTx) CreditBalance(id uuid.UUID, amount float64) error {
	result := t.db.Exec(`
		UPDATE profiles
		SET balance = balance + ?
		WHERE id = ?
	`, amount, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkJobPaid flips the job to paid. The paid = FALSE guard makes the
// flip happen at most once: the second of two racing payments matches no
// row and reports gorm.ErrRecordNotFound.
func (t *LedgerTx) MarkJobPaid(id uuid.UUID, paidAt time.Time) error {
	result := t.db.Exec(`
		UPDATE jobs
		SET paid = ?, payment_date = ?
		WHERE id = ? AND paid = ?
	`, true, paidAt, id, false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
