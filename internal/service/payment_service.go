package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/marketplace-ledger/internal/model"
	"github.com/nurpe/marketplace-ledger/internal/repository"
)

// PaymentService executes job payments as atomic balance transfers
// against the ledger.
type PaymentService struct {
	repo *repository.LedgerRepository
}

func NewPaymentService(repo *repository.LedgerRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// PayJob debits the caller by the job price and marks the job paid in a
// single transaction. Only the contract's client may pay; a foreign job
// is reported as absent so the API does not leak job existence. The
// contractor's balance is intentionally untouched: the paid job row is
// the ledger record of the contractor's earnings.
func (s *PaymentService) PayJob(ctx context.Context, caller model.Principal, jobID uuid.UUID) (*model.Job, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.Contract.ClientID != caller.ProfileID {
		return nil, ErrNotFound
	}
	if job.Paid {
		return nil, ErrAlreadyPaid
	}

	client, err := s.repo.GetProfile(ctx, caller.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if client.Balance < job.Price {
		return nil, ErrInsufficientFunds
	}

	paidAt := time.Now().UTC()
	err = s.repo.Atomically(ctx, func(tx *repository.LedgerTx) error {
		if err := tx.DebitBalance(client.ID, job.Price); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// balance guard lost to a concurrent debit
				return ErrInsufficientFunds
			}
			return err
		}
		if err := tx.MarkJobPaid(job.ID, paidAt); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// paid guard lost to a concurrent payment
				return ErrAlreadyPaid
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrAlreadyPaid) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	job.Paid = true
	job.PaymentDate = &paidAt
	return job, nil
}
