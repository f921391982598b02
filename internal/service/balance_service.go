package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/marketplace-ledger/internal/model"
	"github.com/nurpe/marketplace-ledger/internal/repository"
)

// BalanceService guards client deposits behind a ceiling tied to the
// client's outstanding unpaid job total.
type BalanceService struct {
	repo       *repository.LedgerRepository
	limitRatio float64
}

func NewBalanceService(repo *repository.LedgerRepository, limitRatio float64) *BalanceService {
	return &BalanceService{repo: repo, limitRatio: limitRatio}
}

// Deposit credits the client's balance with amount. The amount may not
// exceed limitRatio of the client's outstanding unpaid job total; with
// no outstanding jobs any positive deposit is rejected. A non-positive
// amount is a successful no-op.
func (s *BalanceService) Deposit(ctx context.Context, clientID uuid.UUID, amount float64) (*model.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if profile.Role != model.RoleClient {
		return nil, ErrNotFound
	}
	if amount <= 0 {
		return profile, nil
	}

	outstanding, err := s.repo.SumOutstanding(ctx, clientID)
	if err != nil {
		return nil, err
	}
	ceiling := s.limitRatio * outstanding
	if amount > ceiling {
		return nil, fmt.Errorf("%w: %.2f is above the ceiling of %.2f", ErrDepositLimitExceeded, amount, ceiling)
	}

	err = s.repo.Atomically(ctx, func(tx *repository.LedgerTx) error {
		return tx.CreditBalance(clientID, amount)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	profile.Balance += amount
	return profile, nil
}
