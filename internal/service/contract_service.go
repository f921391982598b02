package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/marketplace-ledger/internal/model"
	"github.com/nurpe/marketplace-ledger/internal/repository"
)

// ContractService covers the read-only contract surface.
type ContractService struct {
	repo *repository.LedgerRepository
}

func NewContractService(repo *repository.LedgerRepository) *ContractService {
	return &ContractService{repo: repo}
}

// GetContract returns the contract only when the caller is its contractor.
func (s *ContractService) GetContract(ctx context.Context, caller model.Principal, contractID uuid.UUID) (*model.Contract, error) {
	contract, err := s.repo.GetContractForContractor(ctx, contractID, caller.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) ListActiveContracts(ctx context.Context) ([]model.Contract, error) {
	return s.repo.ListActiveContracts(ctx)
}

// ListUnpaidJobs returns the caller's in-progress contracts with their
// unpaid jobs, grouped per contract.
func (s *ContractService) ListUnpaidJobs(ctx context.Context, caller model.Principal) ([]model.ContractJobs, error) {
	jobs, err := s.repo.ListUnpaidJobs(ctx, caller.ProfileID)
	if err != nil {
		return nil, err
	}

	grouped := make([]model.ContractJobs, 0)
	index := make(map[uuid.UUID]int)
	for _, job := range jobs {
		contract := job.Contract
		job.Contract = model.Contract{}
		pos, ok := index[contract.ID]
		if !ok {
			grouped = append(grouped, model.ContractJobs{Contract: contract})
			pos = len(grouped) - 1
			index[contract.ID] = pos
		}
		grouped[pos].Jobs = append(grouped[pos].Jobs, job)
	}
	return grouped, nil
}
