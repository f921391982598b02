package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/marketplace-ledger/internal/model"
)

func TestPayJobDebitsExactlyOnce(t *testing.T) {
	f := newFixtures(t)
	svc := NewPaymentService(f.ledgerRepo)
	ctx := context.Background()

	client := f.profile(t, model.RoleClient, "Manager", 100)
	contractor := f.profile(t, model.RoleContractor, "Plumber", 5)
	contract := f.contract(t, client.ID, contractor.ID, model.ContractStatusInProgress)
	job := f.job(t, contract.ID, 40, false, nil)

	paid, err := svc.PayJob(ctx, principalFor(client), job.ID)
	require.NoError(t, err)
	require.True(t, paid.Paid)
	require.NotNil(t, paid.PaymentDate)

	require.Equal(t, 60.0, f.balanceOf(t, client.ID))
	// debit-only: the contractor balance is untouched
	require.Equal(t, 5.0, f.balanceOf(t, contractor.ID))

	// the same call again is rejected and changes nothing
	_, err = svc.PayJob(ctx, principalFor(client), job.ID)
	require.ErrorIs(t, err, ErrAlreadyPaid)
	require.Equal(t, 60.0, f.balanceOf(t, client.ID))
}

func TestPayJobInsufficientFunds(t *testing.T) {
	f := newFixtures(t)
	svc := NewPaymentService(f.ledgerRepo)
	ctx := context.Background()

	client := f.profile(t, model.RoleClient, "Manager", 10)
	contractor := f.profile(t, model.RoleContractor, "Plumber", 0)
	contract := f.contract(t, client.ID, contractor.ID, model.ContractStatusInProgress)
	job := f.job(t, contract.ID, 40, false, nil)

	_, err := svc.PayJob(ctx, principalFor(client), job.ID)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	require.Equal(t, 10.0, f.balanceOf(t, client.ID))
	got, err := f.ledgerRepo.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.False(t, got.Paid)
	require.Nil(t, got.PaymentDate)
}

func TestPayJobUnknownJob(t *testing.T) {
	f := newFixtures(t)
	svc := NewPaymentService(f.ledgerRepo)

	client := f.profile(t, model.RoleClient, "Manager", 100)

	_, err := svc.PayJob(context.Background(), principalFor(client), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPayJobForeignJobReadsAsAbsent(t *testing.T) {
	f := newFixtures(t)
	svc := NewPaymentService(f.ledgerRepo)
	ctx := context.Background()

	client := f.profile(t, model.RoleClient, "Manager", 100)
	stranger := f.profile(t, model.RoleClient, "Designer", 100)
	contractor := f.profile(t, model.RoleContractor, "Plumber", 0)
	contract := f.contract(t, client.ID, contractor.ID, model.ContractStatusInProgress)
	job := f.job(t, contract.ID, 40, false, nil)

	_, err := svc.PayJob(ctx, principalFor(stranger), job.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// the contractor cannot pay their own job either
	_, err = svc.PayJob(ctx, principalFor(contractor), job.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.Equal(t, 100.0, f.balanceOf(t, client.ID))
}

func TestPayJobExactBalance(t *testing.T) {
	f := newFixtures(t)
	svc := NewPaymentService(f.ledgerRepo)
	ctx := context.Background()

	client := f.profile(t, model.RoleClient, "Manager", 40)
	contractor := f.profile(t, model.RoleContractor, "Plumber", 0)
	contract := f.contract(t, client.ID, contractor.ID, model.ContractStatusInProgress)
	job := f.job(t, contract.ID, 40, false, nil)

	_, err := svc.PayJob(ctx, principalFor(client), job.ID)
	require.NoError(t, err)
	require.Equal(t, 0.0, f.balanceOf(t, client.ID))
}
