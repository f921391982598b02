package service

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAlreadyPaid          = errors.New("job is already paid")
	ErrInsufficientFunds    = errors.New("not enough balance")
	ErrDepositLimitExceeded = errors.New("deposit exceeds the allowed limit")
	ErrTransactionFailed    = errors.New("transaction failed")
)
