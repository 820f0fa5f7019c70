package domain

import (
	"errors"
	"time"
)

// Transfer records a committed money movement between two accounts.
// The row is written inside the same transaction as the balance
// mutations, so its presence proves the transfer landed.
type Transfer struct {
	ID            string
	FromAccountID string
	ToAccountID   string
	Amount        int64
	CreatedAt     time.Time
}

// CheckTransfer validates a proposed transfer against the source
// account's current balance. Pure; safe to call speculatively before
// any lock is taken, but the result is only authoritative when the
// balance was read inside the transactional scope.
//
// Rules are evaluated in order: invalid amount, self-transfer, missing
// destination, insufficient funds.
func CheckTransfer(fromID, toID string, amount, sourceBalance int64, destinationExists bool) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if fromID == toID {
		return ErrInvalidTarget
	}

	if !destinationExists {
		return ErrInvalidTarget
	}

	if sourceBalance < amount {
		return ErrInsufficientFunds
	}

	return nil
}

// TransferOutcome is the caller-visible result of a transfer attempt.
type TransferOutcome string

const (
	OutcomeSuccess           TransferOutcome = "success"
	OutcomeInvalidAmount     TransferOutcome = "invalid_amount"
	OutcomeInvalidTarget     TransferOutcome = "invalid_target"
	OutcomeInsufficientFunds TransferOutcome = "insufficient_funds"
	OutcomeConflict          TransferOutcome = "conflict"
	OutcomeStoreFailure      TransferOutcome = "store_failure"
)

// OutcomeFromError maps a transfer error to its outcome. A nil error
// maps to OutcomeSuccess; anything unrecognized is a store failure.
func OutcomeFromError(err error) TransferOutcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrInvalidAmount):
		return OutcomeInvalidAmount
	case errors.Is(err, ErrInvalidTarget):
		return OutcomeInvalidTarget
	case errors.Is(err, ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	case errors.Is(err, ErrTransferConflict):
		return OutcomeConflict
	default:
		return OutcomeStoreFailure
	}
}
