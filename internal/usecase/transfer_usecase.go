package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/iho/minipay/internal/domain"
	"github.com/iho/minipay/internal/infrastructure/metrics"
)

// TransferUseCase moves funds between two accounts. It is the only
// component that mutates balances. All mutations happen inside a single
// store transaction: either both balances change or neither does.
type TransferUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	transferRepo TransferRepository
	idGen        IDGenerator
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. metrics may be nil.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		idGen:        idGen,
		retrier:      retrier,
		metrics:      metrics,
	}
}

// TransferInput represents a validated transfer request. Accounts are
// addressed by their owning user.
type TransferInput struct {
	FromUserID string
	ToUserID   string
	Amount     int64
}

// TransferReceipt is returned on a durably committed transfer.
type TransferReceipt struct {
	TransferID    string
	FromAccountID string
	ToAccountID   string
	Amount        int64
	FromBalance   int64
}

// Transfer executes a single transfer. Client-input violations
// (ErrInvalidAmount, ErrInvalidTarget, ErrInsufficientFunds) are
// surfaced without retry; store conflicts are retried a bounded number
// of times and then surfaced as ErrTransferConflict. A nil error means
// the store confirmed a durable commit.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferReceipt, error) {
	start := time.Now()

	if uc.metrics != nil {
		uc.metrics.TransfersAttempted.Inc()
	}

	receipt, err := uc.transfer(ctx, input)

	if uc.metrics != nil {
		uc.metrics.TransferOutcomes.WithLabelValues(outcomeLabel(err)).Inc()
		if err == nil {
			uc.metrics.TransfersCommitted.Inc()
			uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
			uc.metrics.TransferAmount.Observe(float64(input.Amount))
		}
	}

	return receipt, err
}

func (uc *TransferUseCase) transfer(ctx context.Context, input TransferInput) (*TransferReceipt, error) {
	// Reject malformed requests before touching the store.
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if input.FromUserID == input.ToUserID {
		return nil, domain.ErrInvalidTarget
	}

	// Speculative check on unlocked reads. Cheap early rejection; the
	// balances can change before commit, so the authoritative check
	// runs again inside the transaction.
	source, err := uc.accountRepo.GetByOwner(ctx, input.FromUserID)
	if err != nil {
		return nil, err
	}

	destinationExists := true
	if _, err := uc.accountRepo.GetByOwner(ctx, input.ToUserID); err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}

		destinationExists = false
	}

	err = domain.CheckTransfer(input.FromUserID, input.ToUserID, input.Amount, source.Balance, destinationExists)
	if err != nil {
		return nil, err
	}

	// The transfer ID is fixed across attempts so a commit whose result
	// was lost can be recognized afterwards, and so a retried attempt
	// can never apply the same transfer twice (primary key).
	transferID := uc.idGen.Generate()

	ownerIDs := []string{input.FromUserID, input.ToUserID}
	sort.Strings(ownerIDs)

	var receipt *TransferReceipt

	attempts := 0

	err = uc.retrier.Retry(ctx, func() error {
		attempts++
		if attempts > 1 && uc.metrics != nil {
			uc.metrics.TransferRetries.Inc()
		}

		r, err := uc.attempt(ctx, transferID, ownerIDs, input)
		if err != nil {
			return err
		}

		receipt = r

		return nil
	})
	if err == nil {
		return receipt, nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransferConflict),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return nil, err
	}

	// Ambiguous failure: the commit may have landed before the error
	// surfaced. The transfer row is written in the same transaction as
	// the balance mutations, so its presence proves the commit. Resolve
	// by re-reading instead of guessing.
	if _, lookupErr := uc.transferRepo.GetByID(ctx, transferID); lookupErr == nil {
		return uc.receiptFromState(ctx, transferID, input.FromUserID)
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func (uc *TransferUseCase) attempt(ctx context.Context, transferID string, ownerIDs []string, input TransferInput) (*TransferReceipt, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	// Lock both rows in sorted owner order (lock-order deadlock prevention).
	accounts, err := uc.accountRepo.GetByOwnersForUpdate(ctx, tx, ownerIDs)
	if err != nil {
		return nil, err
	}

	var source, destination *domain.Account
	for _, a := range accounts {
		switch a.OwnerUserID {
		case input.FromUserID:
			source = a
		case input.ToUserID:
			destination = a
		}
	}

	if source == nil {
		return nil, domain.ErrAccountNotFound
	}

	// Authoritative re-check against balances read under lock.
	err = domain.CheckTransfer(input.FromUserID, input.ToUserID, input.Amount, source.Balance, destination != nil)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	transfer := &domain.Transfer{
		ID:            transferID,
		FromAccountID: source.ID,
		ToAccountID:   destination.ID,
		Amount:        input.Amount,
		CreatedAt:     now,
	}

	if err := uc.transferRepo.CreateTx(ctx, tx, transfer); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, source.ID, source.ApplyDebit(input.Amount), now); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, destination.ID, destination.ApplyCredit(input.Amount), now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &TransferReceipt{
		TransferID:    transferID,
		FromAccountID: source.ID,
		ToAccountID:   destination.ID,
		Amount:        input.Amount,
		FromBalance:   source.ApplyDebit(input.Amount),
	}, nil
}

// receiptFromState rebuilds a receipt for a transfer that committed but
// whose commit acknowledgment was lost.
func (uc *TransferUseCase) receiptFromState(ctx context.Context, transferID, fromUserID string) (*TransferReceipt, error) {
	transfer, err := uc.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	source, err := uc.accountRepo.GetByOwner(ctx, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return &TransferReceipt{
		TransferID:    transfer.ID,
		FromAccountID: transfer.FromAccountID,
		ToAccountID:   transfer.ToAccountID,
		Amount:        transfer.Amount,
		FromBalance:   source.Balance,
	}, nil
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidTarget), errors.Is(err, domain.ErrAccountNotFound):
		return "invalid_target"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrTransferConflict):
		return "conflict"
	default:
		return "store_failure"
	}
}
