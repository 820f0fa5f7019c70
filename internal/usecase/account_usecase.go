package usecase

import (
	"context"
	"time"

	"github.com/iho/minipay/internal/domain"
	"github.com/iho/minipay/internal/infrastructure/metrics"
)

// AccountUseCase handles account provisioning and balance lookups.
// Balances are only ever mutated by the TransferUseCase.
type AccountUseCase struct {
	accountRepo    AccountRepository
	idGen          IDGenerator
	initialBalance int64
	metrics        *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. metrics may be nil.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, initialBalance int64, metrics *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:    accountRepo,
		idGen:          idGen,
		initialBalance: initialBalance,
		metrics:        metrics,
	}
}

// CreateForUser provisions the account for a new user inside the
// caller's transaction. Runs exactly once per user, at signup; the
// transfer engine never creates accounts.
func (uc *AccountUseCase) CreateForUser(ctx context.Context, tx Transaction, userID string) (*domain.Account, error) {
	now := time.Now().UTC()

	account := &domain.Account{
		ID:          uc.idGen.Generate(),
		OwnerUserID: userID,
		Balance:     uc.initialBalance,
		Version:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.accountRepo.CreateTx(ctx, tx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetByOwner retrieves a user's account.
func (uc *AccountUseCase) GetByOwner(ctx context.Context, ownerUserID string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BalanceReads.Inc()
	}

	return account, nil
}
