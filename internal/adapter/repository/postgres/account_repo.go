package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/minipay/internal/domain"
	"github.com/iho/minipay/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository. Balances are
// stored as BIGINT minor units; the schema enforces balance >= 0 as a
// last line of defense behind the engine's checks.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// CreateTx inserts an account within the caller's transaction.
func (r *AccountRepository) CreateTx(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO accounts (id, owner_user_id, balance, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := pgxTx.Exec(ctx, query,
		account.ID,
		account.OwnerUserID,
		account.Balance,
		account.Version,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

// GetByOwner retrieves a user's account without locking it.
func (r *AccountRepository) GetByOwner(ctx context.Context, ownerUserID string) (*domain.Account, error) {
	query := `
		SELECT id, owner_user_id, balance, version, created_at, updated_at
		FROM accounts
		WHERE owner_user_id = $1
	`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, ownerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// GetByOwnersForUpdate retrieves accounts with FOR UPDATE row locks.
// Rows are locked in owner order, matching the engine's sorted lock
// acquisition.
func (r *AccountRepository) GetByOwnersForUpdate(ctx context.Context, tx usecase.Transaction, ownerUserIDs []string) ([]*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		SELECT id, owner_user_id, balance, version, created_at, updated_at
		FROM accounts
		WHERE owner_user_id = ANY($1)
		ORDER BY owner_user_id
		FOR UPDATE
	`

	rows, err := pgxTx.Query(ctx, query, ownerUserIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// UpdateBalance sets an account's balance within the caller's transaction.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE accounts
		SET balance = $2, version = version + 1, updated_at = $3
		WHERE id = $1
	`

	_, err := pgxTx.Exec(ctx, query, id, balance, updatedAt)

	return err
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.OwnerUserID,
		&account.Balance,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &account, nil
}
