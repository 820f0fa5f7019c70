package domain

import "time"

// Account holds a user's balance in integer minor units (cents).
// Every user owns exactly one account, created at signup.
type Account struct {
	ID          string
	OwnerUserID string
	Balance     int64
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplyDebit returns the balance after debiting amount.
func (a *Account) ApplyDebit(amount int64) int64 {
	return a.Balance - amount
}

// ApplyCredit returns the balance after crediting amount.
func (a *Account) ApplyCredit(amount int64) int64 {
	return a.Balance + amount
}
