package domain

import "errors"

var (
	// Transfer errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidTarget     = errors.New("invalid transfer target")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrTransferConflict  = errors.New("transfer rejected by concurrent update")
	ErrStoreUnavailable  = errors.New("ledger store unavailable")
	ErrTransferNotFound  = errors.New("transfer not found")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Auth errors
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token expired")
	ErrTooManyAttempts = errors.New("too many sign-in attempts")
)
