package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/minipay/internal/domain"
	"github.com/iho/minipay/internal/usecase"
)

// SignupRequest represents a request to register a user.
type SignupRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *SignupRequest) ToUseCaseInput() usecase.SignupInput {
	return usecase.SignupInput{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
	}
}

// SigninRequest represents an authentication request.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *SigninRequest) ToUseCaseInput() usecase.SigninInput {
	return usecase.SigninInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// UpdateUserRequest represents a profile update. Absent fields are left
// unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Password  *string `json:"password,omitempty"`
}

// ToUseCaseInput converts to use case input for the given user.
func (r *UpdateUserRequest) ToUseCaseInput(userID string) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		ID:        userID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
	}
}

// TransferRequest represents a request to move funds to another user.
// Amounts are decimal on the wire and converted to minor units at this
// boundary.
type TransferRequest struct {
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input for the authenticated sender.
func (r *TransferRequest) ToUseCaseInput(fromUserID string) (usecase.TransferInput, error) {
	minor, err := domain.AmountToMinor(r.Amount)
	if err != nil {
		return usecase.TransferInput{}, err
	}
	return usecase.TransferInput{
		FromUserID: fromUserID,
		ToUserID:   r.To,
		Amount:     minor,
	}, nil
}
