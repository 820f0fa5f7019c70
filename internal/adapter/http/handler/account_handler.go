package handler

import (
	"context"
	"net/http"

	"github.com/iho/minipay/internal/adapter/http/dto"
	"github.com/iho/minipay/internal/adapter/http/middleware"
	"github.com/iho/minipay/internal/domain"
)

// AccountService reads account state.
type AccountService interface {
	GetByOwner(ctx context.Context, ownerUserID string) (*domain.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Balance returns the authenticated user's account balance.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	account, err := h.accountUC.GetByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(account))
}
