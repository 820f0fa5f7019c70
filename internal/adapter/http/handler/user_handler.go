package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/minipay/internal/adapter/http/dto"
	"github.com/iho/minipay/internal/adapter/http/middleware"
	"github.com/iho/minipay/internal/domain"
	"github.com/iho/minipay/internal/infrastructure/auth"
	"github.com/iho/minipay/internal/infrastructure/metrics"
	"github.com/iho/minipay/internal/usecase"
)

// UserService manages user registration, authentication and search.
type UserService interface {
	Signup(ctx context.Context, input usecase.SignupInput) (*domain.User, error)
	Signin(ctx context.Context, input usecase.SigninInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*domain.User, error)
	SearchUsers(ctx context.Context, input usecase.SearchUsersInput) ([]*domain.User, error)
}

// SigninThrottle limits failed sign-in attempts per username.
type SigninThrottle interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userUC     UserService
	jwtManager *auth.JWTManager
	throttle   SigninThrottle
	metrics    *metrics.Metrics
}

// NewUserHandler creates a new UserHandler. throttle may be nil to
// disable sign-in throttling; metrics may be nil.
func NewUserHandler(userUC UserService, jwtManager *auth.JWTManager, throttle SigninThrottle, metrics *metrics.Metrics) *UserHandler {
	return &UserHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
		throttle:   throttle,
		metrics:    metrics,
	}
}

// Signup registers a new user and returns a token for the new session.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Signup(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to sign up", err.Error())
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Signin authenticates a user and returns a token.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	username := domain.NormalizeUsername(req.Username)

	if h.throttle != nil {
		allowed, err := h.throttle.Allow(r.Context(), username)
		if err == nil && !allowed {
			if h.metrics != nil {
				h.metrics.SigninThrottled.Inc()
			}
			writeError(w, mapDomainError(domain.ErrTooManyAttempts), "too many attempts", domain.ErrTooManyAttempts.Error())
			return
		}
	}

	user, err := h.userUC.Signin(r.Context(), req.ToUseCaseInput())
	if err != nil {
		if h.throttle != nil && errors.Is(err, domain.ErrInvalidCredentials) {
			_ = h.throttle.RecordFailure(r.Context(), username)
		}
		writeError(w, mapDomainError(err), "failed to sign in", err.Error())
		return
	}

	if h.throttle != nil {
		_ = h.throttle.Reset(r.Context(), username)
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Update modifies the authenticated user's profile.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.UpdateUser(r.Context(), req.ToUseCaseInput(userID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Search finds users by name for the recipient picker.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	users, err := h.userUC.SearchUsers(r.Context(), usecase.SearchUsersInput{
		Filter: filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to search users", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users": dto.UsersFromDomain(users),
	})
}
