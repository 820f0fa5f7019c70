package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/minipay/internal/domain"
	"github.com/iho/minipay/internal/infrastructure/metrics"
)

// UserUseCase handles user registration, authentication and directory
// search.
type UserUseCase struct {
	txManager TransactionManager
	userRepo  UserRepository
	accounts  *AccountUseCase
	idGen     IDGenerator
	metrics   *metrics.Metrics
}

// NewUserUseCase creates a new UserUseCase. metrics may be nil.
func NewUserUseCase(txManager TransactionManager, userRepo UserRepository, accounts *AccountUseCase, idGen IDGenerator, metrics *metrics.Metrics) *UserUseCase {
	return &UserUseCase{
		txManager: txManager,
		userRepo:  userRepo,
		accounts:  accounts,
		idGen:     idGen,
		metrics:   metrics,
	}
}

// SignupInput represents input for registering a user.
type SignupInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Signup registers a new user and provisions their account in the same
// transaction, so a user never exists without an account.
func (uc *UserUseCase) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	username := domain.NormalizeUsername(input.Username)

	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if err := domain.ValidateName(input.FirstName); err != nil {
		return nil, err
	}

	if err := domain.ValidateName(input.LastName); err != nil {
		return nil, err
	}

	_, err := uc.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrUsernameTaken
	}

	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Username:       username,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.userRepo.CreateTx(ctx, tx, user); err != nil {
		return nil, err
	}

	if _, err := uc.accounts.CreateForUser(ctx, tx, user.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.Signups.Inc()
		uc.metrics.AccountsProvisioned.Inc()
	}

	user.HashedPassword = ""

	return user, nil
}

// SigninInput represents authentication input.
type SigninInput struct {
	Username string
	Password string
}

// Signin verifies user credentials.
func (uc *UserUseCase) Signin(ctx context.Context, input SigninInput) (*domain.User, error) {
	username := domain.NormalizeUsername(input.Username)

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			uc.recordSignin("invalid_credentials")
			return nil, domain.ErrInvalidCredentials
		}

		return nil, err
	}

	if err := verifyPassword(user.HashedPassword, input.Password); err != nil {
		uc.recordSignin("invalid_credentials")
		return nil, domain.ErrInvalidCredentials
	}

	uc.recordSignin("success")

	user.HashedPassword = ""

	return user, nil
}

func (uc *UserUseCase) recordSignin(result string) {
	if uc.metrics != nil {
		uc.metrics.SigninResults.WithLabelValues(result).Inc()
	}
}

// UpdateUserInput represents input for updating a user.
type UpdateUserInput struct {
	ID        string
	FirstName *string
	LastName  *string
	Password  *string
}

// UpdateUser updates profile fields and optionally the password.
func (uc *UserUseCase) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		if err := domain.ValidateName(*input.FirstName); err != nil {
			return nil, err
		}

		user.FirstName = *input.FirstName
	}

	if input.LastName != nil {
		if err := domain.ValidateName(*input.LastName); err != nil {
			return nil, err
		}

		user.LastName = *input.LastName
	}

	if input.Password != nil {
		if err := domain.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}

		hashedPassword, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}

		user.HashedPassword = hashedPassword
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""

	return user, nil
}

// SearchUsersInput represents input for searching users.
type SearchUsersInput struct {
	Filter string
	Limit  int
	Offset int
}

// SearchUsers finds users whose first or last name contains the filter,
// case-insensitively. An empty filter matches everyone.
func (uc *UserUseCase) SearchUsers(ctx context.Context, input SearchUsersInput) ([]*domain.User, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	users, err := uc.userRepo.Search(ctx, input.Filter, limit, offset)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.HashedPassword = ""
	}

	return users, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
