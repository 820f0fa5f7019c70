package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/iho/minipay/internal/domain"
	"github.com/iho/minipay/internal/usecase"
	"github.com/iho/minipay/internal/usecase/mocks"
)

func newUserUseCase(userRepo usecase.UserRepository, accountRepo usecase.AccountRepository) *usecase.UserUseCase {
	idGen := mocks.NewMockIDGenerator()
	accounts := usecase.NewAccountUseCase(accountRepo, idGen, 0, nil)
	return usecase.NewUserUseCase(mocks.NewMockTransactionManager(), userRepo, accounts, idGen, nil)
}

func TestUserUseCase_Signup(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	accountRepo := mocks.NewMockAccountRepository()
	uc := newUserUseCase(userRepo, accountRepo)

	user, err := uc.Signup(context.Background(), usecase.SignupInput{
		Username:  " Alice@Example.com ",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Username != "alice@example.com" {
		t.Errorf("expected normalized username, got %s", user.Username)
	}
	if user.HashedPassword != "" {
		t.Error("hashed password leaked in response")
	}

	// Account provisioned together with the user.
	account, err := accountRepo.GetByOwner(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("expected account for new user: %v", err)
	}
	if account.Balance != 0 {
		t.Errorf("expected zero starting balance, got %d", account.Balance)
	}

	// Stored password is a bcrypt hash of the input.
	stored, err := userRepo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("secret1")) != nil {
		t.Error("stored password is not a bcrypt hash of the input")
	}
}

func TestUserUseCase_SignupValidation(t *testing.T) {
	uc := newUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockAccountRepository())

	tests := []struct {
		name    string
		input   usecase.SignupInput
		wantErr error
	}{
		{
			name:    "short username",
			input:   usecase.SignupInput{Username: "ab", Password: "secret1", FirstName: "A", LastName: "B"},
			wantErr: domain.ErrInvalidUsername,
		},
		{
			name:    "short password",
			input:   usecase.SignupInput{Username: "alice", Password: "pw", FirstName: "A", LastName: "B"},
			wantErr: domain.ErrPasswordTooWeak,
		},
		{
			name:    "empty first name",
			input:   usecase.SignupInput{Username: "alice", Password: "secret1", FirstName: " ", LastName: "B"},
			wantErr: domain.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Signup(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUserUseCase_SignupDuplicateUsername(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	uc := newUserUseCase(userRepo, mocks.NewMockAccountRepository())

	input := usecase.SignupInput{
		Username:  "alice",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	if _, err := uc.Signup(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := uc.Signup(context.Background(), input)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserUseCase_Signin(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	uc := newUserUseCase(userRepo, mocks.NewMockAccountRepository())

	if _, err := uc.Signup(context.Background(), usecase.SignupInput{
		Username:  "alice",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("correct credentials", func(t *testing.T) {
		user, err := uc.Signin(context.Background(), usecase.SigninInput{Username: "Alice", Password: "secret1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice" {
			t.Errorf("unexpected user: %s", user.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Signin(context.Background(), usecase.SigninInput{Username: "alice", Password: "wrong"})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Signin(context.Background(), usecase.SigninInput{Username: "ghost", Password: "secret1"})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateUser(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	uc := newUserUseCase(userRepo, mocks.NewMockAccountRepository())

	created, err := uc.Signup(context.Background(), usecase.SignupInput{
		Username:  "alice",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newName := "Alicia"
	newPassword := "changed1"
	updated, err := uc.UpdateUser(context.Background(), usecase.UpdateUserInput{
		ID:        created.ID,
		FirstName: &newName,
		Password:  &newPassword,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.FirstName != "Alicia" {
		t.Errorf("expected updated first name, got %s", updated.FirstName)
	}

	if _, err := uc.Signin(context.Background(), usecase.SigninInput{Username: "alice", Password: "changed1"}); err != nil {
		t.Errorf("signin with new password failed: %v", err)
	}
}

func TestUserUseCase_SearchUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockGomockUserRepository(ctrl)
	userRepo.EXPECT().Search(gomock.Any(), "smi", 20, 0).Return([]*domain.User{
		{ID: "u1", Username: "alice", FirstName: "Alice", LastName: "Smith", HashedPassword: "hash"},
		{ID: "u2", Username: "bob", FirstName: "Bob", LastName: "Smithers", HashedPassword: "hash"},
	}, nil)

	uc := newUserUseCase(userRepo, mocks.NewMockAccountRepository())

	users, err := uc.SearchUsers(context.Background(), usecase.SearchUsersInput{Filter: "smi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, user := range users {
		if user.HashedPassword != "" {
			t.Errorf("hashed password leaked for %s", user.Username)
		}
	}
}

func TestUserUseCaseRecordsMetrics(t *testing.T) {
	m := newTestMetrics(t)
	userRepo := mocks.NewMockUserRepository()
	accountRepo := mocks.NewMockAccountRepository()
	idGen := mocks.NewMockIDGenerator()
	accounts := usecase.NewAccountUseCase(accountRepo, idGen, 0, nil)
	uc := usecase.NewUserUseCase(mocks.NewMockTransactionManager(), userRepo, accounts, idGen, m)

	if _, err := uc.Signup(context.Background(), usecase.SignupInput{
		Username:  "alice",
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Smith",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.Signups); got != 1 {
		t.Errorf("signups = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.AccountsProvisioned); got != 1 {
		t.Errorf("accounts provisioned = %v, want 1", got)
	}

	if _, err := uc.Signin(context.Background(), usecase.SigninInput{Username: "alice", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Signin(context.Background(), usecase.SigninInput{Username: "alice", Password: "wrong"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if got := testutil.ToFloat64(m.SigninResults.WithLabelValues("success")); got != 1 {
		t.Errorf("successful signins = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SigninResults.WithLabelValues("invalid_credentials")); got != 1 {
		t.Errorf("rejected signins = %v, want 1", got)
	}
}
