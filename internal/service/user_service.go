package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/ledgerly/ledger-api/internal/service/auth"
	"github.com/ledgerly/ledger-api/internal/store"
)

// Message surfaced when registration hits an already-taken email.
const emailTakenMessage = "A user is already registered with this email."

// UserService provides user registration, lookup and authentication.
type UserService interface {
	// Authenticate verifies the credentials and returns the user.
	// Returns ErrUnknownEmail when no user has the email and
	// ErrInvalidPassword when the password does not match; the two carry
	// distinct messages but share the ErrAuthentication kind.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// Create registers a new user, hashing the password before it ever
	// reaches the store. Email uniqueness is enforced atomically by the
	// store's unique constraint; a duplicate surfaces as a business-rule
	// error.
	Create(ctx context.Context, name, email, password string) (*domain.User, error)

	// ValidateEmailUnique fails with a business-rule error when a user
	// with the given email already exists. This is advisory only: Create
	// does not rely on it, the insert itself is the atomic guard.
	ValidateEmailUnique(ctx context.Context, email string) error

	// GetByID retrieves a user by ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// userService implements UserService.
type userService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	db        *sql.DB
	log       *slog.Logger
}

// NewUserService creates a UserService backed by the given store and
// password services.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	db *sql.DB,
	log *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}
	if verifier == nil {
		return nil, fmt.Errorf("verifier cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &userService{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		db:        db,
		log:       log.With(slog.String("component", "user_service")),
	}, nil
}

// Authenticate implements UserService.Authenticate.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.log.Debug("authentication failed: unknown email")
			return nil, ErrUnknownEmail
		}
		s.log.Error("failed to look up user for authentication", "error", err)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.log.Debug("authentication failed: password mismatch",
			"user_id", user.ID)
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// Create implements UserService.Create.
func (s *userService) Create(ctx context.Context, name, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, domain.NewValidationError("user", err.Error(), err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	// The unique constraint on users.email is the atomic uniqueness
	// guard. When a DB handle is present the insert runs in a
	// transaction, keeping the write path uniform with multi-statement
	// operations; without one the store is used directly.
	var createErr error
	if s.db != nil {
		createErr = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			return s.userStore.WithTx(tx).Create(ctx, user)
		})
	} else {
		createErr = s.userStore.Create(ctx, user)
	}
	if createErr != nil {
		if errors.Is(createErr, store.ErrEmailExists) {
			s.log.Debug("attempted to register an existing email")
			return nil, domain.NewValidationError("email", emailTakenMessage, createErr)
		}
		s.log.Error("failed to save user", "error", createErr)
		return nil, fmt.Errorf("failed to create user: %w", createErr)
	}

	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// ValidateEmailUnique implements UserService.ValidateEmailUnique.
func (s *userService) ValidateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to check email uniqueness", "error", err)
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return domain.NewValidationError("email", emailTakenMessage, store.ErrEmailExists)
	}
	return nil
}

// GetByID implements UserService.GetByID.
func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.log.Error("failed to retrieve user",
				"error", err,
				"user_id", id)
		}
		return nil, err
	}

	return user, nil
}
