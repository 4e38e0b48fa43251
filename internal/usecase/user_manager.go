package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
	"github.com/rocketscienceinc/bingo-backend/internal/repository"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type UserManager struct {
	logger   *slog.Logger
	userRepo userRepo
}

func NewUserManager(logger *slog.Logger, userRepo userRepo) *UserManager {
	return &UserManager{
		logger: logger,

		userRepo: userRepo,
	}
}

// Register creates a new user. The username is normalized before use: it is
// the identity key every board lookup and seed derivation runs on.
func (that *UserManager) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = NormalizeUsername(username)

	if len(username) < minUsernameLength {
		return nil, apperror.ErrUsernameTooShort
	}

	if len(password) < minPasswordLength {
		return nil, apperror.ErrPasswordTooShort
	}

	_, err := that.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, apperror.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = that.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns the stored user. An unknown
// username and a wrong password report the same error.
func (that *UserManager) Login(ctx context.Context, username, password string) (*entity.User, error) {
	username = NormalizeUsername(username)

	user, err := that.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

func (that *UserManager) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := that.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return user, nil
}

// NormalizeUsername maps a raw username to the stable identity key form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
