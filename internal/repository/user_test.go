package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/bingo-backend/internal/entity"
	"github.com/rocketscienceinc/bingo-backend/internal/repository/storage"
)

func newUserRepo(t *testing.T) (context.Context, UserRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	require.NoError(t, sqliteStorage.Init(ctx))

	return ctx, NewUserRepository(sqliteStorage.Connection)
}

func testUser(username string) *entity.User {
	now := time.Now().UTC().Truncate(time.Second)

	return &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_Save(t *testing.T) {
	t.Run("Save_Success", func(t *testing.T) {
		ctx, userRepo := newUserRepo(t)

		// When: saving a new user
		err := userRepo.Save(ctx, testUser("alice"))

		// Then: no error should be returned
		require.NoError(t, err)
	})

	t.Run("Save_DuplicateUsername", func(t *testing.T) {
		ctx, userRepo := newUserRepo(t)

		// Given: a stored user
		require.NoError(t, userRepo.Save(ctx, testUser("alice")))

		// When: saving another user with the same username
		err := userRepo.Save(ctx, testUser("alice"))

		// Then: the unique constraint rejects it
		require.Error(t, err)
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	t.Run("FindByUsername_Success", func(t *testing.T) {
		ctx, userRepo := newUserRepo(t)

		// Given: a stored user
		user := testUser("alice")
		require.NoError(t, userRepo.Save(ctx, user))

		// When: finding the user by username
		found, err := userRepo.FindByUsername(ctx, "alice")

		// Then: the stored record comes back
		require.NoError(t, err)
		require.Equal(t, user.ID, found.ID)
		require.Equal(t, user.Username, found.Username)
		assert.Equal(t, user.PasswordHash, found.PasswordHash)
	})

	t.Run("FindByUsername_NotFound", func(t *testing.T) {
		ctx, userRepo := newUserRepo(t)

		// When: finding a user that was never saved
		_, err := userRepo.FindByUsername(ctx, "nobody")

		// Then: ErrUserNotFound is returned
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	t.Run("FindByID_Success", func(t *testing.T) {
		ctx, userRepo := newUserRepo(t)

		// Given: a stored user
		user := testUser("alice")
		require.NoError(t, userRepo.Save(ctx, user))

		// When: finding the user by ID
		found, err := userRepo.FindByID(ctx, user.ID)

		// Then: the stored record comes back
		require.NoError(t, err)
		require.Equal(t, user.Username, found.Username)
	})

	t.Run("FindByID_NotFound", func(t *testing.T) {
		ctx, userRepo := newUserRepo(t)

		// When: finding an unknown ID
		_, err := userRepo.FindByID(ctx, uuid.NewString())

		// Then: ErrUserNotFound is returned
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
