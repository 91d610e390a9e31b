package repository

import (
	"context"
	"testing"

	"pgstay/internal/database"
	"pgstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserRepo(t *testing.T) *UserRepository {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return NewUserRepository(db)
}

func TestUserCreateAndGet(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice", PasswordHash: "hash-1"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "hash-1", got.PasswordHash)
	assert.Empty(t, got.Name)
}

func TestUserGetByUsername_TrimsInput(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h"}))

	got, err := repo.GetByUsername(ctx, "  alice  ")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestUserGetByUsername_NotFound(t *testing.T) {
	repo := setupUserRepo(t)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserExistsByUsername(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h"}))

	exists, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h1"}))
	err := repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2"})
	assert.Error(t, err)
}

func TestUserUpdateProfile(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h"}))

	got, err := repo.UpdateProfile(ctx, "alice", "Alice B", "555-0101", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.Equal(t, "555-0101", got.Mobile)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "h", got.PasswordHash, "password must survive a profile update")
}

func TestUserUpdateProfile_UnknownUser(t *testing.T) {
	repo := setupUserRepo(t)

	_, err := repo.UpdateProfile(context.Background(), "ghost", "x", "y", "z")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
