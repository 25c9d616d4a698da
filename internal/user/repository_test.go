// File: internal/user/repository_test.go
package user

import (
	"context"
	"errors"
	"testing"

	"github.com/wflore19/portfolio-backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func TestRepository_CreateAndFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGORMRepository(db)
	ctx := context.Background()

	u := &User{Email: "Ada@Example.com", FirstName: "Ada", LastName: "L"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.Equal(t, "ada@example.com", u.Email, "email should be normalized on insert")

	found, err := repo.FindByEmail(ctx, "ADA@example.COM")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "Ada", found.FirstName)
	assert.Equal(t, "L", found.LastName)
	assert.Empty(t, found.AvatarURL)
}

func TestRepository_CreateDuplicateEmailIsConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGORMRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &User{Email: "ada@example.com", FirstName: "Ada", LastName: "L"}))

	err := repo.Create(ctx, &User{Email: "ada@example.com", FirstName: "Other", LastName: "Person"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict), "duplicate email must map to conflict, got: %v", err)
}

func TestRepository_FindByEmailNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGORMRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGORMRepository(db)
	ctx := context.Background()

	u := &User{Email: "ada@example.com", FirstName: "Ada", LastName: "L"}
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)

	_, err = repo.FindByID(ctx, 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRepository_UpdateAvatarURL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGORMRepository(db)
	ctx := context.Background()

	u := &User{Email: "ada@example.com", FirstName: "Ada", LastName: "L"}
	require.NoError(t, repo.Create(ctx, u))

	url := "https://campus-connect.nyc3.cdn.digitaloceanspaces.com/Ada-L-1.jpg"
	require.NoError(t, repo.UpdateAvatarURL(ctx, u.ID, url))

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, url, found.AvatarURL)

	err = repo.UpdateAvatarURL(ctx, 9999, url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
