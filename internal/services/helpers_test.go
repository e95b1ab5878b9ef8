package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost-be/internal/auth"
	"github.com/inkpost/inkpost-be/internal/database"
	"github.com/inkpost/inkpost-be/internal/models"
	"github.com/inkpost/inkpost-be/internal/storage/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })

	return sqlite.New(db)
}

func newTestUserService(store *sqlite.Store) (*UserService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(store, auth.NewHasher(bcrypt.MinCost), tokens), tokens
}

func createTestUser(t *testing.T, store *sqlite.Store, email string) models.User {
	t.Helper()

	user := models.User{
		ID:           uuid.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}
