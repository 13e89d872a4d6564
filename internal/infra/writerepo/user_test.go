//go:build e2e

package writerepo_test

import (
	"context"
	"testing"
	"time"

	"leadpipe/internal/domain/user"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/writerepo"
	"leadpipe/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperatorAccount(t *testing.T, emailStr, roleStr string) *user.User {
	t.Helper()
	email, err := user.NewEmail(emailStr)
	require.NoError(t, err)
	role, err := user.NewRole(roleStr)
	require.NoError(t, err)
	return user.NewUser(email, "$2a$10$abcdefghijklmnopqrstuv", role)
}

func TestUserRepository_Create(t *testing.T) {
	pool := dbtest.NewTestPool(t)
	repo := writerepo.NewUserRepository()
	ctx := context.Background()

	t.Run("seeded operator lands on a fresh schema", func(t *testing.T) {
		account := newOperatorAccount(t, "ops@example.com", "admin")

		require.NoError(t, repo.Create(ctx, pool, account))

		var (
			email, role          string
			isActive             bool
			lastLoginAt          *time.Time
			createdAt, updatedAt time.Time
		)
		err := pool.QueryRow(ctx, `
			SELECT email, role, is_active, last_login_at, created_at, updated_at
			FROM users WHERE id = $1`, account.ID(),
		).Scan(&email, &role, &isActive, &lastLoginAt, &createdAt, &updatedAt)
		require.NoError(t, err)

		assert.Equal(t, "ops@example.com", email)
		assert.Equal(t, "admin", role)
		assert.True(t, isActive)
		assert.Nil(t, lastLoginAt)
		assert.False(t, createdAt.IsZero())
		assert.False(t, updatedAt.IsZero())
	})

	t.Run("duplicate email maps to duplicate key", func(t *testing.T) {
		first := newOperatorAccount(t, "dup@example.com", "operator")
		require.NoError(t, repo.Create(ctx, pool, first))

		second := newOperatorAccount(t, "dup@example.com", "operator")
		err := repo.Create(ctx, pool, second)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	pool := dbtest.NewTestPool(t)
	repo := writerepo.NewUserRepository()
	ctx := context.Background()

	t.Run("stamps the login time", func(t *testing.T) {
		account := newOperatorAccount(t, "login@example.com", "operator")
		require.NoError(t, repo.Create(ctx, pool, account))

		require.NoError(t, repo.UpdateLastLogin(ctx, pool, account.ID()))

		var lastLoginAt *time.Time
		err := pool.QueryRow(ctx,
			`SELECT last_login_at FROM users WHERE id = $1`, account.ID(),
		).Scan(&lastLoginAt)
		require.NoError(t, err)
		require.NotNil(t, lastLoginAt)
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		err := repo.UpdateLastLogin(ctx, pool, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
