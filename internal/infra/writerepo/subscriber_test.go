//go:build e2e

package writerepo_test

import (
	"context"
	"testing"
	"time"

	"leadpipe/internal/domain/subscriber"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/writerepo"
	"leadpipe/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberRepository_MarkWelcomeSent(t *testing.T) {
	pool := dbtest.NewTestPool(t)
	repo := writerepo.NewSubscriberRepository()
	ctx := context.Background()

	newStoredSubscriber := func(t *testing.T, emailStr string) *subscriber.Subscriber {
		t.Helper()
		email, err := subscriber.NewEmail(emailStr)
		require.NoError(t, err)
		entity := subscriber.NewSubscriber(email, time.Now().UTC())
		require.NoError(t, repo.Create(ctx, pool, entity))
		return entity
	}

	t.Run("first delivery stamp sticks", func(t *testing.T) {
		entity := newStoredSubscriber(t, "ana@example.com")
		sentAt := time.Now().UTC().Truncate(time.Millisecond)

		require.NoError(t, entity.MarkWelcomeSent(sentAt))
		require.NoError(t, repo.MarkWelcomeSent(ctx, pool, entity))

		reloaded, err := repo.FindByID(ctx, pool, entity.ID())
		require.NoError(t, err)
		require.NotNil(t, reloaded.WelcomeSentAt())
		assert.True(t, sentAt.Equal(*reloaded.WelcomeSentAt()))
	})

	t.Run("second stamp is rejected, first timestamp survives", func(t *testing.T) {
		entity := newStoredSubscriber(t, "luis@example.com")
		firstSend := time.Now().UTC().Truncate(time.Millisecond)

		require.NoError(t, entity.MarkWelcomeSent(firstSend))
		require.NoError(t, repo.MarkWelcomeSent(ctx, pool, entity))

		laterSend := firstSend.Add(time.Hour)
		rival := subscriber.ReconstructSubscriber(entity.ID(), entity.Email(), &laterSend, entity.CreatedAt())
		err := repo.MarkWelcomeSent(ctx, pool, rival)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		reloaded, err := repo.FindByID(ctx, pool, entity.ID())
		require.NoError(t, err)
		require.NotNil(t, reloaded.WelcomeSentAt())
		assert.True(t, firstSend.Equal(*reloaded.WelcomeSentAt()))
	})

	t.Run("duplicate email maps to duplicate key", func(t *testing.T) {
		newStoredSubscriber(t, "dup@example.com")

		email, err := subscriber.NewEmail("dup@example.com")
		require.NoError(t, err)
		err = repo.Create(ctx, pool, subscriber.NewSubscriber(email, time.Now().UTC()))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
