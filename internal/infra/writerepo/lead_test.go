//go:build e2e

package writerepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"leadpipe/internal/domain/lead"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/writerepo"
	"leadpipe/tests/common/builder"
	"leadpipe/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadRepository_Update(t *testing.T) {
	pool := dbtest.NewTestPool(t)
	repo := writerepo.NewLeadRepository()
	ctx := context.Background()

	newStoredLead := func(t *testing.T) *lead.Lead {
		t.Helper()
		entity, err := builder.NewLeadBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, pool, entity))
		return entity
	}

	t.Run("status and history land in the same row version", func(t *testing.T) {
		entity := newStoredLead(t)
		movedAt := time.Now().UTC().Truncate(time.Millisecond)

		changed, err := entity.ChangeStatus(lead.StatusContacted, movedAt)
		require.NoError(t, err)
		require.True(t, changed)
		require.NoError(t, repo.Update(ctx, pool, entity))

		var (
			status      string
			historyJSON []byte
		)
		err = pool.QueryRow(ctx,
			`SELECT status, status_history FROM leads WHERE id = $1`, entity.ID(),
		).Scan(&status, &historyJSON)
		require.NoError(t, err)

		assert.Equal(t, "contacted", status)

		var history []lead.StatusChange
		require.NoError(t, json.Unmarshal(historyJSON, &history))
		require.Len(t, history, 1)
		assert.Equal(t, lead.StatusNew, history[0].From)
		assert.Equal(t, lead.StatusContacted, history[0].To)
	})

	t.Run("reloaded aggregate carries the full trail", func(t *testing.T) {
		entity := newStoredLead(t)
		now := time.Now().UTC()

		for _, next := range []lead.Status{lead.StatusContacted, lead.StatusNegotiating, lead.StatusClosed} {
			_, err := entity.ChangeStatus(next, now)
			require.NoError(t, err)
		}
		require.NoError(t, repo.Update(ctx, pool, entity))

		reloaded, err := repo.FindByID(ctx, pool, entity.ID())
		require.NoError(t, err)

		assert.Equal(t, lead.StatusClosed, reloaded.Status())
		require.Len(t, reloaded.History(), 3)
		assert.Equal(t, lead.StatusClosed, reloaded.History()[2].To)
	})

	t.Run("notes update leaves status and history untouched", func(t *testing.T) {
		entity := newStoredLead(t)

		entity.Annotate("called twice, asked for a quote", time.Now().UTC())
		require.NoError(t, repo.Update(ctx, pool, entity))

		reloaded, err := repo.FindByID(ctx, pool, entity.ID())
		require.NoError(t, err)

		assert.Equal(t, "called twice, asked for a quote", reloaded.Notes())
		assert.Equal(t, lead.StatusNew, reloaded.Status())
		assert.Empty(t, reloaded.History())
	})

	t.Run("unknown lead maps to not found", func(t *testing.T) {
		entity, err := builder.NewLeadBuilder().BuildDomain()
		require.NoError(t, err)

		err = repo.Update(ctx, pool, entity)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestLeadRepository_Delete(t *testing.T) {
	pool := dbtest.NewTestPool(t)
	repo := writerepo.NewLeadRepository()
	ctx := context.Background()

	t.Run("deleted lead disappears", func(t *testing.T) {
		entity, err := builder.NewLeadBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, pool, entity))

		require.NoError(t, repo.Delete(ctx, pool, entity.ID()))

		_, err = repo.FindByID(ctx, pool, entity.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown lead maps to not found", func(t *testing.T) {
		err := repo.Delete(ctx, pool, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
