//go:build unit

package queries_test

import (
	"testing"
	"time"

	"leadpipe/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leadAt(status string, createdAt time.Time) *queries.LeadView {
	return &queries.LeadView{
		ID:        uuid.New(),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestComputeLeadKPIs(t *testing.T) {
	t.Run("empty set yields zero rates, not NaN", func(t *testing.T) {
		kpis := queries.ComputeLeadKPIs(nil, queries.DateRange{})

		assert.Equal(t, 0, kpis.TotalLeads)
		assert.Equal(t, 0.0, kpis.ContactRate)
		assert.Equal(t, 0.0, kpis.ConversionRate)
		assert.Equal(t, 0, kpis.InNegotiation)
		assert.Empty(t, kpis.LeadsByStatus)
	})

	t.Run("all-time aggregation", func(t *testing.T) {
		now := time.Now()
		all := []*queries.LeadView{
			leadAt("new", now),
			leadAt("new", now),
			leadAt("contacted", now),
			leadAt("negotiating", now),
			leadAt("closed", now),
		}

		kpis := queries.ComputeLeadKPIs(all, queries.DateRange{})

		assert.Equal(t, 5, kpis.TotalLeads)
		assert.InDelta(t, 60.0, kpis.ContactRate, 1e-9)
		assert.InDelta(t, 20.0, kpis.ConversionRate, 1e-9)
		assert.Equal(t, 1, kpis.InNegotiation)

		want := map[string]int{"new": 2, "contacted": 1, "negotiating": 1, "closed": 1}
		if diff := cmp.Diff(want, kpis.LeadsByStatus); diff != "" {
			t.Errorf("LeadsByStatus mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rates stay within 0..100", func(t *testing.T) {
		now := time.Now()
		all := []*queries.LeadView{
			leadAt("closed", now),
			leadAt("closed", now),
			leadAt("contacted", now),
		}

		kpis := queries.ComputeLeadKPIs(all, queries.DateRange{})

		assert.GreaterOrEqual(t, kpis.ContactRate, 0.0)
		assert.LessOrEqual(t, kpis.ContactRate, 100.0)
		assert.GreaterOrEqual(t, kpis.ConversionRate, 0.0)
		assert.LessOrEqual(t, kpis.ConversionRate, 100.0)
	})

	t.Run("total is unfiltered while rates honor the range", func(t *testing.T) {
		// TotalLeads is a grand total on purpose; see ComputeLeadKPIs.
		inPeriod := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		before := inPeriod.AddDate(0, -2, 0)

		all := []*queries.LeadView{
			leadAt("closed", before),
			leadAt("new", inPeriod),
			leadAt("closed", inPeriod),
		}

		rng, err := queries.ParseDateRange("2026-03-01", "2026-03-31")
		require.NoError(t, err)

		kpis := queries.ComputeLeadKPIs(all, rng)

		assert.Equal(t, 3, kpis.TotalLeads)
		assert.InDelta(t, 50.0, kpis.ContactRate, 1e-9)
		assert.InDelta(t, 50.0, kpis.ConversionRate, 1e-9)
		assert.Equal(t, map[string]int{"new": 1, "closed": 1}, kpis.LeadsByStatus)
	})
}

func TestComputeNewsletterKPIs(t *testing.T) {
	inPeriod := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	before := inPeriod.AddDate(-1, 0, 0)

	all := []*queries.SubscriberView{
		{ID: uuid.New(), CreatedAt: before},
		{ID: uuid.New(), CreatedAt: inPeriod},
		{ID: uuid.New(), CreatedAt: inPeriod},
	}

	rng, err := queries.ParseDateRange("2026-03-01", "2026-03-31")
	require.NoError(t, err)

	kpis := queries.ComputeNewsletterKPIs(all, rng)
	assert.Equal(t, 3, kpis.TotalSubscribers)
	assert.Equal(t, 2, kpis.NewSubscribersInPeriod)
}

func TestParseDateRange(t *testing.T) {
	t.Run("end bound is inclusive through end of day", func(t *testing.T) {
		rng, err := queries.ParseDateRange("2026-03-01", "2026-03-31")
		require.NoError(t, err)

		lastMoment := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
		assert.True(t, rng.Contains(lastMoment))

		nextDay := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		assert.False(t, rng.Contains(nextDay))

		beforeStart := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)
		assert.False(t, rng.Contains(beforeStart))
	})

	t.Run("open bounds mean all time", func(t *testing.T) {
		rng, err := queries.ParseDateRange("", "")
		require.NoError(t, err)
		assert.True(t, rng.IsZero())
		assert.True(t, rng.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := queries.ParseDateRange("03/01/2026", "")
		assert.Error(t, err)
	})
}
