package queries

import (
	"context"

	"github.com/google/uuid"
)

type LeadReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeadView, error)
	// FindAll returns every lead ordered newest-first.
	FindAll(ctx context.Context) ([]*LeadView, error)
	// FindByCreatedRange returns leads created within rng, newest-first.
	FindByCreatedRange(ctx context.Context, rng DateRange) ([]*LeadView, error)
}

type LeadQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*LeadView, error)
	List(ctx context.Context, rng DateRange) ([]*LeadView, error)
}

type leadQueriesImpl struct {
	store LeadReadStore
}

func NewLeadQueries(store LeadReadStore) LeadQueries {
	return &leadQueriesImpl{store: store}
}

func (q *leadQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*LeadView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *leadQueriesImpl) List(ctx context.Context, rng DateRange) ([]*LeadView, error) {
	if rng.IsZero() {
		return q.store.FindAll(ctx)
	}
	return q.store.FindByCreatedRange(ctx, rng)
}
