package queries

import (
	"context"

	"github.com/google/uuid"
)

type SubscriberReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SubscriberView, error)
	FindAll(ctx context.Context) ([]*SubscriberView, error)
	FindByCreatedRange(ctx context.Context, rng DateRange) ([]*SubscriberView, error)
}

type UserReadStore interface {
	FindCredentialsByEmail(ctx context.Context, email string) (*UserCredentialsView, error)
}

type NewsletterQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*SubscriberView, error)
	List(ctx context.Context, rng DateRange) ([]*SubscriberView, error)
}

type newsletterQueriesImpl struct {
	store SubscriberReadStore
}

func NewNewsletterQueries(store SubscriberReadStore) NewsletterQueries {
	return &newsletterQueriesImpl{store: store}
}

func (q *newsletterQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*SubscriberView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *newsletterQueriesImpl) List(ctx context.Context, rng DateRange) ([]*SubscriberView, error) {
	if rng.IsZero() {
		return q.store.FindAll(ctx)
	}
	return q.store.FindByCreatedRange(ctx, rng)
}
