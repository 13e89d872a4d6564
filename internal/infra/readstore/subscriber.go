package readstore

import (
	"context"

	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const subscriberColumns = `id, email, welcome_sent_at, created_at`

type SubscriberReadStore struct {
	db db.DBTX
}

func NewSubscriberReadStore(db db.DBTX) *SubscriberReadStore {
	return &SubscriberReadStore{db: db}
}

func (r *SubscriberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubscriberView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+subscriberColumns+` FROM newsletter_subscribers WHERE id = $1`, id)

	var v queries.SubscriberView
	if err := row.Scan(&v.ID, &v.Email, &v.WelcomeSentAt, &v.CreatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscriber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscriber by ID", err)
	}
	return &v, nil
}

func (r *SubscriberReadStore) FindAll(ctx context.Context) ([]*queries.SubscriberView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+subscriberColumns+` FROM newsletter_subscribers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscribers", err)
	}
	defer rows.Close()

	return collectSubscriberViews(rows)
}

func (r *SubscriberReadStore) FindByCreatedRange(ctx context.Context, rng queries.DateRange) ([]*queries.SubscriberView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+subscriberColumns+` FROM newsletter_subscribers
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)
		ORDER BY created_at DESC, id DESC`,
		rng.Start, rng.End,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscribers by range", err)
	}
	defer rows.Close()

	return collectSubscriberViews(rows)
}

func collectSubscriberViews(rows pgx.Rows) ([]*queries.SubscriberView, error) {
	var views []*queries.SubscriberView
	for rows.Next() {
		var v queries.SubscriberView
		if err := rows.Scan(&v.ID, &v.Email, &v.WelcomeSentAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscriber row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscriber rows", err)
	}
	return views, nil
}
