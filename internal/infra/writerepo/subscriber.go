package writerepo

import (
	"context"
	"time"

	"leadpipe/internal/domain/subscriber"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"

	"github.com/google/uuid"
)

type SubscriberRepository struct{}

func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{}
}

func (r *SubscriberRepository) Create(ctx context.Context, tx db.DBTX, s *subscriber.Subscriber) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO newsletter_subscribers (id, email, welcome_sent_at, created_at)
		VALUES ($1, $2, $3, $4)`,
		s.ID(), s.Email().Value(), s.WelcomeSentAt(), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert subscriber", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *SubscriberRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*subscriber.Subscriber, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, email, welcome_sent_at, created_at
		FROM newsletter_subscribers WHERE id = $1`, id)

	var (
		subID         uuid.UUID
		email         string
		welcomeSentAt *time.Time
		createdAt     time.Time
	)
	if err := row.Scan(&subID, &email, &welcomeSentAt, &createdAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscriber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscriber by ID", err)
	}

	return subscriber.ReconstructSubscriber(subID, subscriber.ReconstructEmail(email), welcomeSentAt, createdAt), nil
}

// MarkWelcomeSent only fills a NULL column. The guard keeps a concurrent
// resend from overwriting the first recorded delivery time.
func (r *SubscriberRepository) MarkWelcomeSent(ctx context.Context, tx db.DBTX, s *subscriber.Subscriber) error {
	tag, err := tx.Exec(ctx, `
		UPDATE newsletter_subscribers
		SET welcome_sent_at = $2
		WHERE id = $1 AND welcome_sent_at IS NULL`,
		s.ID(), s.WelcomeSentAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark welcome sent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscriber not found or welcome already sent", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM newsletter_subscribers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete subscriber", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscriber not found", nil, infra.KindNotFound)
	}
	return nil
}
