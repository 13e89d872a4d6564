package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"leadpipe/internal/domain/subscriber"
	reqdto "leadpipe/internal/handler/dto/request"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"
	"leadpipe/internal/pkg/clock"
	"leadpipe/internal/pkg/errs"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSubscriberNotFound  = errs.New("subscriber not found")
	ErrDuplicateSubscriber = errs.New("email already subscribed")
	ErrWelcomeAlreadySent  = errs.New("welcome email already sent")
	ErrMailDeliveryFailed  = errs.New("mail delivery failed")
)

// JobKindWelcomeEmail identifies welcome-email outbox jobs.
const JobKindWelcomeEmail = "welcome_email"

type WelcomeEmailPayload struct {
	SubscriberID uuid.UUID `json:"subscriber_id"`
	Email        string    `json:"email"`
}

type SubscriberRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *subscriber.Subscriber) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*subscriber.Subscriber, error)
	MarkWelcomeSent(ctx context.Context, tx db.DBTX, s *subscriber.Subscriber) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, kind string, payload []byte) error
}

// WelcomeMailer sends the welcome message synchronously and returns only
// after the SMTP server has accepted it.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, email string) error
}

type NewsletterCommands interface {
	Subscribe(ctx context.Context, req reqdto.SubscribeRequest) (*queries.SubscriberView, error)
	SendWelcome(ctx context.Context, id uuid.UUID) (*queries.SubscriberView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsletterCommandsImpl struct {
	repo       SubscriberRepository
	outboxRepo OutboxRepository
	mailer     WelcomeMailer
	nlQueries  queries.NewsletterQueries
	pool       *pgxpool.Pool
	clock      clock.Clock
}

func NewNewsletterCommands(
	repo SubscriberRepository,
	outboxRepo OutboxRepository,
	mailer WelcomeMailer,
	nlQueries queries.NewsletterQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) NewsletterCommands {
	return &newsletterCommandsImpl{
		repo:       repo,
		outboxRepo: outboxRepo,
		mailer:     mailer,
		nlQueries:  nlQueries,
		pool:       pool,
		clock:      clock,
	}
}

// Subscribe stores the subscriber and a welcome-email outbox job in one
// transaction. The signup response never waits on SMTP; the outbox
// worker picks the job up and retries on failure.
func (c *newsletterCommandsImpl) Subscribe(ctx context.Context, req reqdto.SubscribeRequest) (*queries.SubscriberView, error) {
	email, err := subscriber.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity := subscriber.NewSubscriber(email, c.clock.Now())

	payload, err := json.Marshal(WelcomeEmailPayload{
		SubscriberID: entity.ID(),
		Email:        entity.Email().Value(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal welcome email payload")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.repo.Create(ctx, tx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateSubscriber
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.outboxRepo.Enqueue(ctx, tx, JobKindWelcomeEmail, payload); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.nlQueries.Get(ctx, entity.ID())
}

// SendWelcome is the operator-triggered resend. Unlike the outbox path
// it sends synchronously, and records the timestamp only after the
// transport confirmed the message.
func (c *newsletterCommandsImpl) SendWelcome(ctx context.Context, id uuid.UUID) (*queries.SubscriberView, error) {
	entity, err := c.repo.FindByID(ctx, c.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriberNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !entity.WelcomePending() {
		return nil, ErrWelcomeAlreadySent
	}

	if err := c.mailer.SendWelcome(ctx, entity.Email().Value()); err != nil {
		return nil, errs.Mark(err, ErrMailDeliveryFailed)
	}

	if err := entity.MarkWelcomeSent(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrWelcomeAlreadySent)
	}
	if err := c.repo.MarkWelcomeSent(ctx, c.pool, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.nlQueries.Get(ctx, id)
}

func (c *newsletterCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.pool, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSubscriberNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
