package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"leadpipe/internal/infra"
	"leadpipe/internal/infra/writerepo"
	"leadpipe/internal/pkg/clock"
	"leadpipe/internal/pkg/config"
	"leadpipe/internal/pkg/errs"
	"leadpipe/internal/pkg/metrics"
	"leadpipe/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoWork reports an empty poll. The worker treats it as idle time,
// not a failure.
var ErrNoWork = errs.New("no outbox job due")

// Worker drains the outbox queue: it claims due jobs one at a time,
// delivers the welcome email, and commits the delivery record together
// with the job state so a crash never loses nor double-counts a send.
type Worker struct {
	pool           *pgxpool.Pool
	outboxRepo     *writerepo.OutboxRepository
	subscriberRepo commands.SubscriberRepository
	mailer         commands.WelcomeMailer
	cfg            config.OutboxConfig
	clock          clock.Clock
	rng            *rand.Rand
}

func NewWorker(
	pool *pgxpool.Pool,
	outboxRepo *writerepo.OutboxRepository,
	subscriberRepo commands.SubscriberRepository,
	mailer commands.WelcomeMailer,
	cfg config.OutboxConfig,
	clock clock.Clock,
) *Worker {
	return &Worker{
		pool:           pool,
		outboxRepo:     outboxRepo,
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
		cfg:            cfg,
		clock:          clock,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run polls until ctx is cancelled. After a processed job it polls
// again immediately to drain a backlog without waiting out the tick.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		processed, err := w.ProcessOnce(ctx)
		if err != nil && !errors.Is(err, ErrNoWork) && ctx.Err() == nil {
			slog.Error("outbox job failed", "error", err)
		}
		if processed {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce claims and handles a single due job. It returns whether a
// job was claimed, so callers can distinguish an idle poll from a
// failed one.
func (w *Worker) ProcessOnce(ctx context.Context) (bool, error) {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return false, errs.Wrap(err, "failed to begin outbox transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback outbox transaction", "error", rollbackErr)
		}
	}()

	job, err := w.outboxRepo.ClaimNextDue(ctx, tx, w.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrNoWork
		}
		return false, errs.Wrap(err, "failed to claim outbox job")
	}

	if handleErr := w.handle(ctx, tx, job); handleErr != nil {
		return true, w.recordFailure(ctx, tx, job, handleErr)
	}

	if err := w.outboxRepo.MarkDone(ctx, tx, job.ID); err != nil {
		return true, err
	}
	if err := tx.Commit(ctx); err != nil {
		return true, errs.Wrap(err, "failed to commit outbox transaction")
	}
	return true, nil
}

func (w *Worker) handle(ctx context.Context, tx pgx.Tx, job *writerepo.OutboxJob) error {
	switch job.Kind {
	case commands.JobKindWelcomeEmail:
		return w.handleWelcomeEmail(ctx, tx, job)
	default:
		// Unknown kinds would retry forever; fail them towards dead.
		return errs.New("unknown outbox job kind: " + job.Kind)
	}
}

func (w *Worker) handleWelcomeEmail(ctx context.Context, tx pgx.Tx, job *writerepo.OutboxJob) error {
	var payload commands.WelcomeEmailPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return errs.Wrap(err, "failed to decode welcome email payload")
	}

	entity, err := w.subscriberRepo.FindByID(ctx, tx, payload.SubscriberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Unsubscribed before the send; nothing left to do.
			return nil
		}
		return errs.Wrap(err, "failed to load subscriber for welcome email")
	}

	if !entity.WelcomePending() {
		// An operator resend beat the worker to it.
		return nil
	}

	if err := w.mailer.SendWelcome(ctx, entity.Email().Value()); err != nil {
		return errs.Wrap(err, "failed to send welcome email")
	}

	if err := entity.MarkWelcomeSent(w.clock.Now()); err != nil {
		return errs.Wrap(err, "failed to mark welcome sent")
	}
	if err := w.subscriberRepo.MarkWelcomeSent(ctx, tx, entity); err != nil {
		return err
	}

	metrics.RecordWelcomeEmail(metrics.TriggerOutbox)
	return nil
}

// recordFailure rolls the claim transaction back and stores the retry
// schedule in a fresh one. The claim transaction may already be in an
// aborted state when the handler failed on an SQL error, so it cannot
// carry the bookkeeping itself.
func (w *Worker) recordFailure(ctx context.Context, tx pgx.Tx, job *writerepo.OutboxJob, cause error) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback claimed outbox job", "job_id", job.ID, "error", err)
	}

	attempts := job.Attempts + 1
	next := NextRetryAt(w.clock.Now(), attempts, BackoffConfig{
		BaseDelay: w.cfg.BaseDelay,
		MaxDelay:  w.cfg.MaxDelay,
	}, w.rng)

	if err := w.outboxRepo.MarkFailed(ctx, w.pool, job.ID, attempts, w.cfg.MaxAttempts, next, cause.Error()); err != nil {
		return errs.Wrap(err, "failed to record outbox failure")
	}
	return cause
}
