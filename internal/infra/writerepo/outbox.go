package writerepo

import (
	"context"
	"time"

	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"

	"github.com/google/uuid"
)

// Outbox job states. Pending jobs with a due next_retry_at are eligible
// for claiming; dead jobs exhausted their retry budget and need an
// operator to look at last_error.
const (
	OutboxStatusPending = "pending"
	OutboxStatusDone    = "done"
	OutboxStatusDead    = "dead"
)

type OutboxJob struct {
	ID          uuid.UUID
	Kind        string
	Payload     []byte
	Status      string
	Attempts    int
	NextRetryAt time.Time
	LastError   *string
	CreatedAt   time.Time
}

type OutboxRepository struct{}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{}
}

// Enqueue inserts a pending job due immediately. Callers run it inside
// the same transaction as the state change the job belongs to.
func (r *OutboxRepository) Enqueue(ctx context.Context, tx db.DBTX, kind string, payload []byte) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO outbox_jobs (id, kind, payload, status, attempts, next_retry_at, created_at)
		VALUES ($1, $2, $3, $4, 0, now(), now())`,
		uuid.New(), kind, payload, OutboxStatusPending,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox job", err)
	}
	return nil
}

// ClaimNextDue locks the oldest due pending job for the calling
// transaction. SKIP LOCKED lets multiple workers drain the queue
// without blocking each other. Returns KindNotFound when nothing is
// due.
func (r *OutboxRepository) ClaimNextDue(ctx context.Context, tx db.DBTX, now time.Time) (*OutboxJob, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, kind, payload, status, attempts, next_retry_at, last_error, created_at
		FROM outbox_jobs
		WHERE status = $1 AND next_retry_at <= $2
		ORDER BY next_retry_at, created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED`,
		OutboxStatusPending, now,
	)

	var job OutboxJob
	err := row.Scan(
		&job.ID, &job.Kind, &job.Payload, &job.Status,
		&job.Attempts, &job.NextRetryAt, &job.LastError, &job.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no outbox job due", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim outbox job", err)
	}
	return &job, nil
}

func (r *OutboxRepository) MarkDone(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE outbox_jobs SET status = $2, last_error = NULL WHERE id = $1`,
		id, OutboxStatusDone,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox job done", err)
	}
	return nil
}

// MarkFailed records the attempt and schedules the retry. Jobs whose
// attempt count reached maxAttempts are parked as dead instead.
func (r *OutboxRepository) MarkFailed(
	ctx context.Context,
	tx db.DBTX,
	id uuid.UUID,
	attempts int,
	maxAttempts int,
	nextRetryAt time.Time,
	lastError string,
) error {
	status := OutboxStatusPending
	if attempts >= maxAttempts {
		status = OutboxStatusDead
	}

	_, err := tx.Exec(ctx, `
		UPDATE outbox_jobs
		SET status = $2, attempts = $3, next_retry_at = $4, last_error = $5
		WHERE id = $1`,
		id, status, attempts, nextRetryAt, lastError,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox job failed", err)
	}
	return nil
}
