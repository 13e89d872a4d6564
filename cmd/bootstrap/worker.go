package bootstrap

import (
	"context"

	"leadpipe/internal/infra/outbox"
	"leadpipe/internal/infra/writerepo"
	"leadpipe/internal/pkg/clock"
	"leadpipe/internal/pkg/config"
	"leadpipe/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxWorker,
	),
	fx.Invoke(StartOutboxWorker),
)

func NewOutboxWorker(
	pool *pgxpool.Pool,
	outboxRepo *writerepo.OutboxRepository,
	subscriberRepo commands.SubscriberRepository,
	mailer commands.WelcomeMailer,
	cfg config.Config,
	clk clock.Clock,
) *outbox.Worker {
	return outbox.NewWorker(pool, outboxRepo, subscriberRepo, mailer, cfg.Outbox, clk)
}

// StartOutboxWorker runs the worker for the app's lifetime. The stop
// hook cancels the poll loop; in-flight transactions roll back on pool
// shutdown.
func StartOutboxWorker(lc fx.Lifecycle, worker *outbox.Worker) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go worker.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
