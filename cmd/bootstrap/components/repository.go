package components

import (
	"leadpipe/internal/infra/db"
	"leadpipe/internal/infra/readstore"
	"leadpipe/internal/infra/writerepo"
	"leadpipe/internal/usecase/commands"
	"leadpipe/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,

		// Write side
		fx.Annotate(
			writerepo.NewLeadRepository,
			fx.As(new(commands.LeadRepository)),
		),
		fx.Annotate(
			writerepo.NewSubscriberRepository,
			fx.As(new(commands.SubscriberRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		writerepo.NewOutboxRepository,
		func(r *writerepo.OutboxRepository) commands.OutboxRepository { return r },

		// Read side
		fx.Annotate(
			readstore.NewLeadReadStore,
			fx.As(new(queries.LeadReadStore)),
		),
		fx.Annotate(
			readstore.NewSubscriberReadStore,
			fx.As(new(queries.SubscriberReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
