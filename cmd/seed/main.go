// Command seed provisions a dashboard operator account. There is no
// signup endpoint, so the first admin has to come from here:
//
//	SEED_EMAIL=admin@example.com SEED_PASSWORD=... SEED_ROLE=admin go run ./cmd/seed
package main

import (
	"context"
	"log/slog"
	"os"

	"leadpipe/internal/domain/user"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/writerepo"
	"leadpipe/internal/pkg/config"
	"leadpipe/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	email, err := user.NewEmail(os.Getenv("SEED_EMAIL"))
	if err != nil {
		return err
	}
	role, err := user.NewRole(envOr("SEED_ROLE", user.RoleAdmin.String()))
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(os.Getenv("SEED_PASSWORD"))
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DB.BuildDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	account := user.NewUser(email, hash, role)
	if err := writerepo.NewUserRepository().Create(ctx, pool, account); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Info("account already exists", "email", email.Value())
			return nil
		}
		return err
	}

	slog.Info("account created", "email", email.Value(), "role", role.String())
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
