package readstore

import (
	"context"

	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"
	"leadpipe/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*queries.UserCredentialsView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active
		FROM users
		WHERE email = $1`,
		email,
	)

	var v queries.UserCredentialsView
	if err := row.Scan(&v.ID, &v.Email, &v.PasswordHash, &v.Role, &v.IsActive); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, nil
}
