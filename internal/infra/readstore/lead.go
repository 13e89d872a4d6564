package readstore

import (
	"context"
	"encoding/json"

	"leadpipe/internal/domain/lead"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const leadColumns = `id, name, role, company, phone, email, service, message,
	status, status_history, notes, created_at, updated_at`

type LeadReadStore struct {
	db db.DBTX
}

func NewLeadReadStore(db db.DBTX) *LeadReadStore {
	return &LeadReadStore{db: db}
}

func (r *LeadReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LeadView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)

	view, err := scanLeadView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead by ID", err)
	}
	return view, nil
}

func (r *LeadReadStore) FindAll(ctx context.Context) ([]*queries.LeadView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leads", err)
	}
	defer rows.Close()

	return collectLeadViews(rows)
}

func (r *LeadReadStore) FindByCreatedRange(ctx context.Context, rng queries.DateRange) ([]*queries.LeadView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+leadColumns+` FROM leads
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)
		ORDER BY created_at DESC, id DESC`,
		rng.Start, rng.End,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leads by range", err)
	}
	defer rows.Close()

	return collectLeadViews(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeadView(row rowScanner) (*queries.LeadView, error) {
	var (
		v           queries.LeadView
		historyJSON []byte
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.Role, &v.Company, &v.Phone, &v.Email,
		&v.Service, &v.Message, &v.Status, &historyJSON, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &v.History); err != nil {
			return nil, err
		}
	}
	return &v, nil
}

func collectLeadViews(rows pgx.Rows) ([]*queries.LeadView, error) {
	var views []*queries.LeadView
	for rows.Next() {
		v, err := scanLeadView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lead row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lead rows", err)
	}
	return views, nil
}

// ToStatusHistory decodes a stored history blob. Shared with the write
// side, which needs the domain representation.
func ToStatusHistory(historyJSON []byte) ([]lead.StatusChange, error) {
	if len(historyJSON) == 0 {
		return nil, nil
	}
	var history []lead.StatusChange
	if err := json.Unmarshal(historyJSON, &history); err != nil {
		return nil, err
	}
	return history, nil
}
