package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"leadpipe/internal/domain/lead"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"
	"leadpipe/internal/infra/readstore"

	"github.com/google/uuid"
)

type LeadRepository struct{}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{}
}

func (r *LeadRepository) Create(ctx context.Context, tx db.DBTX, l *lead.Lead) error {
	historyJSON, err := json.Marshal(historyOrEmpty(l.History()))
	if err != nil {
		return infra.WrapRepoErr("failed to marshal status history", err)
	}

	contact := l.Contact()
	_, err = tx.Exec(ctx, `
		INSERT INTO leads (
			id, name, role, company, phone, email, service, message,
			status, status_history, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		l.ID(), contact.Name(), contact.Role(), contact.Company(), contact.Phone(),
		contact.Email().Value(), contact.Service(), contact.Message(),
		l.Status(), historyJSON, l.Notes(), l.CreatedAt(), l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert lead", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*lead.Lead, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, name, role, company, phone, email, service, message,
			status, status_history, notes, created_at, updated_at
		FROM leads WHERE id = $1`, id)

	var (
		leadID                            uuid.UUID
		name, role, company, phone, email string
		service, message, notes, status   string
		historyJSON                       []byte
		createdAt, updatedAt              time.Time
	)
	err := row.Scan(
		&leadID, &name, &role, &company, &phone, &email, &service, &message,
		&status, &historyJSON, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead by ID", err)
	}

	history, err := readstore.ToStatusHistory(historyJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode status history", err)
	}

	contact := lead.ReconstructContactInfo(name, role, company, phone, email, service, message)
	return lead.ReconstructLead(leadID, contact, lead.Status(status), history, notes, createdAt, updatedAt), nil
}

// Update writes status, history, notes and updated_at together so a
// committed row never shows a status without its history entry.
func (r *LeadRepository) Update(ctx context.Context, tx db.DBTX, l *lead.Lead) error {
	historyJSON, err := json.Marshal(historyOrEmpty(l.History()))
	if err != nil {
		return infra.WrapRepoErr("failed to marshal status history", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE leads
		SET status = $2, status_history = $3, notes = $4, updated_at = $5
		WHERE id = $1`,
		l.ID(), l.Status(), historyJSON, l.Notes(), l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update lead", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lead not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lead", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lead not found", nil, infra.KindNotFound)
	}
	return nil
}

// historyOrEmpty keeps the stored column a JSON array even before the
// first transition.
func historyOrEmpty(history []lead.StatusChange) []lead.StatusChange {
	if history == nil {
		return []lead.StatusChange{}
	}
	return history
}
