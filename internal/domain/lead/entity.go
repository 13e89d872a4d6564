package lead

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange is one entry of a lead's audit trail.
type StatusChange struct {
	From Status    `json:"from"`
	To   Status    `json:"to"`
	At   time.Time `json:"at"`
}

// Lead is a sales prospect moving through the pipeline board.
//
// The status history is append-only: every effective status change adds
// exactly one entry, so the last entry's To always equals the current
// status and no entry ever has From == To.
type Lead struct {
	id        uuid.UUID
	contact   ContactInfo
	status    Status
	history   []StatusChange
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func NewLead(contact ContactInfo, now time.Time) *Lead {
	return &Lead{
		id:        uuid.New(),
		contact:   contact,
		status:    StatusNew,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructLead(
	id uuid.UUID,
	contact ContactInfo,
	status Status,
	history []StatusChange,
	notes string,
	createdAt, updatedAt time.Time,
) *Lead {
	return &Lead{
		id:        id,
		contact:   contact,
		status:    status,
		history:   history,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ChangeStatus moves the lead to newStatus and records the transition.
// Any stage may move to any other stage, backward moves included.
// Re-applying the current status is an idempotent no-op: no history
// entry, no updatedAt refresh. Returns whether anything changed.
func (l *Lead) ChangeStatus(newStatus Status, now time.Time) (bool, error) {
	if !newStatus.IsValid() {
		return false, ErrInvalidStatus
	}
	if newStatus == l.status {
		return false, nil
	}

	l.history = append(l.history, StatusChange{
		From: l.status,
		To:   newStatus,
		At:   now,
	})
	l.status = newStatus
	l.updatedAt = now
	return true, nil
}

// Annotate overwrites the internal notes. An empty string clears them.
// Notes are not part of the audit trail.
func (l *Lead) Annotate(notes string, now time.Time) {
	l.notes = notes
	l.updatedAt = now
}

func (l *Lead) ID() uuid.UUID           { return l.id }
func (l *Lead) Contact() ContactInfo    { return l.contact }
func (l *Lead) Status() Status          { return l.status }
func (l *Lead) History() []StatusChange { return l.history }
func (l *Lead) Notes() string           { return l.notes }
func (l *Lead) CreatedAt() time.Time    { return l.createdAt }
func (l *Lead) UpdatedAt() time.Time    { return l.updatedAt }
