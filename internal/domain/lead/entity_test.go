//go:build unit

package lead_test

import (
	"testing"
	"time"

	"leadpipe/internal/domain/lead"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContact(t *testing.T) lead.ContactInfo {
	t.Helper()
	contact, err := lead.NewContactInfo(
		"Maria Torres", "Gerente Comercial", "Andes Retail SAC",
		"+51 987 654 321", "maria@andesretail.pe",
		"Consultoria de ventas", "Quisiera una asesoria",
	)
	require.NoError(t, err)
	return contact
}

func TestNewLead(t *testing.T) {
	now := time.Now()
	l := lead.NewLead(newContact(t), now)

	assert.NotEqual(t, uuid.Nil, l.ID())
	assert.Equal(t, lead.StatusNew, l.Status())
	assert.Empty(t, l.History())
	assert.Equal(t, now, l.CreatedAt())
	assert.Equal(t, now, l.UpdatedAt())
}

func TestContactInfoValidation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		errIs error
	}{
		{name: "missing name", field: "name", errIs: lead.ErrEmptyName},
		{name: "missing company", field: "company", errIs: lead.ErrEmptyCompany},
		{name: "missing phone", field: "phone", errIs: lead.ErrEmptyPhone},
		{name: "malformed email", field: "email", errIs: lead.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, company, phone, email := "Maria", "Andes Retail", "+51 987 654 321", "maria@andesretail.pe"
			switch tt.field {
			case "name":
				name = "  "
			case "company":
				company = ""
			case "phone":
				phone = ""
			case "email":
				email = "not-an-email"
			}
			_, err := lead.NewContactInfo(name, "", company, phone, email, "", "")
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestChangeStatus(t *testing.T) {
	t.Run("transition appends history and refreshes updatedAt", func(t *testing.T) {
		created := time.Now()
		l := lead.NewLead(newContact(t), created)

		at := created.Add(time.Hour)
		changed, err := l.ChangeStatus(lead.StatusContacted, at)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, lead.StatusContacted, l.Status())
		assert.Equal(t, at, l.UpdatedAt())

		require.Len(t, l.History(), 1)
		assert.Equal(t, lead.StatusNew, l.History()[0].From)
		assert.Equal(t, lead.StatusContacted, l.History()[0].To)
		assert.Equal(t, at, l.History()[0].At)
	})

	t.Run("same status is an idempotent no-op", func(t *testing.T) {
		created := time.Now()
		l := lead.NewLead(newContact(t), created)

		changed, err := l.ChangeStatus(lead.StatusNew, created.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, l.History())
		assert.Equal(t, created, l.UpdatedAt())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		l := lead.NewLead(newContact(t), time.Now())

		changed, err := l.ChangeStatus(lead.Status("archived"), time.Now())
		assert.ErrorIs(t, err, lead.ErrInvalidStatus)
		assert.False(t, changed)
		assert.Equal(t, lead.StatusNew, l.Status())
		assert.Empty(t, l.History())
	})

	t.Run("backward moves chain through the history", func(t *testing.T) {
		l := lead.NewLead(newContact(t), time.Now())

		steps := []lead.Status{lead.StatusContacted, lead.StatusNegotiating, lead.StatusContacted}
		for i, s := range steps {
			changed, err := l.ChangeStatus(s, time.Now())
			require.NoError(t, err)
			require.True(t, changed, "step %d", i)
		}

		assert.Equal(t, lead.StatusContacted, l.Status())
		require.Len(t, l.History(), 3)

		// Entries chain: each From equals the previous To, the last To
		// equals the current status, and no entry is a self-transition.
		prev := lead.StatusNew
		for _, entry := range l.History() {
			assert.Equal(t, prev, entry.From)
			assert.NotEqual(t, entry.From, entry.To)
			prev = entry.To
		}
		assert.Equal(t, l.Status(), prev)
	})
}

func TestAnnotate(t *testing.T) {
	created := time.Now()
	l := lead.NewLead(newContact(t), created)

	at := created.Add(time.Minute)
	l.Annotate("llamar el lunes", at)
	assert.Equal(t, "llamar el lunes", l.Notes())
	assert.Equal(t, at, l.UpdatedAt())
	assert.Empty(t, l.History(), "notes are not part of the audit trail")

	l.Annotate("", at.Add(time.Minute))
	assert.Empty(t, l.Notes())
}

func TestNewStatus(t *testing.T) {
	for _, s := range lead.AllStatuses() {
		got, err := lead.NewStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := lead.NewStatus("won")
	assert.ErrorIs(t, err, lead.ErrInvalidStatus)
}
