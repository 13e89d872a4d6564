//go:build unit

package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLeadsCSV(t *testing.T) {
	created := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)
	leads := []*queries.LeadView{
		{
			ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:      "María García",
			Company:   "Acme Andina",
			Phone:     "+51987654321",
			Email:     "maria@acme.pe",
			Message:   "Needs a quote, \"urgent\"",
			Status:    "contacted",
			CreatedAt: created,
			UpdatedAt: created.Add(time.Hour),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLeadsCSV(&buf, leads))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, leadHeader, records[0])
	assert.Equal(t, "María García", records[1][1])
	assert.Equal(t, "Needs a quote, \"urgent\"", records[1][7])
	assert.Equal(t, "contacted", records[1][8])
	assert.Equal(t, "2025-05-10 09:30:00", records[1][10])
}

func TestWriteSubscribersCSV_NilWelcomeSentAtIsEmpty(t *testing.T) {
	created := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)
	sent := created.Add(time.Minute)
	subscribers := []*queries.SubscriberView{
		{ID: uuid.New(), Email: "pending@example.com", CreatedAt: created},
		{ID: uuid.New(), Email: "done@example.com", WelcomeSentAt: &sent, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSubscribersCSV(&buf, subscribers))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "", records[1][2])
	assert.Equal(t, "2025-05-10 09:31:00", records[2][2])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "leads_export.csv", Filename(EntityLeads, FormatCSV))
	assert.Equal(t, "newsletter_export.xlsx", Filename(EntityNewsletter, FormatXLSX))
}

func TestParseFormatAndEntity(t *testing.T) {
	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ParseEntity("users")
	assert.ErrorIs(t, err, ErrUnknownEntity)

	f, err := ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
}
