package queries

import (
	"time"

	"leadpipe/internal/domain/lead"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type LeadView struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Role      string              `json:"role,omitempty"`
	Company   string              `json:"company"`
	Phone     string              `json:"phone"`
	Email     string              `json:"email"`
	Service   string              `json:"service,omitempty"`
	Message   string              `json:"message,omitempty"`
	Status    string              `json:"status"`
	History   []lead.StatusChange `json:"statusHistory"`
	Notes     string              `json:"notes,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type SubscriberView struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	WelcomeSentAt *time.Time `json:"welcomeEmailSentAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// UserCredentialsView carries what the login flow needs and nothing more.
// It never leaves the usecase layer.
type UserCredentialsView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

// DateRange is an optional inclusive [Start, end-of-day(End)] filter on
// creation timestamps. A nil bound means unbounded on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

const dateLayout = "2006-01-02"

// ParseDateRange parses "2006-01-02" formatted bounds. Empty strings are
// open bounds; the end bound is pushed to the last instant of its day so
// the range is inclusive.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	var rng DateRange

	if startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return DateRange{}, err
		}
		rng.Start = &start
	}

	if endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return DateRange{}, err
		}
		eod := endOfDay(end)
		rng.End = &eod
	}

	return rng, nil
}

func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
