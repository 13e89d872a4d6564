package subscriber

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrDisposableEmail    = errors.New("disposable email addresses are not accepted")
	ErrWelcomeAlreadySent = errors.New("welcome email already sent")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Throwaway mail providers rejected at signup.
var disposableDomains = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.com":      {},
	"temp-mail.org":     {},
	"yopmail.com":       {},
	"trashmail.com":     {},
	"getnada.com":       {},
	"throwawaymail.com": {},
	"sharklasers.com":   {},
}

type Email struct {
	value string
}

// NewEmail validates and case-normalizes a signup address. The stored
// value is always lowercase so uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}

	at := strings.LastIndex(s, "@")
	if _, ok := disposableDomains[s[at+1:]]; ok {
		return Email{}, ErrDisposableEmail
	}

	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// ReconstructEmail rebuilds a stored address without re-running signup
// validation, so tightening the disposable-domain list never locks out
// existing subscribers.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}

// Subscriber is a newsletter signup. WelcomeSentAt stays nil until a
// welcome email send has been confirmed, so failed sends remain
// retryable.
type Subscriber struct {
	id            uuid.UUID
	email         Email
	welcomeSentAt *time.Time
	createdAt     time.Time
}

func NewSubscriber(email Email, now time.Time) *Subscriber {
	return &Subscriber{
		id:        uuid.New(),
		email:     email,
		createdAt: now,
	}
}

func ReconstructSubscriber(id uuid.UUID, email Email, welcomeSentAt *time.Time, createdAt time.Time) *Subscriber {
	return &Subscriber{
		id:            id,
		email:         email,
		welcomeSentAt: welcomeSentAt,
		createdAt:     createdAt,
	}
}

// MarkWelcomeSent records a confirmed welcome-email delivery. It may
// succeed at most once per subscriber.
func (s *Subscriber) MarkWelcomeSent(now time.Time) error {
	if s.welcomeSentAt != nil {
		return ErrWelcomeAlreadySent
	}
	s.welcomeSentAt = &now
	return nil
}

func (s *Subscriber) WelcomePending() bool {
	return s.welcomeSentAt == nil
}

func (s *Subscriber) ID() uuid.UUID             { return s.id }
func (s *Subscriber) Email() Email              { return s.email }
func (s *Subscriber) WelcomeSentAt() *time.Time { return s.welcomeSentAt }
func (s *Subscriber) CreatedAt() time.Time      { return s.createdAt }
