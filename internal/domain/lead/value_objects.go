package lead

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidStatus = errors.New("invalid lead status")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyCompany  = errors.New("company is required")
	ErrEmptyPhone    = errors.New("phone is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// ContactInfo groups the free-text contact fields captured from the
// public contact form. Name, company and phone are required; the rest
// is optional context for the sales team.
type ContactInfo struct {
	name    string
	role    string
	company string
	phone   string
	email   Email
	service string
	message string
}

func NewContactInfo(name, role, company, phone, emailStr, service, message string) (ContactInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ContactInfo{}, ErrEmptyName
	}

	company = strings.TrimSpace(company)
	if company == "" {
		return ContactInfo{}, ErrEmptyCompany
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ContactInfo{}, ErrEmptyPhone
	}

	email, err := NewEmail(emailStr)
	if err != nil {
		return ContactInfo{}, err
	}

	return ContactInfo{
		name:    name,
		role:    strings.TrimSpace(role),
		company: company,
		phone:   phone,
		email:   email,
		service: strings.TrimSpace(service),
		message: strings.TrimSpace(message),
	}, nil
}

// ReconstructContactInfo rebuilds contact info from stored values, which
// were validated when first captured.
func ReconstructContactInfo(name, role, company, phone, email, service, message string) ContactInfo {
	return ContactInfo{
		name:    name,
		role:    role,
		company: company,
		phone:   phone,
		email:   Email{value: email},
		service: service,
		message: message,
	}
}

func (c ContactInfo) Name() string    { return c.name }
func (c ContactInfo) Role() string    { return c.role }
func (c ContactInfo) Company() string { return c.company }
func (c ContactInfo) Phone() string   { return c.phone }
func (c ContactInfo) Email() Email    { return c.email }
func (c ContactInfo) Service() string { return c.service }
func (c ContactInfo) Message() string { return c.message }
