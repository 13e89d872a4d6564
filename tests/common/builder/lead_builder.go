//go:build unit || e2e

package builder

import (
	"time"

	domlead "leadpipe/internal/domain/lead"
	reqdto "leadpipe/internal/handler/dto/request"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
)

type LeadBuilder struct {
	ID        uuid.UUID
	Name      string
	Role      string
	Company   string
	Phone     string
	Email     string
	Service   string
	Message   string
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewLeadBuilder() *LeadBuilder {
	now := time.Now()
	return &LeadBuilder{
		ID:        uuid.New(),
		Name:      "María García",
		Role:      "Gerente Comercial",
		Company:   "Acme Andina SAC",
		Phone:     "+51 987 654 321",
		Email:     "maria@acme.pe",
		Service:   "consultoria",
		Message:   "Quisiera una propuesta para mi equipo de ventas",
		Status:    domlead.StatusNew.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *LeadBuilder) With(mutate func(*LeadBuilder)) *LeadBuilder {
	mutate(b)
	return b
}

func (b *LeadBuilder) BuildDomain() (*domlead.Lead, error) {
	contact, err := domlead.NewContactInfo(b.Name, b.Role, b.Company, b.Phone, b.Email, b.Service, b.Message)
	if err != nil {
		return nil, err
	}
	return domlead.NewLead(contact, b.CreatedAt), nil
}

func (b *LeadBuilder) BuildCreateRequestDTO() reqdto.CreateLeadRequest {
	return reqdto.CreateLeadRequest{
		Name:    b.Name,
		Role:    b.Role,
		Company: b.Company,
		Phone:   b.Phone,
		Email:   b.Email,
		Service: b.Service,
		Message: b.Message,
	}
}

func (b *LeadBuilder) BuildUpdateRequestDTO(status, notes string) reqdto.UpdateLeadRequest {
	req := reqdto.UpdateLeadRequest{}
	if status != "" {
		req.Status = &status
	}
	if notes != "" {
		req.Notes = &notes
	}
	return req
}

func (b *LeadBuilder) BuildViewQuery() *queries.LeadView {
	return &queries.LeadView{
		ID:        b.ID,
		Name:      b.Name,
		Role:      b.Role,
		Company:   b.Company,
		Phone:     b.Phone,
		Email:     b.Email,
		Service:   b.Service,
		Message:   b.Message,
		Status:    b.Status,
		History:   []domlead.StatusChange{},
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
