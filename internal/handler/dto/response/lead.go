package response

import (
	"time"

	"leadpipe/internal/pkg/phone"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StatusChangeResponse struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	At   time.Time `json:"at"`
}

type LeadResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Role          string                 `json:"role,omitempty"`
	Company       string                 `json:"company"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email"`
	Service       string                 `json:"service,omitempty"`
	Message       string                 `json:"message,omitempty"`
	Status        string                 `json:"status"`
	StatusHistory []StatusChangeResponse `json:"statusHistory"`
	Notes         string                 `json:"notes,omitempty"`
	WhatsAppLink  string                 `json:"whatsappLink,omitempty"`
	MailtoLink    string                 `json:"mailtoLink,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func FromLeadView(lv *queries.LeadView) *LeadResponse {
	resp := &LeadResponse{}
	_ = copier.Copy(resp, lv)
	resp.StatusHistory = fromStatusHistory(lv)
	resp.MailtoLink = phone.MailtoLink(lv.Email, "", "")

	if validated := phone.Validate(lv.Phone); validated.IsValid {
		resp.WhatsAppLink = phone.WhatsAppLink(validated, "")
	}
	return resp
}

func FromLeadList(views []*queries.LeadView) []*LeadResponse {
	resps := make([]*LeadResponse, 0, len(views))
	for _, lv := range views {
		resps = append(resps, FromLeadView(lv))
	}
	return resps
}

// fromStatusHistory keeps the JSON field an array even for leads that
// never left their initial stage.
func fromStatusHistory(lv *queries.LeadView) []StatusChangeResponse {
	history := make([]StatusChangeResponse, 0, len(lv.History))
	for _, ch := range lv.History {
		history = append(history, StatusChangeResponse{
			From: ch.From.String(),
			To:   ch.To.String(),
			At:   ch.At,
		})
	}
	return history
}
