package response

import (
	"time"

	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubscriberResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	WelcomeEmailSentAt *time.Time `json:"welcomeEmailSentAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func FromSubscriberView(sv *queries.SubscriberView) *SubscriberResponse {
	resp := &SubscriberResponse{}
	_ = copier.Copy(resp, sv)
	resp.WelcomeEmailSentAt = sv.WelcomeSentAt
	return resp
}

func FromSubscriberList(views []*queries.SubscriberView) []*SubscriberResponse {
	resps := make([]*SubscriberResponse, 0, len(views))
	for _, sv := range views {
		resps = append(resps, FromSubscriberView(sv))
	}
	return resps
}
