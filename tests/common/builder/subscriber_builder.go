//go:build unit || e2e

package builder

import (
	"time"

	domsubscriber "leadpipe/internal/domain/subscriber"
	reqdto "leadpipe/internal/handler/dto/request"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriberBuilder struct {
	ID            uuid.UUID
	Email         string
	WelcomeSentAt *time.Time
	CreatedAt     time.Time
}

func NewSubscriberBuilder() *SubscriberBuilder {
	return &SubscriberBuilder{
		ID:        uuid.New(),
		Email:     "subscriber@example.com",
		CreatedAt: time.Now(),
	}
}

func (b *SubscriberBuilder) With(mutate func(*SubscriberBuilder)) *SubscriberBuilder {
	mutate(b)
	return b
}

func (b *SubscriberBuilder) BuildDomain() (*domsubscriber.Subscriber, error) {
	email, err := domsubscriber.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domsubscriber.NewSubscriber(email, b.CreatedAt), nil
}

func (b *SubscriberBuilder) BuildSubscribeRequestDTO() reqdto.SubscribeRequest {
	return reqdto.SubscribeRequest{Email: b.Email}
}

func (b *SubscriberBuilder) BuildViewQuery() *queries.SubscriberView {
	return &queries.SubscriberView{
		ID:            b.ID,
		Email:         b.Email,
		WelcomeSentAt: b.WelcomeSentAt,
		CreatedAt:     b.CreatedAt,
	}
}
