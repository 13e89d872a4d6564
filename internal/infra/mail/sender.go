package mail

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"

	"leadpipe/internal/pkg/config"
	"leadpipe/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

//go:embed templates/welcome.html
var welcomeTemplateHTML string

var welcomeTemplate = template.Must(template.New("welcome").Parse(welcomeTemplateHTML))

type welcomeEmailData struct {
	Email string
}

// Sender delivers transactional mail over SMTP. DialAndSend opens a
// fresh connection per message, which is fine at newsletter signup
// volume.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *Sender) SendWelcome(ctx context.Context, email string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, welcomeEmailData{Email: email}); err != nil {
		return errs.Wrap(err, "failed to render welcome template")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Bienvenido a nuestro newsletter")
	m.SetBody("text/html", body.String())

	// gomail has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "send cancelled")
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return errs.Wrap(err, "failed to send welcome email")
	}
	return nil
}
