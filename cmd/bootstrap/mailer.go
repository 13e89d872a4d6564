package bootstrap

import (
	"leadpipe/internal/infra/mail"
	"leadpipe/internal/pkg/config"
	"leadpipe/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
		func(s *mail.Sender) commands.WelcomeMailer { return s },
	),
)

func NewMailer(cfg config.Config) *mail.Sender {
	return mail.NewSender(cfg.SMTP)
}
