package mailer

import (
	"go.uber.org/fx"

	"github.com/inkandimagination/artstore/internal/config"
)

// Module exposes the notification adapter to fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
}

func newNotifier(p notifierParams) Notifier {
	if p.Config.SMTPHost == "" {
		return NopNotifier{}
	}
	return NewSMTPNotifier(
		p.Config.SMTPHost,
		p.Config.SMTPPort,
		p.Config.SMTPUser,
		p.Config.SMTPPassword,
		p.Config.EmailFrom,
		p.Config.AdminEmail,
	)
}
