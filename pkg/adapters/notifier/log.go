package notifier

import (
	"context"
	"log/slog"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// LogNotifier writes emails to the log instead of delivering them.
// Used for local development.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(ctx context.Context, email domain.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.log.InfoContext(ctx, "email",
		"provider", ProviderLog,
		"from", email.From,
		"to", email.To,
		"reply_to", email.ReplyTo,
		"subject", email.Subject,
		"body", email.Body,
	)
	return nil
}

var _ ports.Notifier = (*LogNotifier)(nil)
