package notifier

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/wadjakorntonsri/cloud-resume/pkg/config"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// Provider names accepted in MAIL_PROVIDER.
const (
	ProviderLog  = "log"
	ProviderSES  = "ses"
	ProviderSMTP = "smtp"
)

// New builds the notifier selected by cfg.MailProvider.
func New(ctx context.Context, cfg *config.Config) (ports.Notifier, error) {
	switch cfg.MailProvider {
	case ProviderLog, "":
		return NewLogNotifier(slog.Default()), nil
	case ProviderSES:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return NewSESNotifier(sesv2.NewFromConfig(awsCfg)), nil
	case ProviderSMTP:
		return NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, cfg.MailProvider)
}
