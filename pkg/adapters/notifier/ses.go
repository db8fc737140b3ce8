package notifier

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// SESAPI is the subset of the SES v2 client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESNotifier struct {
	client SESAPI
}

func NewSESNotifier(client SESAPI) *SESNotifier {
	return &SESNotifier{client: client}
}

func (n *SESNotifier) Send(ctx context.Context, email domain.Email) error {
	in := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(email.From),
		Destination:      &types.Destination{ToAddresses: email.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(email.Body)},
				},
			},
		},
	}
	if email.ReplyTo != "" {
		in.ReplyToAddresses = []string{email.ReplyTo}
	}

	out, err := n.client.SendEmail(ctx, in)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "email sent", "provider", ProviderSES, "message_id", aws.ToString(out.MessageId))
	return nil
}

var _ ports.Notifier = (*SESNotifier)(nil)
