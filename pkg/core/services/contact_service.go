package services

import (
	"context"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

type ContactService struct {
	notifier ports.Notifier
	mailbox  domain.Mailbox
}

func NewContactService(notifier ports.Notifier, mailbox domain.Mailbox) *ContactService {
	return &ContactService{notifier: notifier, mailbox: mailbox}
}

// SendMessage forwards the submission as a single email. Fields are passed
// through as-is.
func (s *ContactService) SendMessage(ctx context.Context, submission domain.ContactSubmission) error {
	return s.notifier.Send(ctx, s.mailbox.ComposeEmail(submission))
}

var _ ports.ContactService = (*ContactService)(nil)
