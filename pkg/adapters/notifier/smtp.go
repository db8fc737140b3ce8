package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// ErrSMTPCredentials is returned when SMTP_USER or SMTP_PASS is empty.
var ErrSMTPCredentials = errors.New("SMTP credentials not configured")

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPNotifier struct {
	host     string
	port     string
	user     string
	pass     string
	sendMail sendMailFunc
	now      func() time.Time
}

func NewSMTPNotifier(host, port, user, pass string) (*SMTPNotifier, error) {
	if user == "" || pass == "" {
		return nil, ErrSMTPCredentials
	}
	return &SMTPNotifier{
		host:     host,
		port:     port,
		user:     user,
		pass:     pass,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}, nil
}

// Send delivers the email through the relay. net/smtp has no context
// support, so ctx is only checked before dialing.
func (n *SMTPNotifier) Send(ctx context.Context, email domain.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id := uuid.NewString()
	msg := buildMessage(email, id, n.now())
	auth := smtp.PlainAuth("", n.user, n.pass, n.host)

	if err := n.sendMail(net.JoinHostPort(n.host, n.port), auth, email.From, email.To, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	slog.InfoContext(ctx, "email sent", "provider", ProviderSMTP, "message_id", id)
	return nil
}

// buildMessage renders an RFC 5322 plain-text message.
func buildMessage(email domain.Email, id string, at time.Time) []byte {
	var b strings.Builder
	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}

	header("From", email.From)
	header("To", strings.Join(email.To, ", "))
	if email.ReplyTo != "" {
		header("Reply-To", email.ReplyTo)
	}
	header("Subject", email.Subject)
	header("Date", at.Format(time.RFC1123Z))
	header("Message-ID", "<"+id+"@"+domainOf(email.From)+">")
	header("MIME-Version", "1.0")
	header("Content-Type", `text/plain; charset="utf-8"`)
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(email.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}

var _ ports.Notifier = (*SMTPNotifier)(nil)
