package domain

import "strings"

// DefaultSubject is used when no subject is configured.
const DefaultSubject = "New Contact Form Submission"

// ContactSubmission is what a visitor types into the contact form.
// It is forwarded once and never persisted.
type ContactSubmission struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Complete reports whether both fields are non-empty.
func (c ContactSubmission) Complete() bool {
	return c.Email != "" && c.Message != ""
}

// Email is a single outbound plain-text message.
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailbox is the fixed sender/recipient/subject of contact notifications.
type Mailbox struct {
	From    string
	To      string
	Subject string
}

// ComposeEmail builds the notification for a submission. The body is
// "From: <email>\n\nMessage: <message>"; neither field is validated.
func (m Mailbox) ComposeEmail(c ContactSubmission) Email {
	subject := m.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	var b strings.Builder
	b.WriteString("From: ")
	b.WriteString(c.Email)
	b.WriteString("\n\n")
	b.WriteString("Message: ")
	b.WriteString(c.Message)

	return Email{
		From:    m.From,
		To:      []string{m.To},
		ReplyTo: c.Email,
		Subject: subject,
		Body:    b.String(),
	}
}
