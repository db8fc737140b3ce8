package client

import (
	"context"
	"sync"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// FormState is a point-in-time copy of the contact form.
type FormState struct {
	Open    bool
	Email   string
	Message string
	Loading bool
	Error   string
}

// ContactForm tracks the contact dialog: its two fields, one in-flight
// submission at a time, and the last error.
type ContactForm struct {
	api ports.MessageAPI

	mu    sync.Mutex
	state FormState
	// session increments on every Close so a late success does not
	// clear fields typed after the dialog was reopened.
	session uint64
}

func NewContactForm(api ports.MessageAPI) *ContactForm {
	return &ContactForm{api: api}
}

func (f *ContactForm) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Open = true
}

// Close hides the form and clears fields and error. An in-flight request
// is not cancelled.
func (f *ContactForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Open = false
	f.state.Email = ""
	f.state.Message = ""
	f.state.Error = ""
	f.session++
}

// SetEmail edits the email field. Ignored while a submission is in flight.
func (f *ContactForm) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.state.Loading {
		f.state.Email = email
	}
}

// SetMessage edits the message field. Ignored while a submission is in flight.
func (f *ContactForm) SetMessage(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.state.Loading {
		f.state.Message = message
	}
}

// CanSubmit is true iff both fields are non-empty and nothing is in flight.
func (f *ContactForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmit()
}

func (f *ContactForm) canSubmit() bool {
	return !f.state.Loading && f.submission().Complete()
}

func (f *ContactForm) submission() domain.ContactSubmission {
	return domain.ContactSubmission{Email: f.state.Email, Message: f.state.Message}
}

// Submit sends the current fields and blocks until the API answers.
// On success the form closes and resets; on failure it stays open with
// Error set so the user can retry.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.canSubmit() {
		f.mu.Unlock()
		return domain.ErrSubmitDisabled
	}
	f.state.Loading = true
	f.state.Error = ""
	sub := f.submission()
	session := f.session
	f.mu.Unlock()

	err := f.api.SendMessage(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = false
	if err != nil {
		f.state.Error = err.Error()
		return err
	}
	if session == f.session {
		f.state.Open = false
		f.state.Email = ""
		f.state.Message = ""
		f.state.Error = ""
	}
	return nil
}

func (f *ContactForm) Snapshot() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}
