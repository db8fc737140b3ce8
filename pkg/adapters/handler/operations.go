package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// Failure prefixes; the reason is appended as " due to <reason>".
const (
	addVisitorFailed = "Failed to add visitor"
	getCountFailed   = "Failed to get visitor count"
	sendEmailFailed  = "Failed to send email"
)

// Operations holds the three request handlers independent of transport.
// Both the HTTP router and the Lambda adapter render its Responses.
type Operations struct {
	visitors ports.VisitorService
	contact  ports.ContactService
	log      *slog.Logger
}

func NewOperations(visitors ports.VisitorService, contact ports.ContactService, log *slog.Logger) *Operations {
	if log == nil {
		log = slog.Default()
	}
	return &Operations{visitors: visitors, contact: contact, log: log}
}

// AddVisitor records one page load from sourceAddress.
func (o *Operations) AddVisitor(ctx context.Context, sourceAddress string) (resp Response) {
	defer o.recoverInto(ctx, &resp, addVisitorFailed)

	o.log.DebugContext(ctx, "add visitor request", "source_address", sourceAddress)

	if err := o.visitors.AddVisitor(ctx, sourceAddress); err != nil {
		o.log.ErrorContext(ctx, "add visitor", "source_address", sourceAddress, "error", err)
		return failure(addVisitorFailed, err)
	}
	return message(http.StatusOK, "Visitor added successfully")
}

// GetVisitorCount returns the number of records currently stored.
func (o *Operations) GetVisitorCount(ctx context.Context) (resp Response) {
	defer o.recoverInto(ctx, &resp, getCountFailed)

	o.log.DebugContext(ctx, "get visitor count request")

	count, err := o.visitors.GetVisitorCount(ctx)
	if err != nil {
		o.log.ErrorContext(ctx, "get visitor count", "error", err)
		return failure(getCountFailed, err)
	}
	return Response{StatusCode: http.StatusOK, Body: CountBody{VisitorCount: count.Count}}
}

// SendMessage parses {"email","message"} from body and forwards it.
// A body that is not JSON takes the same failure path as a provider error.
func (o *Operations) SendMessage(ctx context.Context, body []byte) (resp Response) {
	defer o.recoverInto(ctx, &resp, sendEmailFailed)

	o.log.DebugContext(ctx, "send message request", "body", string(body))

	var sub domain.ContactSubmission
	if err := json.Unmarshal(body, &sub); err != nil {
		o.log.ErrorContext(ctx, "send message: decode body", "error", err)
		return failure(sendEmailFailed, err)
	}
	if err := o.contact.SendMessage(ctx, sub); err != nil {
		o.log.ErrorContext(ctx, "send message", "error", err)
		return failure(sendEmailFailed, err)
	}
	return message(http.StatusOK, "Email sent successfully")
}

func (o *Operations) recoverInto(ctx context.Context, resp *Response, prefix string) {
	if rec := recover(); rec != nil {
		err := fmt.Errorf("%v", rec)
		o.log.ErrorContext(ctx, "panic in handler", "operation", prefix, "error", err)
		*resp = failure(prefix, err)
	}
}
