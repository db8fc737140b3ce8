package ports

import (
	"context"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
)

// VisitorStore is the durable key-value table of visitor records.
type VisitorStore interface {
	// Insert writes one record. Writing a key that already exists
	// overwrites it, the same as a DynamoDB PutItem.
	Insert(ctx context.Context, rec domain.VisitorRecord) error
	// Scan returns every record in the store, in no particular order.
	Scan(ctx context.Context) ([]domain.VisitorRecord, error)
	Close() error
}

// Pinger is implemented by stores that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Notifier sends a single email and returns once the provider accepted it.
type Notifier interface {
	Send(ctx context.Context, email domain.Email) error
}

// VisitorService records and counts page loads
type VisitorService interface {
	AddVisitor(ctx context.Context, sourceAddress string) error
	GetVisitorCount(ctx context.Context) (domain.VisitorCount, error)
}

// ContactService forwards contact form submissions
type ContactService interface {
	SendMessage(ctx context.Context, submission domain.ContactSubmission) error
}

// VisitorAPI is the client-side view of the visitor endpoints.
type VisitorAPI interface {
	AddVisitor(ctx context.Context) error
	GetVisitorCount(ctx context.Context) (int, error)
}

// MessageAPI is the client-side view of the send-message endpoint.
type MessageAPI interface {
	SendMessage(ctx context.Context, submission domain.ContactSubmission) error
}
