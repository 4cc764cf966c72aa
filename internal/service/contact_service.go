package service

import (
	"context"

	"github.com/gabriel1997castro/open-source-economy/internal/model"
)

// ContactService defines the business logic for contact form
// submissions.
type ContactService interface {
	// Create persists a validated submission; the ID and creation
	// timestamp are populated by the implementation.
	Create(ctx context.Context, sub *model.ContactSubmission) error

	// List returns a page of submissions, newest first.
	List(ctx context.Context, limit, offset int) ([]model.ContactSubmission, model.Pagination, error)

	GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByEmails(ctx context.Context, emails []string) (int64, error)
	DeleteTestRows(ctx context.Context) (int64, error)
}

// ContactNotifier sends a heads-up about a new submission. Implemented
// by pkg/email; nil-safe at the call site so the API works without an
// email provider configured.
type ContactNotifier interface {
	SendContactNotification(sub *model.ContactSubmission) error
}
