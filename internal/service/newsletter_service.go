package service

import (
	"context"

	"github.com/gabriel1997castro/open-source-economy/internal/model"
)

// NewsletterService defines the business logic for newsletter
// subscriptions, including the subscribe/unsubscribe state machine:
//
//	absent   --subscribe--> active
//	active   --subscribe--> conflict
//	active   --unsubscribe--> inactive
//	inactive --subscribe--> active (same row, timestamp refreshed)
//	inactive --unsubscribe--> already-unsubscribed
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	List(ctx context.Context, limit, offset int) ([]model.NewsletterSubscription, model.Pagination, error)
	Unsubscribe(ctx context.Context, email string) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteByEmails(ctx context.Context, emails []string) (int64, error)
	DeleteTestRows(ctx context.Context) (int64, error)
}
