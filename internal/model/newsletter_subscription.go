package model

import "time"

// NewsletterSubscription keeps at most one row per email. Unsubscribing
// flips IsActive off instead of deleting, so a later resubscribe
// reactivates the same row and the unique index on email holds across
// active and inactive rows alike.
type NewsletterSubscription struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	SubscribedAt time.Time `json:"subscribedAt" gorm:"not null"`
	IsActive     bool      `json:"isActive" gorm:"not null;default:true"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
