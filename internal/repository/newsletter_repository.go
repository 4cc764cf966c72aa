package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gabriel1997castro/open-source-economy/internal/model"
)

// NewsletterRepository is the persistence gateway for newsletter
// subscriptions. The subscribe/unsubscribe state machine lives in the
// service layer; this interface only exposes row-level operations.
type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	Create(ctx context.Context, sub *model.NewsletterSubscription) error
	// SetActive flips the active flag on the row with the given email.
	// Activation also refreshes the subscription timestamp.
	SetActive(ctx context.Context, email string, active bool, at time.Time) error
	// ListActive returns a page of active subscriptions ordered by
	// subscription time descending, along with the total active count.
	ListActive(ctx context.Context, limit, offset int) ([]model.NewsletterSubscription, int64, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByEmails(ctx context.Context, emails []string) (int64, error)
	DeleteTestRows(ctx context.Context) (int64, error)
}

type GormNewsletterRepository struct {
	db *gorm.DB
}

func NewGormNewsletterRepository(db *gorm.DB) *GormNewsletterRepository {
	return &GormNewsletterRepository{db: db}
}

var _ NewsletterRepository = (*GormNewsletterRepository)(nil)

func (r *GormNewsletterRepository) FindByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	var sub model.NewsletterSubscription
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *GormNewsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscription) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		// Relies on TranslateError in the gorm config to recognize
		// unique-index violations from the postgres driver.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *GormNewsletterRepository) SetActive(ctx context.Context, email string, active bool, at time.Time) error {
	updates := map[string]interface{}{"is_active": active}
	if active {
		updates["subscribed_at"] = at
	}
	result := r.db.WithContext(ctx).
		Model(&model.NewsletterSubscription{}).
		Where("email = ?", email).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormNewsletterRepository) ListActive(ctx context.Context, limit, offset int) ([]model.NewsletterSubscription, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.NewsletterSubscription{}).
		Where("is_active = ?", true).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var subs []model.NewsletterSubscription
	err = r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("subscribed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *GormNewsletterRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.NewsletterSubscription{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormNewsletterRepository) DeleteByEmails(ctx context.Context, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("email IN ?", emails).
		Delete(&model.NewsletterSubscription{})
	return result.RowsAffected, result.Error
}

func (r *GormNewsletterRepository) DeleteTestRows(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("email LIKE ?", "%"+TestEmailPattern+"%").
		Delete(&model.NewsletterSubscription{})
	return result.RowsAffected, result.Error
}
