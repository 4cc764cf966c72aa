package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gabriel1997castro/open-source-economy/internal/model"
)

// ContactRepository is the persistence gateway for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	// List returns a page of submissions ordered by creation time
	// descending, along with the total row count.
	List(ctx context.Context, limit, offset int) ([]model.ContactSubmission, int64, error)
	GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByEmails(ctx context.Context, emails []string) (int64, error)
	DeleteTestRows(ctx context.Context) (int64, error)
}

// TestEmailPattern identifies rows created by the automated browser
// tests; bulk cleanup targets emails containing it.
const TestEmailPattern = "cypress."

type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

var _ ContactRepository = (*GormContactRepository)(nil)

func (r *GormContactRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *GormContactRepository) List(ctx context.Context, limit, offset int) ([]model.ContactSubmission, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.ContactSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []model.ContactSubmission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *GormContactRepository) GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	var sub model.ContactSubmission
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *GormContactRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormContactRepository) DeleteByEmails(ctx context.Context, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("email IN ?", emails).
		Delete(&model.ContactSubmission{})
	return result.RowsAffected, result.Error
}

func (r *GormContactRepository) DeleteTestRows(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("email LIKE ?", "%"+TestEmailPattern+"%").
		Delete(&model.ContactSubmission{})
	return result.RowsAffected, result.Error
}
