package service

import (
	"context"
	"errors"
	"time"

	"github.com/gabriel1997castro/open-source-economy/internal/apperr"
	"github.com/gabriel1997castro/open-source-economy/internal/model"
	"github.com/gabriel1997castro/open-source-economy/internal/repository"
)

type newsletterServiceImpl struct {
	repo repository.NewsletterRepository
	now  func() time.Time
}

// NewNewsletterService creates a NewsletterService backed by the given
// repository.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo, now: time.Now}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive {
			return nil, apperr.Conflict("This email is already subscribed to our newsletter")
		}
		// Reactivate the existing row so the email stays unique and
		// the original id is preserved.
		now := s.now()
		if err := s.repo.SetActive(ctx, email, true, now); err != nil {
			return nil, err
		}
		existing.IsActive = true
		existing.SubscribedAt = now
		return existing, nil
	}

	sub := &model.NewsletterSubscription{
		Email:        email,
		SubscribedAt: s.now(),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race against a concurrent subscribe for the
			// same email; the unique index already settled it.
			return nil, apperr.Conflict("This email is already subscribed to our newsletter")
		}
		return nil, err
	}
	return sub, nil
}

func (s *newsletterServiceImpl) List(ctx context.Context, limit, offset int) ([]model.NewsletterSubscription, model.Pagination, error) {
	subs, total, err := s.repo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	if subs == nil {
		subs = []model.NewsletterSubscription{}
	}
	return subs, model.NewPagination(total, limit, offset), nil
}

func (s *newsletterServiceImpl) Unsubscribe(ctx context.Context, email string) error {
	sub, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Newsletter subscription not found")
		}
		return err
	}

	if !sub.IsActive {
		return apperr.NotFound("Email is already unsubscribed")
	}

	return s.repo.SetActive(ctx, email, false, s.now())
}

func (s *newsletterServiceImpl) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Newsletter subscription not found")
		}
		return err
	}
	return nil
}

func (s *newsletterServiceImpl) DeleteByEmails(ctx context.Context, emails []string) (int64, error) {
	return s.repo.DeleteByEmails(ctx, emails)
}

func (s *newsletterServiceImpl) DeleteTestRows(ctx context.Context) (int64, error) {
	return s.repo.DeleteTestRows(ctx)
}
