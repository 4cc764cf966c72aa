package service

import (
	"context"
	"errors"
	"log"

	"github.com/gabriel1997castro/open-source-economy/internal/apperr"
	"github.com/gabriel1997castro/open-source-economy/internal/model"
	"github.com/gabriel1997castro/open-source-economy/internal/repository"
)

type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a ContactService backed by the given
// repository. notifier may be nil when no email provider is configured.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

func (s *contactServiceImpl) Create(ctx context.Context, sub *model.ContactSubmission) error {
	if err := s.repo.Create(ctx, sub); err != nil {
		return err
	}

	// Notification failures must not fail the submission.
	if s.notifier != nil {
		if err := s.notifier.SendContactNotification(sub); err != nil {
			log.Printf("Could not send contact notification email: %v", err)
		}
	}
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context, limit, offset int) ([]model.ContactSubmission, model.Pagination, error) {
	subs, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	if subs == nil {
		subs = []model.ContactSubmission{}
	}
	return subs, model.NewPagination(total, limit, offset), nil
}

func (s *contactServiceImpl) GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Contact submission not found")
		}
		return nil, err
	}
	return sub, nil
}

func (s *contactServiceImpl) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Contact submission not found")
		}
		return err
	}
	return nil
}

func (s *contactServiceImpl) DeleteByEmails(ctx context.Context, emails []string) (int64, error) {
	return s.repo.DeleteByEmails(ctx, emails)
}

func (s *contactServiceImpl) DeleteTestRows(ctx context.Context) (int64, error) {
	return s.repo.DeleteTestRows(ctx)
}
