package controller

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriel1997castro/open-source-economy/internal/apperr"
	"github.com/gabriel1997castro/open-source-economy/internal/model"
)

func TestNewsletterSubscribe_Success(t *testing.T) {
	svc := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
			return &model.NewsletterSubscription{ID: 9, Email: email, IsActive: true, SubscribedAt: time.Now()}, nil
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter", map[string]interface{}{
		"email": "ada@example.com",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, float64(9), env.Data["id"])
	assert.Contains(t, env.Message, "Thank you for subscribing")
}

func TestNewsletterSubscribe_InvalidEmail(t *testing.T) {
	svc := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
			t.Fatal("Subscribe must not be called for an invalid payload")
			return nil, nil
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter", map[string]interface{}{
		"email": "nope",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	details := fieldDetails(t, env)
	require.Len(t, details, 1)
	assert.Equal(t, "email", details[0].Field)
	assert.Equal(t, "Invalid email format", details[0].Message)
}

func TestNewsletterSubscribe_DuplicateActiveConflicts(t *testing.T) {
	svc := &mockNewsletterService{
		subscribeFunc: func(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
			return nil, apperr.Conflict("This email is already subscribed to our newsletter")
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter", map[string]interface{}{
		"email": "dup@example.com",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "This email is already subscribed to our newsletter", env.Error)
}

func TestNewsletterList_Pagination(t *testing.T) {
	svc := &mockNewsletterService{
		listFunc: func(ctx context.Context, limit, offset int) ([]model.NewsletterSubscription, model.Pagination, error) {
			return []model.NewsletterSubscription{{ID: 3, Email: "a@example.com", IsActive: true}},
				model.NewPagination(60, limit, offset), nil
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, env := doJSON(t, app, http.MethodGet, "/api/newsletter?limit=50&offset=0", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	pagination, ok := env.Data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(60), pagination["total"])
	assert.Equal(t, true, pagination["hasMore"])
	assert.Len(t, env.Data["subscriptions"], 1)
}

func TestNewsletterUnsubscribe_Success(t *testing.T) {
	var gotEmail string
	svc := &mockNewsletterService{
		unsubscribeFunc: func(ctx context.Context, email string) error {
			gotEmail = email
			return nil
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter/unsubscribe", map[string]interface{}{
		"email": "bye@example.com",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bye@example.com", gotEmail)
	assert.Equal(t, true, env.Data["unsubscribed"])
	assert.Equal(t, "bye@example.com", env.Data["email"])
}

func TestNewsletterUnsubscribe_MissingEmail(t *testing.T) {
	app := newTestApp(nil, NewNewsletterController(&mockNewsletterService{}))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter/unsubscribe", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email is required", env.Error)
}

func TestNewsletterUnsubscribe_NotFoundAndAlreadyUnsubscribed(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"unknown email", apperr.NotFound("Newsletter subscription not found"), "Newsletter subscription not found"},
		{"already unsubscribed", apperr.NotFound("Email is already unsubscribed"), "Email is already unsubscribed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockNewsletterService{
				unsubscribeFunc: func(ctx context.Context, email string) error {
					return tt.err
				},
			}
			app := newTestApp(nil, NewNewsletterController(svc))

			resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter/unsubscribe", map[string]interface{}{
				"email": "ghost@example.com",
			})

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, tt.message, env.Error)
		})
	}
}

func TestNewsletterDeleteByID(t *testing.T) {
	svc := &mockNewsletterService{
		deleteByIDFunc: func(ctx context.Context, id uint) error {
			if id != 8 {
				return apperr.NotFound("Newsletter subscription not found")
			}
			return nil
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/newsletter/8", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodDelete, "/api/newsletter/9", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Newsletter subscription not found", env.Error)

	resp, env = doJSON(t, app, http.MethodDelete, "/api/newsletter/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid subscription ID", env.Error)
}

func TestNewsletterCleanupEmails(t *testing.T) {
	var gotEmails []string
	svc := &mockNewsletterService{
		deleteByEmailsFunc: func(ctx context.Context, emails []string) (int64, error) {
			gotEmails = emails
			return int64(len(emails)), nil
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter/cleanup/emails", map[string]interface{}{
		"emails": []string{"a@example.com", "b@example.com"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, gotEmails)
	assert.Equal(t, float64(2), env.Data["deletedCount"])
}

func TestNewsletterCleanupEmails_MissingArray(t *testing.T) {
	app := newTestApp(nil, NewNewsletterController(&mockNewsletterService{}))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter/cleanup/emails", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Emails array is required", env.Error)
}

func TestNewsletterCleanupTest(t *testing.T) {
	svc := &mockNewsletterService{
		deleteTestRowsFunc: func(ctx context.Context) (int64, error) {
			return 2, nil
		},
	}
	app := newTestApp(nil, NewNewsletterController(svc))

	resp, env := doJSON(t, app, http.MethodPost, "/api/newsletter/cleanup/test", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), env.Data["deletedCount"])
}
