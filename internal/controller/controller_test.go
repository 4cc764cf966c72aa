package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/gabriel1997castro/open-source-economy/internal/model"
	"github.com/gabriel1997castro/open-source-economy/pkg/response"
)

// envelope mirrors the uniform JSON wrapper for assertions. Details is
// raw because it holds field errors on 400s but a plain string on
// non-production 500s.
type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Data    map[string]interface{} `json:"data"`
	Details json.RawMessage        `json:"details"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldDetails(t *testing.T, env envelope) []fieldDetail {
	t.Helper()
	var details []fieldDetail
	require.NoError(t, json.Unmarshal(env.Details, &details))
	return details
}

func newTestApp(contacts *ContactController, newsletters *NewsletterController) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler("test"),
	})

	api := app.Group("/api")
	api.Get("/health", Health)

	if contacts != nil {
		contact := api.Group("/contact")
		contact.Post("/", contacts.Create)
		contact.Get("/", contacts.List)
		contact.Post("/cleanup/test", contacts.CleanupTest)
		contact.Post("/cleanup/emails", contacts.CleanupEmails)
		contact.Get("/:id", contacts.GetByID)
		contact.Delete("/:id", contacts.DeleteByID)
	}

	if newsletters != nil {
		newsletter := api.Group("/newsletter")
		newsletter.Post("/", newsletters.Subscribe)
		newsletter.Get("/", newsletters.List)
		newsletter.Post("/unsubscribe", newsletters.Unsubscribe)
		newsletter.Post("/cleanup/test", newsletters.CleanupTest)
		newsletter.Post("/cleanup/emails", newsletters.CleanupEmails)
		newsletter.Delete("/:id", newsletters.DeleteByID)
	}

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp, env
}

// ---------------------------------------------------------------------------
// mock services
// ---------------------------------------------------------------------------

type mockContactService struct {
	createFunc         func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc           func(ctx context.Context, limit, offset int) ([]model.ContactSubmission, model.Pagination, error)
	getByIDFunc        func(ctx context.Context, id uint) (*model.ContactSubmission, error)
	deleteByIDFunc     func(ctx context.Context, id uint) error
	deleteByEmailsFunc func(ctx context.Context, emails []string) (int64, error)
	deleteTestRowsFunc func(ctx context.Context) (int64, error)
}

func (m *mockContactService) Create(ctx context.Context, sub *model.ContactSubmission) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context, limit, offset int) ([]model.ContactSubmission, model.Pagination, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return []model.ContactSubmission{}, model.NewPagination(0, limit, offset), nil
}

func (m *mockContactService) GetByID(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.ContactSubmission{ID: id}, nil
}

func (m *mockContactService) DeleteByID(ctx context.Context, id uint) error {
	if m.deleteByIDFunc != nil {
		return m.deleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *mockContactService) DeleteByEmails(ctx context.Context, emails []string) (int64, error) {
	if m.deleteByEmailsFunc != nil {
		return m.deleteByEmailsFunc(ctx, emails)
	}
	return 0, nil
}

func (m *mockContactService) DeleteTestRows(ctx context.Context) (int64, error) {
	if m.deleteTestRowsFunc != nil {
		return m.deleteTestRowsFunc(ctx)
	}
	return 0, nil
}

type mockNewsletterService struct {
	subscribeFunc      func(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	listFunc           func(ctx context.Context, limit, offset int) ([]model.NewsletterSubscription, model.Pagination, error)
	unsubscribeFunc    func(ctx context.Context, email string) error
	deleteByIDFunc     func(ctx context.Context, id uint) error
	deleteByEmailsFunc func(ctx context.Context, emails []string) (int64, error)
	deleteTestRowsFunc func(ctx context.Context) (int64, error)
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	if m.subscribeFunc != nil {
		return m.subscribeFunc(ctx, email)
	}
	return &model.NewsletterSubscription{ID: 1, Email: email, IsActive: true, SubscribedAt: time.Now()}, nil
}

func (m *mockNewsletterService) List(ctx context.Context, limit, offset int) ([]model.NewsletterSubscription, model.Pagination, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return []model.NewsletterSubscription{}, model.NewPagination(0, limit, offset), nil
}

func (m *mockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	if m.unsubscribeFunc != nil {
		return m.unsubscribeFunc(ctx, email)
	}
	return nil
}

func (m *mockNewsletterService) DeleteByID(ctx context.Context, id uint) error {
	if m.deleteByIDFunc != nil {
		return m.deleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *mockNewsletterService) DeleteByEmails(ctx context.Context, emails []string) (int64, error) {
	if m.deleteByEmailsFunc != nil {
		return m.deleteByEmailsFunc(ctx, emails)
	}
	return 0, nil
}

func (m *mockNewsletterService) DeleteTestRows(ctx context.Context) (int64, error) {
	if m.deleteTestRowsFunc != nil {
		return m.deleteTestRowsFunc(ctx)
	}
	return 0, nil
}
