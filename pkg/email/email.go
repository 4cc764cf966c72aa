// Package email sends transactional mail through the Resend REST API.
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/gabriel1997castro/open-source-economy/internal/model"
)

const resendEndpoint = "https://api.resend.com/emails"

type Service struct {
	apiKey     string
	from       string
	adminEmail string
	templates  *template.Template
	client     *http.Client
}

type emailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

type contactNotificationData struct {
	Name     string
	Email    string
	Linkedin string
	Message  string
}

// NewService creates a Service. adminEmail is the recipient of contact
// notifications.
func NewService(apiKey, from, adminEmail string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if adminEmail == "" {
		return nil, fmt.Errorf("admin email is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &Service{
		apiKey:     apiKey,
		from:       from,
		adminEmail: adminEmail,
		templates:  templates,
		client:     &http.Client{},
	}, nil
}

// SendContactNotification notifies the site owner about a new contact
// form submission.
func (s *Service) SendContactNotification(sub *model.ContactSubmission) error {
	data := contactNotificationData{
		Name:     sub.Name,
		Email:    sub.Email,
		Linkedin: sub.Linkedin,
		Message:  sub.Message,
	}
	return s.sendTemplateEmail(s.adminEmail, "New Contact Form Submission", "contact_notification.html", data)
}

func (s *Service) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	payload := emailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	log.Printf("Notification email sent to %s", to)
	return nil
}
