// Package validation checks inbound form payloads. Validation is pure:
// it never touches storage, and it collects every failing field instead
// of stopping at the first one.
package validation

import (
	"net/mail"
	"net/url"
	"strings"
)

const maxFieldLength = 255

const MinMessageLength = 10

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ContactForm is the expected body for POST /api/contact.
type ContactForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Linkedin string `json:"linkedin"`
	Message  string `json:"message"`
}

// NewsletterForm is the expected body for POST /api/newsletter.
type NewsletterForm struct {
	Email string `json:"email"`
}

// Validate returns a FieldError per failing field, or nil when the form
// is valid.
func (f ContactForm) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	} else if len(f.Name) > maxFieldLength {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be at most 255 characters"})
	}

	if msg, ok := checkEmail(f.Email); !ok {
		errs = append(errs, FieldError{Field: "email", Message: msg})
	}

	// Linkedin is optional; empty string means not provided.
	if f.Linkedin != "" && !isHTTPURL(f.Linkedin) {
		errs = append(errs, FieldError{Field: "linkedin", Message: "Invalid LinkedIn URL"})
	}

	if len([]rune(f.Message)) < MinMessageLength {
		errs = append(errs, FieldError{Field: "message", Message: "Message must be at least 10 characters"})
	}

	return errs
}

func (f NewsletterForm) Validate() []FieldError {
	if msg, ok := checkEmail(f.Email); !ok {
		return []FieldError{{Field: "email", Message: msg}}
	}
	return nil
}

func checkEmail(email string) (string, bool) {
	if strings.TrimSpace(email) == "" {
		return "Email is required", false
	}
	if len(email) > maxFieldLength {
		return "Email must be at most 255 characters", false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "Invalid email format", false
	}
	return "", true
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
