package model

import (
	"strings"
	"time"

	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Subject   *string   `json:"subject,omitempty" db:"subject"`
	Message   string    `json:"message"    db:"message"`
	Read      bool      `json:"read"       db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateContactRequest represents parameters to submit a contact message.
type CreateContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// Normalize trims request fields in place.
func (r *CreateContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Message = strings.TrimSpace(r.Message)
}

// Validate checks the request.
func (r *CreateContactRequest) Validate() error {
	if r.Name == "" {
		return apperrors.ValidationField("name", "Name is required.")
	}
	if r.Email == "" {
		return apperrors.ValidationField("email", "Email is required.")
	}
	if r.Message == "" {
		return apperrors.ValidationField("message", "Message is required.")
	}
	return nil
}
