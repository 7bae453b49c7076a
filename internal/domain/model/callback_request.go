package model

import (
	"strings"
	"time"

	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

// CallbackRequest is a "call me back" submission from the public site.
type CallbackRequest struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Phone     string    `json:"phone"      db:"phone"`
	Topic     *string   `json:"topic,omitempty" db:"topic"`
	Handled   bool      `json:"handled"    db:"handled"`
	HandledBy *string   `json:"handled_by,omitempty" db:"handled_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateCallbackRequest represents parameters to submit a callback request.
type CreateCallbackRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Topic *string `json:"topic,omitempty"`
}

// Normalize trims request fields in place.
func (r *CreateCallbackRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
}

// Validate checks the request.
func (r *CreateCallbackRequest) Validate() error {
	if r.Name == "" {
		return apperrors.ValidationField("name", "Name is required.")
	}
	if r.Phone == "" {
		return apperrors.ValidationField("phone", "Phone number is required.")
	}
	return nil
}
