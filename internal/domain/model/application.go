package model

import (
	"strings"
	"time"

	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

// ApplicationStatus tracks a job application through review.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusRejected ApplicationStatus = "rejected"
	ApplicationStatusHired    ApplicationStatus = "hired"
)

// Valid reports whether the application status is supported.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusRejected, ApplicationStatusHired:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus normalizes a status string and reports whether it is supported.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// JobApplication is a candidate submission against a published career posting.
type JobApplication struct {
	ID         string            `json:"id"          db:"id"`
	CareerID   string            `json:"career_id"   db:"career_id"`
	Applicant  string            `json:"applicant"   db:"applicant"`
	Email      string            `json:"email"       db:"email"`
	Phone      *string           `json:"phone,omitempty"  db:"phone"`
	ResumeURL  *string           `json:"resume_url,omitempty" db:"resume_url"`
	CoverNote  *string           `json:"cover_note,omitempty" db:"cover_note"`
	Status     ApplicationStatus `json:"status"      db:"status"`
	ReviewedBy *string           `json:"reviewed_by,omitempty" db:"reviewed_by"`
	CreatedAt  time.Time         `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"  db:"updated_at"`
}

// CreateApplicationRequest represents parameters to submit a job application.
type CreateApplicationRequest struct {
	CareerID  string  `json:"career_id"`
	Applicant string  `json:"applicant"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	ResumeURL *string `json:"resume_url,omitempty"`
	CoverNote *string `json:"cover_note,omitempty"`
}

// Normalize trims request fields in place.
func (r *CreateApplicationRequest) Normalize() {
	r.CareerID = strings.TrimSpace(r.CareerID)
	r.Applicant = strings.TrimSpace(r.Applicant)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks the request.
func (r *CreateApplicationRequest) Validate() error {
	if r.CareerID == "" {
		return apperrors.ValidationField("career_id", "Career is required.")
	}
	if r.Applicant == "" {
		return apperrors.ValidationField("applicant", "Applicant name is required.")
	}
	if r.Email == "" {
		return apperrors.ValidationField("email", "Email is required.")
	}
	return nil
}
