package model

import "time"

// ContactSubmission is a single contact-form entry from a prospective
// customer. Rows are append-only except Addressed and the five editable
// text fields; ID and CreatedAt are assigned server-side at creation and
// never change afterwards.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UserAgent string    `json:"userAgent,omitempty"`
	IP        string    `json:"ip,omitempty"`
	Addressed bool      `json:"addressed"`
}

// ContactFormData is the client-supplied subset of a submission: everything
// except the server-assigned id, timestamp, request metadata and flag.
type ContactFormData struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"-"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmissionEdit carries the five fields a dashboard edit may overwrite.
// ID, CreatedAt and Addressed are never touched by an edit.
type SubmissionEdit struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}
