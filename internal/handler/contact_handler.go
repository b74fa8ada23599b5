package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brightelectricals/backend/internal/model"
	"github.com/brightelectricals/backend/internal/service"
	"github.com/brightelectricals/backend/internal/validate"
)

// ContactHandler handles public contact-form submissions.
type ContactHandler struct {
	svc service.SubmissionService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(svc service.SubmissionService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// submitResponse is the success body for POST /api/contact.
type submitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

// Submit handles POST /api/contact. The requester IP and user agent are
// attached server-side; clients cannot supply them.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form model.ContactFormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if errs := validate.ContactForm(form); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	sub := &model.ContactSubmission{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Service:   form.Service,
		Message:   form.Message,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}

	if err := h.svc.Submit(r.Context(), sub); err != nil {
		slog.Error("contact submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success:      true,
		Message:      "Thank you! Your message has been received successfully. We'll get back to you soon.",
		SubmissionID: sub.ID,
	})
}
