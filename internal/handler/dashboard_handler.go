package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/brightelectricals/backend/internal/model"
	"github.com/brightelectricals/backend/internal/service"
	"github.com/brightelectricals/backend/internal/validate"
)

// recentWindow is how many recent submissions/clicks the stats endpoint
// includes alongside the aggregates.
const recentWindow = 10

// DashboardHandler serves the internal analytics dashboard: submission
// listing and mutations plus click listings and aggregates.
type DashboardHandler struct {
	submissions service.SubmissionService
	clicks      service.ClickService
}

// NewDashboardHandler creates a DashboardHandler with the given services.
func NewDashboardHandler(submissions service.SubmissionService, clicks service.ClickService) *DashboardHandler {
	return &DashboardHandler{submissions: submissions, clicks: clicks}
}

// dataResponse is the success envelope for dashboard reads.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// limitParam parses the limit query parameter, falling back to def when
// absent or invalid.
func limitParam(r *http.Request, def int) int {
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// Submissions handles GET /api/dashboard/submissions.
func (h *DashboardHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissions.List(r.Context(), limitParam(r, 50))
	if err != nil {
		slog.Error("submission list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: subs})
}

// Clicks handles GET /api/dashboard/clicks.
func (h *DashboardHandler) Clicks(w http.ResponseWriter, r *http.Request) {
	clicks, err := h.clicks.List(r.Context(), limitParam(r, 100))
	if err != nil {
		slog.Error("click list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch clicks")
		return
	}
	if clicks == nil {
		clicks = []*model.ButtonClick{}
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: clicks})
}

// statsData is the aggregate payload for GET /api/dashboard/stats.
type statsData struct {
	ClickStats        []model.ClickStat          `json:"clickStats"`
	TotalSubmissions  int                        `json:"totalSubmissions"`
	RecentSubmissions []*model.ContactSubmission `json:"recentSubmissions"`
	RecentClicks      []*model.ButtonClick       `json:"recentClicks"`
}

// Stats handles GET /api/dashboard/stats. The independent reads fan out
// concurrently and the response waits for all of them.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var data statsData

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		stats, err := h.clicks.Stats(ctx)
		if stats == nil {
			stats = []model.ClickStat{}
		}
		data.ClickStats = stats
		return err
	})
	g.Go(func() error {
		subs, err := h.submissions.List(ctx, recentWindow)
		if subs == nil {
			subs = []*model.ContactSubmission{}
		}
		data.RecentSubmissions = subs
		return err
	})
	g.Go(func() error {
		clicks, err := h.clicks.List(ctx, recentWindow)
		if clicks == nil {
			clicks = []*model.ButtonClick{}
		}
		data.RecentClicks = clicks
		return err
	})
	g.Go(func() error {
		total, err := h.submissions.Count(ctx)
		data.TotalSubmissions = total
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("dashboard stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: data})
}

// DeleteSubmission handles DELETE /api/dashboard/submissions/{id}.
// Deleting an absent id still succeeds.
func (h *DashboardHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.submissions.Delete(r.Context(), id); err != nil {
		slog.Error("submission delete failed", "error", err, "submission_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete submission")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MarkAddressed handles POST /api/dashboard/submissions/{id}/addressed.
func (h *DashboardHandler) MarkAddressed(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.submissions.MarkAddressed(r.Context(), id); err != nil {
		slog.Error("mark addressed failed", "error", err, "submission_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to mark as addressed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// EditSubmission handles PUT /api/dashboard/submissions/{id}. The body
// carries the five editable fields and is validated like the public form.
func (h *DashboardHandler) EditSubmission(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var form model.ContactFormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if errs := validate.ContactForm(form); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	edit := model.SubmissionEdit{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Service: form.Service,
		Message: form.Message,
	}
	if err := h.submissions.Edit(r.Context(), id, edit); err != nil {
		slog.Error("submission edit failed", "error", err, "submission_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to edit submission")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
