package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brightelectricals/backend/internal/model"
	"github.com/brightelectricals/backend/internal/service"
	"github.com/brightelectricals/backend/internal/validate"
)

// ClickHandler handles call-to-action click tracking beacons.
type ClickHandler struct {
	svc service.ClickService
}

// NewClickHandler creates a ClickHandler with the given service.
func NewClickHandler(svc service.ClickService) *ClickHandler {
	return &ClickHandler{svc: svc}
}

// Track handles POST /api/track-click. Metadata is stored as-is; the
// requester IP and user agent are attached server-side.
func (h *ClickHandler) Track(w http.ResponseWriter, r *http.Request) {
	var data model.ButtonClickData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if errs := validate.ButtonClick(data); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	click := &model.ButtonClick{
		ButtonType:  data.ButtonType,
		ButtonLabel: data.ButtonLabel,
		Metadata:    data.Metadata,
		IPAddress:   clientIP(r),
		UserAgent:   r.UserAgent(),
	}

	if err := h.svc.Track(r.Context(), click); err != nil {
		slog.Error("click tracking failed", "error", err, "button_type", data.ButtonType)
		writeError(w, http.StatusInternalServerError, "Failed to track click")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
