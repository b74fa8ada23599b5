package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/brightelectricals/backend/internal/repository"
	"github.com/brightelectricals/backend/internal/validate"
)

// Handler carries the cross-cutting pieces shared by all endpoints: the
// database handle for health checks and the CORS origin.
type Handler struct {
	db          repository.DB
	frontendURL string
}

// New creates the base Handler.
func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS allows the marketing site and dashboard to call the API from the
// configured origin.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// errorResponse is the failure envelope shared by all endpoints. Errors is
// only present on validation failures.
type errorResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

func writeValidationError(w http.ResponseWriter, errs []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Success: false,
		Message: "Please fill in all required fields correctly.",
		Errors:  errs,
	})
}

// clientIP extracts the requester address: the first X-Forwarded-For hop
// when present (the API sits behind a reverse proxy in production),
// otherwise the connection's remote address without the port.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
