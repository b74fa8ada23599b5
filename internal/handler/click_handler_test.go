package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightelectricals/backend/internal/model"
)

func postClick(h *ClickHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/track-click", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Track(rec, req)
	return rec
}

func TestClickHandler_Track_Success(t *testing.T) {
	var captured *model.ButtonClick
	mock := &mockClickService{
		trackFunc: func(ctx context.Context, click *model.ButtonClick) error {
			captured = click
			return nil
		},
	}
	h := NewClickHandler(mock)

	rec := postClick(h, `{"buttonType":"call","buttonLabel":"Call Us"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Track to be called")
	}
	if captured.ButtonType != "call" || captured.ButtonLabel != "Call Us" {
		t.Errorf("unexpected captured click: %+v", captured)
	}

	var resp map[string]bool
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp["success"] {
		t.Error("expected success=true")
	}
}

// TestClickHandler_Track_MetadataPassthrough verifies metadata is stored
// verbatim without inspection.
func TestClickHandler_Track_MetadataPassthrough(t *testing.T) {
	var captured *model.ButtonClick
	mock := &mockClickService{
		trackFunc: func(ctx context.Context, click *model.ButtonClick) error {
			captured = click
			return nil
		},
	}
	h := NewClickHandler(mock)

	rec := postClick(h, `{"buttonType":"social","buttonLabel":"Instagram","metadata":{"url":"https://instagram.com/x"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(string(captured.Metadata), "instagram.com") {
		t.Errorf("expected metadata passed through, got %s", captured.Metadata)
	}
}

func TestClickHandler_Track_MissingFields(t *testing.T) {
	h := NewClickHandler(&mockClickService{})

	rec := postClick(h, `{"buttonType":"call"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing buttonLabel, got %d", rec.Code)
	}
}

func TestClickHandler_Track_InvalidJSON(t *testing.T) {
	h := NewClickHandler(&mockClickService{})

	rec := postClick(h, `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestClickHandler_Track_ServiceError(t *testing.T) {
	mock := &mockClickService{
		trackFunc: func(ctx context.Context, click *model.ButtonClick) error {
			return errors.New("db write failed")
		},
	}
	h := NewClickHandler(mock)

	rec := postClick(h, `{"buttonType":"call","buttonLabel":"Call Us"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}
