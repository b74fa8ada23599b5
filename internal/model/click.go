package model

import (
	"encoding/json"
	"time"
)

// ButtonClick records a user interacting with a call-to-action element
// (phone, email, chat, website, social link). Rows are append-only: no
// exposed operation mutates or deletes a click.
type ButtonClick struct {
	ID          string          `json:"id"`
	ButtonType  string          `json:"buttonType"` // call, email, whatsapp, website, social, ...
	ButtonLabel string          `json:"buttonLabel"`
	ClickedAt   time.Time       `json:"clickedAt"`
	IPAddress   string          `json:"ipAddress,omitempty"`
	UserAgent   string          `json:"userAgent,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// ButtonClickData is the client-supplied subset of a click event.
// Metadata is an opaque passthrough; the server never inspects it.
type ButtonClickData struct {
	ButtonType  string          `json:"buttonType" validate:"required"`
	ButtonLabel string          `json:"buttonLabel" validate:"required"`
	Metadata    json.RawMessage `json:"metadata" validate:"-"`
}

// ClickStat is one row of the all-time click aggregation: the number of
// clicks recorded for a (type, label) pair.
type ClickStat struct {
	ButtonType  string `json:"buttonType"`
	ButtonLabel string `json:"buttonLabel"`
	Count       int    `json:"count"`
}
