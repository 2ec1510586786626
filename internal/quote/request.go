// Package quote delivers submitted quote requests to operator-chosen sinks.
package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

// Request is one submitted quote request.
type Request struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"session_id"`
	SubmittedAt time.Time    `json:"submitted_at"`
	RemoteAddr  string       `json:"remote_addr,omitempty"`
	UserAgent   string       `json:"user_agent,omitempty"`
	Draft       wizard.Draft `json:"draft"`
}

// NewRequest stamps a draft with an ID and submission time.
func NewRequest(sessionID string, draft wizard.Draft, at time.Time) Request {
	return Request{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		SubmittedAt: at.UTC(),
		Draft:       draft.Clone(),
	}
}
