// Package handlers is the action boundary: it wraps domain services and
// classifies errors into user-visible messages so no action crashes the
// process.
package handlers

import (
	"context"

	"github.com/herodex/herodex/internal/domain/services"
)

// CreateHandler handles the create-hero action.
type CreateHandler struct {
	roster *services.RosterService
}

// NewCreateHandler creates a new create handler.
func NewCreateHandler(roster *services.RosterService) *CreateHandler {
	return &CreateHandler{
		roster: roster,
	}
}

// Handle creates a new hero. The returned result may carry a non-fatal
// ImageWarning when the portrait could not be attached.
func (h *CreateHandler) Handle(ctx context.Context) (*services.CreateResult, error) {
	return h.roster.Create(ctx)
}
