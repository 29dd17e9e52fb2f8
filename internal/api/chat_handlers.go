package api

import (
	"errors"
	"net/http"

	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/pkg/httputil"
	"github.com/ignite/campaign-chat/internal/pkg/validation"
)

// ChatContext carries client state alongside a chat message. Unknown keys
// are ignored. connected_sources is restricted to the connector ids served
// by /api/data-sources; any other id is rejected with 422 rather than
// counted toward confidence. Duplicates are collapsed.
type ChatContext struct {
	ConnectedSources []domain.SourceID `json:"connected_sources" validate:"omitempty,dive,oneof=google_ads shopify facebook_page"`
}

// ChatRequest is the body of POST /api/chat/message. The message must be
// present but may be empty.
type ChatRequest struct {
	Message *string      `json:"message" validate:"required"`
	Context *ChatContext `json:"context" validate:"required"`
}

// HandleChatMessage answers a chat message with campaign recommendations.
//
//	POST /api/chat/message
func (h *Handlers) HandleChatMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	sources := domain.NewSourceSet(req.Context.ConnectedSources...)
	rec, err := h.chat.Recommend(r.Context(), *req.Message, sources)
	if err != nil {
		respondSafeError(w, http.StatusServiceUnavailable, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func respondValidationError(w http.ResponseWriter, err error) {
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		httputil.BadRequest(w, err.Error())
		return
	}
	httputil.JSON(w, http.StatusUnprocessableEntity, httputil.ErrorResponse{
		Detail:  verr.Error(),
		Code:    "VALIDATION_ERROR",
		Details: verr.Fields,
	})
}
