package api

import (
	"net/http"

	"github.com/ignite/campaign-chat/internal/pkg/httputil"
	"github.com/ignite/campaign-chat/internal/service/campaign"
	"github.com/ignite/campaign-chat/internal/service/datasource"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	sources *datasource.Service
	chat    *campaign.Service
}

// NewHandlers creates a new Handlers instance
func NewHandlers(sources *datasource.Service, chat *campaign.Service) *Handlers {
	return &Handlers{
		sources: sources,
		chat:    chat,
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	httputil.JSON(w, status, data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	httputil.Error(w, status, message)
}
