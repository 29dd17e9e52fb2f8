package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/pkg/httputil"
	"github.com/ignite/campaign-chat/internal/service/datasource"
)

const dataSourceNotFound = "Data source not found"

// DataSourcesResponse is the body of GET /api/data-sources.
type DataSourcesResponse struct {
	Sources []domain.DataSource `json:"sources"`
}

// ConnectRequest is the optional body of a connect call.
type ConnectRequest struct {
	Credentials map[string]interface{} `json:"credentials,omitempty"`
}

// HandleListDataSources returns every connector and its state.
//
//	GET /api/data-sources
func (h *Handlers) HandleListDataSources(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataSourcesResponse{Sources: h.sources.List()})
}

// HandleConnectDataSource simulates connecting a connector.
//
//	POST /api/data-sources/{sourceID}/connect
func (h *Handlers) HandleConnectDataSource(w http.ResponseWriter, r *http.Request) {
	id := domain.SourceID(chi.URLParam(r, "sourceID"))

	var req ConnectRequest
	if !httputil.DecodeOptional(w, r, &req) {
		return
	}

	res, err := h.sources.Connect(r.Context(), id, req.Credentials)
	if err != nil {
		h.respondDataSourceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleDisconnectDataSource resets a connector.
//
//	DELETE /api/data-sources/{sourceID}/disconnect
func (h *Handlers) HandleDisconnectDataSource(w http.ResponseWriter, r *http.Request) {
	id := domain.SourceID(chi.URLParam(r, "sourceID"))

	res, err := h.sources.Disconnect(id)
	if err != nil {
		h.respondDataSourceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *Handlers) respondDataSourceError(w http.ResponseWriter, err error) {
	if errors.Is(err, datasource.ErrNotFound) {
		httputil.NotFound(w, dataSourceNotFound)
		return
	}
	respondSafeError(w, http.StatusInternalServerError, err)
}
