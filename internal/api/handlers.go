package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ayush179959/DocuFlow/internal/apperr"
	"github.com/ayush179959/DocuFlow/internal/docservice"
	"github.com/ayush179959/DocuFlow/internal/models"
	"github.com/ayush179959/DocuFlow/internal/sse"
	"github.com/ayush179959/DocuFlow/internal/store"
)

// Handler holds API route handlers.
type Handler struct {
	catalog store.Catalog
	svc     *docservice.Service
	broker  *sse.Broker
}

// NewHandler creates a new Handler. broker may be nil (no event stream).
func NewHandler(catalog store.Catalog, svc *docservice.Service, broker *sse.Broker) *Handler {
	return &Handler{catalog: catalog, svc: svc, broker: broker}
}

// idParam extracts the numeric {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeBody decodes a JSON request body with a size cap.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	return json.NewDecoder(r.Body).Decode(v)
}

// notify publishes a catalog mutation event when a broker is attached.
func (h *Handler) notify(entity, action string, id int64) {
	if h.broker != nil {
		h.broker.PublishCatalogEvent(entity, action, id)
	}
}

// writeStoreErr maps store errors onto HTTP responses.
func writeStoreErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// ListFolders handles GET /folders.
func (h *Handler) ListFolders(w http.ResponseWriter, _ *http.Request) {
	folders, err := h.catalog.ListFolders()
	if err != nil {
		writeStoreErr(w, "list folders", err)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}
	writeJSON(w, http.StatusOK, FolderListResponse{Folders: folders})
}
