package api

import (
	"fmt"
	"net/http"

	"github.com/ayush179959/DocuFlow/internal/export"
	"github.com/ayush179959/DocuFlow/internal/models"
	"github.com/ayush179959/DocuFlow/internal/sections"
)

// ListDocuments handles GET /documents with an optional ?folder= filter.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.catalog.ListDocuments(r.URL.Query().Get("folder"))
	if err != nil {
		writeStoreErr(w, "list documents", err)
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}
	writeJSON(w, http.StatusOK, DocumentListResponse{Documents: docs, Total: len(docs)})
}

// GetDocument handles GET /documents/{id}.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	doc, err := h.catalog.GetDocument(id)
	if err != nil {
		writeStoreErr(w, "get document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Compose handles POST /documents/compose: merge a template with selected
// products and an optional signature into a new draft document.
func (h *Handler) Compose(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	doc, err := h.svc.Compose(r.Context(), req.TemplateID, req.ProductIDs, req.SignatureID)
	if err != nil {
		writeStoreErr(w, "compose document", err)
		return
	}
	h.notify("document", "created", doc.ID)
	writeJSON(w, http.StatusCreated, doc)
}

// Build handles POST /documents/build: flatten free-form sections into a new
// draft document.
func (h *Handler) Build(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	var m sections.Model
	for _, in := range req.Sections {
		s := m.Add(in.Kind)
		patch := sections.Patch{Body: &in.Body}
		if in.Title != "" {
			patch.Title = &in.Title
		}
		patch.WidthPercent = in.WidthPercent
		patch.HeightPixels = in.HeightPixels
		m.Update(s.ID, patch)
	}

	doc, err := h.svc.SaveFromSections(r.Context(), req.Title, req.Folder, &m)
	if err != nil {
		writeStoreErr(w, "build document", err)
		return
	}
	h.notify("document", "created", doc.ID)
	writeJSON(w, http.StatusCreated, doc)
}

// UpdateDocument handles PUT /documents/{id} with partial-update semantics.
func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	var patch models.DocumentPatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("unknown status %q", *patch.Status)))
		return
	}
	doc, err := h.catalog.UpdateDocument(id, patch)
	if err != nil {
		writeStoreErr(w, "update document", err)
		return
	}
	h.notify("document", "updated", id)
	writeJSON(w, http.StatusOK, doc)
}

// DeleteDocument handles DELETE /documents/{id}.
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	if err := h.catalog.DeleteDocument(id); err != nil {
		writeStoreErr(w, "delete document", err)
		return
	}
	h.notify("document", "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// SendForApproval handles POST /documents/{id}/send.
func (h *Handler) SendForApproval(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	doc, err := h.svc.SendForApproval(r.Context(), id)
	if err != nil {
		writeStoreErr(w, "send for approval", err)
		return
	}
	h.notify("document", "updated", id)
	writeJSON(w, http.StatusOK, doc)
}

// Approve handles POST /documents/{id}/approve.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	doc, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		writeStoreErr(w, "approve document", err)
		return
	}
	h.notify("document", "updated", id)
	writeJSON(w, http.StatusOK, doc)
}

// SaveAsTemplate handles POST /documents/{id}/save-as-template.
func (h *Handler) SaveAsTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	var req SaveAsTemplateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	doc, err := h.catalog.GetDocument(id)
	if err != nil {
		writeStoreErr(w, "save as template", err)
		return
	}
	tpl, err := h.svc.SaveAsTemplate(r.Context(), req.Name, req.Description, req.Category, doc.Content)
	if err != nil {
		writeStoreErr(w, "save as template", err)
		return
	}
	h.notify("template", "created", tpl.ID)
	writeJSON(w, http.StatusCreated, tpl)
}

// Export handles GET /documents/{id}/export?format=. The finished content is
// encoded by the format's encoder and returned as a download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "txt"
	}
	if _, err := export.ForFormat(format); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	res, err := h.svc.Export(r.Context(), id, format)
	if err != nil {
		writeStoreErr(w, "export document", err)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}
