package api

import (
	"net/http"

	"github.com/ayush179959/DocuFlow/internal/models"
)

// ListTemplates handles GET /templates.
func (h *Handler) ListTemplates(w http.ResponseWriter, _ *http.Request) {
	templates, err := h.catalog.ListTemplates()
	if err != nil {
		writeStoreErr(w, "list templates", err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	writeJSON(w, http.StatusOK, TemplateListResponse{Templates: templates, Total: len(templates)})
}

// GetTemplate handles GET /templates/{id}.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	tpl, err := h.catalog.GetTemplate(id)
	if err != nil {
		writeStoreErr(w, "get template", err)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

// CreateTemplate handles POST /templates.
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	tpl, err := h.catalog.CreateTemplate(models.Template{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Preview:     req.Preview,
		IsImportant: req.IsImportant,
		Content:     req.Content,
	})
	if err != nil {
		writeStoreErr(w, "create template", err)
		return
	}
	h.notify("template", "created", tpl.ID)
	writeJSON(w, http.StatusCreated, tpl)
}

// UpdateTemplate handles PUT /templates/{id} with partial-update semantics.
func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	var patch models.TemplatePatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	tpl, err := h.catalog.UpdateTemplate(id, patch)
	if err != nil {
		writeStoreErr(w, "update template", err)
		return
	}
	h.notify("template", "updated", id)
	writeJSON(w, http.StatusOK, tpl)
}

// DeleteTemplate handles DELETE /templates/{id}.
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	if err := h.catalog.DeleteTemplate(id); err != nil {
		writeStoreErr(w, "delete template", err)
		return
	}
	h.notify("template", "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
