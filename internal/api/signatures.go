package api

import (
	"net/http"

	"github.com/ayush179959/DocuFlow/internal/models"
)

// ListSignatures handles GET /signatures.
func (h *Handler) ListSignatures(w http.ResponseWriter, _ *http.Request) {
	sigs, err := h.catalog.ListSignatures()
	if err != nil {
		writeStoreErr(w, "list signatures", err)
		return
	}
	if sigs == nil {
		sigs = []models.Signature{}
	}
	writeJSON(w, http.StatusOK, SignatureListResponse{Signatures: sigs, Total: len(sigs)})
}

// GetSignature handles GET /signatures/{id}.
func (h *Handler) GetSignature(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	s, err := h.catalog.GetSignature(id)
	if err != nil {
		writeStoreErr(w, "get signature", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// CreateSignature handles POST /signatures. The image payload arrives
// already encoded from the capture surface.
func (h *Handler) CreateSignature(w http.ResponseWriter, r *http.Request) {
	var req CreateSignatureRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	sigType := req.Type
	if sigType == "" {
		sigType = "Handwritten"
	}
	preview := req.Preview
	if preview == "" {
		preview = req.ImageData
	}
	s, err := h.catalog.CreateSignature(models.Signature{
		Name:      req.Name,
		Type:      sigType,
		Preview:   preview,
		ImageData: req.ImageData,
	})
	if err != nil {
		writeStoreErr(w, "create signature", err)
		return
	}
	h.notify("signature", "created", s.ID)
	writeJSON(w, http.StatusCreated, s)
}

// UpdateSignature handles PUT /signatures/{id} with partial-update semantics.
func (h *Handler) UpdateSignature(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	var patch models.SignaturePatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	s, err := h.catalog.UpdateSignature(id, patch)
	if err != nil {
		writeStoreErr(w, "update signature", err)
		return
	}
	h.notify("signature", "updated", id)
	writeJSON(w, http.StatusOK, s)
}

// DeleteSignature handles DELETE /signatures/{id}.
func (h *Handler) DeleteSignature(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	if err := h.catalog.DeleteSignature(id); err != nil {
		writeStoreErr(w, "delete signature", err)
		return
	}
	h.notify("signature", "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
