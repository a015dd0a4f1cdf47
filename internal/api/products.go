package api

import (
	"net/http"

	"github.com/ayush179959/DocuFlow/internal/models"
)

// ListProducts handles GET /products.
func (h *Handler) ListProducts(w http.ResponseWriter, _ *http.Request) {
	products, err := h.catalog.ListProducts()
	if err != nil {
		writeStoreErr(w, "list products", err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, ProductListResponse{Products: products, Total: len(products)})
}

// GetProduct handles GET /products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	p, err := h.catalog.GetProduct(id)
	if err != nil {
		writeStoreErr(w, "get product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	p, err := h.catalog.CreateProduct(models.Product{
		Name:        req.Name,
		Use:         req.Use,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		writeStoreErr(w, "create product", err)
		return
	}
	h.notify("product", "created", p.ID)
	writeJSON(w, http.StatusCreated, p)
}

// UpdateProduct handles PUT /products/{id} with partial-update semantics.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	var patch models.ProductPatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	p, err := h.catalog.UpdateProduct(id, patch)
	if err != nil {
		writeStoreErr(w, "update product", err)
		return
	}
	h.notify("product", "updated", id)
	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct handles DELETE /products/{id}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid id"))
		return
	}
	if err := h.catalog.DeleteProduct(id); err != nil {
		writeStoreErr(w, "delete product", err)
		return
	}
	h.notify("product", "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
