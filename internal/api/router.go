package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayush179959/DocuFlow/internal/docservice"
	"github.com/ayush179959/DocuFlow/internal/sse"
	"github.com/ayush179959/DocuFlow/internal/store"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// broker, if non-nil, is mounted at GET /events inside the auth group and
// receives catalog mutation events from the handlers.
func NewRouter(catalog store.Catalog, svc *docservice.Service, authEnabled bool, token string, broker *sse.Broker) chi.Router {
	h := NewHandler(catalog, svc, broker)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Templates CRUD.
	r.Get("/templates", h.ListTemplates)
	r.Post("/templates", h.CreateTemplate)
	r.Get("/templates/{id}", h.GetTemplate)
	r.Put("/templates/{id}", h.UpdateTemplate)
	r.Delete("/templates/{id}", h.DeleteTemplate)

	// Products CRUD.
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Get("/products/{id}", h.GetProduct)
	r.Put("/products/{id}", h.UpdateProduct)
	r.Delete("/products/{id}", h.DeleteProduct)

	// Signatures CRUD.
	r.Get("/signatures", h.ListSignatures)
	r.Post("/signatures", h.CreateSignature)
	r.Get("/signatures/{id}", h.GetSignature)
	r.Put("/signatures/{id}", h.UpdateSignature)
	r.Delete("/signatures/{id}", h.DeleteSignature)

	// Documents CRUD + workflow.
	r.Get("/documents", h.ListDocuments)
	r.Post("/documents/compose", h.Compose)
	r.Post("/documents/build", h.Build)
	r.Get("/documents/{id}", h.GetDocument)
	r.Put("/documents/{id}", h.UpdateDocument)
	r.Delete("/documents/{id}", h.DeleteDocument)
	r.Post("/documents/{id}/send", h.SendForApproval)
	r.Post("/documents/{id}/approve", h.Approve)
	r.Post("/documents/{id}/save-as-template", h.SaveAsTemplate)
	r.Get("/documents/{id}/export", h.Export)

	// Folders.
	r.Get("/folders", h.ListFolders)

	// SSE endpoint (protected by same auth middleware).
	if broker != nil {
		r.Get("/events", http.HandlerFunc(broker.ServeHTTP))
	}

	return r
}
