// Package models defines the domain types for DocuFlow.
package models

import "time"

// Document statuses.
const (
	StatusDraft           = "draft"
	StatusPending         = "pending"
	StatusSentForApproval = "sent_for_approval"
	StatusApproved        = "approved"
)

// ValidStatus reports whether s is a known document status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusSentForApproval, StatusApproved:
		return true
	}
	return false
}

// Template is a reusable content skeleton with embedded placeholder tokens.
type Template struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Preview     string    `json:"preview"`
	IsImportant bool      `json:"is_important"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is a priced catalog entry available for inclusion in a document.
// Price is free-form display text (e.g. "$299/month"); the merge pipeline
// extracts the numeric portion when computing totals.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Use         string    `json:"use"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Signature is a stored signature image. ImageData holds an opaque encoded
// payload (typically a data URL) produced by the capture surface.
type Signature struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Preview   string    `json:"preview"`
	ImageData string    `json:"image_data,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is a finished (or in-progress) authored document. Content holds
// the merged text; Value the computed monetary total of the selected products.
type Document struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	Value       string    `json:"value"`
	IsImportant bool      `json:"is_important"`
	Folder      string    `json:"folder"`
	Content     string    `json:"content"`
	TemplateID  *int64    `json:"template_id,omitempty"`
	ProductIDs  []int64   `json:"product_ids"`
	SignatureID *int64    `json:"signature_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Folder is a document grouping with a live count.
type Folder struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TemplatePatch carries partial updates to a template. Nil fields are left
// untouched.
type TemplatePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Preview     *string `json:"preview,omitempty"`
	IsImportant *bool   `json:"is_important,omitempty"`
	Content     *string `json:"content,omitempty"`
}

// ProductPatch carries partial updates to a product.
type ProductPatch struct {
	Name        *string `json:"name,omitempty"`
	Use         *string `json:"use,omitempty"`
	Price       *string `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SignaturePatch carries partial updates to a signature.
type SignaturePatch struct {
	Name      *string `json:"name,omitempty"`
	Type      *string `json:"type,omitempty"`
	Preview   *string `json:"preview,omitempty"`
	ImageData *string `json:"image_data,omitempty"`
}

// DocumentPatch carries partial updates to a document.
type DocumentPatch struct {
	Title       *string  `json:"title,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Value       *string  `json:"value,omitempty"`
	IsImportant *bool    `json:"is_important,omitempty"`
	Folder      *string  `json:"folder,omitempty"`
	Content     *string  `json:"content,omitempty"`
	ProductIDs  *[]int64 `json:"product_ids,omitempty"`
	SignatureID *int64   `json:"signature_id,omitempty"`
}
