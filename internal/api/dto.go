package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ayush179959/DocuFlow/internal/models"
	"github.com/ayush179959/DocuFlow/internal/sections"
)

// CreateTemplateRequest is the request body for creating a template.
type CreateTemplateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Preview     string `json:"preview"`
	IsImportant bool   `json:"is_important"`
	Content     string `json:"content"`
}

// Validate validates the request.
func (r CreateTemplateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

// CreateProductRequest is the request body for creating a product.
// Name and price are required, matching the catalog entry form.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Use         string `json:"use"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Validate validates the request.
func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.Required),
	)
}

// CreateSignatureRequest is the request body for creating a signature.
type CreateSignatureRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Preview   string `json:"preview"`
	ImageData string `json:"image_data"`
}

// Validate validates the request.
func (r CreateSignatureRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// ComposeRequest selects the inputs for document composition.
type ComposeRequest struct {
	TemplateID  int64   `json:"template_id"`
	ProductIDs  []int64 `json:"product_ids"`
	SignatureID *int64  `json:"signature_id,omitempty"`
}

// Validate validates the request.
func (r ComposeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TemplateID, validation.Required),
	)
}

// SectionInput is one block in a build-from-sections request.
type SectionInput struct {
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	WidthPercent *int   `json:"width_percent,omitempty"`
	HeightPixels *int   `json:"height_pixels,omitempty"`
}

// Validate validates the section.
func (s SectionInput) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Kind, validation.Required, validation.In(
			sections.KindText, sections.KindTable, sections.KindImage, sections.KindSignature)),
	)
}

// BuildRequest creates a document from free-form sections.
type BuildRequest struct {
	Title    string         `json:"title"`
	Folder   string         `json:"folder"`
	Sections []SectionInput `json:"sections"`
}

// Validate validates the request and each section.
func (r BuildRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Sections, validation.Required),
	); err != nil {
		return err
	}
	for _, s := range r.Sections {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SaveAsTemplateRequest stores a document's content as a reusable template.
type SaveAsTemplateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Validate validates the request.
func (r SaveAsTemplateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// TemplateListResponse wraps template listings.
type TemplateListResponse struct {
	Templates []models.Template `json:"templates"`
	Total     int               `json:"total"`
}

// ProductListResponse wraps product listings.
type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

// SignatureListResponse wraps signature listings.
type SignatureListResponse struct {
	Signatures []models.Signature `json:"signatures"`
	Total      int                `json:"total"`
}

// DocumentListResponse wraps document listings.
type DocumentListResponse struct {
	Documents []models.Document `json:"documents"`
	Total     int               `json:"total"`
}

// FolderListResponse wraps folder listings.
type FolderListResponse struct {
	Folders []models.Folder `json:"folders"`
}
