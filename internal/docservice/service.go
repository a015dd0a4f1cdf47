// Package docservice coordinates the catalog store and the merge pipeline.
package docservice

import (
	"context"
	"fmt"
	"time"

	"github.com/ayush179959/DocuFlow/internal/apperr"
	"github.com/ayush179959/DocuFlow/internal/export"
	"github.com/ayush179959/DocuFlow/internal/merge"
	"github.com/ayush179959/DocuFlow/internal/models"
	"github.com/ayush179959/DocuFlow/internal/money"
	"github.com/ayush179959/DocuFlow/internal/sections"
	"github.com/ayush179959/DocuFlow/internal/store"
)

// Service implements document composition on top of the catalog store.
type Service struct {
	catalog store.Catalog
	now     func() time.Time
}

// NewService creates a new document service.
func NewService(catalog store.Catalog) *Service {
	return &Service{catalog: catalog, now: time.Now}
}

// WithClock overrides the wall clock, used by tests to pin time-derived
// placeholder values.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Compose merges the template with the selected products and signature and
// persists the result as a draft document. Unknown product ids are skipped;
// the document value is the subtotal of the selected products without tax.
func (s *Service) Compose(_ context.Context, templateID int64, productIDs []int64, signatureID *int64) (models.Document, error) {
	tpl, err := s.catalog.GetTemplate(templateID)
	if err != nil {
		return models.Document{}, fmt.Errorf("compose: template %d: %w", templateID, err)
	}

	items := make([]merge.LineItem, 0, len(productIDs))
	prices := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		p, err := s.catalog.GetProduct(id)
		if err != nil {
			continue
		}
		items = append(items, merge.LineItem{
			Name:     p.Name,
			Usage:    p.Use,
			Price:    p.Price,
			Category: p.Category,
		})
		prices = append(prices, p.Price)
	}

	var sig *merge.SignatureRef
	if signatureID != nil {
		sg, err := s.catalog.GetSignature(*signatureID)
		if err != nil {
			return models.Document{}, fmt.Errorf("compose: signature %d: %w", *signatureID, err)
		}
		sig = &merge.SignatureRef{Name: sg.Name, ImageData: sg.ImageData}
	}

	now := s.now()
	content := merge.Resolve(tpl.Content, items, sig, now)

	value := "$0"
	if len(prices) > 0 {
		value = money.Format(money.Subtotal(prices))
	}

	doc := models.Document{
		Title:       fmt.Sprintf("Document %d", now.UnixMilli()),
		Status:      models.StatusDraft,
		Value:       value,
		Folder:      "General",
		Content:     content,
		TemplateID:  &tpl.ID,
		ProductIDs:  productIDs,
		SignatureID: signatureID,
	}
	return s.catalog.CreateDocument(doc)
}

// SaveFromSections flattens a section model into a draft document.
func (s *Service) SaveFromSections(_ context.Context, title, folder string, m *sections.Model) (models.Document, error) {
	if title == "" {
		title = fmt.Sprintf("Document %d", s.now().UnixMilli())
	}
	doc := models.Document{
		Title:      title,
		Status:     models.StatusDraft,
		Value:      "$0",
		Folder:     folder,
		Content:    m.Flatten(),
		ProductIDs: []int64{},
	}
	return s.catalog.CreateDocument(doc)
}

// SaveAsTemplate stores finished content as a reusable template.
func (s *Service) SaveAsTemplate(_ context.Context, name, description, category, content string) (models.Template, error) {
	return s.catalog.CreateTemplate(models.Template{
		Name:        name,
		Description: description,
		Category:    category,
		Preview:     "/placeholder.svg?height=200&width=300",
		Content:     content,
	})
}

// SendForApproval moves a draft or pending document into review.
func (s *Service) SendForApproval(_ context.Context, id int64) (models.Document, error) {
	doc, err := s.catalog.GetDocument(id)
	if err != nil {
		return models.Document{}, err
	}
	if doc.Status != models.StatusDraft && doc.Status != models.StatusPending {
		return models.Document{}, fmt.Errorf("send for approval from %q: %w", doc.Status, apperr.ErrInvalidTransition)
	}
	status := models.StatusSentForApproval
	return s.catalog.UpdateDocument(id, models.DocumentPatch{Status: &status})
}

// Approve marks a document sent for approval as approved.
func (s *Service) Approve(_ context.Context, id int64) (models.Document, error) {
	doc, err := s.catalog.GetDocument(id)
	if err != nil {
		return models.Document{}, err
	}
	if doc.Status != models.StatusSentForApproval {
		return models.Document{}, fmt.Errorf("approve from %q: %w", doc.Status, apperr.ErrInvalidTransition)
	}
	status := models.StatusApproved
	return s.catalog.UpdateDocument(id, models.DocumentPatch{Status: &status})
}

// ExportResult is an encoded document ready for download.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Export encodes the document's finished content in the given format.
func (s *Service) Export(_ context.Context, id int64, format string) (ExportResult, error) {
	doc, err := s.catalog.GetDocument(id)
	if err != nil {
		return ExportResult{}, err
	}
	enc, err := export.ForFormat(format)
	if err != nil {
		return ExportResult{}, err
	}
	data, err := enc.Encode(doc.Content)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Data:        data,
		ContentType: enc.ContentType(),
		Filename:    "document" + enc.Extension(),
	}, nil
}
