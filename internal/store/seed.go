package store

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayush179959/DocuFlow/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// seedData mirrors the embedded sample catalog.
type seedData struct {
	Templates []struct {
		Name        string    `yaml:"name"`
		Description string    `yaml:"description"`
		Category    string    `yaml:"category"`
		Preview     string    `yaml:"preview"`
		IsImportant bool      `yaml:"is_important"`
		Content     string    `yaml:"content"`
		CreatedAt   time.Time `yaml:"created_at"`
		UpdatedAt   time.Time `yaml:"updated_at"`
	} `yaml:"templates"`
	Products []struct {
		Name        string    `yaml:"name"`
		Use         string    `yaml:"use"`
		Price       string    `yaml:"price"`
		Category    string    `yaml:"category"`
		Description string    `yaml:"description"`
		CreatedAt   time.Time `yaml:"created_at"`
		UpdatedAt   time.Time `yaml:"updated_at"`
	} `yaml:"products"`
	Signatures []struct {
		Name      string    `yaml:"name"`
		Type      string    `yaml:"type"`
		Preview   string    `yaml:"preview"`
		ImageData string    `yaml:"image_data"`
		CreatedAt time.Time `yaml:"created_at"`
		UpdatedAt time.Time `yaml:"updated_at"`
	} `yaml:"signatures"`
	Documents []struct {
		Title       string    `yaml:"title"`
		Status      string    `yaml:"status"`
		Value       string    `yaml:"value"`
		IsImportant bool      `yaml:"is_important"`
		Folder      string    `yaml:"folder"`
		Content     string    `yaml:"content"`
		TemplateID  *int64    `yaml:"template_id"`
		ProductIDs  []int64   `yaml:"product_ids"`
		SignatureID *int64    `yaml:"signature_id"`
		CreatedAt   time.Time `yaml:"created_at"`
		UpdatedAt   time.Time `yaml:"updated_at"`
	} `yaml:"documents"`
}

// Seed loads the embedded sample catalog into the database. Intended for the
// in-memory store, where every startup begins from the same dataset. Insert
// order assigns ids 1..n per table, which the sample documents rely on for
// their template/product/signature references.
func Seed(db *DB) error {
	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return fmt.Errorf("store: parse seed data: %w", err)
	}

	for _, t := range data.Templates {
		if _, err := db.CreateTemplate(models.Template{
			Name:        t.Name,
			Description: t.Description,
			Category:    t.Category,
			Preview:     t.Preview,
			IsImportant: t.IsImportant,
			Content:     t.Content,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}); err != nil {
			return err
		}
	}
	for _, p := range data.Products {
		if _, err := db.CreateProduct(models.Product{
			Name:        p.Name,
			Use:         p.Use,
			Price:       p.Price,
			Category:    p.Category,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}); err != nil {
			return err
		}
	}
	for _, s := range data.Signatures {
		if _, err := db.CreateSignature(models.Signature{
			Name:      s.Name,
			Type:      s.Type,
			Preview:   s.Preview,
			ImageData: s.ImageData,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		}); err != nil {
			return err
		}
	}
	for _, d := range data.Documents {
		if _, err := db.CreateDocument(models.Document{
			Title:       d.Title,
			Status:      d.Status,
			Value:       d.Value,
			IsImportant: d.IsImportant,
			Folder:      d.Folder,
			Content:     d.Content,
			TemplateID:  d.TemplateID,
			ProductIDs:  d.ProductIDs,
			SignatureID: d.SignatureID,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		}); err != nil {
			return err
		}
	}
	return nil
}
