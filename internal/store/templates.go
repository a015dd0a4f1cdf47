package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ayush179959/DocuFlow/internal/apperr"
	"github.com/ayush179959/DocuFlow/internal/models"
)

// CreateTemplate inserts a template and returns it with its assigned id.
func (db *DB) CreateTemplate(t models.Template) (models.Template, error) {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	res, err := db.conn.Exec(`
		INSERT INTO templates (name, description, category, preview, is_important, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.Name, t.Description, t.Category, t.Preview, t.IsImportant, t.Content, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return models.Template{}, fmt.Errorf("store: create template: %w", err)
	}
	t.ID, _ = res.LastInsertId()
	return t, nil
}

// GetTemplate returns the template with the given id.
func (db *DB) GetTemplate(id int64) (models.Template, error) {
	row := db.conn.QueryRow(`
		SELECT id, name, description, category, preview, is_important, content, created_at, updated_at
		FROM templates WHERE id = ?
	`, id)
	return scanTemplate(row)
}

// ListTemplates returns all templates in insertion order.
func (db *DB) ListTemplates() ([]models.Template, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, description, category, preview, is_important, content, created_at, updated_at
		FROM templates ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list templates: %w", err)
	}
	defer rows.Close()

	var out []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTemplate applies a partial update and returns the updated row.
func (db *DB) UpdateTemplate(id int64, p models.TemplatePatch) (models.Template, error) {
	t, err := db.GetTemplate(id)
	if err != nil {
		return models.Template{}, err
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Preview != nil {
		t.Preview = *p.Preview
	}
	if p.IsImportant != nil {
		t.IsImportant = *p.IsImportant
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	t.UpdatedAt = time.Now().UTC()

	_, err = db.conn.Exec(`
		UPDATE templates SET name = ?, description = ?, category = ?, preview = ?,
			is_important = ?, content = ?, updated_at = ?
		WHERE id = ?
	`, t.Name, t.Description, t.Category, t.Preview, t.IsImportant, t.Content, t.UpdatedAt, id)
	if err != nil {
		return models.Template{}, fmt.Errorf("store: update template: %w", err)
	}
	return t, nil
}

// DeleteTemplate removes a template.
func (db *DB) DeleteTemplate(id int64) error {
	res, err := db.conn.Exec(`DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete template: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// UpsertTemplateByName inserts the template, or replaces the content and
// metadata of the existing template with the same name. Used by the
// templates-directory sync, where the file name is the identity.
func (db *DB) UpsertTemplateByName(t models.Template) (models.Template, error) {
	var existingID int64
	err := db.conn.QueryRow(`SELECT id FROM templates WHERE name = ?`, t.Name).Scan(&existingID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return db.CreateTemplate(t)
	case err != nil:
		return models.Template{}, fmt.Errorf("store: upsert template: %w", err)
	}
	return db.UpdateTemplate(existingID, models.TemplatePatch{
		Description: &t.Description,
		Category:    &t.Category,
		Content:     &t.Content,
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(r rowScanner) (models.Template, error) {
	var t models.Template
	err := r.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.Preview,
		&t.IsImportant, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Template{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Template{}, fmt.Errorf("store: scan template: %w", err)
	}
	return t, nil
}
