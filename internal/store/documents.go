package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ayush179959/DocuFlow/internal/apperr"
	"github.com/ayush179959/DocuFlow/internal/models"
)

// CreateDocument inserts a document and returns it with its assigned id.
func (db *DB) CreateDocument(d models.Document) (models.Document, error) {
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	if d.Status == "" {
		d.Status = models.StatusDraft
	}
	if d.Folder == "" {
		d.Folder = "General"
	}
	idsJSON, _ := json.Marshal(nonNilIDs(d.ProductIDs))

	res, err := db.conn.Exec(`
		INSERT INTO documents (title, status, value, is_important, folder, content,
			template_id, product_ids, signature_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, d.Title, d.Status, d.Value, d.IsImportant, d.Folder, d.Content,
		d.TemplateID, string(idsJSON), d.SignatureID, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return models.Document{}, fmt.Errorf("store: create document: %w", err)
	}
	d.ID, _ = res.LastInsertId()
	d.ProductIDs = nonNilIDs(d.ProductIDs)
	return d, nil
}

// GetDocument returns the document with the given id.
func (db *DB) GetDocument(id int64) (models.Document, error) {
	row := db.conn.QueryRow(`
		SELECT id, title, status, value, is_important, folder, content,
			template_id, product_ids, signature_id, created_at, updated_at
		FROM documents WHERE id = ?
	`, id)
	return scanDocument(row)
}

// ListDocuments returns documents in insertion order, optionally filtered by
// folder (empty string means all).
func (db *DB) ListDocuments(folder string) ([]models.Document, error) {
	query := `
		SELECT id, title, status, value, is_important, folder, content,
			template_id, product_ids, signature_id, created_at, updated_at
		FROM documents`
	var args []any
	if folder != "" {
		query += ` WHERE folder = ?`
		args = append(args, folder)
	}
	query += ` ORDER BY id`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list documents: %w", err)
	}
	defer rows.Close()

	var out []models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateDocument applies a partial update and returns the updated row.
func (db *DB) UpdateDocument(id int64, patch models.DocumentPatch) (models.Document, error) {
	d, err := db.GetDocument(id)
	if err != nil {
		return models.Document{}, err
	}
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.Value != nil {
		d.Value = *patch.Value
	}
	if patch.IsImportant != nil {
		d.IsImportant = *patch.IsImportant
	}
	if patch.Folder != nil {
		d.Folder = *patch.Folder
	}
	if patch.Content != nil {
		d.Content = *patch.Content
	}
	if patch.ProductIDs != nil {
		d.ProductIDs = nonNilIDs(*patch.ProductIDs)
	}
	if patch.SignatureID != nil {
		d.SignatureID = patch.SignatureID
	}
	d.UpdatedAt = time.Now().UTC()

	idsJSON, _ := json.Marshal(nonNilIDs(d.ProductIDs))
	_, err = db.conn.Exec(`
		UPDATE documents SET title = ?, status = ?, value = ?, is_important = ?,
			folder = ?, content = ?, product_ids = ?, signature_id = ?, updated_at = ?
		WHERE id = ?
	`, d.Title, d.Status, d.Value, d.IsImportant, d.Folder, d.Content,
		string(idsJSON), d.SignatureID, d.UpdatedAt, id)
	if err != nil {
		return models.Document{}, fmt.Errorf("store: update document: %w", err)
	}
	return d, nil
}

// DeleteDocument removes a document.
func (db *DB) DeleteDocument(id int64) error {
	res, err := db.conn.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// ListFolders returns distinct document folders with their counts.
func (db *DB) ListFolders() ([]models.Folder, error) {
	rows, err := db.conn.Query(`
		SELECT folder, COUNT(*) FROM documents GROUP BY folder ORDER BY folder
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list folders: %w", err)
	}
	defer rows.Close()

	var out []models.Folder
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.Name, &f.Count); err != nil {
			return nil, fmt.Errorf("store: scan folder: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanDocument(r rowScanner) (models.Document, error) {
	var (
		d       models.Document
		idsJSON string
	)
	err := r.Scan(&d.ID, &d.Title, &d.Status, &d.Value, &d.IsImportant, &d.Folder,
		&d.Content, &d.TemplateID, &idsJSON, &d.SignatureID, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("store: scan document: %w", err)
	}
	if err := json.Unmarshal([]byte(idsJSON), &d.ProductIDs); err != nil {
		d.ProductIDs = []int64{}
	}
	d.ProductIDs = nonNilIDs(d.ProductIDs)
	return d, nil
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
