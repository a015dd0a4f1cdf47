package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ayush179959/DocuFlow/internal/apperr"
	"github.com/ayush179959/DocuFlow/internal/models"
)

// CreateSignature inserts a signature and returns it with its assigned id.
func (db *DB) CreateSignature(s models.Signature) (models.Signature, error) {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
	res, err := db.conn.Exec(`
		INSERT INTO signatures (name, type, preview, image_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.Name, s.Type, s.Preview, s.ImageData, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return models.Signature{}, fmt.Errorf("store: create signature: %w", err)
	}
	s.ID, _ = res.LastInsertId()
	return s, nil
}

// GetSignature returns the signature with the given id.
func (db *DB) GetSignature(id int64) (models.Signature, error) {
	row := db.conn.QueryRow(`
		SELECT id, name, type, preview, image_data, created_at, updated_at
		FROM signatures WHERE id = ?
	`, id)
	return scanSignature(row)
}

// ListSignatures returns all signatures in insertion order.
func (db *DB) ListSignatures() ([]models.Signature, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, type, preview, image_data, created_at, updated_at
		FROM signatures ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list signatures: %w", err)
	}
	defer rows.Close()

	var out []models.Signature
	for rows.Next() {
		s, err := scanSignature(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateSignature applies a partial update and returns the updated row.
func (db *DB) UpdateSignature(id int64, patch models.SignaturePatch) (models.Signature, error) {
	s, err := db.GetSignature(id)
	if err != nil {
		return models.Signature{}, err
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Type != nil {
		s.Type = *patch.Type
	}
	if patch.Preview != nil {
		s.Preview = *patch.Preview
	}
	if patch.ImageData != nil {
		s.ImageData = *patch.ImageData
	}
	s.UpdatedAt = time.Now().UTC()

	_, err = db.conn.Exec(`
		UPDATE signatures SET name = ?, type = ?, preview = ?, image_data = ?, updated_at = ?
		WHERE id = ?
	`, s.Name, s.Type, s.Preview, s.ImageData, s.UpdatedAt, id)
	if err != nil {
		return models.Signature{}, fmt.Errorf("store: update signature: %w", err)
	}
	return s, nil
}

// DeleteSignature removes a signature.
func (db *DB) DeleteSignature(id int64) error {
	res, err := db.conn.Exec(`DELETE FROM signatures WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete signature: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func scanSignature(r rowScanner) (models.Signature, error) {
	var s models.Signature
	err := r.Scan(&s.ID, &s.Name, &s.Type, &s.Preview, &s.ImageData,
		&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Signature{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Signature{}, fmt.Errorf("store: scan signature: %w", err)
	}
	return s, nil
}
