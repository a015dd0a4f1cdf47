package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ayush179959/DocuFlow/internal/apperr"
	"github.com/ayush179959/DocuFlow/internal/models"
)

// CreateProduct inserts a product and returns it with its assigned id.
func (db *DB) CreateProduct(p models.Product) (models.Product, error) {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	res, err := db.conn.Exec(`
		INSERT INTO products (name, use, price, category, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Use, p.Price, p.Category, p.Description, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return models.Product{}, fmt.Errorf("store: create product: %w", err)
	}
	p.ID, _ = res.LastInsertId()
	return p, nil
}

// GetProduct returns the product with the given id.
func (db *DB) GetProduct(id int64) (models.Product, error) {
	row := db.conn.QueryRow(`
		SELECT id, name, use, price, category, description, created_at, updated_at
		FROM products WHERE id = ?
	`, id)
	return scanProduct(row)
}

// ListProducts returns all products in insertion order.
func (db *DB) ListProducts() ([]models.Product, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, use, price, category, description, created_at, updated_at
		FROM products ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list products: %w", err)
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProduct applies a partial update and returns the updated row.
func (db *DB) UpdateProduct(id int64, patch models.ProductPatch) (models.Product, error) {
	p, err := db.GetProduct(id)
	if err != nil {
		return models.Product{}, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Use != nil {
		p.Use = *patch.Use
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = time.Now().UTC()

	_, err = db.conn.Exec(`
		UPDATE products SET name = ?, use = ?, price = ?, category = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.Use, p.Price, p.Category, p.Description, p.UpdatedAt, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("store: update product: %w", err)
	}
	return p, nil
}

// DeleteProduct removes a product.
func (db *DB) DeleteProduct(id int64) error {
	res, err := db.conn.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func scanProduct(r rowScanner) (models.Product, error) {
	var p models.Product
	err := r.Scan(&p.ID, &p.Name, &p.Use, &p.Price, &p.Category, &p.Description,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("store: scan product: %w", err)
	}
	return p, nil
}
