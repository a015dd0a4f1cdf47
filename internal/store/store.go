// Package store provides the SQLite-backed catalog for templates, products,
// signatures, and documents. The default DSN is an in-memory database that is
// re-seeded from embedded sample data on every startup; a file path can be
// supplied for durable runs.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ayush179959/DocuFlow/internal/models"
)

// MemoryDSN selects a private in-memory database.
const MemoryDSN = ":memory:"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS templates (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	preview      TEXT NOT NULL DEFAULT '',
	is_important INTEGER NOT NULL DEFAULT 0,
	content      TEXT NOT NULL DEFAULT '',
	created_at   DATETIME NOT NULL,
	updated_at   DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	use         TEXT NOT NULL DEFAULT '',
	price       TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS signatures (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL DEFAULT '',
	preview    TEXT NOT NULL DEFAULT '',
	image_data TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS documents (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'draft',
	value        TEXT NOT NULL DEFAULT '$0',
	is_important INTEGER NOT NULL DEFAULT 0,
	folder       TEXT NOT NULL DEFAULT 'General',
	content      TEXT NOT NULL DEFAULT '',
	template_id  INTEGER,
	product_ids  TEXT NOT NULL DEFAULT '[]',
	signature_id INTEGER,
	created_at   DATETIME NOT NULL,
	updated_at   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_folder ON documents(folder);
CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);
`

// Catalog defines the storage operations the rest of the application depends
// on. Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with fakes.
type Catalog interface {
	CreateTemplate(t models.Template) (models.Template, error)
	GetTemplate(id int64) (models.Template, error)
	ListTemplates() ([]models.Template, error)
	UpdateTemplate(id int64, p models.TemplatePatch) (models.Template, error)
	DeleteTemplate(id int64) error
	UpsertTemplateByName(t models.Template) (models.Template, error)

	CreateProduct(p models.Product) (models.Product, error)
	GetProduct(id int64) (models.Product, error)
	ListProducts() ([]models.Product, error)
	UpdateProduct(id int64, p models.ProductPatch) (models.Product, error)
	DeleteProduct(id int64) error

	CreateSignature(s models.Signature) (models.Signature, error)
	GetSignature(id int64) (models.Signature, error)
	ListSignatures() ([]models.Signature, error)
	UpdateSignature(id int64, p models.SignaturePatch) (models.Signature, error)
	DeleteSignature(id int64) error

	CreateDocument(d models.Document) (models.Document, error)
	GetDocument(id int64) (models.Document, error)
	ListDocuments(folder string) ([]models.Document, error)
	UpdateDocument(id int64, p models.DocumentPatch) (models.Document, error)
	DeleteDocument(id int64) error

	ListFolders() ([]models.Folder, error)

	Close() error
}

// DB wraps a sql.DB with catalog operations.
type DB struct {
	conn *sql.DB
}

// Verify *DB satisfies Catalog at compile time.
var _ Catalog = (*DB)(nil)

// Open opens the catalog database and applies the schema. An empty dsn means
// in-memory. In-memory databases are pinned to a single connection so every
// statement sees the same data.
func Open(dsn string) (*DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	conn, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if dsn == MemoryDSN {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
