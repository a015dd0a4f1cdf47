package templatesync

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayush179959/DocuFlow/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSync_ImportsMarkdownFiles(t *testing.T) {
	db := testutil.EmptyCatalog(t)
	dir := t.TempDir()
	writeFile(t, dir, "welcome.md", "# Welcome Letter\nDear [DATE]")
	writeFile(t, dir, "notes.txt", "not a template")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Sync(db, dir, discardLogger()); err != nil {
		t.Fatal(err)
	}

	templates, err := db.ListTemplates()
	if err != nil {
		t.Fatal(err)
	}
	if len(templates) != 1 {
		t.Fatalf("templates = %d, want 1", len(templates))
	}
	got := templates[0]
	if got.Name != "Welcome Letter" {
		t.Errorf("name = %q, want Welcome Letter", got.Name)
	}
	if got.Category != ImportedCategory {
		t.Errorf("category = %q", got.Category)
	}
	if got.Description != "Imported from welcome.md" {
		t.Errorf("description = %q", got.Description)
	}
}

func TestSync_ReimportUpdatesInPlace(t *testing.T) {
	db := testutil.EmptyCatalog(t)
	dir := t.TempDir()
	writeFile(t, dir, "offer.md", "# Offer\nv1")

	if err := Sync(db, dir, discardLogger()); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "offer.md", "# Offer\nv2")
	if err := Sync(db, dir, discardLogger()); err != nil {
		t.Fatal(err)
	}

	templates, _ := db.ListTemplates()
	if len(templates) != 1 {
		t.Fatalf("templates = %d, want 1 after reimport", len(templates))
	}
	if templates[0].Content != "# Offer\nv2" {
		t.Errorf("content = %q", templates[0].Content)
	}
}

func TestSync_MissingDir(t *testing.T) {
	db := testutil.EmptyCatalog(t)
	if err := Sync(db, "/no/such/dir", discardLogger()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestTemplateName_H1OverFilename(t *testing.T) {
	if got := templateName("x.md", "intro\n# Real Title\nbody"); got != "Real Title" {
		t.Errorf("got %q", got)
	}
	if got := templateName("fallback-name.md", "no heading here"); got != "fallback-name" {
		t.Errorf("got %q", got)
	}
}

func TestRemoveFile_DeletesImportedTemplate(t *testing.T) {
	db := testutil.EmptyCatalog(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "gone.md", "# Going Away")

	if err := Sync(db, dir, discardLogger()); err != nil {
		t.Fatal(err)
	}
	removeFile(db, path, discardLogger())

	templates, _ := db.ListTemplates()
	if len(templates) != 0 {
		t.Errorf("templates = %d, want 0 after removal", len(templates))
	}
}

func TestRemoveFile_LeavesManualTemplates(t *testing.T) {
	db := testutil.SeededCatalog(t)
	before, _ := db.ListTemplates()

	removeFile(db, "/tmp/never-imported.md", discardLogger())

	after, _ := db.ListTemplates()
	if len(after) != len(before) {
		t.Errorf("templates = %d, want %d untouched", len(after), len(before))
	}
}
