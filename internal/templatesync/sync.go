// Package templatesync imports template files from an on-disk directory into
// the catalog. Each .md file in the directory becomes (or refreshes) a
// template; the file's first H1 heading names it, falling back to the file
// name. A watcher keeps the catalog in step with the directory until
// shutdown.
package templatesync

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayush179959/DocuFlow/internal/models"
	"github.com/ayush179959/DocuFlow/internal/store"
)

// ImportedCategory marks templates that came from the templates directory.
const ImportedCategory = "Imported"

// Sync reads every .md file in dir and upserts it into the template table.
// The directory is flat; subdirectories are ignored.
func Sync(catalog store.Catalog, dir string, logger *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		if err := importFile(catalog, filepath.Join(dir, e.Name()), logger); err != nil {
			logger.Warn("templatesync: import failed",
				slog.String("file", e.Name()),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// importFile upserts a single template file into the catalog.
func importFile(catalog store.Catalog, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	content := string(data)
	name := templateName(filepath.Base(path), content)

	_, err = catalog.UpsertTemplateByName(models.Template{
		Name:        name,
		Description: "Imported from " + filepath.Base(path),
		Category:    ImportedCategory,
		Content:     content,
	})
	if err != nil {
		return err
	}
	logger.Debug("templatesync: imported", slog.String("name", name))
	return nil
}

// removeFile deletes the template that was imported from the given file, if
// it still exists in the catalog.
func removeFile(catalog store.Catalog, path string, logger *slog.Logger) {
	base := filepath.Base(path)
	templates, err := catalog.ListTemplates()
	if err != nil {
		logger.Warn("templatesync: list failed", slog.String("error", err.Error()))
		return
	}
	for _, t := range templates {
		if t.Category != ImportedCategory || t.Description != "Imported from "+base {
			continue
		}
		if err := catalog.DeleteTemplate(t.ID); err != nil {
			logger.Warn("templatesync: delete failed",
				slog.String("name", t.Name),
				slog.String("error", err.Error()))
		} else {
			logger.Debug("templatesync: removed", slog.String("name", t.Name))
		}
		return
	}
}

// templateName derives a template name from the file's first H1 heading,
// falling back to the file name without its extension.
func templateName(filename, content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return strings.TrimSuffix(filename, ".md")
}
