package templatesync

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ayush179959/DocuFlow/internal/testutil"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatch_NewFileImported(t *testing.T) {
	db := testutil.EmptyCatalog(t)
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var events []string

	go Watch(ctx, db, dir, discardLogger(), func(kind, file string) {
		mu.Lock()
		events = append(events, kind+":"+filepath.Base(file))
		mu.Unlock()
	})

	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(dir, "new.md"), []byte("# New Template"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		templates, _ := db.ListTemplates()
		return len(templates) == 1 && templates[0].Name == "New Template"
	}, "new file not imported by watcher")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range events {
			if e == "imported:new.md" {
				return true
			}
		}
		return false
	}, "expected imported:new.md callback")
}

func TestWatch_RemoveDeletesTemplate(t *testing.T) {
	db := testutil.EmptyCatalog(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "del.md")
	_ = os.WriteFile(path, []byte("# Delete Me"), 0o644)
	if err := Sync(db, dir, discardLogger()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, dir, discardLogger(), nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.Remove(path)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		templates, _ := db.ListTemplates()
		return len(templates) == 0
	}, "deleted file still in catalog")
}

func TestWatch_NonMarkdownIgnored(t *testing.T) {
	db := testutil.EmptyCatalog(t)
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, dir, discardLogger(), nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(dir, "data.json"), []byte("{}"), 0o644)

	time.Sleep(300 * time.Millisecond)
	templates, _ := db.ListTemplates()
	if len(templates) != 0 {
		t.Errorf("non-markdown file imported: %v", templates)
	}
}
