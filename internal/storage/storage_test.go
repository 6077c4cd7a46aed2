package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// backends returns one fresh instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlStore, err := NewSQLStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { sqlStore.Close() })

	return map[string]Store{
		"file":   NewFileStore(filepath.Join(t.TempDir(), "store.json")),
		"sqlite": sqlStore,
		"memory": NewMemoryStore(),
	}
}

func TestStoreGetSetDelete(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.Get("missing"); err != nil || ok {
				t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
			}

			if err := store.Set("k", "v1"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := store.Set("k", "v2"); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}
			if err := store.Set("other", "x"); err != nil {
				t.Fatalf("Set other failed: %v", err)
			}

			got, ok, err := store.Get("k")
			if err != nil || !ok {
				t.Fatalf("Get(k) = ok %v, err %v", ok, err)
			}
			if got != "v2" {
				t.Errorf("Get(k) = %q, want %q", got, "v2")
			}

			if err := store.Delete("k"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, ok, _ := store.Get("k"); ok {
				t.Error("key still present after Delete")
			}
			if err := store.Delete("k"); err != nil {
				t.Errorf("Delete of missing key returned error: %v", err)
			}

			if got, _, _ := store.Get("other"); got != "x" {
				t.Errorf("unrelated key changed: %q", got)
			}
		})
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")

	first := NewFileStore(path)
	if err := first.Set("saved-palettes", `[]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	second := NewFileStore(path)
	got, ok, err := second.Get("saved-palettes")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok %v, err %v", ok, err)
	}
	if got != `[]` {
		t.Errorf("Get = %q, want []", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the store file, found %d entries", len(entries))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	store := NewFileStore(path)
	if _, _, err := store.Get("k"); err == nil {
		t.Error("expected error reading corrupt store")
	}
}

func TestSQLStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paletta.db")

	first, err := NewSQLStore(path)
	if err != nil {
		t.Fatalf("NewSQLStore failed: %v", err)
	}
	if err := first.Set("theme", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := NewSQLStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	got, ok, err := second.Get("theme")
	if err != nil || !ok || got != "dark" {
		t.Errorf("Get after reopen = %q, %v, %v", got, ok, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{name: "file", opts: Options{Backend: BackendFile, Path: filepath.Join(dir, "a.json")}},
		{name: "default is file", opts: Options{Path: filepath.Join(dir, "b.json")}},
		{name: "sqlite", opts: Options{Backend: BackendSQLite, Path: filepath.Join(dir, "c.db")}},
		{name: "memory", opts: Options{Backend: BackendMemory}},
		{name: "unknown", opts: Options{Backend: "redis"}, wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Open error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer store.Close()
		})
	}

	if _, err := Open(Options{Backend: BackendFile}); err == nil {
		t.Error("expected error for file backend without path")
	}
}
