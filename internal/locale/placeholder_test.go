package locale

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureFile_Creates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.fr.yml")

	created, err := EnsureFile(path)
	if err != nil {
		t.Fatalf("EnsureFile: %v", err)
	}
	if !created {
		t.Error("expected file to be created")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestEnsureFile_LeavesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.fr.yml")
	if err := os.WriteFile(path, []byte("fr:\n  hello: Bonjour\n"), 0644); err != nil {
		t.Fatal(err)
	}

	created, err := EnsureFile(path)
	if err != nil {
		t.Fatalf("EnsureFile: %v", err)
	}
	if created {
		t.Error("expected existing file to be left alone")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "fr:\n  hello: Bonjour\n" {
		t.Errorf("existing content changed: %q", data)
	}
}

func TestEnsureFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "client.fr.yml")
	if _, err := EnsureFile(path); err == nil {
		t.Fatal("expected error for missing parent directory, got nil")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.de.yml")
	if Exists(path) {
		t.Error("Exists reported a missing file")
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists did not report an existing file")
	}
}
