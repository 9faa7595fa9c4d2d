package store

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeBundle(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// Reads all regular-file entries of a tar.gz archive into a map.
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}

	entries := make(map[string]string)
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatal(err)
		}
		entries[header.Name] = string(data)
	}
	return entries
}

func TestWriteArchive(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "bundle")
	writeBundle(t, bundle, map[string]string{
		"server":          "binary",
		"code/plugin.ext": "package",
	})

	dest := filepath.Join(dir, "out.tar.gz")
	if err := writeArchive(dest, bundle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readArchive(t, dest)
	if entries["server"] != "binary" {
		t.Fatalf("server entry = %q, want %q", entries["server"], "binary")
	}
	if entries["code/plugin.ext"] != "package" {
		t.Fatalf("code/plugin.ext entry = %q, want %q", entries["code/plugin.ext"], "package")
	}
	if len(entries) != 2 {
		t.Fatalf("archive holds %d file entries, want 2", len(entries))
	}
}

func TestDirStoreUpload(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "bundle")
	writeBundle(t, bundle, map[string]string{"server": "binary"})

	s := NewDirStore(filepath.Join(dir, "artifacts"))
	handle, err := s.Upload(context.Background(), "dist-linux", bundle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if handle.Name != "dist-linux" {
		t.Fatalf("handle.Name = %q, want dist-linux", handle.Name)
	}
	want := filepath.Join(dir, "artifacts", "dist-linux.tar.gz")
	if handle.Location != want {
		t.Fatalf("handle.Location = %q, want %q", handle.Location, want)
	}
	if handle.Size <= 0 {
		t.Fatalf("handle.Size = %d, want > 0", handle.Size)
	}

	entries := readArchive(t, handle.Location)
	if entries["server"] != "binary" {
		t.Fatalf("archived server = %q, want %q", entries["server"], "binary")
	}
}

func TestDirStoreUploadMissingBundle(t *testing.T) {
	dir := t.TempDir()

	s := NewDirStore(filepath.Join(dir, "artifacts"))
	if _, err := s.Upload(context.Background(), "dist-linux", filepath.Join(dir, "absent")); err == nil {
		t.Fatal("expected error, got nil")
	}

	// A failed upload must not leave a partial archive behind.
	if _, err := os.Stat(filepath.Join(dir, "artifacts", "dist-linux.tar.gz")); !os.IsNotExist(err) {
		t.Fatal("partial archive left under final name")
	}
}

func TestDirStoreDistinctKeys(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "bundle")
	writeBundle(t, bundle, map[string]string{"server": "binary"})

	s := NewDirStore(filepath.Join(dir, "artifacts"))
	names := []string{"dist-linux", "dist-windows", "dist-macos"}
	for _, name := range names {
		if _, err := s.Upload(context.Background(), name, bundle); err != nil {
			t.Fatalf("upload %s: %v", name, err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, "artifacts"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(names) {
		t.Fatalf("store holds %d archives, want %d", len(entries), len(names))
	}
}
