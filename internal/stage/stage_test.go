package stage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestBinary(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "server")
	writeFile(t, src, "binary-bytes")

	bundle := filepath.Join(dir, "bundle")
	if err := Binary(bundle, src, "server.exe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readFile(t, filepath.Join(bundle, "server.exe")); got != "binary-bytes" {
		t.Fatalf("staged contents = %q, want %q", got, "binary-bytes")
	}

	entries, err := os.ReadDir(bundle)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("bundle holds %d entries, want exactly 1", len(entries))
	}
}

func TestBinaryIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "server")
	writeFile(t, src, "binary-bytes")

	bundle := filepath.Join(dir, "bundle")
	for i := 0; i < 2; i++ {
		if err := Binary(bundle, src, "server"); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i+1, err)
		}
	}

	if got := readFile(t, filepath.Join(bundle, "server")); got != "binary-bytes" {
		t.Fatalf("staged contents = %q, want %q", got, "binary-bytes")
	}
}

func TestBinaryMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := Binary(filepath.Join(dir, "bundle"), filepath.Join(dir, "absent"), "server")
	if !errors.Is(err, ErrStage) {
		t.Fatalf("err = %v, want ErrStage", err)
	}
}

func TestPackages(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		filepath.Join(dir, "plugin-0.4.0.vsix"),
		filepath.Join(dir, "plugin-0.4.0.vsix.map"),
		filepath.Join(dir, "notes.txt"),
	}
	for _, f := range files {
		writeFile(t, f, filepath.Base(f))
	}

	bundle := filepath.Join(dir, "bundle")
	staged, err := Packages(bundle, files, ".vsix")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staged != 1 {
		t.Fatalf("staged = %d, want 1", staged)
	}

	entries, err := os.ReadDir(filepath.Join(bundle, "code"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "plugin-0.4.0.vsix" {
		t.Fatalf("code dir entries = %v, want only plugin-0.4.0.vsix", entries)
	}
}

func TestPackagesNoMatches(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "notes.txt")
	writeFile(t, f, "x")

	_, err := Packages(filepath.Join(dir, "bundle"), []string{f}, ".vsix")
	if !errors.Is(err, ErrStage) {
		t.Fatalf("err = %v, want ErrStage", err)
	}
}

func TestTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "assets")
	writeFile(t, filepath.Join(src, "init.el"), "(provide 'init)")
	writeFile(t, filepath.Join(src, "lisp", "helper.el"), "(provide 'helper)")

	bundle := filepath.Join(dir, "bundle")
	if err := Tree(bundle, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readFile(t, filepath.Join(bundle, "init.el")); got != "(provide 'init)" {
		t.Fatalf("init.el = %q", got)
	}
	if got := readFile(t, filepath.Join(bundle, "lisp", "helper.el")); got != "(provide 'helper)" {
		t.Fatalf("lisp/helper.el = %q", got)
	}
}

func TestTreeIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "assets")
	writeFile(t, filepath.Join(src, "a", "b.txt"), "b")

	bundle := filepath.Join(dir, "bundle")
	for i := 0; i < 2; i++ {
		if err := Tree(bundle, src); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i+1, err)
		}
	}

	if got := readFile(t, filepath.Join(bundle, "a", "b.txt")); got != "b" {
		t.Fatalf("a/b.txt = %q, want %q", got, "b")
	}
}

func TestTreeMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := Tree(filepath.Join(dir, "bundle"), filepath.Join(dir, "absent"))
	if !errors.Is(err, ErrStage) {
		t.Fatalf("err = %v, want ErrStage", err)
	}
}

func TestTreeSourceNotDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "file.txt")
	writeFile(t, src, "x")

	err := Tree(filepath.Join(dir, "bundle"), src)
	if !errors.Is(err, ErrStage) {
		t.Fatalf("err = %v, want ErrStage", err)
	}
}
