package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/apperr"
)

func tempRoot(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir, false)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	s := tempRoot(t)
	content := []byte("# Hello\nWorld\n")
	if err := s.Write("page.html", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("page.html")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteOverwritesSilently(t *testing.T) {
	s := tempRoot(t)
	_ = s.Write("page.html", []byte("old"))
	if err := s.Write("page.html", []byte("new")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("page.html")
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestNewFS_CreateRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	if _, err := NewFS(dir, true); err != nil {
		t.Fatalf("NewFS with create: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("root not created: %v", err)
	}
}

func TestNewFS_MissingRoot(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope"), false); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestSafePath_RejectsTraversal(t *testing.T) {
	s := tempRoot(t)
	for _, name := range []string{"../escape.html", "a/../../escape.html", "/etc/passwd", ""} {
		if err := s.Write(name, []byte("x")); !errors.Is(err, apperr.ErrInvalidPath) {
			t.Errorf("Write(%q) err = %v, want ErrInvalidPath", name, err)
		}
	}
}

func TestRead_NotFound(t *testing.T) {
	s := tempRoot(t)
	if _, err := s.Read("missing.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestList_SuffixFilterAndOrder(t *testing.T) {
	s := tempRoot(t)
	for _, name := range []string{"b-second.md", "a-first.md", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(s.Root(), name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(s.Root(), "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := s.List(".md")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len = %d, want 2", len(files))
	}
	if files[0].Name != "a-first.md" || files[1].Name != "b-second.md" {
		t.Errorf("order = [%s %s]", files[0].Name, files[1].Name)
	}
	if files[0].Slug != "a-first" {
		t.Errorf("slug = %q, want %q", files[0].Slug, "a-first")
	}
}

func TestList_EmptySuffixMatchesAll(t *testing.T) {
	s := tempRoot(t)
	for _, name := range []string{"logo.png", "style.css"} {
		if err := os.WriteFile(filepath.Join(s.Root(), name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("len = %d, want 2", len(files))
	}
}
