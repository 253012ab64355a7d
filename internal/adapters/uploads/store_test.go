package uploads_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotels_api/internal/adapters/uploads"
)

func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	s := uploads.New(dir)

	path, err := s.Save("hotels.json", strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("staged outside the upload dir: %s", path)
	}
	if filepath.Ext(path) != ".json" {
		t.Fatalf("extension not preserved: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "[]" {
		t.Fatalf("staged content: %q err=%v", b, err)
	}
}

func TestStore_Save_UniqueNames(t *testing.T) {
	s := uploads.New(t.TempDir())

	p1, err := s.Save("same.json", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save 1: %v", err)
	}
	p2, err := s.Save("same.json", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save 2: %v", err)
	}
	if p1 == p2 {
		t.Fatal("two uploads of the same name must not collide")
	}
}
