package blob

import (
	"bytes"
	"testing"
)

func TestStore_SaveLoadRemove(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	data := []byte("statement body")
	rel, err := s.Save("app1", "doc1", "Bank Statement.PDF", data)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(rel)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("Load = %q, want %q", got, data)
	}

	// overwrite replaces content
	if _, err := s.Save("app1", "doc1", "Bank Statement.PDF", []byte("v2")); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, _ = s.Load(rel)
	if string(got) != "v2" {
		t.Fatalf("overwrite not applied, got %q", got)
	}

	if err := s.Remove(rel); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Load(rel); err == nil {
		t.Fatal("Load after Remove should fail")
	}
	// removing twice is not an error
	if err := s.Remove(rel); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestStore_LongExtensionDropped(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	rel, err := s.Save("a", "d", "weird.thisextensionistoolong", []byte("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := "a/d"; rel != want {
		t.Fatalf("rel = %q, want %q", rel, want)
	}
}
