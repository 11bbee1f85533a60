package colorstore

import (
	"path/filepath"
	"testing"

	"github.com/museun/streamchat/ircwire"
)

func TestSetGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "colors.json"), nil)

	if err := s.Set(42, ircwire.RGB{R: 0, G: 0, B: 0xFF}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := s.Get(42)
	if !ok {
		t.Fatalf("Get(42) not found")
	}
	if got != (ircwire.RGB{R: 0, G: 0, B: 0xFF}) {
		t.Errorf("got %v", got)
	}
}

func TestSetRejectsDark(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "colors.json"), nil)

	err := s.Set(1, ircwire.RGB{R: 0x11, G: 0x11, B: 0x11})
	if err != ErrTooDark {
		t.Fatalf("err = %v, want ErrTooDark", err)
	}
	if _, ok := s.Get(1); ok {
		t.Errorf("dark color should not have been stored")
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.json")
	s := Open(path, nil)
	_ = s.Set(7, ircwire.RGB{R: 1, G: 2, B: 3})

	if err := s.Remove(7); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := s.Get(7); ok {
		t.Errorf("expected removed")
	}

	s2 := Open(path, nil)
	if _, ok := s2.Get(7); ok {
		t.Errorf("reloaded store should not have id 7")
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "missing.json"), nil)
	if _, ok := s.Get(1); ok {
		t.Errorf("expected empty store")
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.json")
	s1 := Open(path, nil)
	if err := s1.Set(99, ircwire.RGB{R: 100, G: 150, B: 200}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s2 := Open(path, nil)
	got, ok := s2.Get(99)
	if !ok || got != (ircwire.RGB{R: 100, G: 150, B: 200}) {
		t.Errorf("got %v, %v", got, ok)
	}
}
