package commands

import (
	"path/filepath"
	"testing"

	"github.com/museun/streamchat/colorstore"
)

func TestColorCommandTooDark(t *testing.T) {
	dir := t.TempDir()
	store := colorstore.Open(filepath.Join(dir, "c.json"), nil)
	p := NewProcessor()
	p.Add("color", ColorHandler(store))

	resp := p.Dispatch("42", "!color #111111")
	text, ok := resp.Text()
	if !ok || text != "color #111111 is too dark" {
		t.Fatalf("resp = %q, %v", text, ok)
	}
	if _, ok := store.Get(42); ok {
		t.Errorf("color should not have been stored")
	}
}

func TestColorCommandSetAndReset(t *testing.T) {
	dir := t.TempDir()
	store := colorstore.Open(filepath.Join(dir, "c.json"), nil)
	p := NewProcessor()
	p.Add("color", ColorHandler(store))

	resp := p.Dispatch("42", "!color Blue")
	text, ok := resp.Text()
	if !ok || text != "setting your color to: #0000FF" {
		t.Fatalf("resp = %q, %v", text, ok)
	}
	if rgb, ok := store.Get(42); !ok || rgb.String() != "#0000FF" {
		t.Errorf("store = %v, %v", rgb, ok)
	}

	resp = p.Dispatch("42", "!color")
	text, ok = resp.Text()
	if !ok || text != "resetting your color" {
		t.Fatalf("resp = %q, %v", text, ok)
	}
	if _, ok := store.Get(42); ok {
		t.Errorf("color should have been removed")
	}
}

func TestDispatchMissing(t *testing.T) {
	p := NewProcessor()
	resp := p.Dispatch("1", "!nosuchcommand foo")
	if !resp.IsMissing() {
		t.Errorf("expected Missing")
	}
}

func TestDispatchNonCommand(t *testing.T) {
	p := NewProcessor()
	resp := p.Dispatch("1", "just chatting")
	if _, ok := resp.Text(); ok {
		t.Errorf("expected no text")
	}
	if resp.IsMissing() {
		t.Errorf("expected Nothing, not Missing")
	}
}
