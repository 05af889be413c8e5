package filestore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndRead(t *testing.T) {
	store := New(t.TempDir())

	data := []byte("conteudo do relatorio")
	path, err := store.Save("99food", "pedidos.xlsx", data)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	back, err := store.Read("99food", "pedidos.xlsx")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Fatal("persisted bytes differ from original")
	}
}

func TestSaveStripsPathComponents(t *testing.T) {
	base := t.TempDir()
	store := New(base)

	path, err := store.Save("99food", "../../../etc/passwd", []byte("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	want := filepath.Join(base, "uploads", "bi", "99food", "passwd")
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
}
