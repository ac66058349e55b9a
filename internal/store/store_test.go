package store

import (
	"os"
	"path/filepath"
	"testing"
)

func roundTrip(t *testing.T, kv KV) {
	t.Helper()

	if _, ok, err := kv.Get("savedSheets"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v", ok, err)
	}
	if err := kv.Set("savedSheets", `{"A":{}}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("savedSheets", `{"B":{}}`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := kv.Get("savedSheets")
	if err != nil || !ok || v != `{"B":{}}` {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}
	if err := kv.Set("empty", ""); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	if v, ok, _ := kv.Get("empty"); !ok || v != "" {
		t.Fatalf("empty value: got %q ok=%v", v, ok)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	roundTrip(t, NewMemory())
}

func TestFileRoundTrip(t *testing.T) {
	kv, err := OpenFile(filepath.Join(t.TempDir(), "nested", "sheets.json"))
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, kv)
}

func TestFilePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheets.json")
	a, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Set("k", "v"); err != nil {
		t.Fatal(err)
	}

	b, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok, err := b.Get("k"); err != nil || !ok || v != "v" {
		t.Fatalf("reopened Get = %q, %v, %v", v, ok, err)
	}
}

func TestFileCorruptIsReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	kv, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := kv.Get("k"); err == nil {
		t.Fatal("expected parse error")
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set over corrupt file: %v", err)
	}
	if v, ok, err := kv.Get("k"); err != nil || !ok || v != "v" {
		t.Fatalf("Get after rewrite = %q, %v, %v", v, ok, err)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "goalsheet.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = kv.Close() }()
	roundTrip(t, kv)
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalsheet.db")
	a, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = b.Close() }()
	if v, ok, err := b.Get("k"); err != nil || !ok || v != "v" {
		t.Fatalf("reopened Get = %q, %v, %v", v, ok, err)
	}
}

func TestOpenDefaults(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(FileBackend, dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := kv.(*File).Path(); got != filepath.Join(dir, "goalsheet.json") {
		t.Errorf("file path = %q", got)
	}

	if _, err := Open(Backend("redis"), dir, ""); err == nil {
		t.Error("expected error for unknown backend")
	}

	mem, err := Open(MemoryBackend, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mem.(*Memory); !ok {
		t.Errorf("memory backend returned %T", mem)
	}
}

func TestBackendIsValid(t *testing.T) {
	for _, b := range Backends {
		if !b.IsValid() {
			t.Errorf("%q should be valid", b)
		}
	}
	if Backend("").IsValid() {
		t.Error("empty backend should be invalid")
	}
}
