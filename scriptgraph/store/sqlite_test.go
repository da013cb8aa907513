package store

import (
	"context"
	"errors"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreSaveLoadRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	want := []byte{9, 9, 9, 0}
	if err := s.SaveScript(ctx, "door", want); err != nil {
		t.Fatalf("SaveScript: %v", err)
	}
	got, err := s.LoadScript(ctx, "door")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSQLiteStoreLoadMissingReturnsErrNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	if _, err := s.LoadScript(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStoreSaveUpserts(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()
	_ = s.SaveScript(ctx, "g", []byte("v1"))
	_ = s.SaveScript(ctx, "g", []byte("v2"))

	got, err := s.LoadScript(ctx, "g")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("got %q, want v2", got)
	}

	infos, err := s.ListScripts(ctx)
	if err != nil {
		t.Fatalf("ListScripts: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("expected exactly 1 script after upsert, got %v", infos)
	}
}

func TestSQLiteStoreDeleteMissingReturnsErrNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.DeleteScript(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStoreListScriptsSorted(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()
	for _, name := range []string{"zeta", "alpha", "mu"} {
		_ = s.SaveScript(ctx, name, []byte("x"))
	}
	infos, err := s.ListScripts(ctx)
	if err != nil {
		t.Fatalf("ListScripts: %v", err)
	}
	want := []string{"alpha", "mu", "zeta"}
	if len(infos) != len(want) {
		t.Fatalf("got %v, want %v", infos, want)
	}
	for i := range want {
		if infos[i].Name != want[i] {
			t.Errorf("infos[%d].Name = %q, want %q", i, infos[i].Name, want[i])
		}
	}
}

func TestSQLiteStoreSatisfiesStore(t *testing.T) {
	var _ Store = newTestSQLiteStore(t)
}
