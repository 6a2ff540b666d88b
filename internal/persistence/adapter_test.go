package persistence

import (
	"testing"
	"time"

	"github.com/mako10k/ishell/internal/vfs"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewMemoryBlobStore()
	adapter := NewAdapter(store)

	state := vfs.NewState()
	if _, err := state.CreateFile(state.CurrentPath, "note.txt", "hello world"); err != nil {
		t.Fatal(err)
	}

	if err := adapter.Save(state, "normal"); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, mode, err := adapter.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if mode != "normal" {
		t.Errorf("expected mode normal, got %q", mode)
	}

	path := append(append([]string{}, loaded.CurrentPath...), "note.txt")
	node := loaded.GetNode(path)
	if node == nil || node.Content != "hello world" {
		t.Fatalf("expected restored file with content, got %+v", node)
	}
}

func TestLoadWithNoSavedDataReturnsNil(t *testing.T) {
	adapter := NewAdapter(NewMemoryBlobStore())
	state, _, err := adapter.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state for empty store, got %+v", state)
	}
}

func TestHasSaved(t *testing.T) {
	store := NewMemoryBlobStore()
	adapter := NewAdapter(store)
	ok, err := adapter.HasSaved()
	if err != nil || ok {
		t.Fatalf("expected HasSaved false before any save, got %v err=%v", ok, err)
	}
	_ = adapter.Save(vfs.NewState(), "normal")
	ok, err = adapter.HasSaved()
	if err != nil || !ok {
		t.Fatalf("expected HasSaved true after save, got %v err=%v", ok, err)
	}
}

func TestSaveCoalescesIdenticalContent(t *testing.T) {
	store := NewMemoryBlobStore()
	adapter := NewAdapter(store)
	state := vfs.NewState()
	state.Now = func() time.Time { return time.Unix(0, 0) }

	if err := adapter.Save(state, "normal"); err != nil {
		t.Fatal(err)
	}
	backupsAfterFirst, _ := store.Keys(backupPrefix)

	if err := adapter.Save(state, "normal"); err != nil {
		t.Fatal(err)
	}
	backupsAfterSecond, _ := store.Keys(backupPrefix)

	if len(backupsAfterSecond) != len(backupsAfterFirst) {
		t.Errorf("expected identical saves to coalesce, got %d then %d backups", len(backupsAfterFirst), len(backupsAfterSecond))
	}
}

func TestClearRemovesAllBlobs(t *testing.T) {
	store := NewMemoryBlobStore()
	adapter := NewAdapter(store)
	_ = adapter.Save(vfs.NewState(), "normal")

	if err := adapter.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, _ := adapter.HasSaved()
	if ok {
		t.Error("expected HasSaved false after Clear")
	}
}

func TestScheduleSaveEventuallyPersists(t *testing.T) {
	store := NewMemoryBlobStore()
	adapter := NewAdapter(store)
	state := vfs.NewState()

	adapter.ScheduleSave(state, "normal")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ok, _ := adapter.HasSaved(); ok {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("expected debounced save to eventually persist")
}
