package history

import (
	"strconv"
	"testing"

	"github.com/mako10k/ishell/internal/vfs"
)

func TestAppendAndLoad(t *testing.T) {
	fs := vfs.NewState()
	if err := Append(fs, "ls -la"); err != nil {
		t.Fatal(err)
	}
	if err := Append(fs, "cd docs"); err != nil {
		t.Fatal(err)
	}
	entries, err := Load(fs)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0] != "ls -la" || entries[1] != "cd docs" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestAppendRejectsEmptyCommand(t *testing.T) {
	fs := vfs.NewState()
	if err := Append(fs, "   "); err != nil {
		t.Fatal(err)
	}
	entries, _ := Load(fs)
	if len(entries) != 0 {
		t.Errorf("expected no entries recorded, got %v", entries)
	}
}

func TestAppendEvictsOldestBeyondCap(t *testing.T) {
	fs := vfs.NewState()
	for i := 0; i < MaxEntries+10; i++ {
		if err := Append(fs, "cmd"+strconv.Itoa(i)); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := Load(fs)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(entries))
	}
	if entries[0] != "cmd10" {
		t.Errorf("expected oldest entries evicted, got first=%q", entries[0])
	}
}
