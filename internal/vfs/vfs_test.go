package vfs

import (
	"errors"
	"strings"
	"testing"
)

func TestResolvePathIdempotent(t *testing.T) {
	s := NewState()
	inputs := []string{
		"/a/b/c", "../../etc", "~/docs", "a/./b/../c", "////", "", ".",
		"~", "/", "a//b",
	}
	for _, in := range inputs {
		once := JoinPath(s.ResolvePath(in))
		twice := JoinPath(s.ResolvePath(once))
		if once != twice {
			t.Errorf("resolve not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestResolveTilde(t *testing.T) {
	s := NewState()
	got := JoinPath(s.ResolvePath("~/projects"))
	if got != "/home/user/projects" {
		t.Errorf("expected /home/user/projects, got %q", got)
	}
}

func TestResolveDotDotClampsAtRoot(t *testing.T) {
	s := NewState()
	got := s.ResolvePath("/../../../x")
	if JoinPath(got) != "/x" {
		t.Errorf("expected clamping at root, got %q", JoinPath(got))
	}
}

func TestCreateAndGetFile(t *testing.T) {
	s := NewState()
	if _, err := s.CreateFile(s.CurrentPath, "note.txt", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node := s.GetNode(append(append([]string{}, s.CurrentPath...), "note.txt"))
	if node == nil || node.Content != "hello" {
		t.Fatalf("expected file with content hello, got %+v", node)
	}
}

func TestCreateFileRejectsBadName(t *testing.T) {
	s := NewState()
	if _, err := s.CreateFile(s.CurrentPath, "", "x"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName for empty name, got %v", err)
	}
	if _, err := s.CreateFile(s.CurrentPath, "a\\b", "x"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName for backslash, got %v", err)
	}
}

func TestCreateFileEnforcesPerFileCap(t *testing.T) {
	s := NewState()
	s.PerFileCap = 4
	if _, err := s.CreateFile(s.CurrentPath, "big.txt", "toolong"); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestCreateFileEnforcesDirCap(t *testing.T) {
	s := NewState()
	s.PerDirCap = 1
	if _, err := s.CreateFile(s.CurrentPath, "a", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.CreateFile(s.CurrentPath, "b", "x"); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded on second file, got %v", err)
	}
}

func TestDeleteNonEmptyDirectoryRequiresRecursive(t *testing.T) {
	s := NewState()
	dirPath := append(append([]string{}, s.CurrentPath...), "sub")
	if _, err := s.CreateDirectory(s.CurrentPath, "sub"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateFile(dirPath, "f", "x"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteNode(dirPath, false); !errors.Is(err, ErrDirectoryNotEmpty) {
		t.Errorf("expected ErrDirectoryNotEmpty, got %v", err)
	}
	if err := s.DeleteNode(dirPath, true); err != nil {
		t.Errorf("unexpected error deleting recursively: %v", err)
	}
}

func TestCdFailureLeavesPathIntact(t *testing.T) {
	s := NewState()
	before := append([]string{}, s.CurrentPath...)
	err := s.Cd(append(append([]string{}, s.CurrentPath...), "nonexistent"))
	if err == nil {
		t.Fatal("expected error cding into nonexistent directory")
	}
	if JoinPath(s.CurrentPath) != JoinPath(before) {
		t.Errorf("expected CurrentPath unchanged, got %q", JoinPath(s.CurrentPath))
	}
}

func TestListOrdersDotfilesLast(t *testing.T) {
	s := NewState()
	for _, name := range []string{"zebra", ".hidden", "Apple", ".config"} {
		if _, err := s.CreateFile(s.CurrentPath, name, ""); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := s.List(s.CurrentPath, true)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	want := []string{"Apple", "zebra", ".config", ".hidden"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestListExcludesHiddenByDefault(t *testing.T) {
	s := NewState()
	_, _ = s.CreateFile(s.CurrentPath, ".secret", "")
	_, _ = s.CreateFile(s.CurrentPath, "visible", "")
	entries, err := s.List(s.CurrentPath, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "visible" {
		t.Errorf("expected only [visible], got %+v", entries)
	}
}

func TestTotalSizeCapEnforced(t *testing.T) {
	s := NewState()
	s.TotalCap = 10
	if _, err := s.CreateFile(s.CurrentPath, "a", "12345"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateFile(s.CurrentPath, "b", "123456"); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestRenderTree(t *testing.T) {
	s := NewState()
	if _, err := s.CreateDirectory(s.CurrentPath, "docs"); err != nil {
		t.Fatal(err)
	}
	docsPath := append(append([]string{}, s.CurrentPath...), "docs")
	if _, err := s.CreateFile(docsPath, "readme.txt", "hi"); err != nil {
		t.Fatal(err)
	}
	out, err := s.RenderTree(s.CurrentPath, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "docs") || !strings.Contains(out, "readme.txt") {
		t.Errorf("expected tree output to mention docs and readme.txt, got %q", out)
	}
}
