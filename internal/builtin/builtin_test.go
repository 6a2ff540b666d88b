package builtin

import (
	"strings"
	"testing"

	"github.com/mako10k/ishell/internal/alias"
	"github.com/mako10k/ishell/internal/env"
	"github.com/mako10k/ishell/internal/vfs"
)

func newTestContext() *Context {
	return &Context{
		FS:      vfs.NewState(),
		Aliases: alias.NewTable(),
		Env:     env.NewTable(),
	}
}

func TestCdNoArgGoesHome(t *testing.T) {
	ctx := newTestContext()
	ctx.FS.CurrentPath = []string{"home", "user", "sub"}
	_, _ = ctx.FS.CreateDirectory([]string{"home", "user"}, "sub")

	res := Cd(ctx, nil)
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if vfs.JoinPath(ctx.FS.CurrentPath) != "/home/user" {
		t.Errorf("expected home directory, got %q", vfs.JoinPath(ctx.FS.CurrentPath))
	}
}

func TestCdFailureKeepsPath(t *testing.T) {
	ctx := newTestContext()
	before := vfs.JoinPath(ctx.FS.CurrentPath)
	res := Cd(ctx, []string{"nonexistent"})
	if res.Success {
		t.Fatal("expected failure for nonexistent directory")
	}
	if vfs.JoinPath(ctx.FS.CurrentPath) != before {
		t.Error("expected path unchanged after failed cd")
	}
}

func TestTouchAndCat(t *testing.T) {
	ctx := newTestContext()
	if res := Touch(ctx, []string{"note.txt"}); !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	path := append(append([]string{}, ctx.FS.CurrentPath...), "note.txt")
	if err := ctx.FS.WriteFile(path, "hello"); err != nil {
		t.Fatal(err)
	}
	res := Cat(ctx, []string{"note.txt"})
	if !res.Success || res.Output.Text != "hello" {
		t.Fatalf("unexpected cat result: %+v", res)
	}
}

func TestCatMarkdownFile(t *testing.T) {
	ctx := newTestContext()
	_, _ = ctx.FS.CreateFile(ctx.FS.CurrentPath, "notes.md", "# Title\n\nSome **bold** text.\n")
	res := Cat(ctx, []string{"notes.md"})
	if !res.Success || !res.Output.IsSegments {
		t.Fatalf("expected segmented markdown output, got %+v", res)
	}
}

func TestGrepNoMatchIsExitOne(t *testing.T) {
	ctx := newTestContext()
	ctx.Stdin = "alpha\nbeta\n"
	res := Grep(ctx, []string{"gamma"})
	if !res.Success {
		t.Error("expected success=true for no-match per the grep exit-code convention")
	}
	if res.ExitCode != 1 {
		t.Errorf("expected exit code 1 for no match, got %d", res.ExitCode)
	}
}

func TestGrepMatchSucceeds(t *testing.T) {
	ctx := newTestContext()
	ctx.Stdin = "alpha\nbeta\n"
	res := Grep(ctx, []string{"-n", "beta"})
	if !res.Success || res.ExitCode != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.Contains(res.Output.Text, "2:beta") {
		t.Errorf("expected line-numbered match, got %q", res.Output.Text)
	}
}

func TestRmDirectoryRequiresRecursive(t *testing.T) {
	ctx := newTestContext()
	_, _ = ctx.FS.CreateDirectory(ctx.FS.CurrentPath, "sub")
	res := Rm(ctx, []string{"sub"})
	if res.Success {
		t.Fatal("expected failure removing a directory without -r")
	}
	res = Rm(ctx, []string{"-r", "sub"})
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
}

func TestMkdirDashP(t *testing.T) {
	ctx := newTestContext()
	res := Mkdir(ctx, []string{"-p", "a/b/c"})
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	path := append(append([]string{}, ctx.FS.CurrentPath...), "a", "b", "c")
	if ctx.FS.GetNode(path) == nil {
		t.Error("expected nested directories to be created")
	}
}

func TestAliasDefineAndList(t *testing.T) {
	ctx := newTestContext()
	res := Alias(ctx, []string{"ll=ls -la"})
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	res = Alias(ctx, nil)
	if !strings.Contains(res.Output.Text, "alias ll=") {
		t.Errorf("expected listing to mention ll, got %q", res.Output.Text)
	}
}

func TestSortNumericStableOnNonNumeric(t *testing.T) {
	ctx := newTestContext()
	ctx.Stdin = "b\n3\na\n1\n"
	res := Sort(ctx, []string{"-n"})
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
	lines := strings.Split(res.Output.Text, "\n")
	want := []string{"b", "a", "1", "3"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestUniqRemovesOnlyConsecutiveDuplicates(t *testing.T) {
	ctx := newTestContext()
	ctx.Stdin = "a\na\nb\na\n"
	res := Uniq(ctx, nil)
	if res.Output.Text != "a\nb\na" {
		t.Errorf("expected a\\nb\\na, got %q", res.Output.Text)
	}
}
