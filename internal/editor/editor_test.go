package editor

import (
	"errors"
	"testing"
)

func TestNewSplitsLines(t *testing.T) {
	s := New("a.txt", "hi\nthere", 10)
	if len(s.Lines) != 2 || s.Lines[0] != "hi" || s.Lines[1] != "there" {
		t.Fatalf("unexpected lines: %v", s.Lines)
	}
	if s.IsModified {
		t.Error("freshly opened content should not be modified")
	}
}

func TestNormalModeMovement(t *testing.T) {
	s := New("a.txt", "abc\ndef", 10)
	HandleNormalKey(s, "l")
	if s.Cursor.Column != 1 {
		t.Fatalf("expected column 1, got %d", s.Cursor.Column)
	}
	HandleNormalKey(s, "$")
	if s.Cursor.Column != 3 {
		t.Fatalf("expected column 3 (line end), got %d", s.Cursor.Column)
	}
	HandleNormalKey(s, "j")
	if s.Cursor.Line != 1 {
		t.Fatalf("expected line 1, got %d", s.Cursor.Line)
	}
	HandleNormalKey(s, "G")
	if s.Cursor.Line != 1 {
		t.Fatalf("expected G to land on the last line, got %d", s.Cursor.Line)
	}
}

func TestNormalModeTransitionsToInsert(t *testing.T) {
	cases := []struct {
		key        string
		wantColumn int
	}{
		{"i", 0},
		{"a", 1},
		{"I", 0},
		{"A", 3},
	}
	for _, c := range cases {
		s := New("a.txt", "abc", 10)
		HandleNormalKey(s, c.key)
		if s.Mode != ModeInsert {
			t.Errorf("key %q: expected INSERT mode", c.key)
		}
		if s.Cursor.Column != c.wantColumn {
			t.Errorf("key %q: expected column %d, got %d", c.key, c.wantColumn, s.Cursor.Column)
		}
	}
}

func TestOpenLineBelowAndAbove(t *testing.T) {
	s := New("a.txt", "one\ntwo", 10)
	s.Cursor.Line = 0
	HandleNormalKey(s, "o")
	if s.Mode != ModeInsert || s.Cursor.Line != 1 || s.Cursor.Column != 0 {
		t.Fatalf("unexpected state after o: %+v", s.Cursor)
	}
	if len(s.Lines) != 3 || s.Lines[1] != "" {
		t.Fatalf("expected a blank line inserted below, got %v", s.Lines)
	}

	s2 := New("a.txt", "one\ntwo", 10)
	s2.Cursor.Line = 1
	HandleNormalKey(s2, "O")
	if s2.Cursor.Line != 1 || s2.Lines[1] != "" || s2.Lines[2] != "two" {
		t.Fatalf("expected a blank line inserted above, got %v", s2.Lines)
	}
}

func TestDeleteForwardAndBackward(t *testing.T) {
	s := New("a.txt", "abc", 10)
	s.Cursor.Column = 1
	HandleNormalKey(s, "x")
	if s.Lines[0] != "ac" {
		t.Fatalf("expected 'ac' after x, got %q", s.Lines[0])
	}

	s2 := New("a.txt", "abc", 10)
	s2.Cursor.Column = 2
	HandleNormalKey(s2, "X")
	if s2.Lines[0] != "ac" || s2.Cursor.Column != 1 {
		t.Fatalf("expected 'ac' with cursor at 1, got %q col=%d", s2.Lines[0], s2.Cursor.Column)
	}
}

func TestInsertModeTyping(t *testing.T) {
	s := New("a.txt", "ac", 10)
	s.Mode = ModeInsert
	s.Cursor.Column = 1
	HandleInsertKey(s, "b")
	if s.Lines[0] != "abc" || s.Cursor.Column != 2 {
		t.Fatalf("expected 'abc' col=2, got %q col=%d", s.Lines[0], s.Cursor.Column)
	}
	if !s.IsModified {
		t.Error("expected IsModified after insertion")
	}
}

func TestInsertModeEnterSplitsLine(t *testing.T) {
	s := New("a.txt", "hello there", 10)
	s.Mode = ModeInsert
	s.Cursor.Column = 5
	HandleInsertKey(s, KeyEnter)
	if len(s.Lines) != 2 || s.Lines[0] != "hello" || s.Lines[1] != " there" {
		t.Fatalf("unexpected split: %v", s.Lines)
	}
	if s.Cursor.Line != 1 || s.Cursor.Column != 0 {
		t.Fatalf("expected cursor at start of new line, got %+v", s.Cursor)
	}
}

func TestInsertModeBackspaceJoinsLines(t *testing.T) {
	s := New("a.txt", "hello\nthere", 10)
	s.Mode = ModeInsert
	s.Cursor.Line = 1
	s.Cursor.Column = 0
	HandleInsertKey(s, KeyBackspace)
	if len(s.Lines) != 1 || s.Lines[0] != "hellothere" {
		t.Fatalf("expected joined line, got %v", s.Lines)
	}
	if s.Cursor.Line != 0 || s.Cursor.Column != 5 {
		t.Fatalf("expected cursor at join point, got %+v", s.Cursor)
	}
}

func TestInsertModeDeleteJoinsNextLine(t *testing.T) {
	s := New("a.txt", "hello\nthere", 10)
	s.Mode = ModeInsert
	s.Cursor.Line = 0
	s.Cursor.Column = 5
	HandleInsertKey(s, KeyDelete)
	if len(s.Lines) != 1 || s.Lines[0] != "hellothere" {
		t.Fatalf("expected joined line, got %v", s.Lines)
	}
}

func TestInsertModeTabInsertsTwoSpaces(t *testing.T) {
	s := New("a.txt", "", 10)
	s.Mode = ModeInsert
	HandleInsertKey(s, KeyTab)
	if s.Lines[0] != "  " || s.Cursor.Column != 2 {
		t.Fatalf("expected two spaces, got %q col=%d", s.Lines[0], s.Cursor.Column)
	}
}

func TestWideCharacterCursorMath(t *testing.T) {
	s := New("a.txt", "あb", 10)
	if s.lineWidth(0) != 3 {
		t.Fatalf("expected width 3 (2 + 1), got %d", s.lineWidth(0))
	}
	HandleNormalKey(s, "l")
	if s.Cursor.Column != 2 {
		t.Fatalf("expected column 2 after moving past a wide char, got %d", s.Cursor.Column)
	}
}

func TestExQuitWithUnsavedChangesFails(t *testing.T) {
	s := New("a.txt", "hi", 10)
	s.Mode = ModeInsert
	HandleInsertKey(s, "!")
	res := ExCommand(s, "q", nil)
	if res.Success || res.ShouldClose {
		t.Fatalf("expected q to refuse with unsaved changes, got %+v", res)
	}
}

func TestExForceQuitDiscardsChanges(t *testing.T) {
	s := New("a.txt", "hi", 10)
	s.Mode = ModeInsert
	HandleInsertKey(s, "!")
	res := ExCommand(s, "q!", nil)
	if !res.Success || !res.ShouldClose {
		t.Fatalf("expected q! to close unconditionally, got %+v", res)
	}
}

func TestExWriteAndQuit(t *testing.T) {
	s := New("a.txt", "Hi", 10)
	s.Cursor.Column = 2
	s.Mode = ModeInsert
	for _, r := range " there" {
		HandleInsertKey(s, string(r))
	}
	HandleInsertKey(s, KeyEscape)

	var written string
	res := ExCommand(s, "wq", func(filename, content string) error {
		written = content
		return nil
	})
	if !res.Success || !res.ShouldClose {
		t.Fatalf("expected wq to succeed and close, got %+v", res)
	}
	if written != "Hi there" {
		t.Fatalf("expected written content 'Hi there', got %q", written)
	}
	if s.IsModified {
		t.Error("expected IsModified cleared after write")
	}
}

func TestExWriteFailurePropagatesMessage(t *testing.T) {
	s := New("a.txt", "hi", 10)
	res := ExCommand(s, "w", func(filename, content string) error {
		return errors.New("disk full")
	})
	if res.Success || res.Message != "disk full" {
		t.Fatalf("expected failure message propagated, got %+v", res)
	}
}

func TestExUnknownCommand(t *testing.T) {
	s := New("a.txt", "hi", 10)
	res := ExCommand(s, "zzz", nil)
	if res.Success {
		t.Fatal("expected unknown command to fail")
	}
}
