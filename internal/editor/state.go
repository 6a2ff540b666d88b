// Package editor implements the vi-style modal text editor state machine
// (component J, spec 4.J). The teacher (llmcmd/llmsh) is a stream-processing
// shell with no editor of any kind, so this package is built fresh, kept in
// the teacher's general multi-file-per-package shape (one file per
// concern: state, normal-mode keys, insert-mode keys, ex-commands) and
// using mattn/go-runewidth so the cursor's column tracks *visual* width
// rather than rune count -- wide CJK/emoji characters occupy more than one
// column, same as a real terminal would render them.
package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Mode is the editor's current input mode (spec 4.J).
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

// Cursor is a (line, column) position; column is a visual cell offset, not
// a rune index, so wide characters move it by more than one.
type Cursor struct {
	Line   int
	Column int
}

// State is the editor's full state (spec 3, EditorState). Invariant:
// Content == strings.Join(Lines, "\n"); Cursor.Line is in [0, len(Lines));
// Cursor.Column is in [0, visual width of Lines[Cursor.Line]].
type State struct {
	Filename        string
	OriginalContent string
	Content         string
	Lines           []string
	Cursor          Cursor
	Mode            Mode
	IsModified      bool
	ScrollOffset    int
	MaxVisibleLines int
	StatusMessage   string
}

// New opens content under filename in NORMAL mode with the cursor at the
// origin (spec 3: EditorState "created when vi is invoked").
func New(filename, content string, maxVisibleLines int) *State {
	s := &State{
		Filename:        filename,
		OriginalContent: content,
		MaxVisibleLines: maxVisibleLines,
	}
	s.Content = content
	s.Lines = strings.Split(content, "\n")
	return s
}

// sync recomputes Content and IsModified from Lines after an edit and
// clamps the cursor and scroll offset back into the valid rectangle (spec
// 4.J: "after any operation the cursor lies within the valid rectangle").
func (s *State) sync() {
	s.Content = strings.Join(s.Lines, "\n")
	s.IsModified = s.Content != s.OriginalContent
	s.clampCursor()
	s.clampScroll()
}

func (s *State) clampCursor() {
	if len(s.Lines) == 0 {
		s.Lines = []string{""}
	}
	s.Cursor.Line = clampInt(s.Cursor.Line, 0, len(s.Lines)-1)
	s.Cursor.Column = clampInt(s.Cursor.Column, 0, s.lineWidth(s.Cursor.Line))
}

func (s *State) clampScroll() {
	if s.MaxVisibleLines <= 0 {
		return
	}
	if s.Cursor.Line < s.ScrollOffset {
		s.ScrollOffset = s.Cursor.Line
	}
	if s.Cursor.Line >= s.ScrollOffset+s.MaxVisibleLines {
		s.ScrollOffset = s.Cursor.Line - s.MaxVisibleLines + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

func (s *State) lineWidth(line int) int {
	if line < 0 || line >= len(s.Lines) {
		return 0
	}
	return runewidth.StringWidth(s.Lines[line])
}

// runeIndexAtColumn returns the rune offset into line whose visual column
// is column, walking rune-by-rune and accumulating display width.
func runeIndexAtColumn(line string, column int) int {
	width := 0
	runes := []rune(line)
	for i, r := range runes {
		if width >= column {
			return i
		}
		width += runewidth.RuneWidth(r)
	}
	return len(runes)
}

// columnAtRuneIndex returns the visual column of the rune at index idx in
// line (the width of everything before it).
func columnAtRuneIndex(line string, idx int) int {
	runes := []rune(line)
	idx = clampInt(idx, 0, len(runes))
	return runewidth.StringWidth(string(runes[:idx]))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// moveColumnBy shifts the cursor by delta characters (not columns) on its
// current line, clamped to the line's bounds.
func (s *State) moveColumnBy(delta int) {
	line := s.Lines[s.Cursor.Line]
	idx := runeIndexAtColumn(line, s.Cursor.Column)
	idx = clampInt(idx+delta, 0, len([]rune(line)))
	s.Cursor.Column = columnAtRuneIndex(line, idx)
}

// moveLineBy shifts the cursor by delta lines, preserving its rune
// position (clamped to the new line's length) rather than its visual
// column, matching how most line-oriented editors track vertical movement.
func (s *State) moveLineBy(delta int) {
	oldLine := s.Lines[s.Cursor.Line]
	idx := runeIndexAtColumn(oldLine, s.Cursor.Column)

	s.Cursor.Line = clampInt(s.Cursor.Line+delta, 0, len(s.Lines)-1)

	newLine := s.Lines[s.Cursor.Line]
	idx = clampInt(idx, 0, len([]rune(newLine)))
	s.Cursor.Column = columnAtRuneIndex(newLine, idx)
}

// insertRune inserts r at the cursor and advances the cursor past it.
func (s *State) insertRune(r rune) {
	line := s.Lines[s.Cursor.Line]
	runes := []rune(line)
	idx := runeIndexAtColumn(line, s.Cursor.Column)
	runes = append(runes[:idx], append([]rune{r}, runes[idx:]...)...)
	s.Lines[s.Cursor.Line] = string(runes)
	s.Cursor.Column = columnAtRuneIndex(s.Lines[s.Cursor.Line], idx+1)
}

// deleteRuneAt removes the rune at runeIdx on the cursor's current line.
func (s *State) deleteRuneAt(runeIdx int) {
	line := s.Lines[s.Cursor.Line]
	runes := []rune(line)
	if runeIdx < 0 || runeIdx >= len(runes) {
		return
	}
	runes = append(runes[:runeIdx], runes[runeIdx+1:]...)
	s.Lines[s.Cursor.Line] = string(runes)
}

// openLine inserts an empty line at index and places the cursor at its
// start (spec 4.J: "o inserts a line below and places cursor at column 0,
// O above").
func (s *State) openLine(index int) {
	index = clampInt(index, 0, len(s.Lines))
	s.Lines = append(s.Lines, "")
	copy(s.Lines[index+1:], s.Lines[index:])
	s.Lines[index] = ""
	s.Cursor.Line = index
	s.Cursor.Column = 0
}
