package editor

import "unicode/utf8"

// Special INSERT-mode key names recognized by HandleInsertKey; anything
// else that decodes as a single rune is inserted literally (spec 4.J).
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyLeft      = "Left"
	KeyRight     = "Right"
	KeyUp        = "Up"
	KeyDown      = "Down"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyPageUp    = "PageUp"
	KeyPageDown  = "PageDown"
	KeyTab       = "Tab"
	KeyEscape    = "Escape"
)

// HandleInsertKey applies one INSERT-mode keystroke (spec 4.J).
func HandleInsertKey(s *State, key string) {
	switch key {
	case KeyEscape:
		s.Mode = ModeNormal
	case KeyEnter:
		s.splitLine()
	case KeyBackspace:
		s.backspace()
	case KeyDelete:
		s.forwardDelete()
	case KeyLeft:
		s.moveColumnBy(-1)
	case KeyRight:
		s.moveColumnBy(1)
	case KeyUp:
		s.moveLineBy(-1)
	case KeyDown:
		s.moveLineBy(1)
	case KeyHome:
		s.Cursor.Column = 0
	case KeyEnd:
		s.Cursor.Column = s.lineWidth(s.Cursor.Line)
	case KeyPageUp:
		s.moveLineBy(-pageSize(s))
	case KeyPageDown:
		s.moveLineBy(pageSize(s))
	case KeyTab:
		s.insertRune(' ')
		s.insertRune(' ')
	default:
		if r, size := utf8.DecodeRuneInString(key); size == len(key) && r != utf8.RuneError {
			s.insertRune(r)
		}
	}
	s.sync()
}

func pageSize(s *State) int {
	if s.MaxVisibleLines > 0 {
		return s.MaxVisibleLines
	}
	return 1
}

// splitLine breaks the current line at the cursor into two lines (spec
// 4.J: "Enter splits current line").
func (s *State) splitLine() {
	line := s.Lines[s.Cursor.Line]
	idx := runeIndexAtColumn(line, s.Cursor.Column)
	runes := []rune(line)
	before, after := string(runes[:idx]), string(runes[idx:])

	s.Lines[s.Cursor.Line] = before
	tail := append([]string{after}, s.Lines[s.Cursor.Line+1:]...)
	s.Lines = append(s.Lines[:s.Cursor.Line+1], tail...)

	s.Cursor.Line++
	s.Cursor.Column = 0
}

// backspace deletes the character before the cursor, joining with the
// previous line at the boundary (spec 4.J).
func (s *State) backspace() {
	line := s.Lines[s.Cursor.Line]
	idx := runeIndexAtColumn(line, s.Cursor.Column)
	if idx > 0 {
		s.deleteRuneAt(idx - 1)
		s.Cursor.Column = columnAtRuneIndex(s.Lines[s.Cursor.Line], idx-1)
		return
	}
	if s.Cursor.Line == 0 {
		return
	}
	prevLine := s.Lines[s.Cursor.Line-1]
	joinColumn := s.lineWidth(s.Cursor.Line - 1)
	s.Lines[s.Cursor.Line-1] = prevLine + line
	s.Lines = append(s.Lines[:s.Cursor.Line], s.Lines[s.Cursor.Line+1:]...)
	s.Cursor.Line--
	s.Cursor.Column = joinColumn
}

// forwardDelete deletes the character under the cursor, joining with the
// next line when at the end of the current one (spec 4.J).
func (s *State) forwardDelete() {
	line := s.Lines[s.Cursor.Line]
	runes := []rune(line)
	idx := runeIndexAtColumn(line, s.Cursor.Column)
	if idx < len(runes) {
		s.deleteRuneAt(idx)
		return
	}
	if s.Cursor.Line == len(s.Lines)-1 {
		return
	}
	nextLine := s.Lines[s.Cursor.Line+1]
	s.Lines[s.Cursor.Line] = line + nextLine
	s.Lines = append(s.Lines[:s.Cursor.Line+1], s.Lines[s.Cursor.Line+2:]...)
}
