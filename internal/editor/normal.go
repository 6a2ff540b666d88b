package editor

// HandleNormalKey applies one NORMAL-mode keystroke (spec 4.J). The host
// layer is responsible for collecting a full ":"-prefixed command line
// and invoking ExCommand once it is complete; this function never
// interprets ":" itself.
func HandleNormalKey(s *State, key string) {
	switch key {
	case "h":
		s.moveColumnBy(-1)
	case "l":
		s.moveColumnBy(1)
	case "j":
		s.moveLineBy(1)
	case "k":
		s.moveLineBy(-1)
	case "0":
		s.Cursor.Column = 0
	case "$":
		s.Cursor.Column = s.lineWidth(s.Cursor.Line)
	case "G":
		s.Cursor.Line = len(s.Lines) - 1
	case "x":
		s.deleteRuneAt(runeIndexAtColumn(s.Lines[s.Cursor.Line], s.Cursor.Column))
	case "X":
		idx := runeIndexAtColumn(s.Lines[s.Cursor.Line], s.Cursor.Column) - 1
		if idx >= 0 {
			s.deleteRuneAt(idx)
			s.Cursor.Column = columnAtRuneIndex(s.Lines[s.Cursor.Line], idx)
		}
	case "i":
		s.Mode = ModeInsert
	case "a":
		s.Mode = ModeInsert
		s.moveColumnBy(1)
	case "I":
		s.Mode = ModeInsert
		s.Cursor.Column = 0
	case "A":
		s.Mode = ModeInsert
		s.Cursor.Column = s.lineWidth(s.Cursor.Line)
	case "o":
		s.openLine(s.Cursor.Line + 1)
		s.Mode = ModeInsert
	case "O":
		s.openLine(s.Cursor.Line)
		s.Mode = ModeInsert
	}
	s.sync()
}
